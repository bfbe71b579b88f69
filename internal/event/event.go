// Package event carries per-frame gameplay events between engine stages.
//
// Earlier stages (resolver, director, player fire) record events; later
// stages (score tracker, audio, state machine) consume them after all
// mutation for the frame is done. The queue is drained every frame.
package event

// Type identifies a gameplay event.
type Type int

const (
	PlayerFired Type = iota
	EnemyFired
	EnemyKilled
	PlayerHit
	PlayerKilled
	PickupCollected
	WaveAdvanced
	GameOver
)

// Event is a single gameplay occurrence within a frame.
type Event struct {
	Type   Type
	Points int     // Score value (EnemyKilled, PickupCollected)
	X, Y   float64 // World position the event happened at
}

// Queue accumulates events during a frame. Not safe for concurrent use;
// the engine loop is single-threaded.
type Queue struct {
	events []Event
}

// Emit appends an event to the queue.
func (q *Queue) Emit(e Event) {
	q.events = append(q.events, e)
}

// Events returns the events recorded so far this frame.
func (q *Queue) Events() []Event {
	return q.events
}

// Reset clears the queue for the next frame, keeping the backing array.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}
