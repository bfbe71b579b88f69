// Package score accumulates session points and talks to the external
// high-score collaborator.
package score

import "bolamiga/internal/event"

// Tracker accumulates points from kill and pickup events. The final
// value is latched on GameOver so the summary screen shows it even
// after the session resets.
type Tracker struct {
	current int
	final   int
}

// Apply credits every scoring event in the frame's queue. Each event is
// seen exactly once per frame, so a destroyed enemy credits its declared
// value exactly once.
func (t *Tracker) Apply(events []event.Event) {
	for _, e := range events {
		switch e.Type {
		case event.EnemyKilled, event.PickupCollected:
			t.current += e.Points
		}
	}
}

// Current returns the running session score.
func (t *Tracker) Current() int {
	return t.current
}

// Latch records the running score as the session's final value.
func (t *Tracker) Latch() {
	t.final = t.current
}

// Final returns the last latched score.
func (t *Tracker) Final() int {
	return t.final
}

// Reset clears the running score for a new session. The latched final
// value survives until the next Latch.
func (t *Tracker) Reset() {
	t.current = 0
}
