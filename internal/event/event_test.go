package event

import "testing"

func TestQueueAccumulatesWithinFrame(t *testing.T) {
	var q Queue

	q.Emit(Event{Type: EnemyKilled, Points: 100})
	q.Emit(Event{Type: PlayerFired})

	evs := q.Events()
	if len(evs) != 2 {
		t.Fatalf("expected 2 events, got %d", len(evs))
	}
	if evs[0].Type != EnemyKilled || evs[0].Points != 100 {
		t.Fatalf("unexpected first event: %+v", evs[0])
	}
}

func TestResetClearsButKeepsCapacity(t *testing.T) {
	var q Queue
	for i := 0; i < 8; i++ {
		q.Emit(Event{Type: PlayerFired})
	}
	before := cap(q.events)

	q.Reset()

	if len(q.Events()) != 0 {
		t.Fatalf("expected empty queue after reset, got %d", len(q.Events()))
	}
	if cap(q.events) != before {
		t.Fatal("reset should keep the backing array")
	}
}
