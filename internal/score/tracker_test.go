package score

import (
	"testing"

	"bolamiga/internal/event"
)

func TestApplyCreditsScoringEventsOnly(t *testing.T) {
	var tr Tracker

	tr.Apply([]event.Event{
		{Type: event.EnemyKilled, Points: 100},
		{Type: event.PickupCollected, Points: 250},
		{Type: event.PlayerFired, Points: 999},
		{Type: event.PlayerHit},
	})

	if tr.Current() != 350 {
		t.Fatalf("expected 350 points, got %d", tr.Current())
	}
}

func TestLatchSurvivesReset(t *testing.T) {
	var tr Tracker

	tr.Apply([]event.Event{{Type: event.EnemyKilled, Points: 100}})
	tr.Latch()
	tr.Reset()

	if tr.Current() != 0 {
		t.Fatalf("reset should clear the running score, got %d", tr.Current())
	}
	if tr.Final() != 100 {
		t.Fatalf("latched final score should survive reset, got %d", tr.Final())
	}
}

func TestLatchOverwritesPreviousFinal(t *testing.T) {
	var tr Tracker

	tr.Apply([]event.Event{{Type: event.EnemyKilled, Points: 100}})
	tr.Latch()
	tr.Reset()

	tr.Apply([]event.Event{{Type: event.EnemyKilled, Points: 300}})
	tr.Latch()

	if tr.Final() != 300 {
		t.Fatalf("latch should replace the previous final, got %d", tr.Final())
	}
}
