package entity

import "testing"

func TestSpawnIsDeferredUntilFlush(t *testing.T) {
	s := NewStore(16)

	s.Spawn(NewParticle(1, 1, 0, 0, 1.0, VisualSpark))
	if s.Len() != 0 {
		t.Fatalf("spawn should be queued, got %d live entities", s.Len())
	}

	s.Flush()
	if s.Len() != 1 {
		t.Fatalf("expected 1 live entity after flush, got %d", s.Len())
	}
}

func TestSpawnCapSilentlySkips(t *testing.T) {
	s := NewStore(2)

	if !s.Spawn(NewParticle(0, 0, 0, 0, 1, VisualSpark)) {
		t.Fatal("first spawn should succeed")
	}
	if !s.Spawn(NewParticle(0, 0, 0, 0, 1, VisualSpark)) {
		t.Fatal("second spawn should succeed")
	}
	if s.Spawn(NewParticle(0, 0, 0, 0, 1, VisualSpark)) {
		t.Fatal("spawn past the cap should be skipped")
	}

	s.Flush()
	if s.Len() != 2 {
		t.Fatalf("expected 2 live entities, got %d", s.Len())
	}
}

func TestCompactRemovesDeadEntities(t *testing.T) {
	s := NewStore(16)
	s.Spawn(NewParticle(0, 0, 0, 0, 1, VisualSpark))
	s.Spawn(NewParticle(5, 5, 0, 0, 1, VisualSpark))
	s.Flush()

	s.Entities()[0].Kill()
	s.Compact()

	if s.Len() != 1 {
		t.Fatalf("expected 1 live entity after compact, got %d", s.Len())
	}
	for _, e := range s.Entities() {
		if !e.Alive {
			t.Fatal("dead entity still present after compact")
		}
	}
}

func TestPlayerSingleton(t *testing.T) {
	s := NewStore(16)

	s.SpawnPlayer(10, 10, 3, 3)
	p2 := s.SpawnPlayer(20, 20, 3, 3)

	if s.CountKind(KindPlayer) != 1 {
		t.Fatalf("expected exactly one player, got %d", s.CountKind(KindPlayer))
	}
	if s.Player() != p2 {
		t.Fatal("store should track the latest player")
	}
}

func TestCompactClearsDeadPlayerReference(t *testing.T) {
	s := NewStore(16)
	p := s.SpawnPlayer(10, 10, 1, 1)

	p.Kill()
	s.Compact()

	if s.Player() != nil {
		t.Fatal("player reference should be cleared after compacting a dead player")
	}
}

func TestDamageClampsAtZero(t *testing.T) {
	e := NewEnemy(0, 0, Behavior{}, 2, 100, 1, 0, VisualEnemyDart)

	if died := e.Damage(5); !died {
		t.Fatal("damage past zero health should kill")
	}
	if e.Health != 0 {
		t.Fatalf("health must not go negative, got %d", e.Health)
	}
	if e.Alive {
		t.Fatal("entity with zero health must not be alive")
	}

	// Further damage on a dead entity is a no-op.
	if died := e.Damage(3); died {
		t.Fatal("dead entity must not die twice")
	}
}

func TestParticlesNeverCollide(t *testing.T) {
	p := NewParticle(0, 0, 0, 0, 1, VisualSpark)
	if p.Collides() {
		t.Fatal("particles must not participate in collision")
	}
}
