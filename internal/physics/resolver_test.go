package physics

import (
	"math"
	"testing"

	"bolamiga/internal/entity"
	"bolamiga/internal/event"
)

func newTestResolver() *Resolver {
	return NewResolver(160, 96, DefaultParams())
}

func countEvents(ev *event.Queue, t event.Type) int {
	n := 0
	for _, e := range ev.Events() {
		if e.Type == t {
			n++
		}
	}
	return n
}

func TestAdvanceCapsDelta(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(16)
	var ev event.Queue

	if got := r.Advance(s, 1.0, &ev); math.Abs(got-MaxDelta) > 1e-9 {
		t.Fatalf("oversized delta should be capped at %v, got %v", MaxDelta, got)
	}
	if got := r.Advance(s, -0.5, &ev); got != 0 {
		t.Fatalf("negative delta must not advance time, got %v", got)
	}
	if got := r.Advance(s, 0.01, &ev); math.Abs(got-0.01) > 1e-9 {
		t.Fatalf("in-range delta should pass through, got %v", got)
	}

	want := MaxDelta + 0.01
	if math.Abs(r.Simulated()-want) > 1e-9 {
		t.Fatalf("simulated time should sum capped deltas: want %v, got %v", want, r.Simulated())
	}
}

func TestProjectileDestroyedOnHit(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(64)
	var ev event.Queue

	enemy := entity.NewEnemy(50, 50, entity.Behavior{}, 3, 100, 1, 0, entity.VisualEnemyDart)
	shot := entity.NewProjectile(50, 50, 0, 0, entity.OwnerPlayer, 1, 5.0)
	s.Spawn(enemy)
	s.Spawn(shot)
	s.Flush()

	r.Advance(s, 0, &ev)

	if shot.Alive {
		t.Fatal("projectile must be destroyed by the hit it deals")
	}
	if enemy.Health != 2 {
		t.Fatalf("enemy should take 1 damage, got health %d", enemy.Health)
	}
	if !enemy.Alive {
		t.Fatal("enemy with remaining health must survive")
	}
}

func TestEnemyDestructionScoresExactlyOnce(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(64)
	var ev event.Queue

	enemy := entity.NewEnemy(50, 50, entity.Behavior{}, 1, 150, 1, 0, entity.VisualEnemyDart)
	first := entity.NewProjectile(50, 50, 0, 0, entity.OwnerPlayer, 1, 5.0)
	second := entity.NewProjectile(50, 50, 0, 0, entity.OwnerPlayer, 1, 5.0)
	s.Spawn(enemy)
	s.Spawn(first)
	s.Spawn(second)
	s.Flush()

	r.Advance(s, 0, &ev)

	if got := countEvents(&ev, event.EnemyKilled); got != 1 {
		t.Fatalf("a destroyed enemy credits score exactly once, got %d kill events", got)
	}
	if enemy.Alive {
		t.Fatal("enemy should be dead")
	}
	// Hits against the already-dead enemy are no-ops, so the second
	// projectile flies on.
	if !second.Alive {
		t.Fatal("second projectile must not be consumed by a dead enemy")
	}
}

func TestCullingAwardsNothing(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(64)
	var ev event.Queue

	enemy := entity.NewEnemy(-20, 50, entity.Behavior{}, 1, 100, 1, 0, entity.VisualEnemyDart)
	s.Spawn(enemy)
	s.Flush()

	r.Advance(s, 0, &ev)

	if enemy.Alive {
		t.Fatal("out-of-bounds enemy should be culled")
	}
	if len(ev.Events()) != 0 {
		t.Fatalf("culling must not emit events, got %d", len(ev.Events()))
	}
	s.Flush()
	if s.CountKind(entity.KindParticle) != 0 {
		t.Fatal("culling must not spawn death particles")
	}
}

func TestTTLExpiryIsSilent(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(16)
	var ev event.Queue

	shot := entity.NewProjectile(50, 50, 0, 0, entity.OwnerPlayer, 1, 0.001)
	s.Spawn(shot)
	s.Flush()

	r.Advance(s, 0.01, &ev)

	if shot.Alive {
		t.Fatal("expired projectile should be removed")
	}
	if len(ev.Events()) != 0 {
		t.Fatalf("TTL expiry must not emit events, got %d", len(ev.Events()))
	}
}

func TestEnemyShotDamagesPlayerOnce(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(64)
	var ev event.Queue

	player := s.SpawnPlayer(50, 50, 3, 3)
	s.Spawn(entity.NewProjectile(50, 50, 0, 0, entity.OwnerEnemy, 1, 5.0))
	s.Spawn(entity.NewProjectile(50, 50, 0, 0, entity.OwnerEnemy, 1, 5.0))
	s.Flush()

	r.Advance(s, 0, &ev)

	// The first hit starts the grace period; the second is absorbed.
	if player.Health != 2 {
		t.Fatalf("expected 1 damage through the grace window, got health %d", player.Health)
	}
	if player.Player.Invulnerable <= 0 {
		t.Fatal("a non-fatal hit should grant post-hit invulnerability")
	}
	if got := countEvents(&ev, event.PlayerHit); got != 1 {
		t.Fatalf("expected exactly one PlayerHit event, got %d", got)
	}
}

func TestFatalHitDecrementsLivesAndRevives(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(64)
	var ev event.Queue

	player := s.SpawnPlayer(50, 50, 1, 3)
	s.Spawn(entity.NewProjectile(50, 50, 0, 0, entity.OwnerEnemy, 1, 5.0))
	s.Flush()

	r.Advance(s, 0, &ev)

	if player.Player.Lives != 2 {
		t.Fatalf("fatal hit should cost one life, got %d", player.Player.Lives)
	}
	if !player.Alive {
		t.Fatal("player with lives remaining should revive in place")
	}
	if player.Health != player.Player.MaxHealth {
		t.Fatalf("revived player should have full health, got %d", player.Health)
	}
	if countEvents(&ev, event.PlayerKilled) != 1 {
		t.Fatal("expected a PlayerKilled event")
	}
}

func TestFinalLifeStaysDead(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(64)
	var ev event.Queue

	player := s.SpawnPlayer(50, 50, 1, 1)
	s.Spawn(entity.NewProjectile(50, 50, 0, 0, entity.OwnerEnemy, 1, 5.0))
	s.Flush()

	r.Advance(s, 0, &ev)

	if player.Alive {
		t.Fatal("player on the last life must stay dead")
	}
	if player.Player.Lives != 0 {
		t.Fatalf("expected 0 lives, got %d", player.Player.Lives)
	}
}

func TestContactDamageHurtsBothSides(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(64)
	var ev event.Queue

	player := s.SpawnPlayer(50, 50, 3, 3)
	enemy := entity.NewEnemy(50, 50, entity.Behavior{}, 5, 100, 2, 0, entity.VisualEnemyHunter)
	s.Spawn(enemy)
	s.Flush()

	r.Advance(s, 0, &ev)

	if player.Health != 1 {
		t.Fatalf("player should take the enemy's contact damage, got health %d", player.Health)
	}
	if enemy.Health != 3 {
		t.Fatalf("ramming enemy should take the same damage, got health %d", enemy.Health)
	}
}

func TestPickupHealsClampedAtMax(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(64)
	var ev event.Queue

	player := s.SpawnPlayer(50, 50, 3, 3)
	player.Health = 1
	pickup := entity.NewPickup(50, 50, 5, 50)
	pickup.VX = 0
	s.Spawn(pickup)
	s.Flush()

	r.Advance(s, 0, &ev)

	if player.Health != player.Player.MaxHealth {
		t.Fatalf("heal must clamp at max health, got %d", player.Health)
	}
	if pickup.Alive {
		t.Fatal("collected pickup should be removed")
	}
	if countEvents(&ev, event.PickupCollected) != 1 {
		t.Fatal("expected a PickupCollected event")
	}
}

func TestPlayerClampedToWorld(t *testing.T) {
	r := newTestResolver()
	s := entity.NewStore(16)
	var ev event.Queue

	player := s.SpawnPlayer(1, 1, 3, 3)
	player.VX = -100
	player.VY = -100

	r.Advance(s, MaxDelta, &ev)

	reach := MaxReach(player.Shape)
	if player.X < reach || player.Y < reach {
		t.Fatalf("player must stay inside the world, got (%v, %v)", player.X, player.Y)
	}
}
