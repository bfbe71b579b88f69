package director

import (
	"math"
	"math/rand"
	"testing"

	"bolamiga/internal/entity"
	"bolamiga/internal/event"
)

func testConfig() Config {
	// Pickups and stars off so spawn-counting tests see enemies only.
	return Config{
		BaseInterval:  2.0,
		IntervalDecay: 0.85,
		MinInterval:   0.4,
		WaveDuration:  20.0,
	}
}

func TestSpawnAccumulatorPreservesOvershoot(t *testing.T) {
	d := New(160, 96, testConfig(), rand.New(rand.NewSource(1)))
	s := entity.NewStore(64)
	var ev event.Queue

	// Accumulator crosses a 2.0s interval at 2.1s: exactly one spawn,
	// and the 0.1s overshoot carries into the next interval.
	d.spawnAccum = 2.0
	d.Update(s, 0.1, &ev)
	s.Flush()

	if got := s.CountKind(entity.KindEnemy); got != 1 {
		t.Fatalf("expected exactly one spawn, got %d", got)
	}
	if math.Abs(d.spawnAccum-0.1) > 1e-9 {
		t.Fatalf("overshoot should be preserved: want 0.1, got %v", d.spawnAccum)
	}
}

func TestSpawnBeyondStoreCapIsSkipped(t *testing.T) {
	d := New(160, 96, testConfig(), rand.New(rand.NewSource(1)))
	s := entity.NewStore(1)
	s.Spawn(entity.NewParticle(0, 0, 0, 0, 1, entity.VisualSpark))
	s.Flush()
	var ev event.Queue

	d.spawnAccum = 2.0
	d.Update(s, 0.1, &ev)
	s.Flush()

	if got := s.CountKind(entity.KindEnemy); got != 0 {
		t.Fatalf("spawn at cap should be silently skipped, got %d enemies", got)
	}
}

func TestIntervalShrinksMonotonicallyWithFloor(t *testing.T) {
	cfg := testConfig()
	prev := cfg.Interval(1)
	if prev != cfg.BaseInterval {
		t.Fatalf("wave 1 interval should equal the base, got %v", prev)
	}
	for wave := 2; wave <= 40; wave++ {
		iv := cfg.Interval(wave)
		if iv > prev {
			t.Fatalf("interval must never grow: wave %d gave %v after %v", wave, iv, prev)
		}
		if iv < cfg.MinInterval {
			t.Fatalf("interval fell below the floor at wave %d: %v", wave, iv)
		}
		prev = iv
	}
	if prev != cfg.MinInterval {
		t.Fatalf("interval should settle at the floor, got %v", prev)
	}
}

func TestWaveAdvancesOnDuration(t *testing.T) {
	cfg := testConfig()
	cfg.WaveDuration = 1.0
	d := New(160, 96, cfg, rand.New(rand.NewSource(1)))
	s := entity.NewStore(64)
	var ev event.Queue

	d.Update(s, 0.9, &ev)
	if d.Wave() != 1 {
		t.Fatalf("wave should still be 1, got %d", d.Wave())
	}
	d.Update(s, 0.2, &ev)
	if d.Wave() != 2 {
		t.Fatalf("wave should advance to 2, got %d", d.Wave())
	}

	found := false
	for _, e := range ev.Events() {
		if e.Type == event.WaveAdvanced {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a WaveAdvanced event")
	}
}

func TestEnemiesSpawnAtRightEdge(t *testing.T) {
	d := New(160, 96, testConfig(), rand.New(rand.NewSource(7)))
	s := entity.NewStore(256)
	var ev event.Queue

	d.spawnAccum = 20.0
	d.Update(s, 0, &ev)
	s.Flush()

	if s.CountKind(entity.KindEnemy) == 0 {
		t.Fatal("expected spawns")
	}
	for _, e := range s.Entities() {
		if e.Kind != entity.KindEnemy {
			continue
		}
		if e.X <= d.worldW {
			t.Fatalf("enemy should enter from beyond the right edge, got x=%v", e.X)
		}
		if e.Y < 0 || e.Y > d.worldH {
			t.Fatalf("enemy Y out of world: %v", e.Y)
		}
	}
}

func TestEnemyFiresOnCadenceOnlyOnScreen(t *testing.T) {
	d := New(160, 96, testConfig(), rand.New(rand.NewSource(1)))
	s := entity.NewStore(64)
	var ev event.Queue

	e := entity.NewEnemy(170, 48, entity.Behavior{Pattern: entity.PatternStraight, Speed: 0}, 2, 100, 1, 1.0, entity.VisualEnemyWeaver)
	s.Spawn(e)
	s.Flush()

	// Off screen: cadence elapses but no shot fires.
	e.Enemy.FireAccum = 1.0
	d.Update(s, 0, &ev)
	s.Flush()
	if got := s.CountKind(entity.KindProjectile); got != 0 {
		t.Fatalf("off-screen enemy must not fire, got %d shots", got)
	}

	// On screen: the next elapsed cadence fires one shot.
	e.X = 100
	e.Enemy.FireAccum = 1.0
	d.Update(s, 0, &ev)
	s.Flush()
	if got := s.CountKind(entity.KindProjectile); got != 1 {
		t.Fatalf("expected one enemy shot, got %d", got)
	}
	for _, p := range s.Entities() {
		if p.Kind == entity.KindProjectile && p.Projectile.Owner != entity.OwnerEnemy {
			t.Fatal("enemy shot should be enemy-owned")
		}
	}
}

func TestResetRestoresWaveOne(t *testing.T) {
	d := New(160, 96, testConfig(), rand.New(rand.NewSource(1)))
	s := entity.NewStore(64)
	var ev event.Queue

	d.Update(s, 45.0, &ev)
	if d.Wave() == 1 {
		t.Fatal("setup should have advanced past wave 1")
	}

	d.Reset()
	if d.Wave() != 1 || d.spawnAccum != 0 || d.waveAccum != 0 {
		t.Fatal("reset should restore a fresh session")
	}
}
