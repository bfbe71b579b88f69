// Package director decides when and where enemies appear and drives
// their per-frame movement behavior.
package director

import (
	"math"
	"math/rand"

	"bolamiga/internal/entity"
	"bolamiga/internal/event"
)

// Config tunes the spawn cadence and difficulty curve. The interval
// shrinks geometrically per wave with a hard floor, so the spawn rate is
// monotonically non-decreasing but never runs away.
type Config struct {
	BaseInterval  float64 // Seconds between spawns on wave 1
	IntervalDecay float64 // Interval multiplier applied per wave, in (0,1]
	MinInterval   float64 // Interval floor
	WaveDuration  float64 // Seconds per wave
	PickupRate    float64 // Expected pickups per second
	StarTarget    int     // Background star population to maintain
}

// DefaultConfig returns the tuning used by the game loop.
func DefaultConfig() Config {
	return Config{
		BaseInterval:  2.0,
		IntervalDecay: 0.85,
		MinInterval:   0.4,
		WaveDuration:  20.0,
		PickupRate:    0.04,
		StarTarget:    40,
	}
}

// Interval returns the spawn interval for a 1-based wave number.
func (c Config) Interval(wave int) float64 {
	if wave < 1 {
		wave = 1
	}
	iv := c.BaseInterval * math.Pow(c.IntervalDecay, float64(wave-1))
	if iv < c.MinInterval {
		iv = c.MinInterval
	}
	return iv
}

// Director introduces enemies from the right edge on a shrinking
// interval and steers every live enemy from its behavior descriptor.
// It inserts entities through the store's spawn queue only; collision
// and damage belong to the resolver.
type Director struct {
	cfg            Config
	worldW, worldH float64
	rng            *rand.Rand

	spawnAccum float64
	waveAccum  float64
	wave       int
}

// New creates a director for the given world bounds. rng drives spawn
// placement and archetype choice; pass a seeded source for deterministic
// replays and tests.
func New(worldW, worldH float64, cfg Config, rng *rand.Rand) *Director {
	return &Director{
		cfg:    cfg,
		worldW: worldW,
		worldH: worldH,
		rng:    rng,
		wave:   1,
	}
}

// Wave returns the current 1-based wave number.
func (d *Director) Wave() int {
	return d.wave
}

// Reset restores wave and accumulator state for a new session.
func (d *Director) Reset() {
	d.spawnAccum = 0
	d.waveAccum = 0
	d.wave = 1
}

// Update runs one director step: advances the wave clock, spawns enemies
// when the accumulator crosses the interval (overshoot is preserved by
// subtracting the interval rather than zeroing), drops occasional
// pickups, tops up the starfield, and steers live enemies. Spawn
// requests beyond the store cap are silently skipped that frame.
func (d *Director) Update(store *entity.Store, dt float64, ev *event.Queue) {
	d.waveAccum += dt
	for d.waveAccum >= d.cfg.WaveDuration {
		d.waveAccum -= d.cfg.WaveDuration
		d.wave++
		ev.Emit(event.Event{Type: event.WaveAdvanced, Points: d.wave})
	}

	d.spawnAccum += dt
	interval := d.cfg.Interval(d.wave)
	for d.spawnAccum >= interval {
		d.spawnAccum -= interval
		store.Spawn(d.newEnemy())
	}

	if d.rng.Float64() < d.cfg.PickupRate*dt {
		y := d.randY()
		store.Spawn(entity.NewPickup(d.worldW+3, y, 1, 250))
	}

	d.maintainStarfield(store)
	d.steerEnemies(store, dt, ev)
}

// randY picks a vertical spawn offset, padded away from the world edges.
func (d *Director) randY() float64 {
	const pad = 6.0
	return pad + d.rng.Float64()*(d.worldH-2*pad)
}

// newEnemy picks an archetype from the closed pattern set, scaling speed
// with the wave number.
func (d *Director) newEnemy() *entity.Entity {
	x := d.worldW + 3
	y := d.randY()
	speedScale := 1.0 + 0.06*float64(d.wave-1)

	switch d.rng.Intn(3) {
	case 0:
		b := entity.Behavior{
			Pattern: entity.PatternStraight,
			Speed:   22.0 * speedScale,
		}
		return entity.NewEnemy(x, y, b, 1, 100, 1, 0, entity.VisualEnemyDart)
	case 1:
		b := entity.Behavior{
			Pattern:   entity.PatternWeave,
			Speed:     16.0 * speedScale,
			Amplitude: 8.0,
			Frequency: 0.5,
			Phase:     d.rng.Float64() * 2 * math.Pi,
		}
		return entity.NewEnemy(x, y, b, 2, 150, 1, 2.4, entity.VisualEnemyWeaver)
	default:
		b := entity.Behavior{
			Pattern:  entity.PatternTrack,
			Speed:    13.0 * speedScale,
			TurnRate: 9.0,
		}
		return entity.NewEnemy(x, y, b, 3, 200, 2, 3.0, entity.VisualEnemyHunter)
	}
}

// maintainStarfield keeps the scrolling background populated. Stars are
// particles: no collision, culled at the left edge by the resolver.
func (d *Director) maintainStarfield(store *entity.Store) {
	stars := 0
	for _, e := range store.Entities() {
		if e.Alive && e.Kind == entity.KindParticle && e.Visual == entity.VisualStar {
			stars++
		}
	}
	for ; stars < d.cfg.StarTarget; stars++ {
		entity.SpawnStar(store, d.worldW, d.worldH, stars%2 == 0)
	}
}

// steerEnemies advances each enemy's age, updates its velocity from its
// behavior descriptor, and fires on its cadence. Pure per-enemy state:
// no enemy touches another entity here.
func (d *Director) steerEnemies(store *entity.Store, dt float64, ev *event.Queue) {
	var targetY float64
	if p := store.Player(); p != nil && p.Alive {
		targetY = p.Y
	} else {
		targetY = d.worldH / 2
	}

	for _, e := range store.Entities() {
		if !e.Alive || e.Kind != entity.KindEnemy {
			continue
		}
		e.Enemy.Age += dt
		e.Enemy.Behavior.Steer(e, targetY, e.Enemy.Age)

		if e.Enemy.FireInterval <= 0 {
			continue
		}
		e.Enemy.FireAccum += dt
		if e.Enemy.FireAccum < e.Enemy.FireInterval {
			continue
		}
		e.Enemy.FireAccum -= e.Enemy.FireInterval
		// Only fire once fully on screen.
		if e.X > d.worldW-2 {
			continue
		}
		shot := entity.NewProjectile(e.X-2, e.Y, -45.0, 0, entity.OwnerEnemy, 1, 4.0)
		if store.Spawn(shot) {
			ev.Emit(event.Event{Type: event.EnemyFired, X: e.X, Y: e.Y})
		}
	}
}
