package physics

import (
	"bolamiga/internal/entity"
	"bolamiga/internal/event"
)

// MaxDelta caps the per-frame elapsed time so a stalled frame cannot
// cause a large simulation jump.
const MaxDelta = 1.0 / 30.0

// Params tunes the resolver's destruction side effects.
type Params struct {
	CullMargin        float64 // World units past the edge before culling
	InvulnGrace       float64 // Seconds of post-hit invulnerability
	ExplosionCount    int     // Particles per destruction burst
	ExplosionSpeed    float64
	ExplosionLifetime float64
}

// DefaultParams returns the tuning used by the game loop.
func DefaultParams() Params {
	return Params{
		CullMargin:        12.0,
		InvulnGrace:       2.0,
		ExplosionCount:    14,
		ExplosionSpeed:    22.0,
		ExplosionLifetime: 0.8,
	}
}

// Resolver advances entity positions and adjudicates overlaps between
// eligible entity categories. It is the only component that mutates
// position, health, and removal state; its destruction marking takes
// precedence over any other write in the frame.
type Resolver struct {
	worldW, worldH float64
	params         Params
	grid           *SpatialGrid

	// Reused per frame to avoid allocations in the hot path.
	enemies    []*entity.Entity
	playerShot []*entity.Entity
	enemyShot  []*entity.Entity
	pickups    []*entity.Entity

	simulated float64
}

// NewResolver creates a resolver for the given world bounds.
func NewResolver(worldW, worldH float64, params Params) *Resolver {
	// Cell size must exceed the largest pairwise reach; the widest pair
	// is player circle + enemy circle, comfortably under 8 units.
	return &Resolver{
		worldW: worldW,
		worldH: worldH,
		params: params,
		grid:   NewSpatialGrid(worldW, worldH, 8.0),
	}
}

// Simulated returns the cumulative simulated time advanced so far, in
// seconds. Equals the sum of capped non-negative deltas passed to Advance.
func (r *Resolver) Simulated() float64 {
	return r.simulated
}

// Advance runs one physics step: caps dt, expires TTLs, integrates
// positions, culls out-of-bounds entities without death effects, then
// resolves eligible collision pairs. Destruction events (particle bursts,
// score credits, player hits) are recorded on ev. Returns the capped dt
// actually simulated.
func (r *Resolver) Advance(store *entity.Store, dt float64, ev *event.Queue) float64 {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxDelta {
		dt = MaxDelta
	}
	r.simulated += dt

	r.integrate(store, dt)
	r.cull(store)
	r.collide(store, ev)
	return dt
}

// integrate expires TTLs and advances every live entity by velocity×dt.
// The player is clamped to the world bounds rather than culled.
func (r *Resolver) integrate(store *entity.Store, dt float64) {
	for _, e := range store.Entities() {
		if !e.Alive {
			continue
		}
		if e.TTL >= 0 {
			e.TTL -= dt
			if e.TTL <= 0 {
				e.Kill()
				continue
			}
		}
		e.X += e.VX * dt
		e.Y += e.VY * dt

		if e.Kind == entity.KindPlayer {
			r.clampToWorld(e)
		}
	}
}

func (r *Resolver) clampToWorld(e *entity.Entity) {
	reach := MaxReach(e.Shape)
	if e.X < reach {
		e.X = reach
	} else if e.X > r.worldW-reach {
		e.X = r.worldW - reach
	}
	if e.Y < reach {
		e.Y = reach
	} else if e.Y > r.worldH-reach {
		e.Y = r.worldH - reach
	}
}

// cull removes entities that left the logical world bounds. Culling is
// not destruction: no score is awarded and no particles spawn.
func (r *Resolver) cull(store *entity.Store) {
	m := r.params.CullMargin
	for _, e := range store.Entities() {
		if !e.Alive || e.Kind == entity.KindPlayer {
			continue
		}
		if e.X < -m || e.X > r.worldW+m || e.Y < -m || e.Y > r.worldH+m {
			e.Kill()
		}
	}
}

// collide performs pairwise overlap tests between eligible categories:
// player-projectiles vs enemies, enemy-projectiles vs player, player vs
// enemies, player vs pickups. Particles are never tested. An entity
// marked dead earlier in the frame is excluded from all further tests.
func (r *Resolver) collide(store *entity.Store, ev *event.Queue) {
	r.collectCollidables(store)

	r.grid.Clear()
	for i, e := range r.enemies {
		r.grid.Insert(e.X, e.Y, i)
	}

	r.playerShotsVsEnemies(store, ev)

	player := store.Player()
	if player == nil || !player.Alive {
		return
	}

	r.enemyShotsVsPlayer(store, player, ev)
	if player.Alive {
		r.playerVsEnemies(store, player, ev)
	}
	if player.Alive {
		r.playerVsPickups(player, ev)
	}
}

// collectCollidables buckets live entities by collision category,
// reusing the resolver's slices.
func (r *Resolver) collectCollidables(store *entity.Store) {
	r.enemies = r.enemies[:0]
	r.playerShot = r.playerShot[:0]
	r.enemyShot = r.enemyShot[:0]
	r.pickups = r.pickups[:0]

	for _, e := range store.Entities() {
		if !e.Alive || !e.Collides() {
			continue
		}
		switch e.Kind {
		case entity.KindEnemy:
			r.enemies = append(r.enemies, e)
		case entity.KindProjectile:
			if e.Projectile.Owner == entity.OwnerPlayer {
				r.playerShot = append(r.playerShot, e)
			} else {
				r.enemyShot = append(r.enemyShot, e)
			}
		case entity.KindPickup:
			r.pickups = append(r.pickups, e)
		}
	}
}

func (r *Resolver) playerShotsVsEnemies(store *entity.Store, ev *event.Queue) {
	for _, p := range r.playerShot {
		if !p.Alive {
			continue
		}
		r.grid.QueryAround(p.X, p.Y, func(i int) bool {
			e := r.enemies[i]
			if !e.Alive || !Overlap(p, e) {
				return false
			}
			// A projectile is destroyed by any hit it deals.
			p.Kill()
			if e.Damage(p.Projectile.Damage) {
				r.destroyEnemy(store, e, ev)
			}
			return true
		})
	}
}

func (r *Resolver) enemyShotsVsPlayer(store *entity.Store, player *entity.Entity, ev *event.Queue) {
	for _, p := range r.enemyShot {
		if !player.Alive {
			return
		}
		if !p.Alive || !Overlap(p, player) {
			continue
		}
		p.Kill()
		r.hitPlayer(store, player, p.Projectile.Damage, ev)
	}
}

func (r *Resolver) playerVsEnemies(store *entity.Store, player *entity.Entity, ev *event.Queue) {
	for _, e := range r.enemies {
		if !player.Alive {
			return
		}
		if !e.Alive || !Overlap(player, e) {
			continue
		}
		// Both sides take the contact damage of the ramming pair.
		dmg := e.Enemy.ContactDamage
		if e.Damage(dmg) {
			r.destroyEnemy(store, e, ev)
		}
		r.hitPlayer(store, player, dmg, ev)
	}
}

func (r *Resolver) playerVsPickups(player *entity.Entity, ev *event.Queue) {
	for _, pk := range r.pickups {
		if !pk.Alive {
			continue
		}
		if !Overlap(player, pk) {
			continue
		}
		pk.Kill()
		player.Health += pk.Pickup.Heal
		if player.Health > player.Player.MaxHealth {
			player.Health = player.Player.MaxHealth
		}
		ev.Emit(event.Event{Type: event.PickupCollected, Points: pk.Pickup.ScoreValue, X: pk.X, Y: pk.Y})
	}
}

// destroyEnemy spawns the death burst and credits the enemy's declared
// score value exactly once (the entity is already dead here, so a second
// same-frame hit never reaches this).
func (r *Resolver) destroyEnemy(store *entity.Store, e *entity.Entity, ev *event.Queue) {
	entity.SpawnExplosion(store, e.X, e.Y, r.params.ExplosionCount, r.params.ExplosionSpeed, r.params.ExplosionLifetime)
	ev.Emit(event.Event{Type: event.EnemyKilled, Points: e.Enemy.ScoreValue, X: e.X, Y: e.Y})
}

// hitPlayer applies damage to the player unless the post-hit grace
// period is active. A fatal hit decrements lives; with lives remaining
// the ship is restored in place with full health and fresh grace.
func (r *Resolver) hitPlayer(store *entity.Store, player *entity.Entity, dmg int, ev *event.Queue) {
	if player.Player.Invulnerable > 0 {
		return
	}
	if !player.Damage(dmg) {
		player.Player.Invulnerable = r.params.InvulnGrace
		ev.Emit(event.Event{Type: event.PlayerHit, X: player.X, Y: player.Y})
		return
	}

	entity.SpawnExplosion(store, player.X, player.Y, r.params.ExplosionCount*2, r.params.ExplosionSpeed*1.4, r.params.ExplosionLifetime)
	player.Player.Lives--
	ev.Emit(event.Event{Type: event.PlayerKilled, X: player.X, Y: player.Y})

	if player.Player.Lives > 0 {
		player.Alive = true
		player.Health = player.Player.MaxHealth
		player.Player.Invulnerable = r.params.InvulnGrace
	}
}
