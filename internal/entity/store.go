package entity

import "sync"

// entityPool recycles Entity structs to keep particle bursts and bullet
// spam allocation-free. Safe because the Store is the sole owner of
// entity lifetime: nothing retains an entity past its removal frame.
var entityPool = sync.Pool{
	New: func() any {
		return &Entity{}
	},
}

func acquire() *Entity {
	e := entityPool.Get().(*Entity)
	*e = Entity{Alive: true, TTL: NoTTL}
	return e
}

// Store owns all live entities. Insertion goes through a deferred spawn
// queue so stages iterating the live slice never observe mid-frame
// additions; Flush applies the queue between stages.
type Store struct {
	entities []*Entity
	pending  []*Entity
	maxLive  int
	player   *Entity
}

// NewStore creates a store with the given live-entity cap. Spawn requests
// beyond the cap are silently skipped.
func NewStore(maxLive int) *Store {
	return &Store{maxLive: maxLive}
}

// Entities returns the live slice for in-frame iteration. Callers must
// not retain it across frames.
func (s *Store) Entities() []*Entity {
	return s.entities
}

// Len returns the number of live entities (spawn queue excluded).
func (s *Store) Len() int {
	return len(s.entities)
}

// CountKind returns how many live entities of kind k exist.
func (s *Store) CountKind(k Kind) int {
	n := 0
	for _, e := range s.entities {
		if e.Kind == k && e.Alive {
			n++
		}
	}
	return n
}

// Player returns the player entity, or nil outside the Playing state.
func (s *Store) Player() *Entity {
	return s.player
}

// Spawn queues an entity for insertion after the current stage. Returns
// false when the live-entity cap is reached; the request is dropped, not
// queued (bounds memory and CPU under load).
func (s *Store) Spawn(e *Entity) bool {
	if len(s.entities)+len(s.pending) >= s.maxLive {
		entityPool.Put(e)
		return false
	}
	s.pending = append(s.pending, e)
	return true
}

// Flush moves queued spawns into the live set.
func (s *Store) Flush() {
	s.entities = append(s.entities, s.pending...)
	s.pending = s.pending[:0]
}

// Compact removes every dead entity from the live set, returning them to
// the pool. Must run once per frame after all logic stages so that no
// dead entity is iterated on the following frame.
func (s *Store) Compact() {
	kept := s.entities[:0]
	for _, e := range s.entities {
		if e.Alive {
			kept = append(kept, e)
			continue
		}
		if e == s.player {
			s.player = nil
		}
		entityPool.Put(e)
	}
	// Zero the tail so released entities are not reachable from the slice.
	for i := len(kept); i < len(s.entities); i++ {
		s.entities[i] = nil
	}
	s.entities = kept
}

// Reset drops all entities, live and pending. Used on transitions into
// Menu and Playing.
func (s *Store) Reset() {
	for _, e := range s.entities {
		entityPool.Put(e)
	}
	for _, e := range s.pending {
		entityPool.Put(e)
	}
	s.entities = s.entities[:0]
	s.pending = s.pending[:0]
	s.player = nil
}

// SpawnPlayer inserts the singleton player immediately (not queued) at
// the given position. Any existing player is removed first so exactly
// one player exists while Playing.
func (s *Store) SpawnPlayer(x, y float64, health, lives int) *Entity {
	if s.player != nil {
		s.player.Kill()
		s.Compact()
	}
	p := acquire()
	p.Kind = KindPlayer
	p.X, p.Y = x, y
	p.Shape = Circle(2.0)
	p.Health = health
	p.Visual = VisualShip
	p.Player = PlayerState{Lives: lives, MaxHealth: health}
	s.player = p
	s.entities = append(s.entities, p)
	return p
}

// NewEnemy builds an enemy entity with its behavior descriptor and score
// value. Caller spawns it through the store.
func NewEnemy(x, y float64, b Behavior, health, score, contactDamage int, fireInterval float64, visual Visual) *Entity {
	e := acquire()
	e.Kind = KindEnemy
	e.X, e.Y = x, y
	e.Shape = Circle(2.5)
	e.Health = health
	e.Visual = visual
	e.Enemy = EnemyState{
		Behavior:      b,
		ScoreValue:    score,
		ContactDamage: contactDamage,
		FireInterval:  fireInterval,
	}
	return e
}

// NewProjectile builds a projectile moving at (vx, vy) with an owner tag
// and integer damage.
func NewProjectile(x, y, vx, vy float64, owner Owner, damage int, ttl float64) *Entity {
	e := acquire()
	e.Kind = KindProjectile
	e.X, e.Y = x, y
	e.VX, e.VY = vx, vy
	e.Shape = Circle(0.5)
	e.Health = 1
	e.TTL = ttl
	if owner == OwnerPlayer {
		e.Visual = VisualBolt
	} else {
		e.Visual = VisualEnemyBolt
	}
	e.Projectile = ProjectileState{Owner: owner, Damage: damage}
	return e
}

// NewParticle builds a visual-only particle. Particles never participate
// in collision.
func NewParticle(x, y, vx, vy, ttl float64, visual Visual) *Entity {
	e := acquire()
	e.Kind = KindParticle
	e.X, e.Y = x, y
	e.VX, e.VY = vx, vy
	e.Health = 0
	e.Alive = true
	e.TTL = ttl
	e.Visual = visual
	e.Particle = ParticleState{MaxTTL: ttl}
	return e
}

// NewPickup builds a slow-drifting repair pickup.
func NewPickup(x, y float64, heal, score int) *Entity {
	e := acquire()
	e.Kind = KindPickup
	e.X, e.Y = x, y
	e.VX = -8.0
	e.Shape = Box(1.5, 1.5)
	e.Health = 1
	e.Visual = VisualRepair
	e.Pickup = PickupState{Heal: heal, ScoreValue: score}
	return e
}
