// Package entity owns all live game entities and their per-frame state.
//
// Entities are a tagged variant: one struct with a Kind discriminator and
// kind-specific payloads, dispatched through fixed switches in each engine
// stage. The Store is the sole owner of entity lifetime.
package entity

// Kind discriminates entity variants.
type Kind uint8

const (
	KindPlayer Kind = iota
	KindEnemy
	KindProjectile
	KindParticle
	KindPickup
)

// String returns the kind name for logs and test failures.
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindProjectile:
		return "projectile"
	case KindParticle:
		return "particle"
	case KindPickup:
		return "pickup"
	default:
		return "unknown"
	}
}

// ShapeKind selects the bounding shape used for overlap tests.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeBox
)

// Shape is the collision bounds of an entity. Circle uses Radius;
// Box uses HalfW/HalfH extents around the entity center.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	HalfW  float64
	HalfH  float64
}

// Circle returns a circular shape with the given radius.
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: r}
}

// Box returns an axis-aligned box shape with the given half extents.
func Box(halfW, halfH float64) Shape {
	return Shape{Kind: ShapeBox, HalfW: halfW, HalfH: halfH}
}

// Owner tags who fired a projectile. Same-owner collision pairs are
// never tested.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Visual selects the sprite/animation a renderer uses for an entity.
// Pure render concern; no stage branches on it.
type Visual uint8

const (
	VisualShip Visual = iota
	VisualEnemyDart
	VisualEnemyWeaver
	VisualEnemyHunter
	VisualBolt
	VisualEnemyBolt
	VisualSpark
	VisualStar
	VisualRepair
)

// NoTTL marks an entity that never expires by time.
const NoTTL = -1.0

// Entity is the base shape shared by all variants. Position and velocity
// are in world units; health and damage are integers.
type Entity struct {
	Kind   Kind
	X, Y   float64
	VX, VY float64
	Shape  Shape
	Health int
	TTL    float64 // Seconds until expiry; NoTTL disables
	Visual Visual
	Alive  bool

	Player     PlayerState
	Enemy      EnemyState
	Projectile ProjectileState
	Particle   ParticleState
	Pickup     PickupState
}

// PlayerState is the payload for KindPlayer.
type PlayerState struct {
	FireCooldown float64 // Seconds until the next shot is allowed
	Invulnerable float64 // Post-hit grace period remaining, seconds
	Lives        int
	MaxHealth    int
}

// EnemyState is the payload for KindEnemy.
type EnemyState struct {
	Behavior      Behavior
	ScoreValue    int     // Awarded once on destruction
	ContactDamage int     // Damage dealt to the player on direct contact
	FireInterval  float64 // Seconds between shots; 0 never fires
	FireAccum     float64
	Age           float64 // Seconds alive, drives movement patterns
}

// ProjectileState is the payload for KindProjectile.
type ProjectileState struct {
	Owner  Owner
	Damage int
}

// ParticleState is the payload for KindParticle. Particles never take or
// deal damage; they expire by TTL only.
type ParticleState struct {
	MaxTTL float64 // Initial TTL, for fade calculation
}

// PickupState is the payload for KindPickup.
type PickupState struct {
	Heal       int // Health restored on collection
	ScoreValue int
}

// Damage subtracts dmg from health, clamping at zero. Returns true when
// the entity died from this damage. Dead entities take no further damage.
func (e *Entity) Damage(dmg int) (died bool) {
	if !e.Alive || dmg <= 0 {
		return false
	}
	e.Health -= dmg
	if e.Health <= 0 {
		e.Health = 0
		e.Alive = false
		return true
	}
	return false
}

// Kill marks the entity for removal without death effects (used for
// culling and expiry). The store drops it at the next compaction.
func (e *Entity) Kill() {
	e.Alive = false
}

// Collides reports whether the entity participates in collision at all.
func (e *Entity) Collides() bool {
	return e.Kind != KindParticle
}
