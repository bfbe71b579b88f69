package loop

// Game tuning constants. All gameplay parameters are centralized here.

// World
const (
	// Logical world dimensions in world units. Height is in sub-pixels,
	// so 96 units render as 48 terminal rows at native scale.
	WorldWidth  = 160.0
	WorldHeight = 96.0

	// MaxEntities caps the live-entity count; spawn requests past the
	// cap are silently skipped.
	MaxEntities = 256
)

// Player
const (
	PlayerStartX = 24.0
	PlayerStartY = WorldHeight / 2

	PlayerHealth = 3
	InitialLives = 3
	PlayerSpeed  = 48.0 // World units per second

	FireCooldown     = 0.18 // Seconds between shots
	ProjectileSpeed  = 75.0
	ProjectileDamage = 1
	ProjectileTTL    = 3.0

	PlayerBlinkHz = 10.0 // Invulnerability blink frequency
)

// Loading
const (
	// AudioInitAttempts bounds speaker-init retries while Loading; after
	// that the session continues in silent mode.
	AudioInitAttempts = 30
)

// Frame loop
const (
	TargetFPS = 60

	// MaxRenderFailures ends the session when the output is gone for
	// this many consecutive frames (e.g. a dropped SSH connection).
	// Transient render errors never halt the logic loop.
	MaxRenderFailures = 120
)
