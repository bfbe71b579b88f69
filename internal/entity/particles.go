package entity

import (
	"math"
	"math/rand"
)

// SpawnExplosion queues a circular particle burst at (x, y). Requests
// beyond the store cap are dropped, so a busy frame loses sparks rather
// than stalling.
func SpawnExplosion(s *Store, x, y float64, count int, speed, lifetime float64) {
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rand.Float64())
		life := lifetime * (0.5 + rand.Float64()*0.5)
		p := NewParticle(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, VisualSpark)
		if !s.Spawn(p) {
			return
		}
	}
}

// SpawnExhaust queues a short engine-trail particle behind the ship.
func SpawnExhaust(s *Store, x, y float64) {
	vx := -(12.0 + rand.Float64()*6.0)
	vy := (rand.Float64() - 0.5) * 4.0
	life := 0.1 + rand.Float64()*0.15
	s.Spawn(NewParticle(x, y, vx, vy, life, VisualSpark))
}

// SpawnStar queues a background starfield particle scrolling right to
// left across the given world bounds. Stars are long-lived; the resolver
// culls them once they leave the left edge.
func SpawnStar(s *Store, worldW, worldH float64, atEdge bool) {
	x := rand.Float64() * worldW
	if atEdge {
		x = worldW
	}
	y := rand.Float64() * worldH
	speed := 4.0 + rand.Float64()*10.0
	s.Spawn(NewParticle(x, y, -speed, 0, NoTTL, VisualStar))
}
