package entity

import "math"

// Pattern identifies an enemy movement behavior. The set is closed;
// parameters come from the Behavior descriptor.
type Pattern uint8

const (
	// PatternStraight flies a constant leftward line.
	PatternStraight Pattern = iota
	// PatternWeave flies leftward on a sinusoidal vertical path.
	PatternWeave
	// PatternTrack flies leftward while drifting toward the player's
	// vertical position.
	PatternTrack
)

// Behavior parameterizes an enemy's movement pattern. Steering only
// writes the enemy's own velocity; it never touches other entities.
type Behavior struct {
	Pattern   Pattern
	Speed     float64 // Leftward speed, world units per second
	Amplitude float64 // Weave amplitude, world units
	Frequency float64 // Weave frequency, Hz
	Phase     float64 // Weave phase offset, radians
	TurnRate  float64 // Max vertical speed when tracking, units per second
}

// Steer updates the enemy's velocity from its descriptor. targetY is the
// player's vertical position (only PatternTrack uses it); age is the
// enemy's time alive in seconds.
func (b Behavior) Steer(e *Entity, targetY, age float64) {
	e.VX = -b.Speed
	switch b.Pattern {
	case PatternStraight:
		e.VY = 0
	case PatternWeave:
		// Velocity is the derivative of y = A*sin(2πft + φ), so the
		// position integrates to a clean sine regardless of frame rate.
		omega := 2 * math.Pi * b.Frequency
		e.VY = b.Amplitude * omega * math.Cos(omega*age+b.Phase)
	case PatternTrack:
		dy := targetY - e.Y
		vy := dy * 1.5
		if vy > b.TurnRate {
			vy = b.TurnRate
		} else if vy < -b.TurnRate {
			vy = -b.TurnRate
		}
		e.VY = vy
	}
}
