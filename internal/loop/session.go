package loop

// State is the game state machine's current phase.
type State int

const (
	StateLoading State = iota
	StateMenu
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the state name for logs and test failures.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session is the per-game-attempt state: current machine state, simulated
// elapsed time, and wave counter. Created when the machine enters Loading
// and reset on the transition back to Menu. Score lives in the Tracker.
type Session struct {
	State   State
	Elapsed float64 // Simulated seconds while Playing; frozen in Paused
	Wave    int
}

// reset restores per-attempt values, keeping the machine state.
func (s *Session) reset() {
	s.Elapsed = 0
	s.Wave = 1
}
