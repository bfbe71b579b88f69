package loop

import (
	"log"
	"time"

	"bolamiga/internal/input"
)

const targetFrameTime = time.Second / TargetFPS

// Renderer draws one frame from engine state. Implementations are pure
// consumers: they read, never mutate.
type Renderer interface {
	// Frame renders the current state. Errors are non-fatal to game
	// logic; the loop keeps advancing frames.
	Frame(g *Game) error
	// Ready reports whether the drawing surface is usable.
	Ready() bool
}

// Run drives the engine at the target frame rate: Input → Advance →
// Render, with monotonic per-frame deltas. Returns when the game stops
// or the output has been gone for MaxRenderFailures consecutive frames.
func Run(g *Game, r Renderer, m *input.Mapper) error {
	lastTime := time.Now()
	renderFailures := 0
	var lastRenderErr error

	for g.Running() {
		frameStart := time.Now()
		delta := frameStart.Sub(lastTime)
		lastTime = frameStart

		controls := m.Poll()

		if r.Ready() {
			g.SetRenderReady()
		}

		g.Advance(delta, controls)

		if err := r.Frame(g); err != nil {
			renderFailures++
			lastRenderErr = err
			if renderFailures >= MaxRenderFailures {
				log.Printf("render output gone, ending session: %v", err)
				return lastRenderErr
			}
		} else {
			renderFailures = 0
		}

		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}
	return nil
}
