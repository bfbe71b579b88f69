// Package loop owns the game state machine and the fixed-cadence frame
// loop driving all engine stages.
package loop

import (
	"math/rand"
	"time"

	"bolamiga/internal/audio"
	"bolamiga/internal/director"
	"bolamiga/internal/entity"
	"bolamiga/internal/event"
	"bolamiga/internal/input"
	"bolamiga/internal/physics"
	"bolamiga/internal/score"
)

// Game is the engine core. Advance is the single entry point per frame,
// callable from any host scheduling mechanism: the terminal loop, an SSH
// session, or a test harness. Time deltas come from the caller; the
// engine never samples a clock itself.
type Game struct {
	store    *entity.Store
	resolver *physics.Resolver
	director *director.Director
	tracker  *score.Tracker
	synth    *audio.Synth
	scores   *score.HighScoreClient

	events  event.Queue
	session Session

	running       bool
	renderReady   bool
	audioAttempts int
}

// NewGame wires the engine stages together. rng seeds the director;
// scores may be nil-equivalent (empty base URL) when no web collaborator
// is configured.
func NewGame(synth *audio.Synth, scores *score.HighScoreClient, rng *rand.Rand) *Game {
	return &Game{
		store:    entity.NewStore(MaxEntities),
		resolver: physics.NewResolver(WorldWidth, WorldHeight, physics.DefaultParams()),
		director: director.New(WorldWidth, WorldHeight, director.DefaultConfig(), rng),
		tracker:  &score.Tracker{},
		synth:    synth,
		scores:   scores,
		session:  Session{State: StateLoading, Wave: 1},
		running:  true,
	}
}

// Running reports whether the session should keep advancing frames.
func (g *Game) Running() bool { return g.running }

// Session returns the current session state. Read-only for callers.
func (g *Game) Session() Session { return g.session }

// Store exposes the entity store for the render coordinator's read pass.
func (g *Game) Store() *entity.Store { return g.store }

// Score returns the running session score.
func (g *Game) Score() int { return g.tracker.Current() }

// FinalScore returns the score latched at the last GameOver.
func (g *Game) FinalScore() int { return g.tracker.Final() }

// Lives returns the player's remaining lives, or 0 with no player.
func (g *Game) Lives() int {
	if p := g.store.Player(); p != nil {
		return p.Player.Lives
	}
	return 0
}

// HighScores returns the last fetched high-score list (may be empty).
func (g *Game) HighScores() []score.HighScore {
	if g.scores == nil {
		return nil
	}
	return g.scores.Scores()
}

// AudioSilent reports whether the synthesizer fell back to silent mode.
func (g *Game) AudioSilent() bool { return g.synth.Silent() }

// SetRenderReady records that the drawing surface is available; the
// Loading state waits for it.
func (g *Game) SetRenderReady() { g.renderReady = true }

// Advance runs one frame of engine logic: Input → (if Playing) AI/Spawn →
// Physics/Collision → Score → event fan-out. The per-frame delta is
// capped so a stalled host frame cannot cause a simulation jump. Render
// happens outside, after Advance returns.
func (g *Game) Advance(delta time.Duration, c input.Controls) {
	if c.Quit {
		g.running = false
		return
	}

	dt := delta.Seconds()
	if dt < 0 {
		dt = 0
	}
	if dt > physics.MaxDelta {
		dt = physics.MaxDelta
	}

	g.events.Reset()

	switch g.session.State {
	case StateLoading:
		g.stepLoading()
	case StateMenu:
		if c.Confirm || c.Fire {
			g.startPlaying()
		}
	case StatePlaying:
		if c.Pause {
			g.session.State = StatePaused
			return
		}
		g.stepPlaying(dt, c)
	case StatePaused:
		// Logic stages are frozen; input and render stay live so the
		// overlay remains responsive.
		if c.Pause {
			g.session.State = StatePlaying
		}
	case StateGameOver:
		if c.Confirm || c.Fire {
			g.toMenu()
		}
	}
}

// stepLoading waits for the drawing surface and the audio sink. A missing
// audio device is retried a bounded number of frames, then the session
// proceeds in silent mode; it never crashes the loop.
func (g *Game) stepLoading() {
	if !g.renderReady {
		return
	}
	if !g.synth.Ready() {
		if g.synth.Start() != nil {
			g.audioAttempts++
			if g.audioAttempts < AudioInitAttempts {
				return
			}
			g.synth.StartSilent()
		}
	}
	g.toMenu()
}

// toMenu resets the session and refreshes the high-score list.
func (g *Game) toMenu() {
	g.store.Reset()
	g.tracker.Reset()
	g.director.Reset()
	g.session.reset()
	g.session.State = StateMenu
	if g.scores != nil {
		g.scores.FetchAsync()
	}
}

// startPlaying clears the entity store and spawns the player at the
// fixed start position.
func (g *Game) startPlaying() {
	g.store.Reset()
	g.tracker.Reset()
	g.director.Reset()
	g.session.reset()
	g.store.SpawnPlayer(PlayerStartX, PlayerStartY, PlayerHealth, InitialLives)
	g.session.State = StatePlaying
}

// stepPlaying runs the Playing-only stages in strict order.
func (g *Game) stepPlaying(dt float64, c input.Controls) {
	g.controlPlayer(dt, c)

	g.director.Update(g.store, dt, &g.events)
	g.store.Flush()

	g.resolver.Advance(g.store, dt, &g.events)
	g.store.Flush() // Death-burst particles join before render reads.

	g.tracker.Apply(g.events.Events())
	g.session.Elapsed += dt
	g.session.Wave = g.director.Wave()

	// End-of-stage check: the machine owns the transition; the resolver
	// only records health/lives outcomes.
	if p := g.store.Player(); p == nil || (!p.Alive && p.Player.Lives <= 0) {
		g.tracker.Latch()
		g.events.Emit(event.Event{Type: event.GameOver})
		g.session.State = StateGameOver
	}

	g.playEffects()
	g.store.Compact()
}

// controlPlayer applies held movement to the player's velocity and
// handles firing. The weapon cooldown, not raw key-repeat, rate-limits
// shots.
func (g *Game) controlPlayer(dt float64, c input.Controls) {
	p := g.store.Player()
	if p == nil || !p.Alive {
		return
	}

	var vx, vy float64
	if c.Left {
		vx -= PlayerSpeed
	}
	if c.Right {
		vx += PlayerSpeed
	}
	if c.Up {
		vy -= PlayerSpeed
	}
	if c.Down {
		vy += PlayerSpeed
	}
	p.VX, p.VY = vx, vy

	if vx != 0 || vy != 0 {
		entity.SpawnExhaust(g.store, p.X-3, p.Y)
	}

	if p.Player.FireCooldown > 0 {
		p.Player.FireCooldown -= dt
	}
	if p.Player.Invulnerable > 0 {
		p.Player.Invulnerable -= dt
	}

	if c.Fire && p.Player.FireCooldown <= 0 {
		p.Player.FireCooldown = FireCooldown
		shot := entity.NewProjectile(p.X+3, p.Y, ProjectileSpeed, 0, entity.OwnerPlayer, ProjectileDamage, ProjectileTTL)
		if g.store.Spawn(shot) {
			g.events.Emit(event.Event{Type: event.PlayerFired, X: p.X, Y: p.Y})
		}
	}
}

// playEffects fans frame events out to the synthesizer. Fire-and-forget;
// a full audio queue drops effects rather than stalling.
func (g *Game) playEffects() {
	for _, e := range g.events.Events() {
		switch e.Type {
		case event.PlayerFired, event.EnemyFired:
			g.synth.Play(audio.EffectFire)
		case event.EnemyKilled, event.PlayerKilled:
			g.synth.Play(audio.EffectExplosion)
		case event.PlayerHit:
			g.synth.Play(audio.EffectHit)
		case event.PickupCollected:
			g.synth.Play(audio.EffectPickup)
		case event.GameOver:
			g.synth.Play(audio.EffectGameOver)
		}
	}
}
