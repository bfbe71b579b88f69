// Package render issues draw operations from engine state. It is a pure
// consumer: it reads the entity store and session, never mutates them,
// and runs after all logic stages in the frame.
package render

import (
	"fmt"
	"io"

	"bolamiga/internal/draw"
	"bolamiga/internal/entity"
	"bolamiga/internal/loop"
)

// Native render resolution: the canvas never renders larger than the
// logical world at 1:1 (columns x half-block rows).
const (
	nativeCols = int(loop.WorldWidth)
	nativeRows = int(loop.WorldHeight / 2)
)

// Coordinator renders engine state to a terminal drawing surface.
type Coordinator struct {
	out      *draw.ChunkWriter
	canvas   *draw.Canvas
	sizeFunc draw.TermSizeFunc
}

// New creates a coordinator writing to w, with terminal dimensions from
// sizeFunc. Scanlines enables the retro CRT overlay.
func New(w io.Writer, sizeFunc draw.TermSizeFunc, scanlines bool) *Coordinator {
	c := &Coordinator{
		out:      draw.NewChunkWriter(w, 0, 0),
		canvas:   draw.NewCanvas(nativeCols, nativeRows, loop.WorldWidth, loop.WorldHeight),
		sizeFunc: sizeFunc,
	}
	c.canvas.Scanlines = scanlines
	return c
}

// Ready reports whether the drawing surface is usable.
func (c *Coordinator) Ready() bool {
	w, h, err := c.sizeFunc()
	return err == nil && w >= 20 && h >= 10
}

// Frame draws one frame. A sizing or write failure is returned to the
// loop, which treats it as non-fatal.
func (c *Coordinator) Frame(g *loop.Game) error {
	termW, termH, err := c.sizeFunc()
	if err != nil {
		return fmt.Errorf("render: terminal size: %w", err)
	}

	// Render at native resolution when the terminal allows, centered;
	// otherwise scale down to fit.
	renderW := min(termW, nativeCols)
	renderH := min(termH, nativeRows)
	c.canvas.Resize(renderW, renderH)
	c.canvas.SetOffset((termW-renderW)/2, (termH-renderH)/2)
	c.out.SetOffset(c.canvas.OffsetCol(), c.canvas.OffsetRow())

	draw.ClearScreen(c.out)
	c.canvas.Clear()

	sess := g.Session()
	switch sess.State {
	case loop.StatePlaying, loop.StatePaused:
		c.drawEntities(g)
	}
	c.canvas.Render(c.out)

	switch sess.State {
	case loop.StateLoading:
		c.drawLoading()
	case loop.StateMenu:
		c.drawMenu(g)
	case loop.StatePlaying:
		c.drawHUD(g)
	case loop.StatePaused:
		c.drawHUD(g)
		c.drawPauseOverlay()
	case loop.StateGameOver:
		c.drawGameOver(g)
	}

	return c.out.Flush()
}

// drawEntities renders every live entity through a fixed kind switch.
func (c *Coordinator) drawEntities(g *loop.Game) {
	for _, e := range g.Store().Entities() {
		if !e.Alive {
			continue
		}
		switch e.Kind {
		case entity.KindPlayer:
			c.drawPlayer(e)
		case entity.KindEnemy:
			c.drawEnemy(e)
		case entity.KindProjectile:
			c.drawProjectile(e)
		case entity.KindParticle:
			c.drawParticle(e)
		case entity.KindPickup:
			c.drawPickup(e)
		}
	}
}

func (c *Coordinator) drawPlayer(e *entity.Entity) {
	// Blink while the post-hit grace period runs.
	if !blinkVisible(e.Player.Invulnerable, loop.PlayerBlinkHz) {
		return
	}
	// Ship: triangle pointing right, widened for terminal cell aspect.
	const aspect = 2.0
	s := e.Shape.Radius
	pts := c.canvas.BorrowPoints(3)
	pts[0] = draw.Point{X: e.X + s*aspect, Y: e.Y}
	pts[1] = draw.Point{X: e.X - s*aspect, Y: e.Y - s}
	pts[2] = draw.Point{X: e.X - s*aspect, Y: e.Y + s}
	c.canvas.DrawPolygon(pts, true)
}

func (c *Coordinator) drawEnemy(e *entity.Entity) {
	const aspect = 2.0
	s := e.Shape.Radius
	switch e.Visual {
	case entity.VisualEnemyDart:
		pts := c.canvas.BorrowPoints(3)
		pts[0] = draw.Point{X: e.X - s*aspect, Y: e.Y}
		pts[1] = draw.Point{X: e.X + s*aspect, Y: e.Y - s}
		pts[2] = draw.Point{X: e.X + s*aspect, Y: e.Y + s}
		c.canvas.DrawPolygon(pts, true)
	case entity.VisualEnemyWeaver:
		pts := c.canvas.BorrowPoints(4)
		pts[0] = draw.Point{X: e.X - s*aspect, Y: e.Y}
		pts[1] = draw.Point{X: e.X, Y: e.Y - s}
		pts[2] = draw.Point{X: e.X + s*aspect, Y: e.Y}
		pts[3] = draw.Point{X: e.X, Y: e.Y + s}
		c.canvas.DrawPolygon(pts, true)
	default: // VisualEnemyHunter
		pts := c.canvas.BorrowPoints(5)
		pts[0] = draw.Point{X: e.X - s*aspect, Y: e.Y}
		pts[1] = draw.Point{X: e.X, Y: e.Y - s}
		pts[2] = draw.Point{X: e.X + s*aspect, Y: e.Y - s*0.4}
		pts[3] = draw.Point{X: e.X + s*aspect, Y: e.Y + s*0.4}
		pts[4] = draw.Point{X: e.X, Y: e.Y + s}
		c.canvas.DrawPolygon(pts, false)
	}
}

func (c *Coordinator) drawProjectile(e *entity.Entity) {
	c.canvas.SetFloat(e.X, e.Y)
	// Short tail opposite the travel direction.
	if e.VX > 0 {
		c.canvas.SetFloat(e.X-1, e.Y)
	} else {
		c.canvas.SetFloat(e.X+1, e.Y)
	}
}

func (c *Coordinator) drawParticle(e *entity.Entity) {
	// Sparks fade out over their last quarter of life.
	if e.Visual == entity.VisualSpark && e.Particle.MaxTTL > 0 && e.TTL/e.Particle.MaxTTL < 0.25 {
		return
	}
	c.canvas.SetFloat(e.X, e.Y)
}

func (c *Coordinator) drawPickup(e *entity.Entity) {
	c.canvas.DrawRect(e.X, e.Y, e.Shape.HalfW*2, e.Shape.HalfH, false)
	c.canvas.SetFloat(e.X, e.Y)
}

// blinkVisible reports whether a blinking object renders this frame.
// Always true once the remaining time hits zero.
func blinkVisible(remaining, hz float64) bool {
	if remaining <= 0 {
		return true
	}
	return int(remaining*hz)%2 != 0
}
