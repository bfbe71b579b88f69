package render

import (
	"fmt"

	"bolamiga/internal/loop"
)

// Text overlays are placed in canvas cell coordinates; the ChunkWriter
// applies the centering offset.

func (c *Coordinator) centerText(row int, s string) {
	col := c.canvas.TerminalWidth()/2 - len(s)/2
	if col < 1 {
		col = 1
	}
	c.out.WriteAt(col, row, s)
}

func (c *Coordinator) drawLoading() {
	c.centerText(c.canvas.TerminalHeight()/2, "LOADING...")
}

func (c *Coordinator) drawMenu(g *loop.Game) {
	midRow := c.canvas.TerminalHeight() / 2

	c.centerText(midRow-8, "B O L A M I G A")
	c.centerText(midRow-6, "a retro blaster")
	c.centerText(midRow-3, "Press ENTER to start")
	c.centerText(midRow-1, "WASD/arrows move - SPACE fire - P pause - Q quit")

	scores := g.HighScores()
	if len(scores) == 0 {
		c.centerText(midRow+2, "no high scores available")
	} else {
		c.centerText(midRow+2, "- HIGH SCORES -")
		for i, hs := range scores {
			if i >= 5 {
				break
			}
			c.centerText(midRow+3+i, fmt.Sprintf("%-4s %8d", hs.Name, hs.Score))
		}
	}

	if g.AudioSilent() {
		c.centerText(c.canvas.TerminalHeight()-1, "[no audio device - running silent]")
	}
}

func (c *Coordinator) drawHUD(g *loop.Game) {
	sess := g.Session()
	c.out.WriteAt(2, 1, fmt.Sprintf("Score: %d", g.Score()))
	c.centerText(1, fmt.Sprintf("Wave %d", sess.Wave))

	lives := fmt.Sprintf("Lives: %d", g.Lives())
	col := c.canvas.TerminalWidth() - len(lives) - 1
	if col < 1 {
		col = 1
	}
	c.out.WriteAt(col, 1, lives)
}

func (c *Coordinator) drawPauseOverlay() {
	midRow := c.canvas.TerminalHeight() / 2
	c.centerText(midRow-1, "P A U S E D")
	c.centerText(midRow+1, "Press P to resume")
}

func (c *Coordinator) drawGameOver(g *loop.Game) {
	midRow := c.canvas.TerminalHeight() / 2
	c.centerText(midRow-3, "G A M E   O V E R")
	c.centerText(midRow-1, fmt.Sprintf("Final score: %d", g.FinalScore()))
	c.centerText(midRow+2, "Press ENTER for menu")
}
