package main

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/term"

	"bolamiga/internal/audio"
	"bolamiga/internal/config"
	"bolamiga/internal/draw"
	"bolamiga/internal/input"
	"bolamiga/internal/loop"
	"bolamiga/internal/render"
	"bolamiga/internal/score"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	scoresURL := config.GetEnv("BOLAMIGA_WEB_URL", "http://localhost:5030")
	scanlines := config.GetEnv("BOLAMIGA_SCANLINES", "1") != "0"

	synth := audio.NewSynth()
	defer synth.Close()

	mapper := input.NewMapper(bufio.NewReader(os.Stdin))
	game := loop.NewGame(synth, score.NewHighScoreClient(scoresURL), rand.New(rand.NewSource(time.Now().UnixNano())))
	coordinator := render.New(os.Stdout, draw.StdoutSize, scanlines)

	draw.HideCursor(os.Stdout)
	defer draw.ShowCursor(os.Stdout)
	defer draw.ClearScreen(os.Stdout)

	if err := loop.Run(game, coordinator, mapper); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
