package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/novakj/ringside/internal/audio"
	"github.com/novakj/ringside/internal/config"
	"github.com/novakj/ringside/internal/loop"
	"github.com/novakj/ringside/internal/score"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("bad configuration", "err", err)
	}

	opts := loop.Options{Level: cfg.AILevel}

	if cfg.AudioEnabled {
		engine, err := audio.NewEngine()
		if err != nil {
			// Non-fatal, the game runs silent.
			log.Warn("audio unavailable", "err", err)
		}
		defer engine.Close()
		opts.Sound = engine
	}

	if cfg.ScorePath != "" {
		store, err := score.Open(cfg.ScorePath)
		if err != nil {
			log.Fatal("open score store", "err", err, "path", cfg.ScorePath)
		}
		defer store.Close()
		opts.Store = store
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	if err := loop.Run(reader, os.Stdout, opts); err != nil {
		_ = term.Restore(fd, oldState)
		log.Fatal("game error", "err", err)
	}
}
