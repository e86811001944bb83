package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/burakssen/sandbox/internal/app"
	"github.com/burakssen/sandbox/internal/core"
	_ "github.com/burakssen/sandbox/internal/sims/sand"
	"github.com/burakssen/sandbox/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Brush = 1
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	cols, rows := screen.Size()
	fit := term.GridSize(cols, rows)
	if cfg.Width <= 0 {
		cfg.Width = fit.W
	}
	if cfg.Height <= 0 {
		cfg.Height = fit.H
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		screen.Fini()
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driver := term.New(screen, app.NewSession(sim, cfg.Seed, cfg.Brush), cfg.TPS)
	err = driver.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
