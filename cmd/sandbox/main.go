//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/burakssen/sandbox/internal/app"
	"github.com/burakssen/sandbox/internal/core"
	_ "github.com/burakssen/sandbox/internal/sims/sand"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Lookup(cfg.Sim)
	if !ok {
		log.Fatalf("unknown sim %q (available: %v)", cfg.Sim, core.Names())
	}

	sim, err := factory(cfg.SimOptions())
	if err != nil {
		log.Fatalf("create %s: %v", cfg.Sim, err)
	}
	if cfg.Tuning != "" {
		log.Printf("loaded tuning from %s", cfg.Tuning)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle("sandbox - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+max(cfg.HUD, 0), size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
