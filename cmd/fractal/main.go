//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"fractalart/internal/app"
	"fractalart/internal/core"
	_ "fractalart/internal/fractal"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()["fractal"]
	if !ok {
		log.Fatal("fractal sim not registered")
	}

	simCfg := map[string]string{"seed": cfg.Seed}
	if cfg.Rules != "" {
		text, err := os.ReadFile(cfg.Rules)
		if err != nil {
			log.Fatalf("read rules: %v", err)
		}
		simCfg["rules"] = string(text)
	}

	sim, err := factory(simCfg)
	if err != nil {
		log.Fatalf("build sim: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.MaxRounds)
	size := sim.Size()

	ebiten.SetWindowTitle("fractalart — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
