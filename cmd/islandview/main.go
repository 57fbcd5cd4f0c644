//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"islandgen/internal/app"
	"islandgen/pkg/worldgen"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	worldgen.SetLogger(app.NewLogger(os.Stderr, cfg.Verbose))

	world, err := cfg.Resolve(flag.CommandLine)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	game := app.New(world, cfg.Scale)

	ebiten.SetWindowTitle("islandgen: " + cfg.Preset)
	ebiten.SetTPS(cfg.TPS)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
