//go:build ebiten

package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/gottacatchenall/WorkshopGOL/internal/app"
	"github.com/gottacatchenall/WorkshopGOL/internal/otel"
	_ "github.com/gottacatchenall/WorkshopGOL/internal/sims/briansbrain"
	_ "github.com/gottacatchenall/WorkshopGOL/pkg/sims/forestfire"
	_ "github.com/gottacatchenall/WorkshopGOL/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	otelCfg, err := otel.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	shutdown, err := otel.Setup(ctx, "ca", otelCfg)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	defer shutdown(ctx)

	if cfg.List {
		if err := app.ListRuns(ctx, cfg, os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	rec, err := app.Prepare(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(rec, cfg.Scale)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("WorkshopGOL - " + rec.Name)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
