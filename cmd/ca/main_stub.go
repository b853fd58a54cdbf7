//go:build !ebiten

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gottacatchenall/WorkshopGOL/internal/app"
	"github.com/gottacatchenall/WorkshopGOL/internal/otel"
	_ "github.com/gottacatchenall/WorkshopGOL/internal/sims/briansbrain"
	_ "github.com/gottacatchenall/WorkshopGOL/pkg/sims/forestfire"
	_ "github.com/gottacatchenall/WorkshopGOL/pkg/sims/life"
)

// The headless build runs the scenario and reports on it. Build with
// -tags ebiten for the windowed viewer.
func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	otelCfg, err := otel.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	shutdown, err := otel.Setup(ctx, "ca", otelCfg)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	defer shutdown(context.Background())

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
	if cfg.Play {
		if err := app.NewPlayer(os.Stdout, cfg.TPS, true).Play(ctx, rec); err != nil {
			log.Fatal(err)
		}
	}
	if err := app.WriteSummary(os.Stdout, rec); err != nil {
		log.Fatal(err)
	}
}
