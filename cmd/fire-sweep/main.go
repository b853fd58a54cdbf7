package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gottacatchenall/WorkshopGOL/internal/otel"
	"github.com/gottacatchenall/WorkshopGOL/internal/sweep"
	"github.com/gottacatchenall/WorkshopGOL/pkg/sims/forestfire"
)

func main() {
	steps := flag.Int("steps", 300, "ticks to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	size := flag.Int("size", 96, "forest width and height")
	seed := flag.Int64("seed", 1337, "seed shared by every run")
	combustion := flag.String("combustion", "0,0.00001,0.0001,0.001", "comma separated combustion probabilities")
	regrowth := flag.String("regrowth", "0.001,0.005,0.01,0.05", "comma separated regrowth probabilities")
	top := flag.Int("top", 5, "number of results to print")
	flag.Parse()

	combs, err := parseList(*combustion)
	if err != nil {
		log.Fatalf("combustion: %v", err)
	}
	regs, err := parseList(*regrowth)
	if err != nil {
		log.Fatalf("regrowth: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	otelCfg, err := otel.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	shutdown, err := otel.Setup(ctx, "fire-sweep", otelCfg)
	if err != nil {
		log.Fatalf("otel: %v", err)
	}
	defer shutdown(context.Background())

	base := forestfire.DefaultConfig()
	base.Grid.Width = *size
	base.Grid.Height = *size

	points := sweep.Points(combs, regs)
	fmt.Printf("Sweeping %d parameter sets (%d workers, %d steps)\n", len(points), *workers, *steps)

	start := time.Now()
	results, err := sweep.Run(ctx, base, points, *steps, *seed, *workers)
	if err != nil {
		log.Fatal(err)
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].MeanTrees > results[j].MeanTrees })
	fmt.Printf("\nTop %d by mean forest cover (elapsed %s):\n", min(*top, len(results)), time.Since(start).Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		r := results[i]
		fmt.Printf("%2d) trees=%.1f final=%d peakFire=%d@%d extinct=%d %s\n",
			i+1, r.MeanTrees, r.FinalTrees, r.PeakBurning, r.PeakStep, r.Extinct, r.Point)
	}
}

func parseList(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no values in %q", s)
	}
	return out, nil
}
