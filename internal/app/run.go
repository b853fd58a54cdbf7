package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/gottacatchenall/WorkshopGOL/internal/core"
	"github.com/gottacatchenall/WorkshopGOL/internal/store"
)

// Prepare produces the recording described by cfg. With Replay set it is
// read from the store; otherwise the scenario is run and, when DB is set,
// saved.
func Prepare(ctx context.Context, cfg *Config) (*core.Recording, error) {
	var st *store.Store
	if cfg.DB != "" {
		var err error
		if st, err = store.Open(ctx, cfg.DB); err != nil {
			return nil, err
		}
		defer st.Close()
	}

	if cfg.Replay != 0 {
		if st == nil {
			return nil, fmt.Errorf("replay %d: no db configured", cfg.Replay)
		}
		return st.Load(ctx, cfg.Replay)
	}

	scenario, err := core.New(cfg.Sim, cfg.ScenarioOptions())
	if err != nil {
		return nil, err
	}
	rec, err := scenario.Run(ctx, cfg.Steps, cfg.Seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Sim, err)
	}
	if st != nil {
		id, err := st.Save(ctx, rec)
		if err != nil {
			return nil, err
		}
		log.Printf("saved %s run as #%d in %s", rec.Name, id, cfg.DB)
	}
	return rec, nil
}

// ListRuns writes a line per stored run in cfg.DB.
func ListRuns(ctx context.Context, cfg *Config, out io.Writer) error {
	st, err := store.Open(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.List(ctx)
	if err != nil {
		return err
	}
	for _, r := range runs {
		if _, err := fmt.Fprintf(out, "#%d %s %dx%d %d frames seed %d %s\n",
			r.ID, r.Name, r.Size.W, r.Size.H, r.Frames, r.Seed, r.CreatedAt.Format(time.RFC3339)); err != nil {
			return err
		}
	}
	return nil
}
