package sim_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/gottacatchenall/WorkshopGOL/pkg/core"
	"github.com/gottacatchenall/WorkshopGOL/pkg/sim"
)

// BenchmarkSimulate measures one transition across grid sizes and worker
// counts.
func BenchmarkSimulate(b *testing.B) {
	for _, size := range []int{64, 256, 512} {
		for _, workers := range []int{1, 4, 8} {
			g, err := core.NewRandomGrid(size, size, 0.3, on, core.NewRNG(1))
			if err != nil {
				b.Fatalf("setup grid: %v", err)
			}
			s, err := sim.New[cell](countRule, core.NewRNG(1), sim.WithWorkers(workers))
			if err != nil {
				b.Fatalf("setup simulator: %v", err)
			}
			b.Run(fmt.Sprintf("size=%dx%d_workers=%d", size, size, workers), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					if _, err := s.Simulate(context.Background(), g, 2); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
