package backtest

// sweep.go: worker pool que simula la misma serie de precios con varias
// semillas. Sirve para ver cuánto del APY depende del ruido de yield.

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"

	"github.com/alejandrodnm/yieldsim/internal/domain"
	"github.com/alejandrodnm/yieldsim/internal/ports"
	"github.com/alejandrodnm/yieldsim/internal/rng"
	"github.com/google/uuid"
)

// SeedRange devuelve n semillas consecutivas a partir de start.
func SeedRange(start uint32, n int) []uint32 {
	if n <= 0 {
		return nil
	}
	seeds := make([]uint32, n)
	for i := range seeds {
		seeds[i] = start + uint32(i)
	}
	return seeds
}

// SimulateSeeds simula prices una vez por semilla en paralelo. Cada worker
// crea su propio generador, así el resultado de una semilla no depende del
// orden de ejecución. Si ctx se cancela, las semillas pendientes se descartan.
//
// Si workers <= 0 usa runtime.NumCPU().
func SimulateSeeds(
	ctx context.Context,
	prices []float64,
	params domain.SimulationParams,
	seeds []uint32,
	workers int,
) []domain.SeedOutcome {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(seeds) {
		workers = len(seeds)
	}

	workCh := make(chan uint32, len(seeds))
	resultCh := make(chan domain.SeedOutcome, len(seeds))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range workCh {
				if ctx.Err() != nil {
					continue
				}
				res := Simulate(prices, params, rng.NewMT(seed))
				resultCh <- domain.SeedOutcome{Seed: seed, Stats: res.Stats}
			}
		}()
	}

	for _, s := range seeds {
		workCh <- s
	}
	close(workCh)

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := make([]domain.SeedOutcome, 0, len(seeds))
	for o := range resultCh {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seed < out[j].Seed })

	slog.Debug("seed sweep complete",
		"seeds_queued", len(seeds),
		"outcomes", len(out),
		"workers", workers,
	)
	return out
}

// Sweep carga precios una sola vez y los simula con n semillas a partir de
// cfg.Seed. Reporta si el reporter implementa ports.SweepReporter.
func (r *Runner) Sweep(ctx context.Context, n, workers int) ([]domain.SeedOutcome, error) {
	runID := uuid.New().String()
	log := slog.With("run_id", runID)

	prices, label := r.source.Load(ctx, r.cfg.Days)
	log.Info("prices loaded", "source", label, "points", len(prices), "days", r.cfg.Days)

	outcomes := SimulateSeeds(ctx, prices, r.cfg.Params, SeedRange(r.cfg.Seed, n), workers)
	if err := ctx.Err(); err != nil {
		return outcomes, fmt.Errorf("backtest.Sweep: %w", err)
	}
	log.Info("seed sweep finished", "seeds", len(outcomes))

	sr, ok := r.reporter.(ports.SweepReporter)
	if !ok {
		return outcomes, nil
	}
	if err := sr.ReportSweep(ctx, ports.SweepReport{
		RunID:    runID,
		Source:   label,
		Days:     r.cfg.Days,
		Outcomes: outcomes,
	}); err != nil {
		return outcomes, fmt.Errorf("backtest.Sweep: report: %w", err)
	}
	return outcomes, nil
}
