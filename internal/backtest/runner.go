package backtest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alejandrodnm/yieldsim/internal/domain"
	"github.com/alejandrodnm/yieldsim/internal/ports"
	"github.com/alejandrodnm/yieldsim/internal/rng"
	"github.com/google/uuid"
)

// PriceSource entrega la serie de precios y su etiqueta de origen. No falla:
// los errores de red se resuelven dentro de la fuente.
type PriceSource interface {
	Load(ctx context.Context, days int) ([]float64, string)
}

// Config controla una corrida del backtest.
type Config struct {
	Days           int
	Params         domain.SimulationParams
	Seed           uint32
	SparklineWidth int
}

// DefaultConfig devuelve los valores por defecto del CLI.
func DefaultConfig() Config {
	return Config{
		Days:           90,
		Params:         domain.DefaultSimulationParams(),
		Seed:           rng.DefaultSeed,
		SparklineWidth: domain.DefaultSparklineWidth,
	}
}

// Runner conecta la fuente de precios, la simulación y el reporter.
type Runner struct {
	cfg      Config
	source   PriceSource
	reporter ports.Reporter
}

// NewRunner crea un Runner. reporter puede ser nil (solo se devuelve el resultado).
func NewRunner(cfg Config, source PriceSource, reporter ports.Reporter) *Runner {
	return &Runner{cfg: cfg, source: source, reporter: reporter}
}

// Run carga precios, simula y reporta. Cada corrida usa su propio generador
// sembrado con cfg.Seed, así dos corridas con los mismos precios dan lo mismo.
func (r *Runner) Run(ctx context.Context) (domain.SimulationResult, error) {
	runID := uuid.New().String()
	log := slog.With("run_id", runID)

	prices, label := r.source.Load(ctx, r.cfg.Days)
	log.Info("prices loaded", "source", label, "points", len(prices), "days", r.cfg.Days)

	result := Simulate(prices, r.cfg.Params, rng.NewMT(r.cfg.Seed))
	counts := result.RegimeCounts()
	log.Info("simulation complete",
		"calm", counts[domain.RegimeCalm],
		"normal", counts[domain.RegimeNormal],
		"storm", counts[domain.RegimeStorm],
		"gas_per_day", domain.DailyGasCost(r.cfg.Params),
		"sharpe", result.Stats.Sharpe,
	)

	if r.reporter == nil {
		return result, nil
	}
	if err := r.reporter.Report(ctx, ports.Report{
		RunID:  runID,
		Source: label,
		Days:   r.cfg.Days,
		Result: result,
		Width:  r.cfg.SparklineWidth,
	}); err != nil {
		return result, fmt.Errorf("backtest.Run: report: %w", err)
	}
	return result, nil
}
