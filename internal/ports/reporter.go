package ports

import (
	"context"

	"github.com/alejandrodnm/yieldsim/internal/domain"
)

// Report es todo lo que se presenta al final de una corrida.
type Report struct {
	RunID  string
	Source string // etiqueta de origen de los precios: "coingecko", "synthetic", ...
	Days   int    // días pedidos
	Result domain.SimulationResult
	Width  int // ancho del sparkline
}

// Reporter presenta el resultado de un backtest al usuario.
type Reporter interface {
	Report(ctx context.Context, r Report) error
}

// SweepReport agrupa las corridas de un barrido de semillas sobre la misma serie.
type SweepReport struct {
	RunID    string
	Source   string
	Days     int
	Outcomes []domain.SeedOutcome // ordenadas por semilla
}

// SweepReporter es opcional: los reporters que no lo implementan solo ven logs.
type SweepReporter interface {
	ReportSweep(ctx context.Context, r SweepReport) error
}
