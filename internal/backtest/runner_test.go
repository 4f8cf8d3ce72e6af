package backtest

import (
	"context"
	"errors"
	"testing"

	"github.com/alejandrodnm/yieldsim/internal/domain"
	"github.com/alejandrodnm/yieldsim/internal/ports"
	"github.com/alejandrodnm/yieldsim/internal/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource struct {
	prices []float64
	label  string
	days   int
}

func (s *staticSource) Load(_ context.Context, days int) ([]float64, string) {
	s.days = days
	return s.prices, s.label
}

type captureReporter struct {
	reports []ports.Report
	err     error
}

func (c *captureReporter) Report(_ context.Context, r ports.Report) error {
	c.reports = append(c.reports, r)
	return c.err
}

func TestRunner_Run_Reports(t *testing.T) {
	src := &staticSource{prices: []float64{100, 101, 98, 98}, label: "coingecko"}
	rep := &captureReporter{}
	cfg := DefaultConfig()
	cfg.Days = 4

	res, err := NewRunner(cfg, src, rep).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, src.days)
	require.Len(t, rep.reports, 1)
	r := rep.reports[0]
	assert.Equal(t, "coingecko", r.Source)
	assert.Equal(t, 4, r.Days)
	assert.Equal(t, domain.DefaultSparklineWidth, r.Width)
	assert.NotEmpty(t, r.RunID)
	assert.Equal(t, res.DailyNet, r.Result.DailyNet)
	assert.InDelta(t, 1.0004919006385815, res.Stats.Cumulative, 1e-12)
}

func TestRunner_Run_FreshGeneratorPerRun(t *testing.T) {
	src := &staticSource{prices: syntheticRamp(50), label: "x"}
	runner := NewRunner(DefaultConfig(), src, nil)

	a, err := runner.Run(context.Background())
	require.NoError(t, err)
	b, err := runner.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, a.DailyNet, b.DailyNet)
}

func TestRunner_Run_ReporterError(t *testing.T) {
	src := &staticSource{prices: []float64{1, 2}, label: "x"}
	rep := &captureReporter{err: errors.New("broken pipe")}

	_, err := NewRunner(DefaultConfig(), src, rep).Run(context.Background())
	assert.ErrorContains(t, err, "broken pipe")
}

// Corrida por defecto sin red: 90 días sintéticos, igual que la herramienta
// de referencia cuando la descarga falla.
func TestRunner_Run_SyntheticDefaults(t *testing.T) {
	src := pricing.NewFallbackSource(nil, nil, pricing.SourceOptions{Offline: true})

	res, err := NewRunner(DefaultConfig(), src, nil).Run(context.Background())
	require.NoError(t, err)

	counts := res.RegimeCounts()
	assert.Equal(t, 45, counts[domain.RegimeCalm])
	assert.Equal(t, 44, counts[domain.RegimeNormal])
	assert.Equal(t, 0, counts[domain.RegimeStorm])

	s := res.Stats
	assert.InDelta(t, 0.01865280058404367, s.APY.Min, 1e-10)
	assert.InDelta(t, 0.05774430151714637, s.APY.Avg, 1e-10)
	assert.InDelta(t, 0.10500731528695068, s.APY.Max, 1e-10)
	assert.InDelta(t, 6.044949761467356, s.Sharpe, 1e-8)
	assert.InDelta(t, 1.0141784159507172, s.Cumulative, 1e-10)
	assert.Equal(t, ".....____---~~~~::::++++====****####%%%@", domain.Sparkline(s.Curve, 40))
}
