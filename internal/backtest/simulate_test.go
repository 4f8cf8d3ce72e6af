package backtest

import (
	"testing"

	"github.com/alejandrodnm/yieldsim/internal/domain"
	"github.com/alejandrodnm/yieldsim/internal/rng"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Valores esperados calculados con la herramienta de referencia (semilla 42).

func TestSimulate_ReferenceExample(t *testing.T) {
	res := Simulate([]float64{100, 101, 98, 98}, domain.DefaultSimulationParams(), rng.NewMT(rng.DefaultSeed))

	assert.Equal(t, []domain.Regime{domain.RegimeNormal, domain.RegimeNormal, domain.RegimeCalm}, res.Regimes)

	require.Len(t, res.DailyNet, 3)
	assert.InDelta(t, 0.000211300283590211, res.DailyNet[0], 1e-15)
	assert.InDelta(t, 0.00011184157652698785, res.DailyNet[1], 1e-15)
	assert.InDelta(t, 0.00016868063454739685, res.DailyNet[2], 1e-15)

	require.Len(t, res.Stats.Curve, 4)
	assert.Equal(t, 1.0, res.Stats.Curve[0])
	assert.InDelta(t, 1.0004919006385815, res.Stats.Cumulative, 1e-12)
	assert.InDelta(t, 6.264170378135879, res.Stats.Sharpe, 1e-9)
	assert.InDelta(t, 0.059838403517525805, res.Stats.APY.Avg, 1e-12)
}

func TestSimulate_SinglePrice(t *testing.T) {
	res := Simulate([]float64{45000}, domain.DefaultSimulationParams(), rng.NewMT(rng.DefaultSeed))
	assert.Empty(t, res.Regimes)
	assert.Empty(t, res.DailyNet)
	assert.Equal(t, []float64{1.0}, res.Stats.Curve)
	assert.Equal(t, 0.0, res.Stats.Sharpe)
}

func TestSimulate_Deterministic(t *testing.T) {
	prices := syntheticRamp(120)
	params := domain.DefaultSimulationParams()

	a := Simulate(prices, params, rng.NewMT(rng.DefaultSeed))
	b := Simulate(prices, params, rng.NewMT(rng.DefaultSeed))

	assert.Equal(t, a.DailyNet, b.DailyNet)
	assert.Equal(t, a.Stats.Curve, b.Stats.Curve)
	assert.Equal(t, a.Stats.Sharpe, b.Stats.Sharpe)
}

func TestSimulate_DifferentSeedChangesNoise(t *testing.T) {
	prices := syntheticRamp(30)
	params := domain.DefaultSimulationParams()

	a := Simulate(prices, params, rng.NewMT(1))
	b := Simulate(prices, params, rng.NewMT(2))
	assert.Equal(t, a.Regimes, b.Regimes, "el régimen no depende del ruido")
	assert.NotEqual(t, a.DailyNet, b.DailyNet)
}

func TestSimulate_LengthInvariantsAndCurveLaw(t *testing.T) {
	prices := syntheticRamp(90)
	res := Simulate(prices, domain.DefaultSimulationParams(), rng.NewMT(rng.DefaultSeed))

	require.Len(t, res.Regimes, len(prices)-1)
	require.Len(t, res.DailyNet, len(prices)-1)
	require.Len(t, res.Stats.Curve, len(res.DailyNet)+1)
	for i := 1; i < len(res.Stats.Curve); i++ {
		assert.Equal(t, res.Stats.Curve[i-1]*(1+res.DailyNet[i-1]), res.Stats.Curve[i])
	}
}

func TestSimulate_RegimeCounts(t *testing.T) {
	res := Simulate([]float64{100, 101, 98, 98}, domain.DefaultSimulationParams(), rng.NewMT(rng.DefaultSeed))
	counts := res.RegimeCounts()
	assert.Equal(t, 1, counts[domain.RegimeCalm])
	assert.Equal(t, 2, counts[domain.RegimeNormal])
	assert.Equal(t, 0, counts[domain.RegimeStorm])

	means := res.RegimeMeanNet()
	assert.InDelta(t, 0.00016868063454739685, means[domain.RegimeCalm], 1e-15)
	_, hasStorm := means[domain.RegimeStorm]
	assert.False(t, hasStorm)
}

// syntheticRamp alterna subidas y bajadas de distinta magnitud para cubrir
// los tres regímenes.
func syntheticRamp(n int) []float64 {
	steps := []float64{0.004, -0.015, 0.035, -0.002, 0.02, -0.05}
	prices := []float64{1000}
	for len(prices) < n {
		prev := prices[len(prices)-1]
		prices = append(prices, prev*(1+steps[len(prices)%len(steps)]))
	}
	return prices
}
