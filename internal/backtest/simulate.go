package backtest

// simulate.go: pipeline puro de precios → retornos → régimen por día →
// retorno neto por día → estadísticas.
//
// El único estado mutable es el generador de ruido, que se recibe como
// parámetro y se consume en orden de día (ALP antes que LP dentro del día).

import "github.com/alejandrodnm/yieldsim/internal/domain"

// Simulate ejecuta la simulación completa sobre la serie de precios.
// Con menos de 2 precios el resultado es vacío y la curva es [1.0].
func Simulate(prices []float64, params domain.SimulationParams, noise domain.Noise) domain.SimulationResult {
	returns := domain.DailyReturns(prices)
	gasCost := domain.DailyGasCost(params)

	regimes := make([]domain.Regime, 0, len(returns))
	dailyNet := make([]float64, 0, len(returns))
	for _, r := range returns {
		regime := domain.ClassifyRegime(r)
		regimes = append(regimes, regime)
		dailyNet = append(dailyNet, domain.DailyNetReturn(r, regime, gasCost, params.TVL, noise))
	}

	return domain.SimulationResult{
		Regimes:  regimes,
		DailyNet: dailyNet,
		Stats:    domain.Summarize(dailyNet),
	}
}
