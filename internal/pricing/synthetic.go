package pricing

import "github.com/alejandrodnm/yieldsim/internal/rng"

const (
	syntheticStart = 45000.0
	syntheticDrift = 0.02
)

// Synthetic genera un paseo aleatorio determinista de `days` precios:
// empieza en 45000 y cada día multiplica por (1 + U(-0.02, 0.02)).
// Con days <= 1 devuelve solo el precio inicial.
func Synthetic(days int, seed uint32) []float64 {
	g := rng.NewMT(seed)
	prices := make([]float64, 1, max(days, 1))
	prices[0] = syntheticStart
	for i := 1; i < days; i++ {
		drift := g.Uniform(-syntheticDrift, syntheticDrift)
		prices = append(prices, prices[i-1]*(1.0+drift))
	}
	return prices
}
