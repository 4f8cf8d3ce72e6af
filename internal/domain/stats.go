package domain

import "math"

const minStdDev = 0.0005

// APY es el rango anualizado (escalado lineal ×365, sin capitalizar).
type APY struct {
	Min float64
	Avg float64
	Max float64
}

// Stats resume una serie de retornos netos diarios.
type Stats struct {
	AvgDaily   float64
	MinDaily   float64
	MaxDaily   float64
	StdDev     float64 // desviación poblacional, con suelo de 0.0005
	APY        APY
	Sharpe     float64
	Cumulative float64
	// Curve empieza en 1.0 y tiene len(dailyNet)+1 puntos:
	// Curve[i] = Curve[i-1] × (1 + dailyNet[i-1]).
	Curve []float64
}

// CumulativeReturn devuelve el crecimiento acumulado como fracción (0.05 = +5%).
func (s Stats) CumulativeReturn() float64 {
	return s.Cumulative - 1.0
}

// Summarize agrega la serie de retornos netos. No modifica el input.
// Una serie vacía produce media/extremos 0, Sharpe 0 y Curve = [1.0].
func Summarize(dailyNet []float64) Stats {
	var s Stats
	if len(dailyNet) > 0 {
		s.AvgDaily = mean(dailyNet)
		s.MinDaily, s.MaxDaily = extremes(dailyNet)
	}
	if len(dailyNet) > 1 {
		s.StdDev = pstdev(dailyNet, s.AvgDaily)
	}
	if s.StdDev < minStdDev {
		s.StdDev = minStdDev
	}

	s.APY = APY{
		Min: s.MinDaily * daysPerYear,
		Avg: s.AvgDaily * daysPerYear,
		Max: s.MaxDaily * daysPerYear,
	}
	if s.StdDev != 0 {
		s.Sharpe = (s.AvgDaily / s.StdDev) * math.Sqrt(daysPerYear)
	}

	s.Curve = GrowthCurve(dailyNet)
	s.Cumulative = s.Curve[len(s.Curve)-1]
	return s
}

// GrowthCurve capitaliza los retornos partiendo de 1.0.
func GrowthCurve(dailyNet []float64) []float64 {
	curve := make([]float64, 0, len(dailyNet)+1)
	cumulative := 1.0
	curve = append(curve, cumulative)
	for _, r := range dailyNet {
		cumulative *= 1.0 + r
		curve = append(curve, cumulative)
	}
	return curve
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func extremes(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi
}

// pstdev es la desviación estándar poblacional (divide por n).
func pstdev(xs []float64, mu float64) float64 {
	ss := 0.0
	for _, x := range xs {
		d := x - mu
		ss += float64(d * d)
	}
	return math.Sqrt(ss / float64(len(xs)))
}
