package domain

// SimulationResult es la salida de una corrida completa. Solo lectura.
//
// len(Regimes) == len(DailyNet) == len(retornos); len(Stats.Curve) == len(DailyNet)+1.
type SimulationResult struct {
	Regimes  []Regime
	DailyNet []float64
	Stats    Stats
}

// RegimeCounts cuenta los días de cada régimen. Todos los regímenes conocidos
// aparecen en el mapa, aunque sea con 0.
func (r SimulationResult) RegimeCounts() map[Regime]int {
	counts := make(map[Regime]int, len(Regimes))
	for _, g := range Regimes {
		counts[g] = 0
	}
	for _, g := range r.Regimes {
		counts[g]++
	}
	return counts
}

// RegimeMeanNet devuelve el retorno neto diario medio de los días de cada
// régimen. Los regímenes sin días no aparecen.
func (r SimulationResult) RegimeMeanNet() map[Regime]float64 {
	sums := make(map[Regime]float64, len(Regimes))
	counts := make(map[Regime]int, len(Regimes))
	for i, g := range r.Regimes {
		sums[g] += r.DailyNet[i]
		counts[g]++
	}
	means := make(map[Regime]float64, len(sums))
	for g, s := range sums {
		means[g] = s / float64(counts[g])
	}
	return means
}

// SeedOutcome es el resultado de simular la misma serie con una semilla concreta.
type SeedOutcome struct {
	Seed  uint32
	Stats Stats
}
