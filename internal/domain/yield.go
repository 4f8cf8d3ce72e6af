package domain

import "math"

const (
	// gasUnitsPerCycle es el gas consumido por un ciclo de rebalanceo on-chain.
	gasUnitsPerCycle = 250000

	noiseAmplitude = 0.03
	ilCap          = 0.06
	ilPerVol       = 1.2
	hedgeBase      = 0.001
	hedgePerVol    = 0.2
	daysPerYear    = 365.0
)

// RegimeProfile es la asignación y el yield base anualizado de cada pierna
// para un régimen.
//
// ALPAlloc + LPAlloc no suma 1.0 en ningún régimen (CALM: 0.97). El resto se
// interpreta como capital ocioso; los valores se mantienen tal cual.
type RegimeProfile struct {
	ALPAlloc float64
	LPAlloc  float64
	ALPYield float64
	LPYield  float64
}

// Profiles es la tabla régimen → perfil. Añadir un régimen solo requiere
// una entrada aquí.
var Profiles = map[Regime]RegimeProfile{
	RegimeCalm:   {ALPAlloc: 0.40, LPAlloc: 0.57, ALPYield: 0.15, LPYield: 0.08},
	RegimeNormal: {ALPAlloc: 0.60, LPAlloc: 0.37, ALPYield: 0.18, LPYield: 0.12},
	RegimeStorm:  {ALPAlloc: 0.80, LPAlloc: 0.17, ALPYield: 0.22, LPYield: 0.16},
}

// ProfileFor devuelve el perfil del régimen. Un régimen desconocido usa STORM,
// el perfil más conservador en costes.
func ProfileFor(r Regime) RegimeProfile {
	if p, ok := Profiles[r]; ok {
		return p
	}
	return Profiles[RegimeStorm]
}

// SimulationParams son los inputs externos de una corrida. No se validan:
// un TVL negativo o cero se propaga tal cual por la división.
type SimulationParams struct {
	BNBPrice     float64 // USD por BNB
	GasGwei      float64
	CyclesPerDay int
	TVL          float64 // USD
}

// DefaultSimulationParams devuelve los valores por defecto del CLI.
func DefaultSimulationParams() SimulationParams {
	return SimulationParams{
		BNBPrice:     300.0,
		GasGwei:      50.0,
		CyclesPerDay: 4,
		TVL:          100000.0,
	}
}

// DailyGasCost es el coste diario en USD de los ciclos de rebalanceo:
//
//	gwei × 1e-9 × 250000 × ciclos/día × precio BNB
func DailyGasCost(p SimulationParams) float64 {
	return p.GasGwei * 1e-9 * gasUnitsPerCycle * float64(p.CyclesPerDay) * p.BNBPrice
}

// Noise es la fuente de ruido uniforme del simulador. Una instancia por corrida,
// consumida en orden de día y de pierna (ALP antes que LP).
type Noise interface {
	Uniform(lo, hi float64) float64
}

// DailyNetReturn calcula el retorno neto de un día.
//
//	gross = alpAlloc × max(0, alpYield + ruido) + lpAlloc × max(0, lpYield + ruido)
//	il    = min(0.06, |r| × 1.2)
//	hedge = 0.001 + |r| × 0.2
//	net   = (gross - il - hedge) / 365 - gasCost / tvl
//
// gross, il y hedge son cifras anualizadas; net es una tasa diaria.
// Los productos se redondean explícitamente con float64() para impedir
// fusiones FMA y mantener la salida idéntica en todas las arquitecturas.
func DailyNetReturn(r float64, regime Regime, gasCost, tvl float64, noise Noise) float64 {
	vol := math.Abs(r)
	p := ProfileFor(regime)

	alpNoise := noise.Uniform(-noiseAmplitude, noiseAmplitude)
	lpNoise := noise.Uniform(-noiseAmplitude, noiseAmplitude)

	alpComponent := math.Max(0, p.ALPYield+alpNoise)
	lpComponent := math.Max(0, p.LPYield+lpNoise)

	gross := float64(p.ALPAlloc*alpComponent) + float64(p.LPAlloc*lpComponent)
	ilCost := math.Min(ilCap, vol*ilPerVol)
	hedgeCost := hedgeBase + float64(vol*hedgePerVol)

	net := (gross - ilCost - hedgeCost) / daysPerYear
	net -= gasCost / tvl
	return net
}
