package domain

import "math"

// Regime es el bucket de volatilidad de un día.
type Regime int

const (
	RegimeCalm Regime = iota
	RegimeNormal
	RegimeStorm
)

// Umbrales fijos del modelo sobre |retorno diario|.
const (
	calmThreshold   = 0.01
	normalThreshold = 0.03
)

// Regimes lista los regímenes en orden de menor a mayor volatilidad.
var Regimes = []Regime{RegimeCalm, RegimeNormal, RegimeStorm}

func (r Regime) String() string {
	switch r {
	case RegimeCalm:
		return "CALM"
	case RegimeNormal:
		return "NORMAL"
	case RegimeStorm:
		return "STORM"
	default:
		return "UNKNOWN"
	}
}

// ClassifyRegime asigna un régimen según la magnitud del retorno del día.
// Los límites son semiabiertos: |r| = 0.01 ya es NORMAL y |r| = 0.03 ya es STORM.
func ClassifyRegime(r float64) Regime {
	v := math.Abs(r)
	switch {
	case v < calmThreshold:
		return RegimeCalm
	case v < normalThreshold:
		return RegimeNormal
	default:
		return RegimeStorm
	}
}
