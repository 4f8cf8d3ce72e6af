package domain

// DefaultSparklineWidth es el ancho por defecto del sparkline en consola.
const DefaultSparklineWidth = 40

// sparkLevels va de "más bajo" a "más alto".
const sparkLevels = "._-~:+=*#%@"

// Sparkline comprime la curva a como máximo width caracteres ASCII.
// Toma uno de cada len/width puntos desde el inicio y normaliza cada muestra
// entre el mínimo y el máximo de lo muestreado. Una curva plana usa span 1.0.
func Sparkline(curve []float64, width int) string {
	if len(curve) == 0 {
		return ""
	}
	if width <= 0 {
		width = DefaultSparklineWidth
	}

	stride := max(1, len(curve)/width)
	sampled := make([]float64, 0, width)
	for i := 0; i < len(curve) && len(sampled) < width; i += stride {
		sampled = append(sampled, curve[i])
	}

	lo, hi := extremes(sampled)
	span := hi - lo
	if hi == lo {
		span = 1.0
	}

	top := len(sparkLevels) - 1
	out := make([]byte, len(sampled))
	for i, v := range sampled {
		idx := int((v - lo) / span * float64(top))
		out[i] = sparkLevels[clampIndex(idx, top)]
	}
	return string(out)
}

// clampIndex protege contra NaN en la curva, que int() convierte en valores
// fuera de rango.
func clampIndex(idx, top int) int {
	if idx < 0 {
		return 0
	}
	if idx > top {
		return top
	}
	return idx
}
