// Package rng implementa el generador Mersenne Twister (MT19937) con la misma
// siembra que random.Random de CPython. Así una simulación con semilla fija
// produce exactamente la misma secuencia que la herramienta de referencia.
package rng

const (
	n         = 624
	m         = 397
	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff
)

// DefaultSeed es la semilla usada por el backtest y el generador sintético.
const DefaultSeed uint32 = 42

// MT es un generador MT19937. No es seguro para uso concurrente: cada
// simulación crea el suyo y lo consume en orden.
type MT struct {
	state [n]uint32
	index int
}

// NewMT crea un generador sembrado como random.Random(seed).
func NewMT(seed uint32) *MT {
	g := &MT{}
	g.seed(seed)
	return g
}

// seed replica init_by_array con key = [seed].
func (g *MT) seed(seed uint32) {
	g.initGenrand(19650218)

	key := []uint32{seed}
	i, j := 1, 0
	for k := max(n, len(key)); k > 0; k-- {
		prev := g.state[i-1]
		g.state[i] = (g.state[i] ^ ((prev ^ (prev >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			g.state[0] = g.state[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k := n - 1; k > 0; k-- {
		prev := g.state[i-1]
		g.state[i] = (g.state[i] ^ ((prev ^ (prev >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			g.state[0] = g.state[n-1]
			i = 1
		}
	}
	g.state[0] = upperMask
	g.index = n
}

func (g *MT) initGenrand(s uint32) {
	g.state[0] = s
	for i := 1; i < n; i++ {
		prev := g.state[i-1]
		g.state[i] = 1812433253*(prev^(prev>>30)) + uint32(i)
	}
}

// Uint32 devuelve el siguiente entero de 32 bits de la secuencia.
func (g *MT) Uint32() uint32 {
	if g.index >= n {
		g.twist()
	}
	y := g.state[g.index]
	g.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func (g *MT) twist() {
	for k := 0; k < n; k++ {
		y := (g.state[k] & upperMask) | (g.state[(k+1)%n] & lowerMask)
		v := g.state[(k+m)%n] ^ (y >> 1)
		if y&1 != 0 {
			v ^= matrixA
		}
		g.state[k] = v
	}
	g.index = 0
}

// Float64 devuelve un float en [0, 1) con 53 bits de resolución (genrand_res53).
func (g *MT) Float64() float64 {
	a := g.Uint32() >> 5
	b := g.Uint32() >> 6
	return (float64(a)*67108864.0 + float64(b)) * (1.0 / 9007199254740992.0)
}

// Uniform devuelve un valor en [lo, hi], con la misma fórmula que random.uniform.
func (g *MT) Uniform(lo, hi float64) float64 {
	return lo + float64((hi-lo)*g.Float64())
}
