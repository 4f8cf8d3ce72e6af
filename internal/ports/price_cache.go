package ports

import (
	"context"
	"time"
)

// CachedSeries es una serie de precios guardada junto con su origen.
type CachedSeries struct {
	Origin    string
	FetchedAt time.Time
	Prices    []float64
}

// PriceCache guarda series de precios ya descargadas para no repetir la
// llamada remota en corridas consecutivas. Solo cachea inputs, nunca resultados.
type PriceCache interface {
	// Get devuelve la serie si existe y no es más antigua que maxAge.
	Get(ctx context.Context, key string, maxAge time.Duration) (CachedSeries, bool, error)

	// Put guarda (o reemplaza) la serie bajo key.
	Put(ctx context.Context, key, origin string, prices []float64) error

	// Close cierra la conexión a la base de datos limpiamente.
	Close() error
}
