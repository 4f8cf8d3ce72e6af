package ports

import "context"

// PriceProvider obtiene la serie de precios diarios de una fuente remota.
type PriceProvider interface {
	// FetchDailyPrices devuelve un precio por día, del más antiguo al más
	// reciente. Devuelve error si la fuente falla o trae menos de 2 precios.
	FetchDailyPrices(ctx context.Context, days int) ([]float64, error)
}
