package ports

import "context"

// GasPriceOracle devuelve el gas price actual de la cadena donde corre la estrategia.
type GasPriceOracle interface {
	GasPriceGwei(ctx context.Context) (float64, error)
}

// SpotPriceProvider devuelve el precio actual de un activo (p. ej. BNB en USD).
type SpotPriceProvider interface {
	FetchSpotPrice(ctx context.Context, coinID string) (float64, error)
}
