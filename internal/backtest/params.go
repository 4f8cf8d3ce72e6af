package backtest

import (
	"context"
	"log/slog"

	"github.com/alejandrodnm/yieldsim/internal/domain"
	"github.com/alejandrodnm/yieldsim/internal/ports"
)

// LiveInputs indica qué parámetros de coste se toman de la red en lugar
// de la configuración.
type LiveInputs struct {
	Gas       ports.GasPriceOracle    // nil = usar GasGwei configurado
	Spot      ports.SpotPriceProvider // nil = usar BNBPrice configurado
	BNBCoinID string
}

// ResolveLiveParams reemplaza GasGwei y BNBPrice por los valores actuales de
// la red. Cada fallo deja el valor configurado; nunca devuelve error.
func ResolveLiveParams(ctx context.Context, params domain.SimulationParams, in LiveInputs) domain.SimulationParams {
	if in.Gas != nil {
		gwei, err := in.Gas.GasPriceGwei(ctx)
		switch {
		case err != nil:
			slog.Warn("live gas price unavailable, using configured value", "gas_gwei", params.GasGwei, "err", err)
		case gwei <= 0:
			slog.Warn("live gas price is not positive, using configured value", "got", gwei)
		default:
			slog.Info("using live gas price", "gas_gwei", gwei, "configured", params.GasGwei)
			params.GasGwei = gwei
		}
	}

	if in.Spot != nil {
		coin := in.BNBCoinID
		if coin == "" {
			coin = "binancecoin"
		}
		price, err := in.Spot.FetchSpotPrice(ctx, coin)
		if err != nil {
			slog.Warn("live BNB price unavailable, using configured value", "bnb_price", params.BNBPrice, "err", err)
		} else {
			slog.Info("using live BNB price", "bnb_price", price, "configured", params.BNBPrice)
			params.BNBPrice = price
		}
	}
	return params
}
