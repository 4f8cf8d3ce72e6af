package main

import (
	"context"
	"log/slog"

	"github.com/alejandrodnm/yieldsim/config"
	"github.com/alejandrodnm/yieldsim/internal/adapters/coingecko"
	"github.com/alejandrodnm/yieldsim/internal/adapters/onchain"
	"github.com/alejandrodnm/yieldsim/internal/adapters/storage"
	"github.com/alejandrodnm/yieldsim/internal/backtest"
	"github.com/alejandrodnm/yieldsim/internal/domain"
	"github.com/alejandrodnm/yieldsim/internal/ports"
	"github.com/alejandrodnm/yieldsim/internal/pricing"
)

func newPriceClient(cfg *config.Config) *coingecko.Client {
	return coingecko.NewClient(coingecko.Options{
		BaseURL:    cfg.API.CoinGeckoBase,
		CoinID:     cfg.API.CoinID,
		VsCurrency: cfg.API.VsCurrency,
		APIKey:     cfg.API.APIKey,
		Timeout:    cfg.Timeout(),
	})
}

// newPriceSource arma cache → CoinGecko → sintético. Si la cache no abre se
// sigue sin ella: la descarga de precios nunca detiene el backtest.
func newPriceSource(cfg *config.Config, client *coingecko.Client, offline bool) (*pricing.FallbackSource, func()) {
	var cache ports.PriceCache = storage.NewNoopCache()
	if !cfg.Cache.Disabled && !offline {
		store, err := storage.NewSQLiteStorage(cfg.Cache.DSN)
		if err != nil {
			slog.Warn("price cache unavailable, continuing without it", "err", err, "dsn", cfg.Cache.DSN)
		} else {
			cache = store
		}
	}

	source := pricing.NewFallbackSource(client, cache, pricing.SourceOptions{
		Label:    "coingecko",
		CacheKey: client.CacheKey,
		MaxAge:   cfg.CacheMaxAge(),
		Offline:  offline,
		Seed:     cfg.Simulation.Seed,
	})
	return source, func() {
		if err := cache.Close(); err != nil {
			slog.Warn("closing price cache", "err", err)
		}
	}
}

// newLiveInputs prepara el oráculo de gas y el precio spot de BNB. Si el RPC
// no conecta, el gas configurado se mantiene.
func newLiveInputs(ctx context.Context, cfg *config.Config, client *coingecko.Client, wantGas, wantBNB bool) (backtest.LiveInputs, func()) {
	in := backtest.LiveInputs{BNBCoinID: cfg.API.BNBCoinID}
	closeFn := func() {}

	if wantGas {
		oracle, err := onchain.NewGasOracle(ctx, cfg.API.BSCRPCURL)
		if err != nil {
			slog.Warn("gas oracle unavailable", "err", err)
		} else {
			in.Gas = oracle
			closeFn = oracle.Close
		}
	}
	if wantBNB {
		in.Spot = client
	}
	return in, closeFn
}

func runConfig(cfg *config.Config) backtest.Config {
	return backtest.Config{
		Days: cfg.Simulation.Days,
		Params: domain.SimulationParams{
			BNBPrice:     cfg.Simulation.BNBPrice,
			GasGwei:      cfg.Simulation.GasGwei,
			CyclesPerDay: cfg.Simulation.CyclesPerDay,
			TVL:          cfg.Simulation.TVL,
		},
		Seed:           cfg.Simulation.Seed,
		SparklineWidth: cfg.Simulation.SparklineWidth,
	}
}
