package pricing

import (
	"context"
	"log/slog"
	"time"

	"github.com/alejandrodnm/yieldsim/internal/ports"
	"github.com/alejandrodnm/yieldsim/internal/rng"
)

// LabelSynthetic es la etiqueta de origen de las series generadas localmente.
const LabelSynthetic = "synthetic"

// SourceOptions configura FallbackSource.
type SourceOptions struct {
	// Label es la etiqueta de las series que vienen del provider.
	Label string
	// CacheKey construye la clave de cache para los días pedidos.
	// nil desactiva la cache.
	CacheKey func(days int) string
	// MaxAge es la antigüedad máxima aceptada de una serie cacheada.
	MaxAge time.Duration
	// Offline salta la cache y el provider y usa siempre la serie sintética.
	Offline bool
	// Seed de la serie sintética; 0 usa rng.DefaultSeed.
	Seed uint32
}

// FallbackSource obtiene la serie de precios y nunca falla: si la cache y el
// provider no dan una serie válida, usa la serie sintética.
type FallbackSource struct {
	provider ports.PriceProvider
	cache    ports.PriceCache
	opts     SourceOptions
}

// NewFallbackSource crea la fuente. provider y cache pueden ser nil.
func NewFallbackSource(provider ports.PriceProvider, cache ports.PriceCache, opts SourceOptions) *FallbackSource {
	if opts.Label == "" {
		opts.Label = "coingecko"
	}
	if opts.Seed == 0 {
		opts.Seed = rng.DefaultSeed
	}
	return &FallbackSource{provider: provider, cache: cache, opts: opts}
}

// Load devuelve los precios de los últimos `days` días y la etiqueta de origen.
func (s *FallbackSource) Load(ctx context.Context, days int) ([]float64, string) {
	if !s.opts.Offline && s.provider != nil {
		if prices, label, ok := s.fromCache(ctx, days); ok {
			return prices, label
		}
		if prices, ok := s.fromProvider(ctx, days); ok {
			return prices, s.opts.Label
		}
	}

	slog.Info("using synthetic prices", "days", days, "seed", s.opts.Seed)
	return Synthetic(days, s.opts.Seed), LabelSynthetic
}

func (s *FallbackSource) fromCache(ctx context.Context, days int) ([]float64, string, bool) {
	if s.cache == nil || s.opts.CacheKey == nil {
		return nil, "", false
	}
	key := s.opts.CacheKey(days)
	cached, ok, err := s.cache.Get(ctx, key, s.opts.MaxAge)
	if err != nil {
		slog.Warn("price cache read failed", "key", key, "err", err)
		return nil, "", false
	}
	if !ok || len(cached.Prices) < 2 {
		return nil, "", false
	}
	slog.Info("using cached prices",
		"key", key,
		"points", len(cached.Prices),
		"fetched_at", cached.FetchedAt.Format(time.RFC3339),
	)
	return cached.Prices, cached.Origin, true
}

func (s *FallbackSource) fromProvider(ctx context.Context, days int) ([]float64, bool) {
	prices, err := s.provider.FetchDailyPrices(ctx, days)
	if err != nil {
		slog.Warn("price fetch failed, falling back to synthetic", "days", days, "err", err)
		return nil, false
	}
	if len(prices) < 2 {
		slog.Warn("price fetch returned too few points, falling back to synthetic", "points", len(prices))
		return nil, false
	}

	if s.cache != nil && s.opts.CacheKey != nil {
		key := s.opts.CacheKey(days)
		if err := s.cache.Put(ctx, key, s.opts.Label, prices); err != nil {
			slog.Warn("price cache write failed", "key", key, "err", err)
		}
	}
	return prices, true
}
