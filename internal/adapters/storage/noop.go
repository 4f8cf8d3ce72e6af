package storage

import (
	"context"
	"time"

	"github.com/alejandrodnm/yieldsim/internal/ports"
)

// NoopCache es la cache usada cuando está desactivada: nunca encuentra nada
// y descarta lo que se guarda.
type NoopCache struct{}

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) Get(_ context.Context, _ string, _ time.Duration) (ports.CachedSeries, bool, error) {
	return ports.CachedSeries{}, false, nil
}
func (NoopCache) Put(_ context.Context, _, _ string, _ []float64) error { return nil }
func (NoopCache) Close() error                                       { return nil }
