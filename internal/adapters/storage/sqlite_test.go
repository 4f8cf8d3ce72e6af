package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStorage(t *testing.T) *SQLiteStorage {
	t.Helper()
	db, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSQLiteStorage_PutAndGet(t *testing.T) {
	db := newMemStorage(t)
	ctx := context.Background()

	prices := []float64{45000, 45250.96823722419, 44391.2193080865}
	require.NoError(t, db.Put(ctx, "bitcoin|usd|3", "coingecko", prices))

	got, ok, err := db.Get(ctx, "bitcoin|usd|3", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "coingecko", got.Origin)
	assert.Equal(t, prices, got.Prices, "JSON debe conservar los float64 exactos")
	assert.WithinDuration(t, time.Now(), got.FetchedAt, time.Minute)
}

func TestSQLiteStorage_GetMissing(t *testing.T) {
	db := newMemStorage(t)

	_, ok, err := db.Get(context.Background(), "nope", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStorage_StaleEntryIgnored(t *testing.T) {
	db := newMemStorage(t)
	ctx := context.Background()

	db.now = func() time.Time { return time.Now().UTC().Add(-3 * time.Hour) }
	require.NoError(t, db.Put(ctx, "k", "coingecko", []float64{1, 2}))
	db.now = func() time.Time { return time.Now().UTC() }

	_, ok, err := db.Get(ctx, "k", time.Hour)
	require.NoError(t, err)
	assert.False(t, ok)

	// sin límite de antigüedad sí se devuelve
	_, ok, err = db.Get(ctx, "k", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSQLiteStorage_PutReplaces(t *testing.T) {
	db := newMemStorage(t)
	ctx := context.Background()

	require.NoError(t, db.Put(ctx, "k", "coingecko", []float64{1, 2}))
	require.NoError(t, db.Put(ctx, "k", "coingecko", []float64{3, 4, 5}))

	got, ok, err := db.Get(ctx, "k", time.Hour)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []float64{3, 4, 5}, got.Prices)
}

func TestSQLiteStorage_PruneOld(t *testing.T) {
	db := newMemStorage(t)
	ctx := context.Background()

	db.now = func() time.Time { return time.Now().UTC().Add(-40 * 24 * time.Hour) }
	require.NoError(t, db.Put(ctx, "old", "coingecko", []float64{1, 2}))
	db.now = func() time.Time { return time.Now().UTC() }
	require.NoError(t, db.Put(ctx, "new", "coingecko", []float64{1, 2}))

	db.pruneOld(ctx)

	_, ok, _ := db.Get(ctx, "old", 0)
	assert.False(t, ok)
	_, ok, _ = db.Get(ctx, "new", 0)
	assert.True(t, ok)
}

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	require.NoError(t, c.Put(context.Background(), "k", "coingecko", []float64{1, 2}))
	_, ok, err := c.Get(context.Background(), "k", 0)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Close())
}
