package storage

// sqlite.go: cache local de series de precios.
//
// Estrategia:
//   - `price_series`: UNA fila por serie pedida (coin|vs|days), UPSERT.
//     Los precios se guardan como JSON: siempre se leen enteros.
//   - Una serie más antigua que maxAge se ignora (y se reescribe al bajar otra).
//   - Prune automático al arrancar: series no actualizadas en 30d.
//   - Nunca se guardan resultados de simulación, solo inputs.

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alejandrodnm/yieldsim/internal/ports"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS price_series (
    series_key  TEXT PRIMARY KEY,
    fetch_id    TEXT    NOT NULL,
    origin      TEXT    NOT NULL,
    fetched_at  INTEGER NOT NULL,
    points      INTEGER NOT NULL DEFAULT 0,
    prices_json TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_series_fetched ON price_series(fetched_at DESC);
`

const retentionSeries = 30 * 24 * time.Hour

// SQLiteStorage implementa ports.PriceCache usando SQLite (pure Go, sin CGo).
type SQLiteStorage struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada.
// Aplica el schema y limpia series antiguas.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	s := &SQLiteStorage{db: db, now: func() time.Time { return time.Now().UTC() }}
	s.pruneOld(context.Background())
	return s, nil
}

// Get devuelve la serie guardada bajo key si no es más antigua que maxAge.
// maxAge <= 0 acepta cualquier antigüedad.
func (s *SQLiteStorage) Get(ctx context.Context, key string, maxAge time.Duration) (ports.CachedSeries, bool, error) {
	var (
		origin    string
		fetchedAt int64
		raw       string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT origin, fetched_at, prices_json FROM price_series WHERE series_key = ?`, key,
	).Scan(&origin, &fetchedAt, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.CachedSeries{}, false, nil
	}
	if err != nil {
		return ports.CachedSeries{}, false, fmt.Errorf("storage.Get: query %q: %w", key, err)
	}

	fetched := time.Unix(fetchedAt, 0).UTC()
	if maxAge > 0 && s.now().Sub(fetched) > maxAge {
		slog.Debug("cached series is stale", "key", key, "age", s.now().Sub(fetched).Round(time.Minute))
		return ports.CachedSeries{}, false, nil
	}

	var prices []float64
	if err := json.Unmarshal([]byte(raw), &prices); err != nil {
		return ports.CachedSeries{}, false, fmt.Errorf("storage.Get: decode %q: %w", key, err)
	}

	return ports.CachedSeries{Origin: origin, FetchedAt: fetched, Prices: prices}, true, nil
}

// Put guarda la serie bajo key, reemplazando la anterior.
func (s *SQLiteStorage) Put(ctx context.Context, key, origin string, prices []float64) error {
	raw, err := json.Marshal(prices)
	if err != nil {
		return fmt.Errorf("storage.Put: encode: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `
		INSERT INTO price_series (series_key, fetch_id, origin, fetched_at, points, prices_json)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(series_key) DO UPDATE SET
			fetch_id    = excluded.fetch_id,
			origin      = excluded.origin,
			fetched_at  = excluded.fetched_at,
			points      = excluded.points,
			prices_json = excluded.prices_json
	`, key, uuid.New().String(), origin, s.now().Unix(), len(prices), string(raw)); err != nil {
		return fmt.Errorf("storage.Put: upsert %q: %w", key, err)
	}
	return nil
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// pruneOld elimina series antiguas para mantener la DB ligera.
func (s *SQLiteStorage) pruneOld(ctx context.Context) {
	cutoff := s.now().Add(-retentionSeries).Unix()
	s.db.ExecContext(ctx, `DELETE FROM price_series WHERE fetched_at < ?`, cutoff)
}
