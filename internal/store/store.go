// Package store provides the Postgres-backed phone catalog: schema
// management, batch ingestion of scraped records, and verbatim query
// execution for the advisor.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

const queryTimeout = 8 * time.Second

// Row is one result row keyed by column name.
type Row map[string]any

// Store wraps the catalog database connection.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Open connects to the catalog database and verifies the connection.
func Open(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("connected to catalog database")
	return &Store{db: db, log: log}, nil
}

// Query executes sql verbatim and returns all rows as column-keyed maps.
// An empty result is returned as an empty (non-nil) slice.
func (s *Store) Query(ctx context.Context, query string) ([]Row, error) {
	return s.QueryArgs(ctx, query)
}

// QueryArgs is Query with placeholder arguments, for the API layer's
// parameterized lookups.
func (s *Store) QueryArgs(ctx context.Context, query string, args ...any) ([]Row, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	start := time.Now()
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	out := []Row{}
	for rows.Next() {
		values, err := scanRow(rows, len(columns))
		if err != nil {
			return nil, err
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	s.log.Debug("query executed",
		zap.Int("rows", len(out)),
		zap.Duration("duration", time.Since(start)))
	return out, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func scanRow(rows *sql.Rows, numCols int) ([]any, error) {
	values := make([]any, numCols)
	ptrs := make([]any, numCols)
	for i := range values {
		ptrs[i] = &values[i]
	}
	if err := rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	return values, nil
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case []byte:
		return string(val)
	case time.Time:
		return val.Format(time.RFC3339Nano)
	default:
		return val
	}
}
