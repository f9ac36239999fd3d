// Package migrations embeds the SQL migration files and applies them with
// goose. cmd/api runs Up at startup; integration tests use it from TestMain.
package migrations

import (
	"context"
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// NewProvider returns a goose provider for the embedded migrations on a
// Postgres database opened with the pgx database/sql driver.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	return goose.NewProvider(goose.DialectPostgres, db, FS)
}

// Up applies every pending migration and returns the versions it applied,
// in order. An up-to-date schema yields an empty slice.
func Up(ctx context.Context, db *sql.DB) ([]int64, error) {
	provider, err := NewProvider(db)
	if err != nil {
		return nil, err
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return nil, err
	}
	versions := make([]int64, len(results))
	for i, res := range results {
		versions[i] = res.Source.Version
	}
	return versions, nil
}
