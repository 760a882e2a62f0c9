// Package catalog reads the catalog, commercial conditions and pricing
// configuration owned by the admin application's PostgreSQL database.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Querier is the read side of *pgxpool.Pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ Querier = (*pgxpool.Pool)(nil)

// Numerics are selected as ::text and parsed here so no precision is lost
// through float64.
func parseNumeric(column, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s %q: %w", column, raw, err)
	}
	return d, nil
}

type numericField struct {
	column string
	raw    string
	dst    *decimal.Decimal
}

func parseNumerics(fields ...numericField) error {
	for _, f := range fields {
		d, err := parseNumeric(f.column, f.raw)
		if err != nil {
			return err
		}
		*f.dst = d
	}
	return nil
}
