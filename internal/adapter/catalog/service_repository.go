package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const serviceColumns = `
	id, name, public_price::text, cost::text, COALESCE(expense, 0)::text,
	profit_type, COALESCE(category_id, ''), COALESCE(position, 0)`

// ServiceRepo reads live catalog services.
type ServiceRepo struct {
	db Querier
}

var _ interfaces.ICatalogReader = (*ServiceRepo)(nil)

func NewServiceRepo(db Querier) *ServiceRepo {
	return &ServiceRepo{db: db}
}

type serviceRow struct {
	ID          string
	Name        string
	PublicPrice string
	Cost        string
	Expense     string
	ProfitType  string
	CategoryID  string
	Position    int
}

func (r *serviceRow) targets() []any {
	return []any{&r.ID, &r.Name, &r.PublicPrice, &r.Cost, &r.Expense, &r.ProfitType, &r.CategoryID, &r.Position}
}

func (r serviceRow) entry() (entities.ServiceCatalogEntry, error) {
	e := entities.ServiceCatalogEntry{
		ID:         r.ID,
		Name:       r.Name,
		ProfitType: entities.ParseProfitType(r.ProfitType),
		CategoryID: r.CategoryID,
		Position:   r.Position,
	}
	if err := parseNumerics(
		numericField{"public_price", r.PublicPrice, &e.PublicPrice},
		numericField{"cost", r.Cost, &e.Cost},
		numericField{"expense", r.Expense, &e.Expense},
	); err != nil {
		return entities.ServiceCatalogEntry{}, fmt.Errorf("service %s: %w", r.ID, err)
	}
	return e, nil
}

func (r *ServiceRepo) GetService(ctx context.Context, id string) (entities.ServiceCatalogEntry, error) {
	query := `SELECT` + serviceColumns + ` FROM services WHERE id = $1`

	var row serviceRow
	if err := r.db.QueryRow(ctx, query, id).Scan(row.targets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.ServiceCatalogEntry{}, nil
		}
		return entities.ServiceCatalogEntry{}, fmt.Errorf("get service: %w", err)
	}
	return row.entry()
}

func (r *ServiceRepo) GetServicesByIDs(ctx context.Context, ids []string) ([]entities.ServiceCatalogEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT` + serviceColumns + ` FROM services WHERE id = ANY($1) ORDER BY position, name`
	return r.list(ctx, "get services by ids", query, ids)
}

func (r *ServiceRepo) ListServicesByCategory(ctx context.Context, categoryID string) ([]entities.ServiceCatalogEntry, error) {
	query := `SELECT` + serviceColumns + ` FROM services WHERE category_id = $1 ORDER BY position, name`
	return r.list(ctx, "list services by category", query, categoryID)
}

func (r *ServiceRepo) list(ctx context.Context, op, query string, args ...any) ([]entities.ServiceCatalogEntry, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var out []entities.ServiceCatalogEntry
	for rows.Next() {
		var row serviceRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		e, err := row.entry()
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}
