package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const (
	conditionColumns = `id, name, discount_pct::text, advance_pct::text, COALESCE(event_type, '')`
	methodColumns    = `pm.id, pm.name, COALESCE(pm.installment_count, 0),
	pm.base_commission_pct::text, pm.fixed_commission::text, COALESCE(pm.installment_commission_pct, 0)::text`
)

// ConditionRepo reads commercial conditions and payment methods.
type ConditionRepo struct {
	db Querier
}

var _ interfaces.ICommercialConditionDirectory = (*ConditionRepo)(nil)

func NewConditionRepo(db Querier) *ConditionRepo {
	return &ConditionRepo{db: db}
}

type conditionRow struct {
	ID          string
	Name        string
	DiscountPct string
	AdvancePct  string
	EventType   string
}

func (r *conditionRow) targets() []any {
	return []any{&r.ID, &r.Name, &r.DiscountPct, &r.AdvancePct, &r.EventType}
}

func (r conditionRow) condition() (entities.CommercialCondition, error) {
	c := entities.CommercialCondition{ID: r.ID, Name: r.Name, EventType: r.EventType}
	if err := parseNumerics(
		numericField{"discount_pct", r.DiscountPct, &c.DiscountPct},
		numericField{"advance_pct", r.AdvancePct, &c.AdvancePct},
	); err != nil {
		return entities.CommercialCondition{}, fmt.Errorf("commercial condition %s: %w", r.ID, err)
	}
	return c, nil
}

type methodRow struct {
	ConditionID              string
	ID                       string
	Name                     string
	InstallmentCount         int
	BaseCommissionPct        string
	FixedCommission          string
	InstallmentCommissionPct string
}

func (r methodRow) method() (entities.PaymentMethod, error) {
	m := entities.PaymentMethod{ID: r.ID, Name: r.Name, InstallmentCount: r.InstallmentCount}
	if err := parseNumerics(
		numericField{"base_commission_pct", r.BaseCommissionPct, &m.BaseCommissionPct},
		numericField{"fixed_commission", r.FixedCommission, &m.FixedCommission},
		numericField{"installment_commission_pct", r.InstallmentCommissionPct, &m.InstallmentCommissionPct},
	); err != nil {
		return entities.PaymentMethod{}, fmt.Errorf("payment method %s: %w", r.ID, err)
	}
	return m, nil
}

// ListActiveConditions lists active conditions for the event type, or every
// active condition when eventType is empty. Conditions without an event type
// apply to all events.
func (r *ConditionRepo) ListActiveConditions(ctx context.Context, eventType string) ([]entities.CommercialCondition, error) {
	query := `
		SELECT ` + conditionColumns + `
		FROM commercial_conditions
		WHERE status = 'active'
		  AND ($1 = '' OR event_type IS NULL OR event_type = '' OR event_type = $1)
		ORDER BY position, name`

	conds, err := r.queryConditions(ctx, query, strings.TrimSpace(eventType))
	if err != nil {
		return nil, err
	}
	if len(conds) == 0 {
		return conds, nil
	}

	ids := make([]string, len(conds))
	for i, c := range conds {
		ids[i] = c.ID
	}
	methods, err := r.methodsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range conds {
		conds[i].PaymentMethods = methods[conds[i].ID]
	}
	return conds, nil
}

func (r *ConditionRepo) queryConditions(ctx context.Context, query string, args ...any) ([]entities.CommercialCondition, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commercial conditions: %w", err)
	}
	defer rows.Close()

	var conds []entities.CommercialCondition
	for rows.Next() {
		var row conditionRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("scan commercial condition: %w", err)
		}
		c, err := row.condition()
		if err != nil {
			return nil, err
		}
		conds = append(conds, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list commercial conditions: %w", err)
	}
	return conds, nil
}

func (r *ConditionRepo) GetCondition(ctx context.Context, id string) (entities.CommercialCondition, error) {
	query := `SELECT ` + conditionColumns + ` FROM commercial_conditions WHERE id = $1`

	var row conditionRow
	if err := r.db.QueryRow(ctx, query, id).Scan(row.targets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.CommercialCondition{}, nil
		}
		return entities.CommercialCondition{}, fmt.Errorf("get commercial condition: %w", err)
	}
	c, err := row.condition()
	if err != nil {
		return entities.CommercialCondition{}, err
	}
	methods, err := r.methodsFor(ctx, []string{c.ID})
	if err != nil {
		return entities.CommercialCondition{}, err
	}
	c.PaymentMethods = methods[c.ID]
	return c, nil
}

func (r *ConditionRepo) GetPaymentMethod(ctx context.Context, id string) (entities.PaymentMethod, error) {
	query := `SELECT '', ` + methodColumns + ` FROM payment_methods pm WHERE pm.id = $1`

	var row methodRow
	if err := r.db.QueryRow(ctx, query, id).Scan(row.targets()...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.PaymentMethod{}, nil
		}
		return entities.PaymentMethod{}, fmt.Errorf("get payment method: %w", err)
	}
	return row.method()
}

func (r *methodRow) targets() []any {
	return []any{&r.ConditionID, &r.ID, &r.Name, &r.InstallmentCount, &r.BaseCommissionPct, &r.FixedCommission, &r.InstallmentCommissionPct}
}

// methodsFor groups the eligible methods of each condition, keeping the
// directory order.
func (r *ConditionRepo) methodsFor(ctx context.Context, conditionIDs []string) (map[string][]entities.PaymentMethod, error) {
	query := `
		SELECT ccpm.commercial_condition_id, ` + methodColumns + `
		FROM commercial_condition_payment_methods ccpm
		JOIN payment_methods pm ON pm.id = ccpm.payment_method_id
		WHERE ccpm.commercial_condition_id = ANY($1)
		ORDER BY ccpm.commercial_condition_id, COALESCE(ccpm.position, 0), pm.name`

	rows, err := r.db.Query(ctx, query, conditionIDs)
	if err != nil {
		return nil, fmt.Errorf("list condition payment methods: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]entities.PaymentMethod, len(conditionIDs))
	for rows.Next() {
		var row methodRow
		if err := rows.Scan(row.targets()...); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		m, err := row.method()
		if err != nil {
			return nil, err
		}
		out[row.ConditionID] = append(out[row.ConditionID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list condition payment methods: %w", err)
	}
	return out, nil
}
