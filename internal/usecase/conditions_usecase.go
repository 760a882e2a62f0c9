package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// IConditionsUseCase lists the commercial conditions offered for an event type.
type IConditionsUseCase interface {
	ListActive(ctx context.Context, eventType string) ([]entities.CommercialCondition, error)
}

type ConditionsUseCase struct {
	conditions interfaces.ICommercialConditionDirectory
	logger     *zap.Logger
}

var _ IConditionsUseCase = (*ConditionsUseCase)(nil)

func NewConditionsUseCase(conditions interfaces.ICommercialConditionDirectory, logger *zap.Logger) *ConditionsUseCase {
	return &ConditionsUseCase{conditions: conditions, logger: logger.Named("conditions.usecase")}
}

// ListActive drops conditions whose percentages are out of range so a bad
// directory row never reaches a quotation.
func (u *ConditionsUseCase) ListActive(ctx context.Context, eventType string) ([]entities.CommercialCondition, error) {
	if u.conditions == nil {
		return nil, ErrCatalogNotConfigured
	}
	eventType = strings.TrimSpace(eventType)

	all, err := u.conditions.ListActiveConditions(ctx, eventType)
	if err != nil {
		return nil, fmt.Errorf("list commercial conditions: %w", err)
	}
	out := make([]entities.CommercialCondition, 0, len(all))
	for _, c := range all {
		if err := quotation.ValidateCondition(c); err != nil {
			u.logger.Warn("[conditions][usecase] skipping invalid commercial condition",
				zap.String("condition_id", c.ID),
				zap.Error(err),
			)
			continue
		}
		out = append(out, c)
	}
	return out, nil
}
