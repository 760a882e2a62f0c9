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

// quotationLoader reads a quotation and, while it is draft or pending, swaps
// the stored condition and method snapshots for the live directory values.
// Approved and rejected quotations keep their stored terms.
type quotationLoader struct {
	repo       interfaces.IQuotationRepository
	conditions interfaces.ICommercialConditionDirectory
	logger     *zap.Logger
}

func (l quotationLoader) load(ctx context.Context, id string) (quotation.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return quotation.Quotation{}, ErrInvalidQuotationID
	}

	q, err := l.repo.GetByID(ctx, id)
	if err != nil {
		return quotation.Quotation{}, fmt.Errorf("load quotation %s: %w", id, err)
	}
	if q.ID == "" {
		return quotation.Quotation{}, ErrQuotationNotFound
	}
	if q.Status.IsTerminal() || l.conditions == nil {
		return q, nil
	}

	stored := q.Condition()
	if stored == nil {
		return q, nil
	}
	live, err := l.conditions.GetCondition(ctx, stored.ID)
	if err != nil {
		return quotation.Quotation{}, fmt.Errorf("refresh commercial condition %s: %w", stored.ID, err)
	}
	if live.ID == "" {
		l.logger.Warn("[quotation][usecase] commercial condition no longer in directory, keeping stored terms",
			zap.String("quotation_id", q.ID),
			zap.String("condition_id", stored.ID),
		)
		return q, nil
	}

	var method *entities.PaymentMethod
	if m := q.Method(); m != nil {
		if lm, ok := live.Method(m.ID); ok {
			method = &lm
		} else {
			l.logger.Warn("[quotation][usecase] payment method no longer eligible, dropping it",
				zap.String("quotation_id", q.ID),
				zap.String("condition_id", live.ID),
				zap.String("payment_method_id", m.ID),
			)
		}
	}
	return q.WithLiveTerms(&live, method), nil
}
