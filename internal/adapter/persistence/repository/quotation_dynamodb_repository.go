package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultQuotationsTableName = "quotations"

type lineItemRecord struct {
	ServiceID   string `dynamodbav:"service_id"`
	CategoryID  string `dynamodbav:"category_id,omitempty"`
	Name        string `dynamodbav:"name"`
	ProfitType  string `dynamodbav:"profit_type,omitempty"`
	Position    int    `dynamodbav:"position"`
	UnitPrice   string `dynamodbav:"unit_price"`
	UnitCost    string `dynamodbav:"unit_cost"`
	UnitExpense string `dynamodbav:"unit_expense"`
	Quantity    int    `dynamodbav:"quantity"`
}

type paymentMethodRecord struct {
	ID                       string `dynamodbav:"id"`
	Name                     string `dynamodbav:"name"`
	InstallmentCount         int    `dynamodbav:"installment_count"`
	BaseCommissionPct        string `dynamodbav:"base_commission_pct"`
	FixedCommission          string `dynamodbav:"fixed_commission"`
	InstallmentCommissionPct string `dynamodbav:"installment_commission_pct"`
}

type conditionRecord struct {
	ID             string                `dynamodbav:"id"`
	Name           string                `dynamodbav:"name"`
	DiscountPct    string                `dynamodbav:"discount_pct"`
	AdvancePct     string                `dynamodbav:"advance_pct"`
	EventType      string                `dynamodbav:"event_type,omitempty"`
	PaymentMethods []paymentMethodRecord `dynamodbav:"payment_methods"`
}

// quotationItem keeps precio, utilidad_sistema and utilidad_venta next to the
// line items so reporting can read them without recomputing.
type quotationItem struct {
	ID                 string               `dynamodbav:"id"`
	Name               string               `dynamodbav:"name"`
	EventID            string               `dynamodbav:"event_id"`
	Status             string               `dynamodbav:"status"`
	LineItems          []lineItemRecord     `dynamodbav:"line_items"`
	Condition          *conditionRecord     `dynamodbav:"commercial_condition,omitempty"`
	Method             *paymentMethodRecord `dynamodbav:"payment_method,omitempty"`
	DiscountAtFreeze   string               `dynamodbav:"discount_at_freeze,omitempty"`
	Precio             string               `dynamodbav:"precio"`
	UtilidadSistema    string               `dynamodbav:"utilidad_sistema"`
	UtilidadVenta      string               `dynamodbav:"utilidad_venta"`
	SalesCommissionPct string               `dynamodbav:"sales_commission_pct"`
	CreatedAt          string               `dynamodbav:"created_at"`
	UpdatedAt          string               `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists quotations in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
type QuotationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb DynamoAPI, tableName string) *QuotationDynamoRepository {
	if tableName == "" {
		tableName = DefaultQuotationsTableName
	}
	return &QuotationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q quotation.Quotation) (quotation.Quotation, error) {
	return r.put(ctx, q, "attribute_not_exists(#id)")
}

// Save replaces a stored quotation. A missing row yields an empty quotation.
func (r *QuotationDynamoRepository) Save(ctx context.Context, q quotation.Quotation) (quotation.Quotation, error) {
	saved, err := r.put(ctx, q, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return quotation.Quotation{}, nil
		}
		return quotation.Quotation{}, err
	}
	return saved, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (quotation.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return quotation.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return quotation.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return quotation.Quotation{}, err
	}
	return fromQuotationItem(it)
}

func (r *QuotationDynamoRepository) put(ctx context.Context, q quotation.Quotation, condition string) (quotation.Quotation, error) {
	it, err := toQuotationItem(q)
	if err != nil {
		return quotation.Quotation{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return quotation.Quotation{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return quotation.Quotation{}, err
	}
	return q, nil
}

func toQuotationItem(q quotation.Quotation) (quotationItem, error) {
	totals, err := q.ComputeTotals()
	if err != nil {
		return quotationItem{}, fmt.Errorf("compute totals for %s: %w", q.ID, err)
	}
	s := q.Snapshot()

	precio := totals.FinalPrice
	if s.Status == entities.QuotationStatusApproved {
		precio = s.Precio
	}

	it := quotationItem{
		ID:                 s.ID,
		Name:               s.Name,
		EventID:            s.EventID,
		Status:             string(s.Status),
		LineItems:          make([]lineItemRecord, 0, len(s.LineItems)),
		DiscountAtFreeze:   optionalDecimalString(s.DiscountAtFreeze),
		Precio:             precio.String(),
		UtilidadSistema:    totals.SystemProfit.String(),
		UtilidadVenta:      totals.SaleProfit.String(),
		SalesCommissionPct: s.SalesCommissionPct.String(),
		CreatedAt:          formatTime(s.CreatedAt),
		UpdatedAt:          formatTime(s.UpdatedAt),
	}
	for _, li := range s.LineItems {
		it.LineItems = append(it.LineItems, lineItemRecord{
			ServiceID:   li.ServiceID,
			CategoryID:  li.CategoryID,
			Name:        li.Name,
			ProfitType:  string(li.ProfitType),
			Position:    li.Position,
			UnitPrice:   li.UnitPrice.String(),
			UnitCost:    li.UnitCost.String(),
			UnitExpense: li.UnitExpense.String(),
			Quantity:    li.Quantity,
		})
	}
	if s.Condition != nil {
		c := toConditionRecord(*s.Condition)
		it.Condition = &c
	}
	if s.Method != nil {
		m := toPaymentMethodRecord(*s.Method)
		it.Method = &m
	}
	return it, nil
}

func fromQuotationItem(it quotationItem) (quotation.Quotation, error) {
	status, err := entities.ParseQuotationStatus(it.Status)
	if err != nil {
		return quotation.Quotation{}, err
	}
	s := quotation.Snapshot{
		ID:        it.ID,
		Name:      it.Name,
		EventID:   it.EventID,
		Status:    status,
		LineItems: make([]entities.FrozenLineItem, 0, len(it.LineItems)),
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	if s.Precio, err = parseDecimal("precio", it.Precio); err != nil {
		return quotation.Quotation{}, err
	}
	if s.SalesCommissionPct, err = parseDecimal("sales_commission_pct", it.SalesCommissionPct); err != nil {
		return quotation.Quotation{}, err
	}
	if s.DiscountAtFreeze, err = parseOptionalDecimal("discount_at_freeze", it.DiscountAtFreeze); err != nil {
		return quotation.Quotation{}, err
	}

	for _, rec := range it.LineItems {
		li, err := fromLineItemRecord(rec)
		if err != nil {
			return quotation.Quotation{}, err
		}
		s.LineItems = append(s.LineItems, li)
	}
	if it.Condition != nil {
		c, err := fromConditionRecord(*it.Condition)
		if err != nil {
			return quotation.Quotation{}, err
		}
		s.Condition = &c
	}
	if it.Method != nil {
		m, err := fromPaymentMethodRecord(*it.Method)
		if err != nil {
			return quotation.Quotation{}, err
		}
		s.Method = &m
	}
	return quotation.Restore(s)
}

func fromLineItemRecord(rec lineItemRecord) (entities.FrozenLineItem, error) {
	li := entities.FrozenLineItem{
		ServiceID:  rec.ServiceID,
		CategoryID: rec.CategoryID,
		Name:       rec.Name,
		ProfitType: entities.ProfitType(rec.ProfitType),
		Position:   rec.Position,
		Quantity:   rec.Quantity,
	}
	var err error
	if li.UnitPrice, err = parseDecimal("unit_price", rec.UnitPrice); err != nil {
		return entities.FrozenLineItem{}, err
	}
	if li.UnitCost, err = parseDecimal("unit_cost", rec.UnitCost); err != nil {
		return entities.FrozenLineItem{}, err
	}
	if li.UnitExpense, err = parseDecimal("unit_expense", rec.UnitExpense); err != nil {
		return entities.FrozenLineItem{}, err
	}
	return li, nil
}

func toConditionRecord(c entities.CommercialCondition) conditionRecord {
	rec := conditionRecord{
		ID:             c.ID,
		Name:           c.Name,
		DiscountPct:    c.DiscountPct.String(),
		AdvancePct:     c.AdvancePct.String(),
		EventType:      c.EventType,
		PaymentMethods: make([]paymentMethodRecord, 0, len(c.PaymentMethods)),
	}
	for _, m := range c.PaymentMethods {
		rec.PaymentMethods = append(rec.PaymentMethods, toPaymentMethodRecord(m))
	}
	return rec
}

func fromConditionRecord(rec conditionRecord) (entities.CommercialCondition, error) {
	c := entities.CommercialCondition{ID: rec.ID, Name: rec.Name, EventType: rec.EventType}
	var err error
	if c.DiscountPct, err = parseDecimal("discount_pct", rec.DiscountPct); err != nil {
		return entities.CommercialCondition{}, err
	}
	if c.AdvancePct, err = parseDecimal("advance_pct", rec.AdvancePct); err != nil {
		return entities.CommercialCondition{}, err
	}
	for _, mr := range rec.PaymentMethods {
		m, err := fromPaymentMethodRecord(mr)
		if err != nil {
			return entities.CommercialCondition{}, err
		}
		c.PaymentMethods = append(c.PaymentMethods, m)
	}
	return c, nil
}

func toPaymentMethodRecord(m entities.PaymentMethod) paymentMethodRecord {
	return paymentMethodRecord{
		ID:                       m.ID,
		Name:                     m.Name,
		InstallmentCount:         m.InstallmentCount,
		BaseCommissionPct:        m.BaseCommissionPct.String(),
		FixedCommission:          m.FixedCommission.String(),
		InstallmentCommissionPct: m.InstallmentCommissionPct.String(),
	}
}

func fromPaymentMethodRecord(rec paymentMethodRecord) (entities.PaymentMethod, error) {
	m := entities.PaymentMethod{ID: rec.ID, Name: rec.Name, InstallmentCount: rec.InstallmentCount}
	var err error
	if m.BaseCommissionPct, err = parseDecimal("base_commission_pct", rec.BaseCommissionPct); err != nil {
		return entities.PaymentMethod{}, err
	}
	if m.FixedCommission, err = parseDecimal("fixed_commission", rec.FixedCommission); err != nil {
		return entities.PaymentMethod{}, err
	}
	if m.InstallmentCommissionPct, err = parseDecimal("installment_commission_pct", rec.InstallmentCommissionPct); err != nil {
		return entities.PaymentMethod{}, err
	}
	return m, nil
}
