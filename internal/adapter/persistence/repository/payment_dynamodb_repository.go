package repository

import (
	"context"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	DefaultPaymentsTableName = "payments"
	paymentsQuotationIDIndex = "quotation_id-index"
)

type paymentItem struct {
	ID          string `dynamodbav:"id"`
	QuotationID string `dynamodbav:"quotation_id"`
	ClientID    string `dynamodbav:"client_id,omitempty"`
	Amount      string `dynamodbav:"amount"`
	Status      string `dynamodbav:"status"`
	Method      string `dynamodbav:"metodo_pago,omitempty"`
	Concept     string `dynamodbav:"concepto,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	ProviderRaw string `dynamodbav:"mp_payload_raw,omitempty"`
}

// PaymentDynamoRepository persists the payment ledger in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id)
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	if tableName == "" {
		tableName = DefaultPaymentsTableName
	}
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

// ListByQuotationID returns the rows as stored. An unparseable amount or an
// unknown status is kept as-is so the balance can report the row.
func (r *PaymentDynamoRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.Payment, error) {
	rows, err := queryByQuotationID[paymentItem](ctx, r.ddb, r.tableName, paymentsQuotationIDIndex, quotationID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Payment, 0, len(rows))
	for _, it := range rows {
		out = append(out, fromPaymentItem(it))
	}
	return out, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:          p.ID,
		QuotationID: p.QuotationID,
		ClientID:    p.ClientID,
		Amount:      p.Amount.String(),
		Status:      string(p.Status),
		Method:      p.Method,
		Concept:     p.Concept,
		CreatedAt:   formatTime(p.CreatedAt),
		ProviderRaw: string(p.ProviderPayloadRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:          it.ID,
		QuotationID: it.QuotationID,
		ClientID:    it.ClientID,
		Method:      it.Method,
		Concept:     it.Concept,
		CreatedAt:   parseTime(it.CreatedAt),
	}
	if status, err := entities.ParsePaymentStatus(it.Status); err == nil {
		p.Status = status
	} else {
		p.Status = entities.PaymentStatus(it.Status)
	}
	// An unreadable amount surfaces as an unknown status rather than a zero.
	if amount, err := parseDecimal("amount", it.Amount); err == nil {
		p.Amount = amount
	} else {
		p.Status = entities.PaymentStatus("invalid_amount")
	}
	if it.ProviderRaw != "" {
		p.ProviderPayloadRaw = []byte(it.ProviderRaw)
	}
	return p
}
