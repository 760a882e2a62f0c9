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
	DefaultProductionCostsTableName = "production_costs"
	costsQuotationIDIndex           = "quotation_id-index"
)

type productionCostItem struct {
	ID          string `dynamodbav:"id"`
	QuotationID string `dynamodbav:"quotation_id"`
	Name        string `dynamodbav:"nombre"`
	Description string `dynamodbav:"descripcion,omitempty"`
	Amount      string `dynamodbav:"costo"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// ProductionCostDynamoRepository persists the production cost ledger.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quotation_id-index (PK: quotation_id)
type ProductionCostDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IProductionCostRepository = (*ProductionCostDynamoRepository)(nil)

func NewProductionCostDynamoRepository(ddb DynamoAPI, tableName string) *ProductionCostDynamoRepository {
	if tableName == "" {
		tableName = DefaultProductionCostsTableName
	}
	return &ProductionCostDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ProductionCostDynamoRepository) Create(ctx context.Context, c entities.ProductionCost) (entities.ProductionCost, error) {
	av, err := attributevalue.MarshalMap(productionCostItem{
		ID:          c.ID,
		QuotationID: c.QuotationID,
		Name:        c.Name,
		Description: c.Description,
		Amount:      c.Amount.String(),
		CreatedAt:   formatTime(c.CreatedAt),
	})
	if err != nil {
		return entities.ProductionCost{}, err
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
		return entities.ProductionCost{}, err
	}
	return c, nil
}

func (r *ProductionCostDynamoRepository) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.ProductionCost, error) {
	rows, err := queryByQuotationID[productionCostItem](ctx, r.ddb, r.tableName, costsQuotationIDIndex, quotationID)
	if err != nil {
		return nil, err
	}
	out := make([]entities.ProductionCost, 0, len(rows))
	for _, it := range rows {
		amount, err := parseDecimal("costo", it.Amount)
		if err != nil {
			return nil, err
		}
		out = append(out, entities.ProductionCost{
			ID:          it.ID,
			QuotationID: it.QuotationID,
			Name:        it.Name,
			Description: it.Description,
			Amount:      amount,
			CreatedAt:   parseTime(it.CreatedAt),
		})
	}
	return out, nil
}
