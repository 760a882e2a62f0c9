package repository

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory single-table stand-in that understands the
// condition and key expressions the repositories issue.
type fakeDynamo struct {
	items    map[string]map[string]types.AttributeValue
	order    []string
	putErr   error
	pageSize int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func keyOf(av map[string]types.AttributeValue, name string) string {
	if s, ok := av[name].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	id := keyOf(in.Item, "id")
	_, exists := f.items[id]
	if in.ConditionExpression != nil {
		switch *in.ConditionExpression {
		case "attribute_not_exists(#id)":
			if exists {
				return nil, &types.ConditionalCheckFailedException{Message: strPtr("exists")}
			}
		case "attribute_exists(#id)":
			if !exists {
				return nil, &types.ConditionalCheckFailedException{Message: strPtr("missing")}
			}
		default:
			return nil, errors.New("unsupported condition " + *in.ConditionExpression)
		}
	}
	if !exists {
		f.order = append(f.order, id)
	}
	f.items[id] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	return &dynamodb.GetItemOutput{Item: f.items[keyOf(in.Key, "id")]}, nil
}

// Query pages through matching rows pageSize at a time so pagination is
// exercised.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	want := keyOf(in.ExpressionAttributeValues, ":qid")
	var matches []map[string]types.AttributeValue
	for _, id := range f.order {
		if keyOf(f.items[id], "quotation_id") == want {
			matches = append(matches, f.items[id])
		}
	}

	start := 0
	if in.ExclusiveStartKey != nil {
		for i, m := range matches {
			if keyOf(m, "id") == keyOf(in.ExclusiveStartKey, "id") {
				start = i + 1
			}
		}
	}
	end := len(matches)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}
	out := &dynamodb.QueryOutput{Items: matches[start:end]}
	if end < len(matches) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{"id": matches[end-1]["id"]}
	}
	return out, nil
}

func strPtr(s string) *string { return &s }
