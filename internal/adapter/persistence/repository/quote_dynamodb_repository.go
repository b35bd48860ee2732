package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/pricing"
	"quote_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultQuotesTableName = "quotes"
	maxMutateAttempts      = 5
)

type quoteServiceItem struct {
	ServiceID string `dynamodbav:"service_id"`
	Quantity  int    `dynamodbav:"quantity"`
	Price     string `dynamodbav:"price"`
	Date      string `dynamodbav:"date"`
}

type quoteItem struct {
	ID         string             `dynamodbav:"id"`
	CustomerID string             `dynamodbav:"customer_id"`
	Services   []quoteServiceItem `dynamodbav:"services"`
	Status     string             `dynamodbav:"status"`
	Total      string             `dynamodbav:"total"`
	CreatedAt  string             `dynamodbav:"created_at"`
	UpdatedAt  string             `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Customer lookups scan with a filter; the table is expected to stay small.

type QuoteDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb dynamoDBAPI, tableName string) *QuoteDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = getenvDefault("QUOTES_TABLE", defaultQuotesTableName)
	}
	return &QuoteDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	q.Total = pricing.Total(q.Services)
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	return r.scan(ctx, &dynamodb.ScanInput{TableName: aws.String(r.tableName)})
}

func (r *QuoteDynamoRepository) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error) {
	return r.scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#customer_id = :customer_id"),
		ExpressionAttributeNames: map[string]string{
			"#customer_id": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":customer_id": &types.AttributeValueMemberS{Value: customerID},
		},
	})
}

func (r *QuoteDynamoRepository) scan(ctx context.Context, in *dynamodb.ScanInput) ([]entities.Quote, error) {
	out := []entities.Quote{}
	p := dynamodb.NewScanPaginator(r.ddb, in)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []quoteItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromQuoteItem(it))
		}
	}
	return out, nil
}

// Update writes only the fields present in the patch. Services and total are
// always written together.
func (r *QuoteDynamoRepository) Update(ctx context.Context, id string, patch entities.QuotePatch) (entities.Quote, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	sets := []string{"#updated_at = :updated_at"}
	names := map[string]string{"#updated_at": "updated_at"}
	values := map[string]types.AttributeValue{
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}

	if patch.CustomerID != nil {
		sets = append(sets, "#customer_id = :customer_id")
		names["#customer_id"] = "customer_id"
		values[":customer_id"] = &types.AttributeValueMemberS{Value: *patch.CustomerID}
	}
	if patch.Status != nil {
		sets = append(sets, "#status = :status")
		names["#status"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: string(*patch.Status)}
	}
	if patch.Services != nil {
		services, err := attributevalue.Marshal(toQuoteServiceItems(patch.Services))
		if err != nil {
			return entities.Quote{}, err
		}
		sets = append(sets, "#services = :services", "#total = :total")
		names["#services"] = "services"
		names["#total"] = "total"
		values[":services"] = services
		values[":total"] = &types.AttributeValueMemberS{Value: floatToString(pricing.Total(patch.Services))}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET " + strings.Join(sets, ", ")),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quote{}, nil
		}
		return entities.Quote{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quote{}, nil
	}
	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

// Mutate is an optimistic read-modify-write: the item is put back only if its
// updated_at still holds the value that was read, and the whole cycle is
// retried when another writer got there first.
func (r *QuoteDynamoRepository) Mutate(ctx context.Context, id string, fn func(*entities.Quote) error) (entities.Quote, error) {
	for attempt := 0; attempt < maxMutateAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return entities.Quote{}, err
		}
		if current.ID == "" {
			return entities.Quote{}, nil
		}
		readAt := formatTime(current.UpdatedAt)

		if err := fn(&current); err != nil {
			return entities.Quote{}, err
		}
		current.ID = id
		current.Total = pricing.Total(current.Services)
		current.UpdatedAt = time.Now().UTC()

		av, err := attributevalue.MarshalMap(toQuoteItem(current))
		if err != nil {
			return entities.Quote{}, err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("#updated_at = :read_at"),
			ExpressionAttributeNames: map[string]string{
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":read_at": &types.AttributeValueMemberS{Value: readAt},
			},
		})
		if err == nil {
			return current, nil
		}
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			return entities.Quote{}, err
		}
	}
	return entities.Quote{}, interfaces.ErrWriteConflict
}

func toQuoteServiceItems(lines []entities.QuoteService) []quoteServiceItem {
	out := make([]quoteServiceItem, 0, len(lines))
	for _, l := range lines {
		out = append(out, quoteServiceItem{
			ServiceID: l.ServiceID,
			Quantity:  l.Quantity,
			Price:     floatToString(l.Price),
			Date:      formatTime(l.Date),
		})
	}
	return out
}

func toQuoteItem(q entities.Quote) quoteItem {
	return quoteItem{
		ID:         q.ID,
		CustomerID: q.CustomerID,
		Services:   toQuoteServiceItems(q.Services),
		Status:     string(q.Status),
		Total:      floatToString(q.Total),
		CreatedAt:  formatTime(q.CreatedAt),
		UpdatedAt:  formatTime(q.UpdatedAt),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	services := make([]entities.QuoteService, 0, len(it.Services))
	for _, s := range it.Services {
		services = append(services, entities.QuoteService{
			ServiceID: s.ServiceID,
			Quantity:  s.Quantity,
			Price:     stringToFloat(s.Price),
			Date:      parseTime(s.Date),
		})
	}
	return entities.Quote{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Services:   services,
		Status:     entities.QuoteStatus(it.Status),
		Total:      stringToFloat(it.Total),
		CreatedAt:  parseTime(it.CreatedAt),
		UpdatedAt:  parseTime(it.UpdatedAt),
	}
}
