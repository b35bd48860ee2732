package repository

import (
	"context"
	"encoding/json"
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
	defaultSettlementsTableName = "settlements"
	settlementsQuoteIDIndex     = "quote_id-index"
	quoteGuardPrefix            = "quote#"
)

type settlementServiceItem struct {
	ServiceID   string  `dynamodbav:"service_id"`
	Quantity    int     `dynamodbav:"quantity"`
	Price       string  `dynamodbav:"price"`
	Date        string  `dynamodbav:"date"`
	ActualPrice *string `dynamodbav:"actual_price,omitempty"`
	Notes       string  `dynamodbav:"notes,omitempty"`
}

type additionalChargeItem struct {
	ID          string `dynamodbav:"id"`
	Description string `dynamodbav:"description"`
	Amount      string `dynamodbav:"amount"`
}

type settlementPaymentItem struct {
	ID                 string `dynamodbav:"id"`
	Status             string `dynamodbav:"status"`
	Date               string `dynamodbav:"date"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

type settlementItem struct {
	ID                string                  `dynamodbav:"id"`
	QuoteID           string                  `dynamodbav:"quote_id"`
	CustomerID        string                  `dynamodbav:"customer_id"`
	Services          []settlementServiceItem `dynamodbav:"services"`
	AdditionalCharges []additionalChargeItem  `dynamodbav:"additional_charges"`
	Total             string                  `dynamodbav:"total"`
	Status            string                  `dynamodbav:"status"`
	Payment           *settlementPaymentItem  `dynamodbav:"payment,omitempty"`
	CreatedAt         string                  `dynamodbav:"created_at"`
	UpdatedAt         string                  `dynamodbav:"updated_at"`
}

// SettlementDynamoRepository persists Settlement entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//
// Each settlement is written together with a guard item keyed
// "quote#<quote_id>" so a quote can own at most one settlement. Guard items
// carry no quote_id, which keeps them out of the GSI and out of List.

type SettlementDynamoRepository struct {
	ddb       dynamoDBAPI
	tableName string
}

var _ interfaces.ISettlementRepository = (*SettlementDynamoRepository)(nil)

func NewSettlementDynamoRepository(ddb dynamoDBAPI, tableName string) *SettlementDynamoRepository {
	if strings.TrimSpace(tableName) == "" {
		tableName = getenvDefault("SETTLEMENTS_TABLE", defaultSettlementsTableName)
	}
	return &SettlementDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *SettlementDynamoRepository) Create(ctx context.Context, s entities.Settlement) (entities.Settlement, error) {
	s.Total = pricing.SettlementTotal(s)
	av, err := attributevalue.MarshalMap(toSettlementItem(s))
	if err != nil {
		return entities.Settlement{}, err
	}
	notExists := aws.String("attribute_not_exists(#id)")
	idName := map[string]string{"#id": "id"}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{Put: &types.Put{
				TableName:                aws.String(r.tableName),
				Item:                     av,
				ConditionExpression:      notExists,
				ExpressionAttributeNames: idName,
			}},
			{Put: &types.Put{
				TableName: aws.String(r.tableName),
				Item: map[string]types.AttributeValue{
					"id":            &types.AttributeValueMemberS{Value: quoteGuardPrefix + s.QuoteID},
					"settlement_id": &types.AttributeValueMemberS{Value: s.ID},
				},
				ConditionExpression:      notExists,
				ExpressionAttributeNames: idName,
			}},
		},
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) && guardRejected(tce) {
			return entities.Settlement{}, interfaces.ErrDuplicate
		}
		return entities.Settlement{}, err
	}
	return s, nil
}

// guardRejected reports whether the quote guard put (second item) failed its
// condition.
func guardRejected(tce *types.TransactionCanceledException) bool {
	if len(tce.CancellationReasons) < 2 {
		return false
	}
	code := tce.CancellationReasons[1].Code
	return code != nil && *code == "ConditionalCheckFailed"
}

func (r *SettlementDynamoRepository) GetByID(ctx context.Context, id string) (entities.Settlement, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Settlement{}, err
	}
	if len(out.Item) == 0 {
		return entities.Settlement{}, nil
	}

	var it settlementItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Settlement{}, err
	}
	return fromSettlementItem(it), nil
}

func (r *SettlementDynamoRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.Settlement, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(settlementsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Settlement{}, err
	}
	if len(out.Items) == 0 {
		return entities.Settlement{}, nil
	}

	var it settlementItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Settlement{}, err
	}
	return fromSettlementItem(it), nil
}

func (r *SettlementDynamoRepository) List(ctx context.Context) ([]entities.Settlement, error) {
	out := []entities.Settlement{}
	p := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName:                aws.String(r.tableName),
		FilterExpression:         aws.String("attribute_exists(#quote_id)"),
		ExpressionAttributeNames: map[string]string{"#quote_id": "quote_id"},
	})
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []settlementItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromSettlementItem(it))
		}
	}
	return out, nil
}

// Update merges the patch through Mutate. The total depends on lines and
// charges together, so a partial SET expression cannot keep it consistent.
func (r *SettlementDynamoRepository) Update(ctx context.Context, id string, patch entities.SettlementPatch) (entities.Settlement, error) {
	return r.Mutate(ctx, id, func(s *entities.Settlement) error {
		patch.Apply(s)
		return nil
	})
}

// Mutate puts the changed settlement back only if its updated_at still holds
// the value that was read, retrying the cycle when another writer won.
func (r *SettlementDynamoRepository) Mutate(ctx context.Context, id string, fn func(*entities.Settlement) error) (entities.Settlement, error) {
	for attempt := 0; attempt < maxMutateAttempts; attempt++ {
		current, err := r.GetByID(ctx, id)
		if err != nil {
			return entities.Settlement{}, err
		}
		if current.ID == "" {
			return entities.Settlement{}, nil
		}
		readAt := formatTime(current.UpdatedAt)

		if err := fn(&current); err != nil {
			return entities.Settlement{}, err
		}
		current.ID = id
		current.Total = pricing.SettlementTotal(current)
		current.UpdatedAt = time.Now().UTC()

		av, err := attributevalue.MarshalMap(toSettlementItem(current))
		if err != nil {
			return entities.Settlement{}, err
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
			return entities.Settlement{}, err
		}
	}
	return entities.Settlement{}, interfaces.ErrWriteConflict
}

func toSettlementItem(s entities.Settlement) settlementItem {
	it := settlementItem{
		ID:                s.ID,
		QuoteID:           s.QuoteID,
		CustomerID:        s.CustomerID,
		Services:          make([]settlementServiceItem, 0, len(s.Services)),
		AdditionalCharges: make([]additionalChargeItem, 0, len(s.AdditionalCharges)),
		Total:             floatToString(s.Total),
		Status:            string(s.Status),
		CreatedAt:         formatTime(s.CreatedAt),
		UpdatedAt:         formatTime(s.UpdatedAt),
	}
	for _, l := range s.Services {
		line := settlementServiceItem{
			ServiceID: l.ServiceID,
			Quantity:  l.Quantity,
			Price:     floatToString(l.Price),
			Date:      formatTime(l.Date),
			Notes:     l.Notes,
		}
		if l.ActualPrice != nil {
			v := floatToString(*l.ActualPrice)
			line.ActualPrice = &v
		}
		it.Services = append(it.Services, line)
	}
	for _, c := range s.AdditionalCharges {
		it.AdditionalCharges = append(it.AdditionalCharges, additionalChargeItem{
			ID:          c.ID,
			Description: c.Description,
			Amount:      floatToString(c.Amount),
		})
	}
	if s.Payment != nil {
		it.Payment = &settlementPaymentItem{
			ID:                 s.Payment.ID,
			Status:             s.Payment.Status,
			Date:               formatTime(s.Payment.Date),
			ProviderPayloadRaw: string(s.Payment.ProviderResponse),
		}
	}
	return it
}

func fromSettlementItem(it settlementItem) entities.Settlement {
	s := entities.Settlement{
		ID:                it.ID,
		QuoteID:           it.QuoteID,
		CustomerID:        it.CustomerID,
		Services:          make([]entities.SettlementService, 0, len(it.Services)),
		AdditionalCharges: make([]entities.AdditionalCharge, 0, len(it.AdditionalCharges)),
		Total:             stringToFloat(it.Total),
		Status:            entities.SettlementStatus(it.Status),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	for _, l := range it.Services {
		line := entities.SettlementService{
			ServiceID: l.ServiceID,
			Quantity:  l.Quantity,
			Price:     stringToFloat(l.Price),
			Date:      parseTime(l.Date),
			Notes:     l.Notes,
		}
		if l.ActualPrice != nil {
			v := stringToFloat(*l.ActualPrice)
			line.ActualPrice = &v
		}
		s.Services = append(s.Services, line)
	}
	for _, c := range it.AdditionalCharges {
		s.AdditionalCharges = append(s.AdditionalCharges, entities.AdditionalCharge{
			ID:          c.ID,
			Description: c.Description,
			Amount:      stringToFloat(c.Amount),
		})
	}
	if it.Payment != nil {
		s.Payment = &entities.SettlementPayment{
			ID:     it.Payment.ID,
			Status: it.Payment.Status,
			Date:   parseTime(it.Payment.Date),
		}
		if it.Payment.ProviderPayloadRaw != "" {
			s.Payment.ProviderResponse = json.RawMessage(it.Payment.ProviderPayloadRaw)
		}
	}
	return s
}
