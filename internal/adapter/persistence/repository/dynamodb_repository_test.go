package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items by their "id" attribute. It understands the
// conditions used by the repositories and nothing else. afterGet runs after
// every read, which lets a test play a concurrent writer.
type fakeDynamo struct {
	items      map[string]map[string]types.AttributeValue
	order      []string
	lastUpdate *dynamodb.UpdateItemInput
	lastQuery  *dynamodb.QueryInput
	afterGet   func(f *fakeDynamo, id string)
	puts       int
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{items: map[string]map[string]types.AttributeValue{}}
}

func idOf(item map[string]types.AttributeValue) string {
	if v, ok := item["id"].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func stringAttr(item map[string]types.AttributeValue, name string) (string, bool) {
	v, ok := item[name].(*types.AttributeValueMemberS)
	if !ok {
		return "", false
	}
	return v.Value, true
}

func (f *fakeDynamo) conditionHolds(item map[string]types.AttributeValue, condition *string, values map[string]types.AttributeValue) bool {
	current, exists := f.items[idOf(item)]
	cond := ""
	if condition != nil {
		cond = *condition
	}
	switch {
	case strings.HasPrefix(cond, "attribute_not_exists"):
		return !exists
	case strings.HasPrefix(cond, "attribute_exists"):
		return exists
	case cond == "#updated_at = :read_at":
		got, _ := stringAttr(current, "updated_at")
		want, _ := stringAttr(values, ":read_at")
		return exists && got == want
	}
	return true
}

func (f *fakeDynamo) store(item map[string]types.AttributeValue) {
	id := idOf(item)
	if _, exists := f.items[id]; !exists {
		f.order = append(f.order, id)
	}
	f.items[id] = item
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.puts++
	if !f.conditionHolds(in.Item, in.ConditionExpression, in.ExpressionAttributeValues) {
		return nil, &types.ConditionalCheckFailedException{}
	}
	f.store(in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	reasons := make([]types.CancellationReason, len(in.TransactItems))
	failed := false
	for i, it := range in.TransactItems {
		code := "None"
		if !f.conditionHolds(it.Put.Item, it.Put.ConditionExpression, it.Put.ExpressionAttributeValues) {
			code = "ConditionalCheckFailed"
			failed = true
		}
		reasons[i] = types.CancellationReason{Code: aws.String(code)}
	}
	if failed {
		return nil, &types.TransactionCanceledException{CancellationReasons: reasons}
	}
	for _, it := range in.TransactItems {
		f.store(it.Put.Item)
	}
	return &dynamodb.TransactWriteItemsOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.lastUpdate = in
	item, ok := f.items[idOf(in.Key)]
	if !ok {
		return nil, &types.ConditionalCheckFailedException{}
	}
	return &dynamodb.UpdateItemOutput{Attributes: item}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.lastQuery = in
	want := in.ExpressionAttributeValues[":qid"].(*types.AttributeValueMemberS).Value
	var out []map[string]types.AttributeValue
	for _, id := range f.order {
		item := f.items[id]
		if v, ok := item["quote_id"].(*types.AttributeValueMemberS); ok && v.Value == want {
			out = append(out, item)
		}
	}
	return &dynamodb.QueryOutput{Items: out}, nil
}

func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	onlySettlements := in.FilterExpression != nil && *in.FilterExpression == "attribute_exists(#quote_id)"
	out := make([]map[string]types.AttributeValue, 0, len(f.order))
	for _, id := range f.order {
		if _, ok := f.items[id]["quote_id"]; onlySettlements && !ok {
			continue
		}
		out = append(out, f.items[id])
	}
	return &dynamodb.ScanOutput{Items: out}, nil
}

func TestQuoteDynamoRepository_CreateGetList(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewQuoteDynamoRepository(ddb, "quotes-test")

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(ctx, entities.Quote{
		ID: "q1", CustomerID: "c1", Status: entities.QuoteStatusDraft,
		Services: []entities.QuoteService{
			{ServiceID: "a", Quantity: 2, Price: 100, Date: date},
			{ServiceID: "b", Quantity: 3, Price: 50, Date: date},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 350.0, created.Total)

	_, err = repo.Create(ctx, entities.Quote{ID: "q1"})
	var cfe *types.ConditionalCheckFailedException
	assert.ErrorAs(t, err, &cfe)

	got, err := repo.GetByID(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, created.Services, got.Services)
	assert.Equal(t, 350.0, got.Total)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestQuoteDynamoRepository_Update(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewQuoteDynamoRepository(ddb, "quotes-test")
	_, err := repo.Create(ctx, entities.Quote{ID: "q1", CustomerID: "c1", Status: entities.QuoteStatusDraft})
	require.NoError(t, err)

	status := entities.QuoteStatusSent
	_, err = repo.Update(ctx, "q1", entities.QuotePatch{
		Status:   &status,
		Services: []entities.QuoteService{{ServiceID: "a", Quantity: 2, Price: 100}, {ServiceID: "b", Quantity: 3, Price: 50}},
	})
	require.NoError(t, err)

	in := ddb.lastUpdate
	require.NotNil(t, in)
	assert.Contains(t, *in.UpdateExpression, "#status = :status")
	assert.Contains(t, *in.UpdateExpression, "#services = :services")
	assert.Equal(t, "350", in.ExpressionAttributeValues[":total"].(*types.AttributeValueMemberS).Value)
	assert.NotContains(t, *in.UpdateExpression, "#customer_id")

	missing, err := repo.Update(ctx, "nope", entities.QuotePatch{Status: &status})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)
}

func TestSettlementDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewSettlementDynamoRepository(ddb, "settlements-test")

	actual := 90.0
	_, err := repo.Create(ctx, entities.Settlement{
		ID: "s1", QuoteID: "q1", CustomerID: "c1", Status: entities.SettlementStatusPending,
		Services: []entities.SettlementService{{ServiceID: "a", Quantity: 2, Price: 100, ActualPrice: &actual, Notes: "late"}},
	})
	require.NoError(t, err)

	byQuote, err := repo.GetByQuoteID(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "s1", byQuote.ID)
	assert.Equal(t, 180.0, byQuote.Total)
	require.NotNil(t, byQuote.Services[0].ActualPrice)
	assert.Equal(t, 90.0, *byQuote.Services[0].ActualPrice)
	assert.Equal(t, settlementsQuoteIDIndex, *ddb.lastQuery.IndexName)

	completed := entities.SettlementStatusCompleted
	updated, err := repo.Update(ctx, "s1", entities.SettlementPatch{
		Status:            &completed,
		AdditionalCharges: []entities.AdditionalCharge{{ID: "ch1", Description: "Tip", Amount: 20}},
		Payment:           &entities.SettlementPayment{ID: "pay-1", Status: "approved", ProviderResponse: json.RawMessage(`{"id":1}`)},
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.Total)

	got, err := repo.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entities.SettlementStatusCompleted, got.Status)
	assert.Equal(t, 200.0, got.Total)
	require.NotNil(t, got.Payment)
	assert.JSONEq(t, `{"id":1}`, string(got.Payment.ProviderResponse))

	missing, err := repo.Update(ctx, "nope", entities.SettlementPatch{Status: &completed})
	require.NoError(t, err)
	assert.Empty(t, missing.ID)

	none, err := repo.GetByQuoteID(ctx, "q2")
	require.NoError(t, err)
	assert.Empty(t, none.ID)
}

func TestQuoteDynamoRepository_Mutate(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeDynamo, *QuoteDynamoRepository) {
		ddb := newFakeDynamo()
		repo := NewQuoteDynamoRepository(ddb, "quotes-test")
		_, err := repo.Create(ctx, entities.Quote{
			ID: "q1", CustomerID: "c1", Status: entities.QuoteStatusDraft,
			Services:  []entities.QuoteService{{ServiceID: "a", Quantity: 1, Price: 100}},
			UpdatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		return ddb, repo
	}
	addOne := func(q *entities.Quote) error {
		q.Services[0].Quantity++
		return nil
	}

	t.Run("writes the changed quote", func(t *testing.T) {
		_, repo := seed(t)
		got, err := repo.Mutate(ctx, "q1", addOne)
		require.NoError(t, err)
		assert.Equal(t, 200.0, got.Total)

		stored, _ := repo.GetByID(ctx, "q1")
		assert.Equal(t, 2, stored.Services[0].Quantity)
		assert.Equal(t, 200.0, stored.Total)
	})

	t.Run("retries after a concurrent write", func(t *testing.T) {
		ddb, repo := seed(t)
		ddb.afterGet = func(f *fakeDynamo, id string) {
			f.afterGet = nil
			f.touch(id, "2024-01-02T00:00:00Z")
		}
		_, err := repo.Mutate(ctx, "q1", addOne)
		require.NoError(t, err)
		assert.Equal(t, 3, ddb.puts, "create, rejected put, accepted put")
	})

	t.Run("gives up when every write loses", func(t *testing.T) {
		ddb, repo := seed(t)
		n := 0
		ddb.afterGet = func(f *fakeDynamo, id string) {
			n++
			f.touch(id, time.Date(2024, 2, n, 0, 0, 0, 0, time.UTC).Format(time.RFC3339Nano))
		}
		_, err := repo.Mutate(ctx, "q1", addOne)
		assert.ErrorIs(t, err, interfaces.ErrWriteConflict)
	})

	t.Run("mutator error skips the write", func(t *testing.T) {
		ddb, repo := seed(t)
		refused := errors.New("refused")
		_, err := repo.Mutate(ctx, "q1", func(*entities.Quote) error { return refused })
		assert.ErrorIs(t, err, refused)
		assert.Equal(t, 1, ddb.puts)
	})

	t.Run("missing quote", func(t *testing.T) {
		_, repo := seed(t)
		got, err := repo.Mutate(ctx, "nope", addOne)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})
}

func TestSettlementDynamoRepository_OnePerQuote(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewSettlementDynamoRepository(ddb, "settlements-test")

	_, err := repo.Create(ctx, entities.Settlement{ID: "s1", QuoteID: "q1", CustomerID: "c1", Status: entities.SettlementStatusPending})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Settlement{ID: "s2", QuoteID: "q1", CustomerID: "c1", Status: entities.SettlementStatusPending})
	assert.ErrorIs(t, err, interfaces.ErrDuplicate)

	_, err = repo.Create(ctx, entities.Settlement{ID: "s3", QuoteID: "q2", CustomerID: "c1", Status: entities.SettlementStatusPending})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2, "guard items stay out of the listing")
	assert.Equal(t, "s1", all[0].ID)
	assert.Equal(t, "s3", all[1].ID)

	byQuote, err := repo.GetByQuoteID(ctx, "q1")
	require.NoError(t, err)
	assert.Equal(t, "s1", byQuote.ID)
}
