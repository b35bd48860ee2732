package seed

import (
	"context"
	"testing"

	"quote_desk/internal/adapter/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryStores() Stores {
	return Stores{
		Categories:    memory.NewCategoryStore(),
		Customers:     memory.NewCustomerStore(),
		Services:      memory.NewServiceStore(),
		ServiceSheets: memory.NewServiceSheetStore(),
		Quotes:        memory.NewQuoteStore(),
		EmailQuotes:   memory.NewEmailQuoteStore(),
	}
}

func TestApply_DemoIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := memoryStores()

	require.NoError(t, Apply(ctx, s, Demo()))
	require.NoError(t, Apply(ctx, s, Demo()))

	cats, _ := s.Categories.List(ctx)
	assert.Len(t, cats, 3)
	sheets, _ := s.ServiceSheets.List(ctx)
	assert.Len(t, sheets, 1)
	services, _ := s.Services.List(ctx)
	assert.Len(t, services, 3)
	assert.Equal(t, DefaultSheetID, services[0].SheetID)

	q, _ := s.Quotes.GetByID(ctx, "q1w2e3r4-t5y6-u7i8-o9p0-a1s2d3f4g5h6")
	assert.Equal(t, 8300.0, q.Total)

	emails, _ := s.EmailQuotes.List(ctx)
	assert.Len(t, emails, 2)
}

func TestParse_AllowsCommentsAndTrailingCommas(t *testing.T) {
	d, err := Parse([]byte(`{
		// catalog for the staging desk
		"categories": [{"id": "cat1", "name": "Hotel"},],
		"customers": [{"id": "x", "name": "X", "email": "x@example.com", "custom_pricing": true}],
	}`))
	require.NoError(t, err)

	require.Len(t, d.Categories, 1)
	assert.Equal(t, "Hotel", d.Categories[0].Name)
	assert.True(t, d.Customers[0].CustomPricing)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte(`{"categories": [`))
	assert.Error(t, err)
}

func TestApply_CreatesDefaultSheetWhenMissing(t *testing.T) {
	ctx := context.Background()
	s := memoryStores()

	require.NoError(t, Apply(ctx, s, Data{}))

	def, _ := s.ServiceSheets.GetDefault(ctx)
	assert.Equal(t, DefaultSheetID, def.ID)
}
