package request

import (
	"errors"
	"testing"
	"time"

	"quote_desk/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-07-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("2024-07-15T10:00:00-05:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 7, 15, 15, 0, 0, 0, time.UTC), got)

	got, err = ParseDate("  ")
	require.NoError(t, err)
	assert.True(t, got.IsZero())

	_, err = ParseDate("15/07/2024")
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestQuoteRequest_ToEntity(t *testing.T) {
	q, err := QuoteRequest{
		CustomerID: " c1 ",
		Services:   []QuoteServiceRequest{{ServiceID: " a ", Quantity: 2, Price: 100, Date: "2024-07-15"}},
	}.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, "c1", q.CustomerID)
	assert.Equal(t, "a", q.Services[0].ServiceID)
	assert.Equal(t, entities.QuoteStatus(""), q.Status)

	_, err = QuoteRequest{Services: []QuoteServiceRequest{{Date: "tomorrow"}}}.ToEntity()
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestQuoteUpdateRequest_ToPatch(t *testing.T) {
	status := "sent"
	p, err := QuoteUpdateRequest{Status: &status}.ToPatch()
	require.NoError(t, err)
	assert.Nil(t, p.Services)
	require.NotNil(t, p.Status)
	assert.Equal(t, entities.QuoteStatusSent, *p.Status)

	empty := []QuoteServiceRequest{}
	p, err = QuoteUpdateRequest{Services: &empty}.ToPatch()
	require.NoError(t, err)
	assert.NotNil(t, p.Services)
	assert.Empty(t, p.Services)
}

func TestAddQuoteServiceRequest_ToSelection(t *testing.T) {
	sel, err := AddQuoteServiceRequest{ServiceID: "a"}.ToSelection()
	require.NoError(t, err)
	assert.Equal(t, 1, sel.Quantity)
	assert.Nil(t, sel.CustomPrice)
}

func TestServiceSheetRequest_ToEntity(t *testing.T) {
	blank := "  "
	s := ServiceSheetRequest{Name: "Default", IsDefault: true, CustomerID: &blank}.ToEntity()
	assert.Nil(t, s.CustomerID)
	assert.NotNil(t, s.Services)
}

func TestSettlementUpdateRequest_ToPatch(t *testing.T) {
	actual := 90.0
	services := []SettlementServiceRequest{{ServiceID: "a", Quantity: 1, Price: 100, ActualPrice: &actual}}
	p, err := SettlementUpdateRequest{Services: &services}.ToPatch()
	require.NoError(t, err)
	require.Len(t, p.Services, 1)
	assert.Equal(t, 90.0, p.Services[0].LinePrice())
	assert.Nil(t, p.AdditionalCharges)
}
