package validation

import (
	"errors"
	"strings"
	"testing"

	"quote_desk/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(t *testing.T, err error) map[string]string {
	t.Helper()
	var ves Errors
	require.True(t, errors.As(err, &ves), "expected validation.Errors, got %v", err)
	out := map[string]string{}
	for _, fe := range ves {
		out[fe.Key()] = fe.Message
	}
	return out
}

func validService() entities.Service {
	return entities.Service{ID: "s1", Name: "Tour Tulum", Category: "Activity", Location: "Tulum", BasePrice: 1500}
}

func TestService(t *testing.T) {
	require.NoError(t, Service(validService()))

	s := validService()
	s.BasePrice = -5
	got := keys(t, Service(s))
	assert.Equal(t, "base_price must be greater than 0", got["base_price"])

	s = validService()
	s.Name = ""
	s.Location = ""
	got = keys(t, Service(s))
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "location")
}

func TestFieldError_PathUsesJSONNames(t *testing.T) {
	s := validService()
	s.BasePrice = 0
	var ves Errors
	require.ErrorAs(t, Service(s), &ves)
	require.Len(t, ves, 1)
	assert.Equal(t, []string{"base_price"}, ves[0].Path)
	assert.NotContains(t, keys(t, Service(s)), "BasePrice")

	q := entities.Quote{
		ID: "q1", CustomerID: "c1", Status: entities.QuoteStatusDraft,
		Services: []entities.QuoteService{
			{ServiceID: "a", Quantity: 1, Price: 10},
			{ServiceID: "b", Quantity: 0, Price: 10},
		},
	}
	ves = nil
	require.ErrorAs(t, Quote(q), &ves)
	require.Len(t, ves, 1)
	assert.Equal(t, []string{"services", "1", "quantity"}, ves[0].Path)
	assert.Equal(t, "services.1.quantity", ves[0].Key())
}

func TestCustomer(t *testing.T) {
	require.NoError(t, Customer(entities.Customer{ID: "c1", Name: "Aventura", Email: "reservas@aventura.com"}))

	got := keys(t, Customer(entities.Customer{ID: "c1", Name: "Aventura", Email: "nope"}))
	assert.Equal(t, "invalid email", got["email"])
}

func TestQuote_NestedPaths(t *testing.T) {
	q := entities.Quote{
		ID:         "q1",
		CustomerID: "c1",
		Status:     entities.QuoteStatusDraft,
		Services: []entities.QuoteService{
			{ServiceID: "a", Quantity: 1, Price: 10},
			{ServiceID: "b", Quantity: 0, Price: 10},
		},
	}
	got := keys(t, Quote(q))
	assert.Contains(t, got, "services.1.quantity")
	assert.Len(t, got, 1)

	q.Services[1].Quantity = 1
	q.Status = "archived"
	got = keys(t, Quote(q))
	assert.True(t, strings.HasPrefix(got["status"], "status must be one of"))
}

func TestServiceSheet(t *testing.T) {
	customer := "c1"
	sheet := entities.ServiceSheet{ID: "sh1", Name: "Custom", IsDefault: true, CustomerID: &customer}
	got := keys(t, ServiceSheet(sheet))
	assert.Contains(t, got, "customer_id")

	sheet.IsDefault = false
	sheet.Name = strings.Repeat("x", 101)
	sheet.Services = []entities.Service{{ID: "s1"}}
	got = keys(t, ServiceSheet(sheet))
	assert.Contains(t, got, "name")
	assert.Contains(t, got, "services.0.base_price")
}

func TestSettlement(t *testing.T) {
	neg := -1.0
	s := entities.Settlement{
		ID:         "st1",
		QuoteID:    "q1",
		CustomerID: "c1",
		Status:     entities.SettlementStatusPending,
		Services:   []entities.SettlementService{{ServiceID: "a", Quantity: 1, Price: 10, ActualPrice: &neg}},
		AdditionalCharges: []entities.AdditionalCharge{
			{ID: "ch1", Description: ""},
		},
	}
	got := keys(t, Settlement(s))
	assert.Contains(t, got, "services.0.actual_price")
	assert.Contains(t, got, "additional_charges.0.description")
}

func TestSplitNamespace(t *testing.T) {
	assert.Equal(t, []string{"services", "0", "quantity"}, splitNamespace("Quote.services[0].quantity"))
	assert.Equal(t, []string{"name"}, splitNamespace("Service.name"))
}
