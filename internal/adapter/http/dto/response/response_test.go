package response

import (
	"encoding/json"
	"testing"
	"time"

	"quote_desk/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:         "q1",
		CustomerID: "c1",
		Status:     entities.QuoteStatusApproved,
		Services:   []entities.QuoteService{{ServiceID: "a", Quantity: 3, Price: 50, Date: now}},
		Total:      150,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res := FromQuote(q)
	if res.ID != "q1" || res.QuoteID != "q1" || res.Status != "approved" {
		t.Fatalf("unexpected header: %+v", res)
	}
	if len(res.Services) != 1 || res.Services[0].LineTotal != 150 {
		t.Fatalf("unexpected lines: %+v", res.Services)
	}
	if !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if out := FromQuote(entities.Quote{}); out.Services == nil {
		t.Fatalf("services should render as an empty list")
	}
}

func TestFromSettlement(t *testing.T) {
	now := time.Now().UTC()
	s := entities.Settlement{
		ID:      "s1",
		QuoteID: "q1",
		Status:  entities.SettlementStatusCompleted,
		Total:   290,
		Payment: &entities.SettlementPayment{
			ID:               "123",
			Status:           "approved",
			Date:             now,
			ProviderResponse: json.RawMessage(`{"id":123,"status":"approved"}`),
		},
	}

	res := FromSettlement(s)
	if res.SettlementID != "s1" || res.QuoteID != "q1" || res.Status != "completed" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Services == nil || res.AdditionalCharges == nil {
		t.Fatalf("lists should never be nil: %+v", res)
	}
	if res.Payment == nil || res.Payment.PaymentID != "123" || !res.Payment.PaymentDate.Equal(now) {
		t.Fatalf("unexpected payment: %+v", res.Payment)
	}
	if res.Payment.Provider["status"] != "approved" {
		t.Fatalf("unexpected parsed provider payload: %+v", res.Payment.Provider)
	}
}

func TestNewList(t *testing.T) {
	l := NewList[string](nil)
	if l.Items == nil || l.Count != 0 {
		t.Fatalf("unexpected list: %+v", l)
	}
	b, _ := json.Marshal(NewList([]int{1, 2}))
	if string(b) != `{"items":[1,2],"count":2}` {
		t.Fatalf("unexpected json: %s", b)
	}
}
