package entities

import (
	"encoding/json"
	"time"
)

// SettlementStatus represents the reconciliation state of a settlement.
type SettlementStatus string

const (
	SettlementStatusPending   SettlementStatus = "pending"
	SettlementStatusCompleted SettlementStatus = "completed"
	SettlementStatusCancelled SettlementStatus = "cancelled"
)

func (s SettlementStatus) Valid() bool {
	switch s {
	case SettlementStatusPending, SettlementStatusCompleted, SettlementStatusCancelled:
		return true
	}
	return false
}

// SettlementService is a quoted line plus what was actually charged.
type SettlementService struct {
	ServiceID   string    `json:"service_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"gt=0"`
	Price       float64   `json:"price" validate:"gte=0"`
	Date        time.Time `json:"date"`
	ActualPrice *float64  `json:"actual_price,omitempty" validate:"omitempty,gte=0"`
	Notes       string    `json:"notes,omitempty"`
}

// NewSettlementService copies a quoted line into a settlement line.
func NewSettlementService(qs QuoteService) SettlementService {
	return SettlementService{
		ServiceID: qs.ServiceID,
		Quantity:  qs.Quantity,
		Price:     qs.Price,
		Date:      qs.Date,
	}
}

func (s SettlementService) LineQuantity() int { return s.Quantity }

// LinePrice prefers the actual price over the quoted one.
func (s SettlementService) LinePrice() float64 {
	if s.ActualPrice != nil {
		return *s.ActualPrice
	}
	return s.Price
}

type AdditionalCharge struct {
	ID          string  `json:"id" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount" validate:"gte=0"`
}

// SettlementPayment is the provider record of the payment collected for a
// settlement. ProviderResponse keeps the raw gateway body for audit.
type SettlementPayment struct {
	ID               string          `json:"id"`
	Status           string          `json:"status"`
	Date             time.Time       `json:"date"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}

// Settlement reconciles delivered services against a quote.
//
// Domain notes:
//   - At most one settlement exists per QuoteID (enforced on create).
//   - Total = sum of line price*quantity (actual price when present) + charges.
type Settlement struct {
	ID                string              `json:"id"`
	QuoteID           string              `json:"quote_id" validate:"required"`
	CustomerID        string              `json:"customer_id" validate:"required"`
	Services          []SettlementService `json:"services" validate:"dive"`
	AdditionalCharges []AdditionalCharge  `json:"additional_charges" validate:"dive"`
	Total             float64             `json:"total"`
	Status            SettlementStatus    `json:"status" validate:"oneof=pending completed cancelled"`
	Payment           *SettlementPayment  `json:"payment,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type SettlementPatch struct {
	Services          []SettlementService `json:"services"`
	AdditionalCharges []AdditionalCharge  `json:"additional_charges"`
	Status            *SettlementStatus   `json:"status"`
	Payment           *SettlementPayment  `json:"-"`
}

func (p SettlementPatch) Apply(s *Settlement) {
	if p.Services != nil {
		s.Services = p.Services
	}
	if p.AdditionalCharges != nil {
		s.AdditionalCharges = p.AdditionalCharges
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Payment != nil {
		s.Payment = p.Payment
	}
}
