package entities

import "time"

// QuoteStatus represents the lifecycle of a quote.
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusApproved, QuoteStatusRejected:
		return true
	}
	return false
}

// QuoteService is one priced line of a quote. ServiceID references a Service,
// it does not own it.
type QuoteService struct {
	ServiceID string    `json:"service_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"gt=0"`
	Price     float64   `json:"price" validate:"gte=0"`
	Date      time.Time `json:"date"`
}

func (s QuoteService) LinePrice() float64 { return s.Price }
func (s QuoteService) LineQuantity() int  { return s.Quantity }

// Quote is a priced proposal of services for a customer.
//
// Total is derived from Services (sum of price*quantity) and is recomputed on
// every write. It is never set from a patch.
type Quote struct {
	ID         string         `json:"id"`
	CustomerID string         `json:"customer_id" validate:"required"`
	Services   []QuoteService `json:"services" validate:"dive"`
	Status     QuoteStatus    `json:"status" validate:"oneof=draft sent approved rejected"`
	Total      float64        `json:"total" validate:"gte=0"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type QuotePatch struct {
	CustomerID *string        `json:"customer_id"`
	Services   []QuoteService `json:"services"`
	Status     *QuoteStatus   `json:"status"`
}

func (p QuotePatch) Apply(q *Quote) {
	if p.CustomerID != nil {
		q.CustomerID = *p.CustomerID
	}
	if p.Services != nil {
		q.Services = p.Services
	}
	if p.Status != nil {
		q.Status = *p.Status
	}
}
