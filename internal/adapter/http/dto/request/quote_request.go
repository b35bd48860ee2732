package request

import (
	"strings"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase"
)

type QuoteServiceRequest struct {
	ServiceID string  `json:"service_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Date      string  `json:"date"`
}

type QuoteRequest struct {
	CustomerID string                `json:"customer_id"`
	Status     string                `json:"status"`
	Services   []QuoteServiceRequest `json:"services"`
}

func (r QuoteRequest) ToEntity() (entities.Quote, error) {
	q := entities.Quote{
		CustomerID: strings.TrimSpace(r.CustomerID),
		Status:     entities.QuoteStatus(strings.TrimSpace(r.Status)),
		Services:   make([]entities.QuoteService, 0, len(r.Services)),
	}
	for _, s := range r.Services {
		date, err := ParseDate(s.Date)
		if err != nil {
			return entities.Quote{}, err
		}
		q.Services = append(q.Services, entities.QuoteService{
			ServiceID: strings.TrimSpace(s.ServiceID),
			Quantity:  s.Quantity,
			Price:     s.Price,
			Date:      date,
		})
	}
	return q, nil
}

// QuoteUpdateRequest is a partial update. Services, when present, replace
// the whole list.
type QuoteUpdateRequest struct {
	CustomerID *string                `json:"customer_id"`
	Status     *string                `json:"status"`
	Services   *[]QuoteServiceRequest `json:"services"`
}

func (r QuoteUpdateRequest) ToPatch() (entities.QuotePatch, error) {
	var p entities.QuotePatch
	if r.CustomerID != nil {
		id := strings.TrimSpace(*r.CustomerID)
		p.CustomerID = &id
	}
	if r.Status != nil {
		st := entities.QuoteStatus(strings.TrimSpace(*r.Status))
		p.Status = &st
	}
	if r.Services != nil {
		q, err := QuoteRequest{Services: *r.Services}.ToEntity()
		if err != nil {
			return entities.QuotePatch{}, err
		}
		p.Services = q.Services
	}
	return p, nil
}

// AddQuoteServiceRequest picks a service from the customer's catalog. Without
// custom_price the catalog price is used.
type AddQuoteServiceRequest struct {
	ServiceID   string   `json:"service_id" binding:"required"`
	Quantity    int      `json:"quantity"`
	CustomPrice *float64 `json:"custom_price"`
	Date        string   `json:"date"`
}

func (r AddQuoteServiceRequest) ToSelection() (usecase.ServiceSelection, error) {
	date, err := ParseDate(r.Date)
	if err != nil {
		return usecase.ServiceSelection{}, err
	}
	qty := r.Quantity
	if qty == 0 {
		qty = 1
	}
	return usecase.ServiceSelection{
		ServiceID:   strings.TrimSpace(r.ServiceID),
		Quantity:    qty,
		CustomPrice: r.CustomPrice,
		Date:        date,
	}, nil
}

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}
