package response

import (
	"time"

	"quote_desk/internal/domain/entities"
)

type QuoteServiceResponse struct {
	ServiceID string    `json:"service_id"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	LineTotal float64   `json:"line_total"`
	Date      time.Time `json:"date"`
}

type QuoteResponse struct {
	ID         string                 `json:"id"`
	QuoteID    string                 `json:"quote_id"`
	CustomerID string                 `json:"customer_id"`
	Services   []QuoteServiceResponse `json:"services"`
	Status     string                 `json:"status"`
	Total      float64                `json:"total"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		ID:         q.ID,
		QuoteID:    q.ID,
		CustomerID: q.CustomerID,
		Services:   make([]QuoteServiceResponse, 0, len(q.Services)),
		Status:     string(q.Status),
		Total:      q.Total,
		CreatedAt:  q.CreatedAt,
		UpdatedAt:  q.UpdatedAt,
	}
	for _, s := range q.Services {
		res.Services = append(res.Services, QuoteServiceResponse{
			ServiceID: s.ServiceID,
			Quantity:  s.Quantity,
			Price:     s.Price,
			LineTotal: s.Price * float64(s.Quantity),
			Date:      s.Date,
		})
	}
	return res
}

func FromQuotes(qs []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(qs))
	for _, q := range qs {
		out = append(out, FromQuote(q))
	}
	return out
}
