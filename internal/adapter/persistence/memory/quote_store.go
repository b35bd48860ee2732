package memory

import (
	"context"
	"time"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/pricing"
	"quote_desk/internal/usecase/interfaces"
)

type QuoteStore struct {
	t *table[entities.Quote]
}

var _ interfaces.IQuoteRepository = (*QuoteStore)(nil)

func NewQuoteStore() *QuoteStore {
	return &QuoteStore{t: newTable(func(q entities.Quote) string { return q.ID }, cloneQuote)}
}

func (s *QuoteStore) Create(_ context.Context, q entities.Quote) (entities.Quote, error) {
	q.Total = pricing.Total(q.Services)
	return s.t.insert(q), nil
}

func (s *QuoteStore) GetByID(_ context.Context, id string) (entities.Quote, error) {
	return s.t.get(id), nil
}

func (s *QuoteStore) List(_ context.Context) ([]entities.Quote, error) {
	return s.t.filter(nil), nil
}

func (s *QuoteStore) ListByCustomerID(_ context.Context, customerID string) ([]entities.Quote, error) {
	return s.t.filter(func(q entities.Quote) bool { return q.CustomerID == customerID }), nil
}

func (s *QuoteStore) Update(_ context.Context, id string, patch entities.QuotePatch) (entities.Quote, error) {
	return s.t.update(id, func(q *entities.Quote) bool {
		patch.Apply(q)
		q.Total = pricing.Total(q.Services)
		q.UpdatedAt = time.Now().UTC()
		return true
	}), nil
}

func (s *QuoteStore) Mutate(_ context.Context, id string, fn func(*entities.Quote) error) (entities.Quote, error) {
	q, err := s.t.mutate(id, func(q *entities.Quote) error {
		if err := fn(q); err != nil {
			return err
		}
		q.ID = id
		q.Total = pricing.Total(q.Services)
		q.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}
