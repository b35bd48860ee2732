package memory

import (
	"context"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"
)

type EmailQuoteStore struct {
	t *table[entities.EmailQuote]
}

var _ interfaces.IEmailQuoteRepository = (*EmailQuoteStore)(nil)

func NewEmailQuoteStore() *EmailQuoteStore {
	return &EmailQuoteStore{t: newTable(func(e entities.EmailQuote) string { return e.ID }, cloneEmailQuote)}
}

func (s *EmailQuoteStore) Create(_ context.Context, e entities.EmailQuote) (entities.EmailQuote, error) {
	return s.t.insert(e), nil
}

func (s *EmailQuoteStore) GetByID(_ context.Context, id string) (entities.EmailQuote, error) {
	return s.t.get(id), nil
}

func (s *EmailQuoteStore) List(_ context.Context) ([]entities.EmailQuote, error) {
	return s.t.filter(nil), nil
}

func (s *EmailQuoteStore) UpdateStatus(_ context.Context, id string, status entities.EmailQuoteStatus) (entities.EmailQuote, error) {
	return s.t.update(id, func(e *entities.EmailQuote) bool {
		e.Status = status
		return true
	}), nil
}

func (s *EmailQuoteStore) CompareAndSetStatus(_ context.Context, id string, from, to entities.EmailQuoteStatus) (entities.EmailQuote, error) {
	return s.t.update(id, func(e *entities.EmailQuote) bool {
		if e.Status != from {
			return false
		}
		e.Status = to
		return true
	}), nil
}
