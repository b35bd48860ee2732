package memory

import (
	"context"
	"time"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/pricing"
	"quote_desk/internal/usecase/interfaces"
)

type SettlementStore struct {
	t *table[entities.Settlement]
}

var _ interfaces.ISettlementRepository = (*SettlementStore)(nil)

func NewSettlementStore() *SettlementStore {
	return &SettlementStore{t: newTable(func(s entities.Settlement) string { return s.ID }, cloneSettlement)}
}

func (s *SettlementStore) Create(_ context.Context, st entities.Settlement) (entities.Settlement, error) {
	st.Total = pricing.SettlementTotal(st)
	created, ok := s.t.insertUnless(st, func(stored, st entities.Settlement) bool {
		return stored.QuoteID == st.QuoteID || stored.ID == st.ID
	})
	if !ok {
		return entities.Settlement{}, interfaces.ErrDuplicate
	}
	return created, nil
}

func (s *SettlementStore) GetByID(_ context.Context, id string) (entities.Settlement, error) {
	return s.t.get(id), nil
}

func (s *SettlementStore) GetByQuoteID(_ context.Context, quoteID string) (entities.Settlement, error) {
	return s.t.first(func(st entities.Settlement) bool { return st.QuoteID == quoteID }), nil
}

func (s *SettlementStore) List(_ context.Context) ([]entities.Settlement, error) {
	return s.t.filter(nil), nil
}

func (s *SettlementStore) Update(_ context.Context, id string, patch entities.SettlementPatch) (entities.Settlement, error) {
	return s.t.update(id, func(st *entities.Settlement) bool {
		patch.Apply(st)
		st.Total = pricing.SettlementTotal(*st)
		st.UpdatedAt = time.Now().UTC()
		return true
	}), nil
}

func (s *SettlementStore) Mutate(_ context.Context, id string, fn func(*entities.Settlement) error) (entities.Settlement, error) {
	st, err := s.t.mutate(id, func(st *entities.Settlement) error {
		if err := fn(st); err != nil {
			return err
		}
		st.ID = id
		st.Total = pricing.SettlementTotal(*st)
		st.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return entities.Settlement{}, err
	}
	return st, nil
}
