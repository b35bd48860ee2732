package interfaces

import (
	"context"

	"quote_desk/internal/domain/entities"
)

// ISettlementRepository abstracts persistence for Settlement.
// GetByQuoteID returns the settlement of the quote, zero when none.
// Create fails with ErrDuplicate when the quote already has a settlement.
// Mutate runs fn on the current settlement and stores the result as one
// atomic step; a missing id is a no-op returning a zero Settlement.

type ISettlementRepository interface {
	Create(ctx context.Context, s entities.Settlement) (entities.Settlement, error)
	GetByID(ctx context.Context, id string) (entities.Settlement, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.Settlement, error)
	List(ctx context.Context) ([]entities.Settlement, error)
	Update(ctx context.Context, id string, patch entities.SettlementPatch) (entities.Settlement, error)
	Mutate(ctx context.Context, id string, fn func(*entities.Settlement) error) (entities.Settlement, error)
}
