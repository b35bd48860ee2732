package interfaces

import (
	"context"

	"quote_desk/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for Quote (memory or DynamoDB).
//
// Implementations must:
//   - return a zero Quote and a nil error when the id does not exist
//   - treat Update and Mutate of a missing id as a no-op (zero Quote, nil error)
//   - recompute Total whenever Services change
//
// Mutate runs fn on the current quote and stores the result as one atomic
// step. An error from fn aborts the write and is returned as is.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
	Update(ctx context.Context, id string, patch entities.QuotePatch) (entities.Quote, error)
	Mutate(ctx context.Context, id string, fn func(*entities.Quote) error) (entities.Quote, error)
}
