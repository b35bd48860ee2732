package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"quote_desk/internal/domain/composition"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/pricing"
	"quote_desk/internal/domain/validation"
	"quote_desk/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound          = errors.New("quote not found")
	ErrInvalidQuoteID         = errors.New("invalid quote id")
	ErrInvalidQuoteStatus     = errors.New("invalid quote status")
	ErrServiceNotInCatalog    = errors.New("service not available in the customer catalog")
	ErrInvalidQuantity        = errors.New("quantity must be greater than 0")
	ErrServiceIndexOutOfRange = composition.ErrServiceIndexOutOfRange
)

// ServiceSelection is a service picked for a quote. A nil CustomPrice means
// the catalog price is used.
type ServiceSelection struct {
	ServiceID   string
	Quantity    int
	CustomPrice *float64
	Date        time.Time
}

// IQuoteUseCase exposes quote composition.
//
// Every write keeps two rules:
//   - a service id appears at most once per quote (adding it again sums the quantity)
//   - total is the sum of price*quantity over the lines
type IQuoteUseCase interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error)
	Update(ctx context.Context, id string, patch entities.QuotePatch) (entities.Quote, error)
	UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error)
	AddService(ctx context.Context, id string, sel ServiceSelection) (entities.Quote, error)
	RemoveService(ctx context.Context, id string, index int) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo   interfaces.IQuoteRepository
	sheets interfaces.IServiceSheetRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, sheets interfaces.IServiceSheetRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, sheets: sheets}
}

func (u *QuoteUseCase) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	f := composition.NewForm(nil)
	f.CustomerID = strings.TrimSpace(q.CustomerID)
	if q.Status != "" {
		f.Status = q.Status
	}
	for _, line := range q.Services {
		f.AddService(line)
	}
	f.ApplyTo(&q)

	if strings.TrimSpace(q.ID) == "" {
		q.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	if err := validation.Quote(q); err != nil {
		return entities.Quote{}, err
	}
	return u.repo.Create(ctx, q)
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) List(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) ListByCustomerID(ctx context.Context, customerID string) ([]entities.Quote, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, ErrInvalidCustomerID
	}
	return u.repo.ListByCustomerID(ctx, customerID)
}

// Update merges patch into the quote. Patched services are folded so each
// service id appears once, and the merged quote must validate before it is
// stored.
func (u *QuoteUseCase) Update(ctx context.Context, id string, patch entities.QuotePatch) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	if patch.Services != nil {
		f := composition.NewForm(nil)
		for _, line := range patch.Services {
			f.AddService(line)
		}
		patch.Services = f.Services
		if patch.Services == nil {
			patch.Services = []entities.QuoteService{}
		}
	}
	return u.mutate(ctx, id, func(q *entities.Quote) error {
		patch.Apply(q)
		q.Total = pricing.Total(q.Services)
		return validation.Quote(*q)
	})
}

func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.QuoteStatus) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	if !status.Valid() {
		return entities.Quote{}, ErrInvalidQuoteStatus
	}
	return u.update(ctx, id, entities.QuotePatch{Status: &status})
}

// AddService prices sel against the customer's catalog and merges it into
// the quote.
func (u *QuoteUseCase) AddService(ctx context.Context, id string, sel ServiceSelection) (entities.Quote, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if sel.Quantity <= 0 {
		return entities.Quote{}, ErrInvalidQuantity
	}

	available, err := resolveCatalog(ctx, u.sheets, q.CustomerID)
	if err != nil {
		return entities.Quote{}, err
	}

	picker := composition.NewPicker(available)
	if !picker.Select(strings.TrimSpace(sel.ServiceID)) {
		return entities.Quote{}, ErrServiceNotInCatalog
	}
	picker.SetQuantity(sel.Quantity)
	if sel.CustomPrice != nil {
		picker.SetCustomPrice(*sel.CustomPrice)
	}
	date := sel.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	line, ok := picker.Build(date)
	if !ok {
		return entities.Quote{}, ErrInvalidQuantity
	}

	return u.mutate(ctx, q.ID, func(current *entities.Quote) error {
		f := composition.NewForm(current)
		f.AddService(line)
		return applyForm(f, current)
	})
}

// RemoveService drops the line at index from the quote as it is stored when
// the write happens.
func (u *QuoteUseCase) RemoveService(ctx context.Context, id string, index int) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	return u.mutate(ctx, id, func(current *entities.Quote) error {
		f := composition.NewForm(current)
		if err := f.RemoveService(index); err != nil {
			return err
		}
		return applyForm(f, current)
	})
}

// applyForm writes the composed lines into q and validates the result.
func applyForm(f *composition.Form, q *entities.Quote) error {
	f.ApplyTo(q)
	if q.Services == nil {
		q.Services = []entities.QuoteService{}
	}
	return validation.Quote(*q)
}

func (u *QuoteUseCase) update(ctx context.Context, id string, patch entities.QuotePatch) (entities.Quote, error) {
	updated, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}

// mutate runs fn on the stored quote inside one repository write, so the
// read and the write cannot interleave with another writer.
func (u *QuoteUseCase) mutate(ctx context.Context, id string, fn func(*entities.Quote) error) (entities.Quote, error) {
	updated, err := u.repo.Mutate(ctx, id, fn)
	if err != nil {
		return entities.Quote{}, err
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return updated, nil
}
