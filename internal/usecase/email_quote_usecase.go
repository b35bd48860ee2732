package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"quote_desk/internal/domain/composition"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/infrastructure/logger"
	"quote_desk/internal/usecase/interfaces"
)

var (
	ErrEmailQuoteNotFound        = errors.New("email quote not found")
	ErrInvalidEmailQuoteID       = errors.New("invalid email quote id")
	ErrInvalidEmailQuoteStatus   = errors.New("invalid email quote status")
	ErrEmailQuoteNotPending      = errors.New("email quote is not pending")
	ErrNoDetectedServicesMatched = errors.New("no detected service matches the customer catalog")
)

const detectedDateLayout = "2006-01-02"

// IEmailQuoteUseCase handles quote requests received by email.
//
// ConvertToQuote turns the detected services of a pending email into a draft
// quote:
//   - services are matched by name (case-insensitive) against the customer catalog
//   - the suggested price wins over the catalog price
//   - a missing quantity counts as 1
//
// The email is claimed (pending to processed) before the quote is created and
// released again if the quote cannot be stored, so one email yields at most
// one quote.
type IEmailQuoteUseCase interface {
	List(ctx context.Context) ([]entities.EmailQuote, error)
	GetByID(ctx context.Context, id string) (entities.EmailQuote, error)
	UpdateStatus(ctx context.Context, id string, status entities.EmailQuoteStatus) (entities.EmailQuote, error)
	Parse(ctx context.Context, html string) ([]entities.DetectedService, error)
	ConvertToQuote(ctx context.Context, id, customerID string) (entities.Quote, error)
}

type EmailQuoteUseCase struct {
	repo   interfaces.IEmailQuoteRepository
	quotes IQuoteUseCase
	sheets interfaces.IServiceSheetRepository
	parser interfaces.IEmailParser
}

var _ IEmailQuoteUseCase = (*EmailQuoteUseCase)(nil)

func NewEmailQuoteUseCase(repo interfaces.IEmailQuoteRepository, quotes IQuoteUseCase, sheets interfaces.IServiceSheetRepository, parser interfaces.IEmailParser) *EmailQuoteUseCase {
	return &EmailQuoteUseCase{repo: repo, quotes: quotes, sheets: sheets, parser: parser}
}

func (u *EmailQuoteUseCase) List(ctx context.Context) ([]entities.EmailQuote, error) {
	return u.repo.List(ctx)
}

func (u *EmailQuoteUseCase) GetByID(ctx context.Context, id string) (entities.EmailQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EmailQuote{}, ErrInvalidEmailQuoteID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.EmailQuote{}, err
	}
	if e.ID == "" {
		return entities.EmailQuote{}, ErrEmailQuoteNotFound
	}
	return e, nil
}

func (u *EmailQuoteUseCase) UpdateStatus(ctx context.Context, id string, status entities.EmailQuoteStatus) (entities.EmailQuote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.EmailQuote{}, ErrInvalidEmailQuoteID
	}
	if !status.Valid() {
		return entities.EmailQuote{}, ErrInvalidEmailQuoteStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.EmailQuote{}, err
	}
	if updated.ID == "" {
		return entities.EmailQuote{}, ErrEmailQuoteNotFound
	}
	return updated, nil
}

func (u *EmailQuoteUseCase) Parse(ctx context.Context, html string) ([]entities.DetectedService, error) {
	return u.parser.Parse(ctx, html)
}

func (u *EmailQuoteUseCase) ConvertToQuote(ctx context.Context, id, customerID string) (entities.Quote, error) {
	email, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if email.Status != entities.EmailQuoteStatusPending {
		return entities.Quote{}, ErrEmailQuoteNotPending
	}
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return entities.Quote{}, ErrInvalidCustomerID
	}

	available, err := resolveCatalog(ctx, u.sheets, customerID)
	if err != nil {
		return entities.Quote{}, err
	}

	f := composition.NewForm(nil)
	f.CustomerID = customerID
	for _, detected := range email.DetectedServices {
		line, ok := detectedLine(available, detected, email.ReceivedAt)
		if !ok {
			continue
		}
		f.AddService(line)
	}
	if len(f.Services) == 0 {
		return entities.Quote{}, ErrNoDetectedServicesMatched
	}

	claimed, err := u.repo.CompareAndSetStatus(ctx, email.ID, entities.EmailQuoteStatusPending, entities.EmailQuoteStatusProcessed)
	if err != nil {
		return entities.Quote{}, err
	}
	if claimed.ID == "" {
		return entities.Quote{}, ErrEmailQuoteNotPending
	}
	log := logger.For("email_quote", "ConvertToQuote").WithField("email_quote_id", email.ID)

	var q entities.Quote
	f.ApplyTo(&q)
	created, err := u.quotes.Create(ctx, q)
	if err != nil {
		if _, rerr := u.repo.CompareAndSetStatus(ctx, email.ID, entities.EmailQuoteStatusProcessed, entities.EmailQuoteStatusPending); rerr != nil {
			log.WithError(rerr).Warn("email left processed after failed conversion")
		}
		return entities.Quote{}, err
	}

	log.WithField("quote_id", created.ID).
		WithField("lines", len(created.Services)).
		Info("email converted to quote")
	return created, nil
}

func detectedLine(available []entities.Service, d entities.DetectedService, received time.Time) (entities.QuoteService, bool) {
	name := strings.TrimSpace(d.Name)
	var match *entities.Service
	for i := range available {
		if strings.EqualFold(available[i].Name, name) {
			match = &available[i]
			break
		}
	}
	if match == nil {
		return entities.QuoteService{}, false
	}

	picker := composition.NewPicker([]entities.Service{*match})
	picker.Select(match.ID)
	if d.Quantity != nil && *d.Quantity > 0 {
		picker.SetQuantity(*d.Quantity)
	}
	if d.SuggestedPrice != nil {
		picker.SetCustomPrice(*d.SuggestedPrice)
	}

	date := received
	if t, err := time.Parse(detectedDateLayout, d.Date); err == nil {
		date = t
	}
	return picker.Build(date)
}
