package usecase

import (
	"context"
	"errors"
	"io"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"
)

type DocumentFormat string

const (
	DocumentFormatXLSX DocumentFormat = "xlsx"
	DocumentFormatPDF  DocumentFormat = "pdf"
)

var ErrUnsupportedDocumentFormat = errors.New("unsupported document format")

// IDocumentUseCase renders quotes into downloadable documents.
type IDocumentUseCase interface {
	RenderQuote(ctx context.Context, quoteID string, format DocumentFormat, w io.Writer) (contentType string, err error)
}

type DocumentUseCase struct {
	quotes    IQuoteUseCase
	customers interfaces.ICustomerRepository
	sheets    interfaces.IServiceSheetRepository
	renderers map[DocumentFormat]interfaces.IQuoteRenderer
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(
	quotes IQuoteUseCase,
	customers interfaces.ICustomerRepository,
	sheets interfaces.IServiceSheetRepository,
	renderers map[DocumentFormat]interfaces.IQuoteRenderer,
) *DocumentUseCase {
	return &DocumentUseCase{quotes: quotes, customers: customers, sheets: sheets, renderers: renderers}
}

func (u *DocumentUseCase) RenderQuote(ctx context.Context, quoteID string, format DocumentFormat, w io.Writer) (string, error) {
	renderer, ok := u.renderers[format]
	if !ok {
		return "", ErrUnsupportedDocumentFormat
	}

	q, err := u.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return "", err
	}
	customer, err := u.customers.GetByID(ctx, q.CustomerID)
	if err != nil {
		return "", err
	}
	available, err := resolveCatalog(ctx, u.sheets, q.CustomerID)
	if err != nil {
		return "", err
	}

	services := make(map[string]entities.Service, len(available))
	for _, s := range available {
		services[s.ID] = s
	}

	doc := interfaces.QuoteDocument{Quote: q, Customer: customer, Services: services}
	if err := renderer.Render(ctx, doc, w); err != nil {
		return "", err
	}
	return renderer.ContentType(), nil
}
