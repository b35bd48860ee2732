package interfaces

import (
	"context"
	"errors"
	"io"

	"quote_desk/internal/domain/entities"
)

// ErrNotImplemented is wrapped by adapters whose operation is a placeholder.
var ErrNotImplemented = errors.New("not implemented")

// QuoteDocument is everything a renderer needs to print a quote: the quote,
// its customer and the catalog entries its lines point to.
type QuoteDocument struct {
	Quote    entities.Quote
	Customer entities.Customer
	Services map[string]entities.Service
}

// IQuoteRenderer writes a quote document in one output format.
type IQuoteRenderer interface {
	ContentType() string
	Render(ctx context.Context, doc QuoteDocument, w io.Writer) error
}

// IEmailParser extracts candidate services from the HTML body of an email.
type IEmailParser interface {
	Parse(ctx context.Context, html string) ([]entities.DetectedService, error)
}
