package documents

import (
	"context"
	"fmt"
	"io"
	"sync"

	"quote_desk/internal/infrastructure/logger"
	"quote_desk/internal/usecase/interfaces"
)

const PDFContentType = "application/pdf"

var ErrPDFGenerationNotImplemented = fmt.Errorf("pdf generation: %w", interfaces.ErrNotImplemented)

// PDFRenderer is a placeholder. Render always fails with
// ErrPDFGenerationNotImplemented and records the failure in Err.
type PDFRenderer struct {
	mu  sync.Mutex
	err error
}

var _ interfaces.IQuoteRenderer = (*PDFRenderer)(nil)

func NewPDFRenderer() *PDFRenderer { return &PDFRenderer{} }

func (r *PDFRenderer) ContentType() string { return PDFContentType }

func (r *PDFRenderer) Render(_ context.Context, doc interfaces.QuoteDocument, _ io.Writer) error {
	r.mu.Lock()
	r.err = ErrPDFGenerationNotImplemented
	r.mu.Unlock()
	logger.For("documents", "PDFRenderer.Render").WithField("quote_id", doc.Quote.ID).Warn(ErrPDFGenerationNotImplemented.Error())
	return ErrPDFGenerationNotImplemented
}

// Err returns the error of the last Render call.
func (r *PDFRenderer) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
