// Package emailparser extracts requested services from quote request emails.
package emailparser

import (
	"context"
	"fmt"
	"sync"

	"quote_desk/internal/domain/entities"
	"quote_desk/internal/infrastructure/logger"
	"quote_desk/internal/usecase/interfaces"
)

var ErrEmailParsingNotImplemented = fmt.Errorf("email parsing: %w", interfaces.ErrNotImplemented)

// Parser is a placeholder: Parse never fabricates services. It records the
// failure in Err and returns ErrEmailParsingNotImplemented.
type Parser struct {
	mu  sync.Mutex
	err error
}

var _ interfaces.IEmailParser = (*Parser)(nil)

func New() *Parser { return &Parser{} }

func (p *Parser) Parse(_ context.Context, html string) ([]entities.DetectedService, error) {
	p.mu.Lock()
	p.err = ErrEmailParsingNotImplemented
	p.mu.Unlock()
	logger.For("emailparser", "Parse").WithField("html_len", len(html)).Warn(ErrEmailParsingNotImplemented.Error())
	return nil, ErrEmailParsingNotImplemented
}

func (p *Parser) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}
