package emailparser

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_IsStub(t *testing.T) {
	p := New()

	got, err := p.Parse(context.Background(), "<p>2 noches hotel</p>")

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrEmailParsingNotImplemented)
	assert.ErrorIs(t, p.Err(), ErrEmailParsingNotImplemented)
}
