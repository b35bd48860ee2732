package usecase

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"quote_desk/internal/adapter/persistence/memory"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/usecase/interfaces"
	mock_interfaces "quote_desk/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDocumentUseCase_RenderQuote(t *testing.T) {
	ctx := context.Background()

	sheets := memory.NewServiceSheetStore()
	_, _ = sheets.Create(ctx, defaultSheet())
	customers := memory.NewCustomerStore()
	_, _ = customers.Create(ctx, entities.Customer{ID: "c1", Name: "Hotel Paraiso", Email: "res@paraiso.com"})
	quoteStore := memory.NewQuoteStore()
	_, _ = quoteStore.Create(ctx, entities.Quote{
		ID: "q1", CustomerID: "c1", Status: entities.QuoteStatusDraft,
		Services: []entities.QuoteService{{ServiceID: "a", Quantity: 1, Price: 100}},
	})
	quotes := NewQuoteUseCase(quoteStore, sheets)

	t.Run("unsupported format", func(t *testing.T) {
		uc := NewDocumentUseCase(quotes, customers, sheets, nil)
		if _, err := uc.RenderQuote(ctx, "q1", "docx", io.Discard); !errors.Is(err, ErrUnsupportedDocumentFormat) {
			t.Fatalf("expected ErrUnsupportedDocumentFormat, got %v", err)
		}
	})

	t.Run("passes quote, customer and catalog to the renderer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewDocumentUseCase(quotes, customers, sheets, map[DocumentFormat]interfaces.IQuoteRenderer{DocumentFormatXLSX: renderer})

		renderer.EXPECT().Render(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, doc interfaces.QuoteDocument, w io.Writer) error {
				if doc.Quote.ID != "q1" || doc.Customer.Name != "Hotel Paraiso" {
					t.Fatalf("unexpected document %+v", doc)
				}
				if doc.Services["a"].Name != "A" {
					t.Fatalf("expected catalog entry for a, got %+v", doc.Services)
				}
				_, err := w.Write([]byte("xlsx-bytes"))
				return err
			})
		renderer.EXPECT().ContentType().Return("application/test")

		var buf bytes.Buffer
		ct, err := uc.RenderQuote(ctx, "q1", DocumentFormatXLSX, &buf)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ct != "application/test" || buf.String() != "xlsx-bytes" {
			t.Fatalf("unexpected output %q %q", ct, buf.String())
		}
	})

	t.Run("unknown quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		renderer := mock_interfaces.NewMockIQuoteRenderer(ctrl)
		uc := NewDocumentUseCase(quotes, customers, sheets, map[DocumentFormat]interfaces.IQuoteRenderer{DocumentFormatPDF: renderer})

		if _, err := uc.RenderQuote(ctx, "nope", DocumentFormatPDF, io.Discard); !errors.Is(err, ErrQuoteNotFound) {
			t.Fatalf("expected ErrQuoteNotFound, got %v", err)
		}
	})
}
