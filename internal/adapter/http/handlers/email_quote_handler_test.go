package handlers

import (
	"net/http"
	"testing"

	"quote_desk/internal/adapter/http/handlers/mocks"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/infrastructure/notify"
	"quote_desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestEmailQuoteHandler_Convert(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("customer required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmailQuoteUseCase(ctrl)
		h := NewEmailQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/email-quotes/:id/convert", h.Convert)

		w := serve(r, http.MethodPost, "/v1/email-quotes/eq1/convert", `{}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("already processed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmailQuoteUseCase(ctrl)
		h := NewEmailQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/email-quotes/:id/convert", h.Convert)

		uc.EXPECT().ConvertToQuote(gomock.Any(), "eq1", "c1").Return(entities.Quote{}, usecase.ErrEmailQuoteNotPending)

		w := serve(r, http.MethodPost, "/v1/email-quotes/eq1/convert", `{"customer_id":"c1"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("nothing matched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmailQuoteUseCase(ctrl)
		h := NewEmailQuoteHandler(uc, nil)

		r := gin.New()
		r.POST("/v1/email-quotes/:id/convert", h.Convert)

		uc.EXPECT().ConvertToQuote(gomock.Any(), "eq1", "c1").Return(entities.Quote{}, usecase.ErrNoDetectedServicesMatched)

		w := serve(r, http.MethodPost, "/v1/email-quotes/eq1/convert", `{"customer_id":"c1"}`)
		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEmailQuoteUseCase(ctrl)
		rec := notify.NewRecorder(nil)
		h := NewEmailQuoteHandler(uc, rec)

		r := gin.New()
		r.POST("/v1/email-quotes/:id/convert", h.Convert)

		uc.EXPECT().ConvertToQuote(gomock.Any(), "eq1", "c1").Return(entities.Quote{
			ID: "q-9", CustomerID: "c1", Status: entities.QuoteStatusDraft, Total: 2000,
		}, nil)

		w := serve(r, http.MethodPost, "/v1/email-quotes/eq1/convert", `{"customer_id":"c1"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["id"] != "q-9" {
			t.Fatalf("unexpected body %v", body)
		}
		if len(rec.Sent()) != 1 {
			t.Fatalf("expected a success notification")
		}
	})
}

func TestEmailQuoteHandler_UpdateStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEmailQuoteUseCase(ctrl)
	h := NewEmailQuoteHandler(uc, nil)

	r := gin.New()
	r.PATCH("/v1/email-quotes/:id/status", h.UpdateStatus)

	uc.EXPECT().UpdateStatus(gomock.Any(), "eq1", entities.EmailQuoteStatusIgnored).
		Return(entities.EmailQuote{ID: "eq1", Status: entities.EmailQuoteStatusIgnored}, nil)

	w := serve(r, http.MethodPatch, "/v1/email-quotes/eq1/status", `{"status":"ignored"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if got := decodeBody(t, w)["status"]; got != "ignored" {
		t.Fatalf("unexpected status %v", got)
	}
}

func TestEmailQuoteHandler_Parse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIEmailQuoteUseCase(ctrl)
	h := NewEmailQuoteHandler(uc, nil)

	r := gin.New()
	r.POST("/v1/email-quotes/parse", h.Parse)

	qty := 2
	uc.EXPECT().Parse(gomock.Any(), "<p>2 noches</p>").Return([]entities.DetectedService{{Name: "Hotel", Quantity: &qty, Confidence: 0.9}}, nil)

	w := serve(r, http.MethodPost, "/v1/email-quotes/parse", `{"html":"<p>2 noches</p>"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := decodeBody(t, w)["count"]; got != 1.0 {
		t.Fatalf("unexpected count %v", got)
	}
}
