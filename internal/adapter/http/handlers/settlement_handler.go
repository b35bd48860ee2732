package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	request "quote_desk/internal/adapter/http/dto/request"
	response "quote_desk/internal/adapter/http/dto/response"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/validation"
	"quote_desk/internal/infrastructure/logger"
	"quote_desk/internal/infrastructure/notify"
	"quote_desk/internal/usecase"
	"quote_desk/pkg"

	"github.com/gin-gonic/gin"
)

// SettlementHandler handles HTTP requests for settlements and their payment.
type SettlementHandler struct {
	usecase  usecase.ISettlementUseCase
	notifier notify.Notifier
}

func NewSettlementHandler(uc usecase.ISettlementUseCase, n notify.Notifier) *SettlementHandler {
	return &SettlementHandler{usecase: uc, notifier: n}
}

// Create opens the settlement of a quote. A quote has at most one.
func (h *SettlementHandler) Create(c *gin.Context) {
	var payload request.SettlementCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.usecase.CreateFromQuote(c.Request.Context(), payload.QuoteID)
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}
	notifySuccess(h.notifier, "Settlement created", s.ID)
	c.JSON(http.StatusCreated, response.FromSettlement(s))
}

// List returns every settlement, or the settlement of ?quote_id= when given.
func (h *SettlementHandler) List(c *gin.Context) {
	if quoteID := strings.TrimSpace(c.Query("quote_id")); quoteID != "" {
		s, err := h.usecase.GetByQuoteID(c.Request.Context(), quoteID)
		if err != nil {
			writeError(c, mapSettlementError(err))
			return
		}
		c.JSON(http.StatusOK, response.NewList([]response.SettlementResponse{response.FromSettlement(s)}))
		return
	}

	settlements, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(response.FromSettlements(settlements)))
}

func (h *SettlementHandler) Get(c *gin.Context) {
	s, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlement(s))
}

func (h *SettlementHandler) Update(c *gin.Context) {
	var payload request.SettlementUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	current, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}

	var updated entities.Settlement
	ok := submitForm(c, h.notifier, validation.Settlement, current, patch,
		func(ctx context.Context, _ entities.Settlement) (err error) {
			updated, err = h.usecase.Update(ctx, current.ID, patch)
			return err
		}, mapSettlementError)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromSettlement(updated))
}

func (h *SettlementHandler) AddCharge(c *gin.Context) {
	var payload request.AddChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	s, err := h.usecase.AddCharge(c.Request.Context(), c.Param("id"), payload.Description, payload.Amount)
	if err != nil {
		writeError(c, mapSettlementError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettlement(s))
}

// CollectPayment charges the settlement total. The body is a Mercado Pago
// payment request, bare or wrapped in mp_payload.
func (h *SettlementHandler) CollectPayment(c *gin.Context) {
	id := c.Param("id")
	log := logger.For("settlement", "handler.CollectPayment").WithField("settlement_id", id)
	log.Info("collect payment start")

	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !mockMode {
			log.WithError(err).Warn("invalid payload")
			writeError(c, errInvalidRequest)
			return
		}
		log.WithError(err).Warn("payload invalid in mock mode, using empty payload")
		mpPayload = json.RawMessage("{}")
	}

	s, err := h.usecase.CollectPayment(c.Request.Context(), id, mpPayload)
	if err != nil {
		log.WithError(err).Warn("collect payment failed")
		writeError(c, mapSettlementError(err))
		return
	}
	if s.Payment != nil {
		log = log.WithField("payment_id", s.Payment.ID).WithField("status", s.Payment.Status)
	}
	log.Info("collect payment success")
	notifySuccess(h.notifier, "Payment collected", s.ID)

	c.JSON(http.StatusOK, response.FromSettlement(s))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapSettlementError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidSettlementID), errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidSettlementStatus):
		return pkg.NewDomainErrorSimple("INVALID_SETTLEMENT_STATUS", "Invalid settlement status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCharge):
		return pkg.NewDomainErrorSimple("INVALID_CHARGE", "Invalid additional charge", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettlementNotFound):
		return pkg.NewDomainErrorSimple("SETTLEMENT_NOT_FOUND", "Settlement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettlementAlreadyExists):
		return pkg.NewDomainErrorSimple("SETTLEMENT_ALREADY_EXISTS", "Settlement already exists for this quote", http.StatusConflict)
	case errors.Is(err, usecase.ErrSettlementNotCompleted):
		return pkg.NewDomainErrorSimple("SETTLEMENT_NOT_COMPLETED", "Settlement not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrSettlementAlreadyPaid):
		return pkg.NewDomainErrorSimple("SETTLEMENT_ALREADY_PAID", "Settlement already paid", http.StatusConflict)
	default:
		return internalError(err)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
