package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
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

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quotes and their service lines.
type QuoteHandler struct {
	usecase  usecase.IQuoteUseCase
	notifier notify.Notifier
}

func NewQuoteHandler(uc usecase.IQuoteUseCase, n notify.Notifier) *QuoteHandler {
	return &QuoteHandler{usecase: uc, notifier: n}
}

// Create builds a draft quote. Lines repeating a service are merged into the
// first one.
func (h *QuoteHandler) Create(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	q, err := payload.ToEntity()
	if err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	if q.Status == "" {
		q.Status = entities.QuoteStatusDraft
	}

	var created entities.Quote
	ok := submitForm(c, h.notifier, validation.Quote, q, nil,
		func(ctx context.Context, v entities.Quote) (err error) {
			created, err = h.usecase.Create(ctx, v)
			return err
		}, mapQuoteError)
	if !ok {
		return
	}
	notifySuccess(h.notifier, "Quote created", created.ID)
	c.JSON(http.StatusCreated, response.FromQuote(created))
}

// List returns every quote, or the quotes of ?customer_id= when given.
func (h *QuoteHandler) List(c *gin.Context) {
	var (
		quotes []entities.Quote
		err    error
	)
	if customerID := strings.TrimSpace(c.Query("customer_id")); customerID != "" {
		quotes, err = h.usecase.ListByCustomerID(c.Request.Context(), customerID)
	} else {
		quotes, err = h.usecase.List(c.Request.Context())
	}
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(response.FromQuotes(quotes)))
}

func (h *QuoteHandler) Get(c *gin.Context) {
	q, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) Update(c *gin.Context) {
	var payload request.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}
	patch, err := payload.ToPatch()
	if err != nil {
		writeError(c, errInvalidQuotePayload)
		return
	}

	current, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}

	var updated entities.Quote
	ok := submitForm(c, h.notifier, validation.Quote, current, patch,
		func(ctx context.Context, _ entities.Quote) (err error) {
			updated, err = h.usecase.Update(ctx, current.ID, patch)
			return err
		}, mapQuoteError)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.QuoteStatus(strings.TrimSpace(payload.Status)))
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	logger.For("quote", "UpdateStatus").WithField("quote_id", q.ID).WithField("status", q.Status).Info("quote status changed")
	c.JSON(http.StatusOK, response.FromQuote(q))
}

// AddService prices a catalog service for the quote's customer and merges it
// into the quote.
func (h *QuoteHandler) AddService(c *gin.Context) {
	var payload request.AddQuoteServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	sel, err := payload.ToSelection()
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.AddService(c.Request.Context(), c.Param("id"), sel)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func (h *QuoteHandler) RemoveService(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.RemoveService(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		writeError(c, mapQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapQuoteError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_STATUS", "Invalid quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuantity):
		return pkg.NewDomainErrorSimple("INVALID_QUANTITY", "Quantity must be greater than 0", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotInCatalog):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_IN_CATALOG", "Service not available for this customer", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrServiceIndexOutOfRange):
		return pkg.NewDomainErrorSimple("SERVICE_INDEX_OUT_OF_RANGE", "Service index out of range", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
