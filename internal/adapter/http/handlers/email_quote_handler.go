package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "quote_desk/internal/adapter/http/dto/request"
	response "quote_desk/internal/adapter/http/dto/response"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/infrastructure/notify"
	"quote_desk/internal/usecase"
	"quote_desk/pkg"

	"github.com/gin-gonic/gin"
)

// EmailQuoteHandler handles HTTP requests for quote requests received by
// email.
type EmailQuoteHandler struct {
	usecase  usecase.IEmailQuoteUseCase
	notifier notify.Notifier
}

func NewEmailQuoteHandler(uc usecase.IEmailQuoteUseCase, n notify.Notifier) *EmailQuoteHandler {
	return &EmailQuoteHandler{usecase: uc, notifier: n}
}

func (h *EmailQuoteHandler) List(c *gin.Context) {
	emails, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapEmailQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(emails))
}

func (h *EmailQuoteHandler) Get(c *gin.Context) {
	email, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapEmailQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, email)
}

func (h *EmailQuoteHandler) UpdateStatus(c *gin.Context) {
	var payload request.StatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	status := entities.EmailQuoteStatus(strings.TrimSpace(payload.Status))
	email, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), status)
	if err != nil {
		writeError(c, mapEmailQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, email)
}

// Convert creates a draft quote for customer_id from the services detected
// in the email, and marks the email processed.
func (h *EmailQuoteHandler) Convert(c *gin.Context) {
	var payload request.ConvertEmailQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	q, err := h.usecase.ConvertToQuote(c.Request.Context(), c.Param("id"), payload.CustomerID)
	if err != nil {
		writeError(c, mapEmailQuoteError(err))
		return
	}
	notifySuccess(h.notifier, "Quote created from email", q.ID)
	c.JSON(http.StatusCreated, response.FromQuote(q))
}

func (h *EmailQuoteHandler) Parse(c *gin.Context) {
	var payload request.ParseEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	detected, err := h.usecase.Parse(c.Request.Context(), payload.HTML)
	if err != nil {
		writeError(c, mapEmailQuoteError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(detected))
}

func mapEmailQuoteError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidEmailQuoteID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidEmailQuoteStatus):
		return pkg.NewDomainErrorSimple("INVALID_EMAIL_QUOTE_STATUS", "Invalid email quote status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmailQuoteNotFound):
		return pkg.NewDomainErrorSimple("EMAIL_QUOTE_NOT_FOUND", "Email quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEmailQuoteNotPending):
		return pkg.NewDomainErrorSimple("EMAIL_QUOTE_NOT_PENDING", "Email quote already handled", http.StatusConflict)
	case errors.Is(err, usecase.ErrNoDetectedServicesMatched):
		return pkg.NewDomainErrorSimple("NO_SERVICES_MATCHED", "No detected service matches the customer catalog", http.StatusUnprocessableEntity)
	default:
		return mapQuoteError(err)
	}
}
