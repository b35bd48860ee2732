package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	request "quote_desk/internal/adapter/http/dto/request"
	response "quote_desk/internal/adapter/http/dto/response"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/validation"
	"quote_desk/internal/infrastructure/notify"
	"quote_desk/internal/usecase"
	"quote_desk/pkg"

	"github.com/gin-gonic/gin"
)

// ServiceSheetHandler handles HTTP requests for service sheets and the
// per-customer catalog they resolve to.
type ServiceSheetHandler struct {
	usecase  usecase.IServiceSheetUseCase
	notifier notify.Notifier
}

func NewServiceSheetHandler(uc usecase.IServiceSheetUseCase, n notify.Notifier) *ServiceSheetHandler {
	return &ServiceSheetHandler{usecase: uc, notifier: n}
}

func (h *ServiceSheetHandler) Create(c *gin.Context) {
	var payload request.ServiceSheetRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	var created entities.ServiceSheet
	ok := submitForm(c, h.notifier, validation.ServiceSheet, payload.ToEntity(), nil,
		func(ctx context.Context, v entities.ServiceSheet) (err error) {
			created, err = h.usecase.Create(ctx, v)
			return err
		}, mapServiceSheetError)
	if !ok {
		return
	}
	notifySuccess(h.notifier, "Service sheet created", created.Name)
	c.JSON(http.StatusCreated, created)
}

// List returns every sheet, or the sheet of ?customer_id= when given.
func (h *ServiceSheetHandler) List(c *gin.Context) {
	if customerID := strings.TrimSpace(c.Query("customer_id")); customerID != "" {
		sheet, err := h.usecase.GetByCustomerID(c.Request.Context(), customerID)
		if err != nil {
			writeError(c, mapServiceSheetError(err))
			return
		}
		c.JSON(http.StatusOK, response.NewList([]entities.ServiceSheet{sheet}))
		return
	}

	sheets, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceSheetError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(sheets))
}

func (h *ServiceSheetHandler) GetDefault(c *gin.Context) {
	sheet, err := h.usecase.GetDefault(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceSheetError(err))
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *ServiceSheetHandler) Get(c *gin.Context) {
	sheet, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapServiceSheetError(err))
		return
	}
	c.JSON(http.StatusOK, sheet)
}

func (h *ServiceSheetHandler) Update(c *gin.Context) {
	var patch entities.ServiceSheetPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	current, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapServiceSheetError(err))
		return
	}

	var updated entities.ServiceSheet
	ok := submitForm(c, h.notifier, validation.ServiceSheet, current, patch,
		func(ctx context.Context, _ entities.ServiceSheet) (err error) {
			updated, err = h.usecase.Update(ctx, current.ID, patch)
			return err
		}, mapServiceSheetError)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete is a no-op for the default sheet and unknown ids.
func (h *ServiceSheetHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapServiceSheetError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ServiceSheetHandler) AddService(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	var updated entities.ServiceSheet
	ok := submitForm(c, h.notifier, validation.Service, payload.ToEntity(), nil,
		func(ctx context.Context, v entities.Service) (err error) {
			updated, err = h.usecase.AddService(ctx, c.Param("id"), v)
			return err
		}, mapServiceSheetError)
	if !ok {
		return
	}
	c.JSON(http.StatusCreated, updated)
}

func (h *ServiceSheetHandler) UpdateService(c *gin.Context) {
	var patch entities.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	sheet, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapServiceSheetError(err))
		return
	}
	serviceID := strings.TrimSpace(c.Param("service_id"))
	var current *entities.Service
	for i := range sheet.Services {
		if sheet.Services[i].ID == serviceID {
			current = &sheet.Services[i]
			break
		}
	}
	if current == nil {
		writeError(c, mapServiceSheetError(usecase.ErrSheetServiceNotFound))
		return
	}

	var updated entities.ServiceSheet
	ok := submitForm(c, h.notifier, validation.Service, *current, patch,
		func(ctx context.Context, _ entities.Service) (err error) {
			updated, err = h.usecase.UpdateService(ctx, sheet.ID, serviceID, patch)
			return err
		}, mapServiceSheetError)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ServiceSheetHandler) DeleteService(c *gin.Context) {
	sheet, err := h.usecase.DeleteService(c.Request.Context(), c.Param("id"), c.Param("service_id"))
	if err != nil {
		writeError(c, mapServiceSheetError(err))
		return
	}
	c.JSON(http.StatusOK, sheet)
}

// ResolveCatalog returns the services available to ?customer_id=: the
// default sheet with the customer's overrides applied.
func (h *ServiceSheetHandler) ResolveCatalog(c *gin.Context) {
	services, err := h.usecase.ResolveCatalog(c.Request.Context(), c.Query("customer_id"))
	if err != nil {
		writeError(c, mapServiceSheetError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(services))
}

func mapServiceSheetError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceSheetID), errors.Is(err, usecase.ErrInvalidServiceID), errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrDefaultSheetExists):
		return pkg.NewDomainErrorSimple("DEFAULT_SHEET_EXISTS", "A default service sheet already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrCustomerSheetExists):
		return pkg.NewDomainErrorSimple("CUSTOMER_SHEET_EXISTS", "Customer already has a service sheet", http.StatusConflict)
	case errors.Is(err, usecase.ErrServiceSheetNotFound), errors.Is(err, usecase.ErrDefaultSheetNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_SHEET_NOT_FOUND", "Service sheet not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSheetServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found in sheet", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
