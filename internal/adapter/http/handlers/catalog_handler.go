package handlers

import (
	"context"
	"errors"
	"net/http"

	request "quote_desk/internal/adapter/http/dto/request"
	response "quote_desk/internal/adapter/http/dto/response"
	"quote_desk/internal/domain/entities"
	"quote_desk/internal/domain/validation"
	"quote_desk/internal/infrastructure/notify"
	"quote_desk/internal/usecase"
	"quote_desk/pkg"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles HTTP requests for service categories.
type CategoryHandler struct {
	usecase  usecase.ICategoryUseCase
	notifier notify.Notifier
}

func NewCategoryHandler(uc usecase.ICategoryUseCase, n notify.Notifier) *CategoryHandler {
	return &CategoryHandler{usecase: uc, notifier: n}
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	var created entities.Category
	ok := submitForm(c, h.notifier, validation.Category, payload.ToEntity(), nil,
		func(ctx context.Context, v entities.Category) (err error) {
			created, err = h.usecase.Create(ctx, v)
			return err
		}, mapCategoryError)
	if !ok {
		return
	}
	notifySuccess(h.notifier, "Category created", created.Name)
	c.JSON(http.StatusCreated, created)
}

// List returns every category, or the one matching ?name= (case-insensitive).
func (h *CategoryHandler) List(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		category, err := h.usecase.GetByName(c.Request.Context(), name)
		if err != nil {
			writeError(c, mapCategoryError(err))
			return
		}
		c.JSON(http.StatusOK, response.NewList([]entities.Category{category}))
		return
	}

	categories, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCategoryError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(categories))
}

func (h *CategoryHandler) Get(c *gin.Context) {
	category, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCategoryError(err))
		return
	}
	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Update(c *gin.Context) {
	var patch entities.CategoryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	current, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCategoryError(err))
		return
	}

	var updated entities.Category
	ok := submitForm(c, h.notifier, validation.Category, current, patch,
		func(ctx context.Context, _ entities.Category) (err error) {
			updated, err = h.usecase.Update(ctx, current.ID, patch)
			return err
		}, mapCategoryError)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, mapCategoryError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCategoryError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCategoryID), errors.Is(err, usecase.ErrInvalidCategoryName):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	usecase  usecase.ICustomerUseCase
	notifier notify.Notifier
}

func NewCustomerHandler(uc usecase.ICustomerUseCase, n notify.Notifier) *CustomerHandler {
	return &CustomerHandler{usecase: uc, notifier: n}
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	var created entities.Customer
	ok := submitForm(c, h.notifier, validation.Customer, payload.ToEntity(), nil,
		func(ctx context.Context, v entities.Customer) (err error) {
			created, err = h.usecase.Create(ctx, v)
			return err
		}, mapCustomerError)
	if !ok {
		return
	}
	notifySuccess(h.notifier, "Customer created", created.Name)
	c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(customers))
}

func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	var patch entities.CustomerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	current, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapCustomerError(err))
		return
	}

	var updated entities.Customer
	ok := submitForm(c, h.notifier, validation.Customer, current, patch,
		func(ctx context.Context, _ entities.Customer) (err error) {
			updated, err = h.usecase.Update(ctx, current.ID, patch)
			return err
		}, mapCustomerError)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, updated)
}

func mapCustomerError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}

// ServiceHandler handles HTTP requests for the flat service registry.
type ServiceHandler struct {
	usecase  usecase.IServiceUseCase
	notifier notify.Notifier
}

func NewServiceHandler(uc usecase.IServiceUseCase, n notify.Notifier) *ServiceHandler {
	return &ServiceHandler{usecase: uc, notifier: n}
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	var created entities.Service
	ok := submitForm(c, h.notifier, validation.Service, payload.ToEntity(), nil,
		func(ctx context.Context, v entities.Service) (err error) {
			created, err = h.usecase.Create(ctx, v)
			return err
		}, mapServiceError)
	if !ok {
		return
	}
	notifySuccess(h.notifier, "Service created", created.Name)
	c.JSON(http.StatusCreated, created)
}

func (h *ServiceHandler) List(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.NewList(services))
}

func (h *ServiceHandler) Get(c *gin.Context) {
	service, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, service)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var patch entities.ServicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		writeError(c, errInvalidRequest)
		return
	}

	current, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapServiceError(err))
		return
	}

	var updated entities.Service
	ok := submitForm(c, h.notifier, validation.Service, current, patch,
		func(ctx context.Context, _ entities.Service) (err error) {
			updated, err = h.usecase.Update(ctx, current.ID, patch)
			return err
		}, mapServiceError)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, updated)
}

func mapServiceError(err error) *pkg.AppError {
	if appErr := mapCommonError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
