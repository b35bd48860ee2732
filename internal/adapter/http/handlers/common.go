package handlers

import (
	"context"
	"errors"
	"net/http"

	"quote_desk/internal/domain/validation"
	"quote_desk/internal/form"
	"quote_desk/internal/infrastructure/notify"
	"quote_desk/internal/usecase/interfaces"
	"quote_desk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInternal       = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
)

func writeError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// submitForm validates data and, when valid, runs action through a form.
// Error responses are written here; a true result means the caller still has
// to write the success response.
func submitForm[T any](
	c *gin.Context,
	n notify.Notifier,
	validate func(T) error,
	data T,
	patch form.Patch[T],
	action func(context.Context, T) error,
	mapErr func(error) *pkg.AppError,
) bool {
	f := form.New(validate, n, data)
	if patch != nil {
		f.SetData(patch)
	}

	var actionErr error
	ok := f.Submit(c.Request.Context(), func(ctx context.Context, v T) error {
		actionErr = action(ctx, v)
		return actionErr
	})
	switch {
	case ok:
		return true
	case actionErr != nil:
		writeError(c, mapErr(actionErr))
	case !f.IsValid():
		writeError(c, pkg.NewValidationError(f.Errors(), http.StatusBadRequest))
	default:
		writeError(c, errInternal)
	}
	return false
}

func notifySuccess(n notify.Notifier, title, msg string) {
	if n == nil {
		return
	}
	n.Notify(notify.Notification{Title: title, Message: msg, Type: notify.TypeSuccess})
}

// mapCommonError handles the errors every handler maps the same way. It
// returns nil for anything else.
func mapCommonError(err error) *pkg.AppError {
	var ves validation.Errors
	switch {
	case errors.As(err, &ves):
		fields := make(map[string]string, len(ves))
		for _, fe := range ves {
			fields[fe.Key()] = fe.Message
		}
		return pkg.NewValidationError(fields, http.StatusBadRequest)
	case errors.Is(err, interfaces.ErrWriteConflict):
		return pkg.NewDomainError("WRITE_CONFLICT", "The record changed during the write, retry the request", err, http.StatusConflict)
	case errors.Is(err, interfaces.ErrNotImplemented):
		return pkg.NewDomainError("NOT_IMPLEMENTED", "Operation not implemented", err, http.StatusNotImplemented)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("REQUEST_CANCELLED", "Request cancelled", err, http.StatusServiceUnavailable)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
