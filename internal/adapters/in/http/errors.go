package http

import (
	"errors"
	"fmt"
	"net/http"

	"logistics/internal/generated/servers"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps the error taxonomy of internal/pkg/errs to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConflict), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorResponse(ctx echo.Context, err error) error {
	status := StatusFor(err)

	message := err.Error()
	var conflict *errs.ConflictError
	switch {
	case status == http.StatusInternalServerError:
		ctx.Logger().Errorf("request failed: %v", err)
		message = http.StatusText(status)
	case errors.As(err, &conflict):
		message = fmt.Sprintf("%s: %s", conflict.Code, conflict.Message)
	}

	return ctx.JSON(status, servers.Error{
		Code:    int32(status),
		Message: message,
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
