package http

import (
	"errors"
	"net/http"

	"dinein/internal/core/application/usecases/commands"
	"dinein/internal/core/domain/model/menu"
	"dinein/internal/core/domain/model/order"
	"dinein/internal/core/domain/model/table"
	"dinein/internal/core/domain/services"
	"dinein/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusCodeFor maps application errors to HTTP status codes.
// Missing objects map to 404, state conflicts to 409, business rule
// violations to 422, and everything else is treated as a bad request.
func statusCodeFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrOrderAlreadyCompleted),
		errors.Is(err, table.ErrActiveOrderExists),
		errors.Is(err, table.ErrTableHasGroup),
		errors.Is(err, table.ErrTableAlreadyGrouped),
		errors.Is(err, table.ErrTableNotEmpty):
		return http.StatusConflict
	case errors.Is(err, menu.ErrMenuProductsAreEmpty),
		errors.Is(err, services.ErrMenuPriceExceedsTotal),
		errors.Is(err, order.ErrOrderLineItemsAreEmpty),
		errors.Is(err, commands.ErrOrderLineItemMenuMismatch),
		errors.Is(err, table.ErrTableIsEmpty),
		errors.Is(err, table.ErrNotEnoughTables),
		errors.Is(err, table.ErrDuplicateTables):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusBadRequest
	}
}

// jsonError writes the standard error body for a failed request.
func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// handlerError maps a command failure to its HTTP response.
func handlerError(ctx echo.Context, err error) error {
	return jsonError(ctx, statusCodeFor(err), err.Error())
}
