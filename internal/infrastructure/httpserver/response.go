package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lllypuk/userdeck/internal/application/appcore"
	"github.com/lllypuk/userdeck/internal/domain/errs"
)

// ErrorResponse is the body of every failed request: a short message only.
// The shape is part of the external contract and must stay flat.
type ErrorResponse struct {
	Message string `json:"message"`
}

// RespondOK sends a 200 OK response with data.
func RespondOK(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// RespondCreated sends a 201 Created response with data.
func RespondCreated(c echo.Context, data any) error {
	return c.JSON(http.StatusCreated, data)
}

// RespondNoContent sends a 204 No Content response.
func RespondNoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

// RespondMessage sends an error response with the given status and message.
func RespondMessage(c echo.Context, code int, message string) error {
	return c.JSON(code, ErrorResponse{Message: message})
}

// RespondError maps an application or domain error to its HTTP status and
// sends the short-message body. Unknown errors become 500 without leaking
// their text to the caller.
func RespondError(c echo.Context, err error) error {
	return c.JSON(mapError(err))
}

// mapError implements the error taxonomy: validation is 400, conflict is 409,
// not found is 404, everything else is 500.
func mapError(err error) (int, ErrorResponse) {
	var validationErr *appcore.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, ErrorResponse{Message: validationErr.Error()}
	}

	var notFoundErr *appcore.NotFoundError
	if errors.As(err, &notFoundErr) {
		return http.StatusNotFound, ErrorResponse{Message: notFoundErr.Error()}
	}

	var conflictErr *appcore.ConflictError
	if errors.As(err, &conflictErr) {
		return http.StatusConflict, ErrorResponse{Message: conflictErr.Error()}
	}

	switch {
	case errors.Is(err, errs.ErrInvalidInput):
		return http.StatusBadRequest, ErrorResponse{Message: "Invalid user data"}

	case errors.Is(err, errs.ErrNotFound), errors.Is(err, appcore.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Message: "Not found"}

	case errors.Is(err, errs.ErrAlreadyExists), errors.Is(err, appcore.ErrAlreadyExists):
		return http.StatusConflict, ErrorResponse{Message: "Already exists"}

	default:
		return http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"}
	}
}
