package http

import (
	"errors"
	"net/http"

	"trackgate/internal/adapters/in/carrier"
	"trackgate/internal/core/domain/model/shipment"
	"trackgate/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the structured error payload of every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and the human-readable
// message of one error.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes exposed to API clients.
const (
	codeNotFound             = "not_found"
	codeDuplicated           = "duplicated"
	codeInvalidTransition    = "invalid_transition"
	codeUnsupportedCarrier   = "unsupported_carrier"
	codeUnsupportedEventCode = "unsupported_event_code"
	codeBadRequest           = "bad_request"
	codeInternal             = "internal"
)

// writeDomainError translates a use-case error into the structured error
// payload. Unexpected faults become an opaque 500; domain errors keep
// their message.
func writeDomainError(ctx echo.Context, err error) error {
	status, code := classify(err)
	message := err.Error()
	if code == codeInternal {
		message = "internal server error"
	}

	return writeError(ctx, status, code, message)
}

func writeError(ctx echo.Context, status int, code, message string) error {
	return ctx.JSON(status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

func classify(err error) (int, string) {
	var transitionErr *shipment.InvalidTransitionError

	switch {
	case errors.Is(err, carrier.ErrUnsupportedCarrier):
		return http.StatusBadRequest, codeUnsupportedCarrier
	case errors.Is(err, carrier.ErrUnsupportedEventCode):
		return http.StatusBadRequest, codeUnsupportedEventCode
	case errors.As(err, &transitionErr):
		return http.StatusBadRequest, codeInvalidTransition
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return http.StatusConflict, codeDuplicated
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, codeBadRequest
	default:
		return http.StatusInternalServerError, codeInternal
	}
}
