package http

import (
	"errors"
	"net/http"

	"pneuma-faq-bot/internal/deal"
)

// mapError translates use-case errors into an HTTP status and a client message.
// Anything unrecognised is an internal error.
func (h *handler) mapError(err error) (int, string) {
	switch {
	case errors.Is(err, deal.ErrDealNotFound):
		return http.StatusNotFound, "deal not found"
	case errors.Is(err, deal.ErrInvalidDay):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, deal.ErrInvalidPayload):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, ""
	}
}
