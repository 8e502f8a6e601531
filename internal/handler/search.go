package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/dharmasatrya/travelsim/internal/aggregator"
	"github.com/dharmasatrya/travelsim/internal/models"
)

type SearchHandler struct {
	aggregator *aggregator.Aggregator
	log        zerolog.Logger
}

func NewSearchHandler(agg *aggregator.Aggregator, log zerolog.Logger) *SearchHandler {
	return &SearchHandler{
		aggregator: agg,
		log:        log.With().Str("component", "handler").Logger(),
	}
}

func (h *SearchHandler) FlightSearch(c echo.Context) error {
	var req models.FlightSearchRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.aggregator.SearchFlights(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "flight search", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) HotelSearch(c echo.Context) error {
	var req models.HotelSearchRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.aggregator.SearchHotels(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "hotel search", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) TripSearch(c echo.Context) error {
	var req models.TripSearchRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	resp, err := h.aggregator.SearchTrip(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "trip search", err)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SearchHandler) FlightVerify(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	v, err := h.aggregator.VerifyFlight(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "flight verification", err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *SearchHandler) HotelVerify(c echo.Context) error {
	var req models.VerifyRequest
	if err := c.Bind(&req); err != nil {
		return bindError(c, err)
	}

	v, err := h.aggregator.VerifyHotel(c.Request().Context(), req)
	if err != nil {
		return h.fail(c, "hotel verification", err)
	}
	return c.JSON(http.StatusOK, v)
}

func bindError(c echo.Context, err error) error {
	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "invalid_request",
		Message: "Failed to parse request body: " + err.Error(),
		Code:    http.StatusBadRequest,
	})
}

// fail maps aggregator errors onto HTTP responses.
func (h *SearchHandler) fail(c echo.Context, op string, err error) error {
	var status int
	var kind string

	switch {
	case errors.Is(err, models.ErrInvalidRequest):
		status, kind = http.StatusBadRequest, "validation_error"
	case errors.Is(err, aggregator.ErrRateLimited):
		status, kind = http.StatusServiceUnavailable, "rate_limited"
	case errors.Is(err, context.DeadlineExceeded):
		status, kind = http.StatusGatewayTimeout, "timeout"
	default:
		status, kind = http.StatusInternalServerError, "search_error"
	}

	if status >= http.StatusInternalServerError {
		h.log.Error().Err(err).Str("op", op).Int("status", status).Msg("request failed")
	}

	return c.JSON(status, models.ErrorResponse{
		Error:   kind,
		Message: err.Error(),
		Code:    status,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
