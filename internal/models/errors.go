package models

import "errors"

// ErrInvalidRequest is matched by every request validation failure.
var ErrInvalidRequest = errors.New("invalid request")

type ValidationError string

func (e ValidationError) Error() string {
	return string(e)
}

func (e ValidationError) Is(target error) bool {
	return target == ErrInvalidRequest
}

const (
	ErrMissingOrigin        ValidationError = "departure_city is required"
	ErrMissingDestination   ValidationError = "arrival_city is required"
	ErrMissingDepartureDate ValidationError = "departure_date is required"
	ErrInvalidDepartureDate ValidationError = "departure_date must be a YYYY-MM-DD date"
	ErrInvalidTimeRange     ValidationError = "time range must be two HH:MM values"
	ErrInvalidMaxStops      ValidationError = "max_stops must not be negative"

	ErrMissingCity           ValidationError = "city is required"
	ErrMissingCheckIn        ValidationError = "check_in_date is required"
	ErrMissingCheckOut       ValidationError = "check_out_date is required"
	ErrInvalidCheckIn        ValidationError = "check_in_date must be a YYYY-MM-DD date"
	ErrInvalidCheckOut       ValidationError = "check_out_date must be a YYYY-MM-DD date"
	ErrCheckOutBeforeCheckIn ValidationError = "check_out_date must be after check_in_date"
	ErrUnknownRoomType       ValidationError = "room_type is not offered"

	ErrMissingOfferID       ValidationError = "offer_id is required"
	ErrInvalidExpectedPrice ValidationError = "expected_price must be positive"
	ErrMissingFlightLeg     ValidationError = "flight is required"
	ErrInvalidReturnDate    ValidationError = "return_date must be a YYYY-MM-DD date on or after departure_date"
)
