package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlightSearchRequest_Validate(t *testing.T) {
	t.Run("defaults passengers and upper-cases codes", func(t *testing.T) {
		req := FlightSearchRequest{DepartureCity: "jfk", ArrivalCity: "lax", DepartureDate: "2024-11-09"}
		require.NoError(t, req.Validate())
		assert.Equal(t, 1, req.NumPassengers)
		assert.Equal(t, "JFK", req.DepartureCity)
		assert.Equal(t, "LAX", req.ArrivalCity)
	})

	negative := -1
	tests := []struct {
		name string
		req  FlightSearchRequest
		want error
	}{
		{"missing origin", FlightSearchRequest{ArrivalCity: "LAX", DepartureDate: "2024-11-09"}, ErrMissingOrigin},
		{"missing destination", FlightSearchRequest{DepartureCity: "JFK", DepartureDate: "2024-11-09"}, ErrMissingDestination},
		{"missing date", FlightSearchRequest{DepartureCity: "JFK", ArrivalCity: "LAX"}, ErrMissingDepartureDate},
		{"bad date", FlightSearchRequest{DepartureCity: "JFK", ArrivalCity: "LAX", DepartureDate: "11/09/2024"}, ErrInvalidDepartureDate},
		{"bad window", FlightSearchRequest{DepartureCity: "JFK", ArrivalCity: "LAX", DepartureDate: "2024-11-09", DepartureTimeRange: &TimeRange{"6am", "10:00"}}, ErrInvalidTimeRange},
		{"negative stops", FlightSearchRequest{DepartureCity: "JFK", ArrivalCity: "LAX", DepartureDate: "2024-11-09", MaxStops: &negative}, ErrInvalidMaxStops},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrInvalidRequest)
		})
	}
}

func TestHotelSearchRequest_Validate(t *testing.T) {
	req := HotelSearchRequest{City: "nyc", CheckInDate: "2024-07-15", CheckOutDate: "2024-07-20"}
	require.NoError(t, req.Validate())
	assert.Equal(t, "NYC", req.City)
	assert.Equal(t, 1, req.NumRooms)
	assert.Equal(t, 2, req.NumGuests)

	nights, err := req.Nights()
	require.NoError(t, err)
	assert.Equal(t, 5, nights)

	tests := []struct {
		name string
		req  HotelSearchRequest
		want error
	}{
		{"missing city", HotelSearchRequest{CheckInDate: "2024-07-15", CheckOutDate: "2024-07-20"}, ErrMissingCity},
		{"bad check-in", HotelSearchRequest{City: "NYC", CheckInDate: "July 15", CheckOutDate: "2024-07-20"}, ErrInvalidCheckIn},
		{"bad check-out", HotelSearchRequest{City: "NYC", CheckInDate: "2024-07-15", CheckOutDate: "2024-02-30"}, ErrInvalidCheckOut},
		{"same day", HotelSearchRequest{City: "NYC", CheckInDate: "2024-07-15", CheckOutDate: "2024-07-15"}, ErrCheckOutBeforeCheckIn},
		{"reversed", HotelSearchRequest{City: "NYC", CheckInDate: "2024-07-20", CheckOutDate: "2024-07-15"}, ErrCheckOutBeforeCheckIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, errors.Is(err, ErrInvalidRequest))
		})
	}
}

func TestVerifyRequest_Validate(t *testing.T) {
	assert.ErrorIs(t, (&VerifyRequest{ExpectedPrice: 10}).Validate(), ErrMissingOfferID)
	assert.ErrorIs(t, (&VerifyRequest{OfferID: "AA1234-2024-11-09"}).Validate(), ErrInvalidExpectedPrice)
	assert.NoError(t, (&VerifyRequest{OfferID: "AA1234-2024-11-09", ExpectedPrice: 10}).Validate())
}

func TestTripSearchRequest(t *testing.T) {
	trip := TripSearchRequest{
		Flight:     &FlightSearchRequest{DepartureCity: "JFK", ArrivalCity: "LAX", DepartureDate: "2024-11-09", NumPassengers: 2},
		ReturnDate: "2024-11-12",
	}
	require.NoError(t, trip.Validate())

	ret := trip.ReturnRequest()
	assert.Equal(t, "LAX", ret.DepartureCity)
	assert.Equal(t, "JFK", ret.ArrivalCity)
	assert.Equal(t, "2024-11-12", ret.DepartureDate)
	assert.Equal(t, 2, ret.NumPassengers)
	assert.Equal(t, "JFK", trip.Flight.DepartureCity)

	trip.ReturnDate = "2024-11-01"
	assert.ErrorIs(t, trip.Validate(), ErrInvalidReturnDate)

	assert.ErrorIs(t, (&TripSearchRequest{}).Validate(), ErrMissingFlightLeg)
}
