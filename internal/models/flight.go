package models

import (
	"fmt"
	"strings"

	"github.com/dharmasatrya/travelsim/internal/timeutil"
)

// TimeRange is an inclusive ["HH:MM", "HH:MM"] window within one day.
type TimeRange [2]string

// Bounds returns the window as minutes of day.
func (r TimeRange) Bounds() (start, end int, err error) {
	start, err = timeutil.ParseClock(r[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeRange, r[0])
	}
	end, err = timeutil.ParseClock(r[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeRange, r[1])
	}
	return start, end, nil
}

type FlightSearchRequest struct {
	DepartureCity      string     `json:"departure_city"`
	ArrivalCity        string     `json:"arrival_city"`
	DepartureDate      string     `json:"departure_date"`
	NumPassengers      int        `json:"num_passengers"`
	PreferredClass     string     `json:"preferred_class,omitempty"`
	MaxPrice           *float64   `json:"max_price,omitempty"`
	MaxDuration        *int       `json:"max_duration,omitempty"`
	PreferredAirlines  []string   `json:"preferred_airlines,omitempty"`
	NonstopOnly        bool       `json:"nonstop_only,omitempty"`
	MaxStops           *int       `json:"max_stops,omitempty"`
	DepartureTimeRange *TimeRange `json:"departure_time_range,omitempty"`
	ArrivalTimeRange   *TimeRange `json:"arrival_time_range,omitempty"`
	RefundableOnly     bool       `json:"refundable_only,omitempty"`
	SortBy             string     `json:"sort_by,omitempty"`
	SortOrder          string     `json:"sort_order,omitempty"`
}

func (r *FlightSearchRequest) Validate() error {
	if r.DepartureCity == "" {
		return ErrMissingOrigin
	}
	if r.ArrivalCity == "" {
		return ErrMissingDestination
	}
	if r.DepartureDate == "" {
		return ErrMissingDepartureDate
	}
	if _, err := timeutil.ParseDate(r.DepartureDate); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDepartureDate, r.DepartureDate)
	}
	if r.NumPassengers <= 0 {
		r.NumPassengers = 1
	}
	if r.MaxStops != nil && *r.MaxStops < 0 {
		return ErrInvalidMaxStops
	}
	if r.DepartureTimeRange != nil {
		if _, _, err := r.DepartureTimeRange.Bounds(); err != nil {
			return err
		}
	}
	if r.ArrivalTimeRange != nil {
		if _, _, err := r.ArrivalTimeRange.Bounds(); err != nil {
			return err
		}
	}
	r.DepartureCity = strings.ToUpper(r.DepartureCity)
	r.ArrivalCity = strings.ToUpper(r.ArrivalCity)
	return nil
}

type FlightOffer struct {
	FlightID        string             `json:"flight_id"`
	Airline         string             `json:"airline"`
	AirlineCode     string             `json:"airline_code"`
	FlightNumber    string             `json:"flight_number"`
	Origin          string             `json:"origin"`
	OriginCity      string             `json:"origin_city"`
	Destination     string             `json:"destination"`
	DestinationCity string             `json:"destination_city"`
	DepartureTime   timeutil.Timestamp `json:"departure_time"`
	ArrivalTime     timeutil.Timestamp `json:"arrival_time"`
	DurationMinutes int                `json:"duration_minutes"`
	Stops           int                `json:"stops"`
	Price           float64            `json:"price"`
	PriceFormatted  string             `json:"price_formatted"`
	SeatsAvailable  int                `json:"seats_available"`
	AircraftType    string             `json:"aircraft_type"`
	Class           string             `json:"class"`
	Refundable      bool               `json:"refundable"`
	BestValueScore  float64            `json:"best_value_score,omitempty"`
}
