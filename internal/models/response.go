package models

import "github.com/dharmasatrya/travelsim/internal/timeutil"

type SearchMetadata struct {
	SearchID     string `json:"search_id"`
	TotalResults int    `json:"total_results"`
	SearchTimeMs int64  `json:"search_time_ms"`
	CacheHit     bool   `json:"cache_hit"`
}

type FlightSearchResponse struct {
	SearchCriteria FlightSearchRequest `json:"search_criteria"`
	Metadata       SearchMetadata      `json:"metadata"`
	Flights        []FlightOffer       `json:"flights"`
}

type HotelSearchResponse struct {
	SearchCriteria HotelSearchRequest `json:"search_criteria"`
	Metadata       SearchMetadata     `json:"metadata"`
	Hotels         []HotelOffer       `json:"hotels"`
}

// TripSearchRequest bundles an outbound flight with an optional return
// flight on ReturnDate and an optional hotel stay.
type TripSearchRequest struct {
	Flight     *FlightSearchRequest `json:"flight"`
	ReturnDate string               `json:"return_date,omitempty"`
	Hotel      *HotelSearchRequest  `json:"hotel,omitempty"`
}

func (r *TripSearchRequest) Validate() error {
	if r.Flight == nil {
		return ErrMissingFlightLeg
	}
	if err := r.Flight.Validate(); err != nil {
		return err
	}
	if r.ReturnDate != "" {
		ret, err := timeutil.ParseDate(r.ReturnDate)
		if err != nil {
			return ErrInvalidReturnDate
		}
		dep, _ := timeutil.ParseDate(r.Flight.DepartureDate)
		if ret.Before(dep) {
			return ErrInvalidReturnDate
		}
	}
	if r.Hotel != nil {
		if err := r.Hotel.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ReturnRequest mirrors the outbound leg onto the return date.
func (r TripSearchRequest) ReturnRequest() FlightSearchRequest {
	ret := *r.Flight
	ret.DepartureCity, ret.ArrivalCity = r.Flight.ArrivalCity, r.Flight.DepartureCity
	ret.DepartureDate = r.ReturnDate
	return ret
}

type TripMetadata struct {
	SearchID     string   `json:"search_id"`
	TotalResults int      `json:"total_results"`
	SearchTimeMs int64    `json:"search_time_ms"`
	FailedLegs   []string `json:"failed_legs,omitempty"`
}

type TripSearchResponse struct {
	Metadata        TripMetadata  `json:"metadata"`
	OutboundFlights []FlightOffer `json:"outbound_flights"`
	ReturnFlights   []FlightOffer `json:"return_flights,omitempty"`
	Hotels          []HotelOffer  `json:"hotels,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
