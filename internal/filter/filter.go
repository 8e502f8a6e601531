package filter

import (
	"strings"
	"time"

	"github.com/dharmasatrya/travelsim/internal/models"
	"github.com/dharmasatrya/travelsim/internal/timeutil"
)

// FlightMatches reports whether a generated flight satisfies every filter
// the request sets, including seat availability for the party size.
func FlightMatches(f models.FlightOffer, req models.FlightSearchRequest) bool {
	if f.SeatsAvailable < req.NumPassengers {
		return false
	}

	if req.MaxPrice != nil && f.Price > *req.MaxPrice {
		return false
	}

	if req.MaxDuration != nil && f.DurationMinutes > *req.MaxDuration {
		return false
	}

	if len(req.PreferredAirlines) > 0 && !containsFold(req.PreferredAirlines, f.Airline, f.AirlineCode) {
		return false
	}

	if req.NonstopOnly && f.Stops > 0 {
		return false
	}
	if req.MaxStops != nil && f.Stops > *req.MaxStops {
		return false
	}

	if req.DepartureTimeRange != nil && !inWindow(f.DepartureTime.Time, *req.DepartureTimeRange) {
		return false
	}
	if req.ArrivalTimeRange != nil && !inWindow(f.ArrivalTime.Time, *req.ArrivalTimeRange) {
		return false
	}

	if req.RefundableOnly && !f.Refundable {
		return false
	}

	return true
}

// HotelMatches reports whether a generated hotel satisfies every filter the
// request sets, including room availability.
func HotelMatches(h models.HotelOffer, req models.HotelSearchRequest) bool {
	if req.MaxPricePerNight != nil && h.PricePerNight > *req.MaxPricePerNight {
		return false
	}

	if req.MinRating != nil && h.Rating < *req.MinRating {
		return false
	}

	if len(req.PreferredChains) > 0 && !containsFold(req.PreferredChains, h.Chain) {
		return false
	}

	if req.MaxDistanceToCenter != nil && h.DistanceToCenter > *req.MaxDistanceToCenter {
		return false
	}

	if req.BreakfastIncluded && !h.BreakfastIncluded {
		return false
	}
	if req.FreeCancellation && !h.FreeCancellation {
		return false
	}

	for _, want := range req.Amenities {
		if !containsFold(h.Amenities, want) {
			return false
		}
	}

	if h.RoomsAvailable < req.NumRooms {
		return false
	}

	return true
}

// inWindow compares minutes of day, inclusive at both ends. A window whose
// start is after its end matches nothing.
func inWindow(t time.Time, window models.TimeRange) bool {
	start, end, err := window.Bounds()
	if err != nil {
		return true
	}
	m := timeutil.MinuteOfDay(t)
	return m >= start && m <= end
}

func containsFold(list []string, values ...string) bool {
	for _, item := range list {
		for _, v := range values {
			if strings.EqualFold(item, v) {
				return true
			}
		}
	}
	return false
}
