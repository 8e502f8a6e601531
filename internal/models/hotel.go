package models

import (
	"fmt"
	"strings"

	"github.com/dharmasatrya/travelsim/internal/timeutil"
)

type HotelSearchRequest struct {
	City                string   `json:"city"`
	CheckInDate         string   `json:"check_in_date"`
	CheckOutDate        string   `json:"check_out_date"`
	NumRooms            int      `json:"num_rooms"`
	NumGuests           int      `json:"num_guests"`
	RoomType            string   `json:"room_type,omitempty"`
	MaxPricePerNight    *float64 `json:"max_price_per_night,omitempty"`
	MinRating           *float64 `json:"min_rating,omitempty"`
	PreferredChains     []string `json:"preferred_chains,omitempty"`
	Amenities           []string `json:"amenities,omitempty"`
	MaxDistanceToCenter *float64 `json:"max_distance_to_center,omitempty"`
	BreakfastIncluded   bool     `json:"breakfast_included,omitempty"`
	FreeCancellation    bool     `json:"free_cancellation,omitempty"`
	SortBy              string   `json:"sort_by,omitempty"`
	SortOrder           string   `json:"sort_order,omitempty"`
}

func (r *HotelSearchRequest) Validate() error {
	if r.City == "" {
		return ErrMissingCity
	}
	if r.CheckInDate == "" {
		return ErrMissingCheckIn
	}
	if r.CheckOutDate == "" {
		return ErrMissingCheckOut
	}
	if _, err := r.Nights(); err != nil {
		return err
	}
	if r.NumRooms <= 0 {
		r.NumRooms = 1
	}
	if r.NumGuests <= 0 {
		r.NumGuests = 2
	}
	r.City = strings.ToUpper(r.City)
	return nil
}

// Nights is the stay length in days. Zero or negative stays are rejected.
func (r HotelSearchRequest) Nights() (int, error) {
	checkIn, err := timeutil.ParseDate(r.CheckInDate)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCheckIn, r.CheckInDate)
	}
	checkOut, err := timeutil.ParseDate(r.CheckOutDate)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCheckOut, r.CheckOutDate)
	}
	nights := timeutil.DaysBetween(checkIn, checkOut)
	if nights <= 0 {
		return 0, ErrCheckOutBeforeCheckIn
	}
	return nights, nil
}

type HotelOffer struct {
	HotelID           string   `json:"hotel_id"`
	Name              string   `json:"name"`
	Chain             string   `json:"chain"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	CityName          string   `json:"city_name"`
	Rating            float64  `json:"rating"`
	RoomType          string   `json:"room_type"`
	PricePerNight     float64  `json:"price_per_night"`
	TotalPrice        float64  `json:"total_price"`
	PriceFormatted    string   `json:"price_formatted"`
	NumNights         int      `json:"num_nights"`
	DistanceToCenter  float64  `json:"distance_to_center"`
	Amenities         []string `json:"amenities"`
	BreakfastIncluded bool     `json:"breakfast_included"`
	FreeCancellation  bool     `json:"free_cancellation"`
	RoomsAvailable    int      `json:"rooms_available"`
	BestValueScore    float64  `json:"best_value_score,omitempty"`
}
