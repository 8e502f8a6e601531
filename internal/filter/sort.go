package filter

import (
	"sort"
	"strings"

	"github.com/dharmasatrya/travelsim/internal/models"
	"github.com/dharmasatrya/travelsim/internal/ranking"
)

// SortFlights orders flights in place. An empty sortBy keeps generation order.
func SortFlights(flights []models.FlightOffer, sortBy, sortOrder string) []models.FlightOffer {
	if len(flights) == 0 || sortBy == "" {
		return flights
	}

	if strings.EqualFold(sortBy, "best_value") {
		flights = ranking.ScoreFlights(flights)
	}

	ascending := strings.ToLower(sortOrder) != "desc"
	less := func(a, b float64) bool {
		if ascending {
			return a < b
		}
		return a > b
	}

	switch strings.ToLower(sortBy) {
	case "duration":
		sort.SliceStable(flights, func(i, j int) bool {
			return less(float64(flights[i].DurationMinutes), float64(flights[j].DurationMinutes))
		})

	case "departure":
		sort.SliceStable(flights, func(i, j int) bool {
			return less(float64(flights[i].DepartureTime.Unix()), float64(flights[j].DepartureTime.Unix()))
		})

	case "arrival":
		sort.SliceStable(flights, func(i, j int) bool {
			return less(float64(flights[i].ArrivalTime.Unix()), float64(flights[j].ArrivalTime.Unix()))
		})

	case "best_value":
		sort.SliceStable(flights, func(i, j int) bool {
			return less(flights[i].BestValueScore, flights[j].BestValueScore)
		})

	case "price":
		sort.SliceStable(flights, func(i, j int) bool {
			return less(flights[i].Price, flights[j].Price)
		})

	default:
		// Default to price ascending
		sort.SliceStable(flights, func(i, j int) bool {
			return flights[i].Price < flights[j].Price
		})
	}

	return flights
}

// SortHotels orders hotels in place. An empty sortBy keeps generation order.
func SortHotels(hotels []models.HotelOffer, sortBy, sortOrder string) []models.HotelOffer {
	if len(hotels) == 0 || sortBy == "" {
		return hotels
	}

	if strings.EqualFold(sortBy, "best_value") {
		hotels = ranking.ScoreHotels(hotels)
	}

	ascending := strings.ToLower(sortOrder) != "desc"
	less := func(a, b float64) bool {
		if ascending {
			return a < b
		}
		return a > b
	}

	switch strings.ToLower(sortBy) {
	case "rating":
		sort.SliceStable(hotels, func(i, j int) bool {
			return less(hotels[i].Rating, hotels[j].Rating)
		})

	case "distance":
		sort.SliceStable(hotels, func(i, j int) bool {
			return less(hotels[i].DistanceToCenter, hotels[j].DistanceToCenter)
		})

	case "total_price":
		sort.SliceStable(hotels, func(i, j int) bool {
			return less(hotels[i].TotalPrice, hotels[j].TotalPrice)
		})

	case "best_value":
		sort.SliceStable(hotels, func(i, j int) bool {
			return less(hotels[i].BestValueScore, hotels[j].BestValueScore)
		})

	case "price":
		sort.SliceStable(hotels, func(i, j int) bool {
			return less(hotels[i].PricePerNight, hotels[j].PricePerNight)
		})

	default:
		sort.SliceStable(hotels, func(i, j int) bool {
			return hotels[i].PricePerNight < hotels[j].PricePerNight
		})
	}

	return hotels
}
