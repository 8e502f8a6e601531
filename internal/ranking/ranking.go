package ranking

import (
	"math"

	"github.com/dharmasatrya/travelsim/internal/models"
)

const (
	PriceWeight    = 0.5
	DurationWeight = 0.3
	StopsWeight    = 0.2
)

const (
	HotelPriceWeight    = 0.5
	HotelRatingWeight   = 0.3
	HotelDistanceWeight = 0.2

	maxRating = 5.0
	minRating = 3.0
)

// ScoreFlights returns a copy of flights with BestValueScore set.
func ScoreFlights(flights []models.FlightOffer) []models.FlightOffer {
	if len(flights) == 0 {
		return flights
	}

	maxPrice, maxDuration := 0.0, 0.0
	for _, f := range flights {
		maxPrice = math.Max(maxPrice, f.Price)
		maxDuration = math.Max(maxDuration, float64(f.DurationMinutes))
	}

	result := make([]models.FlightOffer, len(flights))
	for i, f := range flights {
		result[i] = f
		result[i].BestValueScore = FlightScore(f, maxPrice, maxDuration)
	}

	return result
}

// Lower score = better value
func FlightScore(f models.FlightOffer, maxPrice, maxDuration float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (f.Price / maxPrice) * 100
	}

	durationScore := 0.0
	if maxDuration > 0 {
		durationScore = (float64(f.DurationMinutes) / maxDuration) * 100
	}

	stopsScore := float64(f.Stops) * 15
	score := (priceScore * PriceWeight) + (durationScore * DurationWeight) + (stopsScore * StopsWeight)

	return math.Round(score*100) / 100
}

// ScoreHotels returns a copy of hotels with BestValueScore set.
func ScoreHotels(hotels []models.HotelOffer) []models.HotelOffer {
	if len(hotels) == 0 {
		return hotels
	}

	maxPrice, maxDistance := 0.0, 0.0
	for _, h := range hotels {
		maxPrice = math.Max(maxPrice, h.PricePerNight)
		maxDistance = math.Max(maxDistance, h.DistanceToCenter)
	}

	result := make([]models.HotelOffer, len(hotels))
	for i, h := range hotels {
		result[i] = h
		result[i].BestValueScore = HotelScore(h, maxPrice, maxDistance)
	}

	return result
}

// Lower score = better value. Rating counts inversely: 5.0 scores 0.
func HotelScore(h models.HotelOffer, maxPrice, maxDistance float64) float64 {
	priceScore := 0.0
	if maxPrice > 0 {
		priceScore = (h.PricePerNight / maxPrice) * 100
	}

	distanceScore := 0.0
	if maxDistance > 0 {
		distanceScore = (h.DistanceToCenter / maxDistance) * 100
	}

	rating := math.Min(math.Max(h.Rating, minRating), maxRating)
	ratingScore := (maxRating - rating) / (maxRating - minRating) * 100

	score := (priceScore * HotelPriceWeight) + (ratingScore * HotelRatingWeight) + (distanceScore * HotelDistanceWeight)

	return math.Round(score*100) / 100
}
