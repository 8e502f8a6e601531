package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dharmasatrya/travelsim/internal/models"
)

func TestScoreFlights(t *testing.T) {
	flights := []models.FlightOffer{
		{FlightID: "cheap-fast", Price: 200, DurationMinutes: 120},
		{FlightID: "dear-slow", Price: 400, DurationMinutes: 240},
	}

	scored := ScoreFlights(flights)

	// 0.5*50 + 0.3*50
	assert.Equal(t, 40.0, scored[0].BestValueScore)
	// 0.5*100 + 0.3*100
	assert.Equal(t, 80.0, scored[1].BestValueScore)
	assert.Zero(t, flights[0].BestValueScore, "input must not be modified")
}

func TestScoreHotels(t *testing.T) {
	hotels := []models.HotelOffer{
		{HotelID: "a", PricePerNight: 100, Rating: 5.0, DistanceToCenter: 1},
		{HotelID: "b", PricePerNight: 200, Rating: 3.0, DistanceToCenter: 10},
	}

	scored := ScoreHotels(hotels)

	// 0.5*50 + 0.3*0 + 0.2*10
	assert.Equal(t, 27.0, scored[0].BestValueScore)
	// 0.5*100 + 0.3*100 + 0.2*100
	assert.Equal(t, 100.0, scored[1].BestValueScore)
}

func TestScoreEmpty(t *testing.T) {
	assert.Empty(t, ScoreFlights(nil))
	assert.Empty(t, ScoreHotels(nil))
}
