package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dharmasatrya/travelsim/internal/models"
	"github.com/dharmasatrya/travelsim/internal/timeutil"
)

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	cfg := DefaultRedisConfig()
	cfg.Host = mr.Host()
	cfg.Port = mr.Port()
	cfg.TTL = time.Minute

	c, err := NewRedisCache(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisCache_Flights(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	req := models.FlightSearchRequest{DepartureCity: "JFK", ArrivalCity: "LAX", DepartureDate: "2024-11-09", NumPassengers: 1}
	dep := time.Date(2024, 11, 9, 8, 15, 0, 0, time.UTC)
	flights := []models.FlightOffer{{
		FlightID:      "AA1234-2024-11-09",
		FlightNumber:  "AA1234",
		DepartureTime: timeutil.NewTimestamp(dep),
		ArrivalTime:   timeutil.NewTimestamp(dep.Add(5 * time.Hour)),
		Price:         321.45,
	}}

	_, found := c.GetFlights(ctx, req)
	assert.False(t, found)

	require.NoError(t, c.SetFlights(ctx, req, flights))

	sorted := req
	sorted.SortBy = "price"
	got, found := c.GetFlights(ctx, sorted)
	require.True(t, found)
	require.Len(t, got, 1)
	assert.Equal(t, "AA1234-2024-11-09", got[0].FlightID)
	assert.Equal(t, 321.45, got[0].Price)
	assert.True(t, dep.Equal(got[0].DepartureTime.Time))

	other := req
	other.NumPassengers = 2
	_, found = c.GetFlights(ctx, other)
	assert.False(t, found)

	mr.FastForward(2 * time.Minute)
	_, found = c.GetFlights(ctx, req)
	assert.False(t, found)
}

func TestRedisCache_Hotels(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	req := models.HotelSearchRequest{City: "NYC", CheckInDate: "2024-07-15", CheckOutDate: "2024-07-20"}
	hotels := []models.HotelOffer{{HotelID: "HIL1234", Amenities: []string{"Pool"}}}

	require.NoError(t, c.SetHotels(ctx, req, hotels))
	got, found := c.GetHotels(ctx, req)
	require.True(t, found)
	assert.Equal(t, hotels, got)
}

func TestRedisCache_Unreachable(t *testing.T) {
	cfg := DefaultRedisConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = "1"

	_, err := NewRedisCache(cfg)
	assert.Error(t, err)
}

func TestNoOpCache(t *testing.T) {
	c := NewNoOpCache()
	ctx := context.Background()
	req := models.FlightSearchRequest{DepartureCity: "JFK"}

	require.NoError(t, c.SetFlights(ctx, req, []models.FlightOffer{{FlightID: "x"}}))
	_, found := c.GetFlights(ctx, req)
	assert.False(t, found)
	assert.NoError(t, c.Close())
}
