package simulator

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dharmasatrya/travelsim/internal/filter"
	"github.com/dharmasatrya/travelsim/internal/latency"
	"github.com/dharmasatrya/travelsim/internal/models"
	"github.com/dharmasatrya/travelsim/internal/random"
	"github.com/dharmasatrya/travelsim/internal/refdata"
	"github.com/dharmasatrya/travelsim/pkg/currency"
)

// RoomTypeMultipliers scales the nightly rate per room type.
var RoomTypeMultipliers = map[string]float64{
	"Standard":     1.0,
	"Deluxe":       1.5,
	"Suite":        2.5,
	"Executive":    3.0,
	"Presidential": 5.0,
}

const minAmenities = 5

var streets = []string{"Main", "First", "Park", "Lake", "River"}

var hotelVerifyPolicy = verifyPolicy{
	unavailableRate: 0.15,
	changeRate:      0.25,
	changeMin:       -0.15,
	changeMax:       0.25,
	reason:          "No rooms available for selected dates",
}

type HotelSimulator struct {
	data          *refdata.HotelData
	rand          *random.Source
	searchLatency latency.Range
	verifyLatency latency.Range
	log           zerolog.Logger
}

// NewHotelSimulator fails when the reference data lists a room type without a price multiplier.
func NewHotelSimulator(data *refdata.HotelData, opts Options) (*HotelSimulator, error) {
	for _, rt := range data.RoomTypes {
		if _, ok := RoomTypeMultipliers[rt]; !ok {
			return nil, fmt.Errorf("%w: room type %q has no price multiplier", refdata.ErrInvalidData, rt)
		}
	}

	opts = opts.withDefaults()
	return &HotelSimulator{
		data:          data,
		rand:          opts.Random,
		searchLatency: opts.SearchLatency,
		verifyLatency: opts.VerifyLatency,
		log:           opts.Logger.With().Str("simulator", "hotels").Logger(),
	}, nil
}

func (s *HotelSimulator) Name() string {
	return "hotels"
}

// Search generates a batch of hotels in the requested city and returns the
// ones passing the request filters. The result may be empty.
func (s *HotelSimulator) Search(ctx context.Context, req models.HotelSearchRequest) ([]models.HotelOffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.RoomType != "" {
		rt, ok := s.canonicalRoomType(req.RoomType)
		if !ok {
			return nil, fmt.Errorf("%w: %q", models.ErrUnknownRoomType, req.RoomType)
		}
		req.RoomType = rt
	}

	nights, err := req.Nights()
	if err != nil {
		return nil, err
	}

	if err := s.searchLatency.Wait(ctx, s.rand); err != nil {
		return nil, err
	}

	if s.rand.Chance(NoAvailabilityRate) {
		s.log.Info().Str("city", req.City).Msg("no hotels available")
		return []models.HotelOffer{}, nil
	}

	count := s.rand.IntRange(3, 8)
	cityName := s.data.CityName(req.City)

	hotels := make([]models.HotelOffer, 0, count)
	used := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		h, err := s.generate(req, cityName, nights, used)
		if err != nil {
			return nil, err
		}

		if filter.HotelMatches(h, req) {
			hotels = append(hotels, h)
		}
	}

	s.log.Info().
		Str("city", req.City).
		Int("nights", nights).
		Int("generated", count).
		Int("results", len(hotels)).
		Msg("hotel search completed")

	for _, h := range hotels {
		s.log.Debug().
			Str("hotel_id", h.HotelID).
			Str("name", h.Name).
			Float64("rating", h.Rating).
			Str("room_type", h.RoomType).
			Float64("price_per_night", h.PricePerNight).
			Float64("total_price", h.TotalPrice).
			Float64("distance_km", h.DistanceToCenter).
			Msg("hotel offer")
	}

	return hotels, nil
}

func (s *HotelSimulator) generate(req models.HotelSearchRequest, cityName string, nights int, used map[string]struct{}) (models.HotelOffer, error) {
	chain := random.Pick(s.rand, s.data.HotelChains)

	hotelID, err := uniqueID(used, func() string {
		return fmt.Sprintf("%s%d", chain.Code, s.rand.IntRange(1000, 9999))
	})
	if err != nil {
		return models.HotelOffer{}, err
	}

	basePrice := s.rand.IntRange(80, 400)
	locationMultiplier := s.rand.Uniform(0.8, 1.5)

	roomType := req.RoomType
	if roomType == "" {
		roomType = random.Pick(s.rand, s.data.RoomTypes)
	}

	pricePerNight := currency.Round2(float64(basePrice) * locationMultiplier * RoomTypeMultipliers[roomType])
	totalPrice := currency.Round2(pricePerNight * float64(nights))

	n := len(s.data.Amenities)
	amenities := random.Sample(s.rand, s.data.Amenities, s.rand.IntRange(min(minAmenities, n), n))

	rating := currency.Round1(s.rand.Uniform(3.0, 5.0))
	distance := currency.Round1(s.rand.Uniform(0.1, 15.0))
	address := fmt.Sprintf("%d %s St, %s", s.rand.IntRange(1, 999), random.Pick(s.rand, streets), cityName)

	return models.HotelOffer{
		HotelID:           hotelID,
		Name:              chain.Name + " " + cityName,
		Chain:             chain.Name,
		Address:           address,
		City:              req.City,
		CityName:          cityName,
		Rating:            rating,
		RoomType:          roomType,
		PricePerNight:     pricePerNight,
		TotalPrice:        totalPrice,
		PriceFormatted:    currency.FormatUSD(totalPrice),
		NumNights:         nights,
		DistanceToCenter:  distance,
		Amenities:         amenities,
		BreakfastIncluded: s.rand.Bool(),
		FreeCancellation:  s.rand.Bool(),
		RoomsAvailable:    s.rand.IntRange(1, 10),
	}, nil
}

func (s *HotelSimulator) canonicalRoomType(name string) (string, bool) {
	for _, rt := range s.data.RoomTypes {
		if strings.EqualFold(rt, name) {
			return rt, true
		}
	}
	return "", false
}

// Verify re-checks a previously quoted hotel.
func (s *HotelSimulator) Verify(ctx context.Context, offerID string, expectedPrice float64) (models.Verification, error) {
	v, err := runVerify(ctx, s.rand, s.verifyLatency, hotelVerifyPolicy, offerID, expectedPrice)
	if err != nil {
		return v, err
	}

	s.log.Info().
		Str("hotel_id", offerID).
		Bool("available", v.Available).
		Bool("price_changed", v.PriceChanged).
		Msg("hotel verified")

	return v, nil
}
