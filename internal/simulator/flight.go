package simulator

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dharmasatrya/travelsim/internal/filter"
	"github.com/dharmasatrya/travelsim/internal/latency"
	"github.com/dharmasatrya/travelsim/internal/models"
	"github.com/dharmasatrya/travelsim/internal/random"
	"github.com/dharmasatrya/travelsim/internal/refdata"
	"github.com/dharmasatrya/travelsim/internal/timeutil"
	"github.com/dharmasatrya/travelsim/pkg/currency"
)

var departureMinutes = []int{0, 15, 30, 45}

var flightVerifyPolicy = verifyPolicy{
	unavailableRate: 0.20,
	changeRate:      0.20,
	changeMin:       -0.20,
	changeMax:       0.30,
	reason:          "Flight no longer available",
}

// ClassMultiplier scales the fare for a travel class. Unlisted classes pay the base fare.
func ClassMultiplier(class string) float64 {
	switch strings.ToLower(class) {
	case "business":
		return 2.5
	case "first":
		return 4.0
	default:
		return 1.0
	}
}

// TimeOfDayMultiplier is lowest at 14:00 and grows towards early and late departures.
func TimeOfDayMultiplier(hour int) float64 {
	return 1 + math.Abs(float64(hour-14))/20
}

type FlightSimulator struct {
	data          *refdata.FlightData
	rand          *random.Source
	searchLatency latency.Range
	verifyLatency latency.Range
	log           zerolog.Logger
}

func NewFlightSimulator(data *refdata.FlightData, opts Options) *FlightSimulator {
	opts = opts.withDefaults()
	return &FlightSimulator{
		data:          data,
		rand:          opts.Random,
		searchLatency: opts.SearchLatency,
		verifyLatency: opts.VerifyLatency,
		log:           opts.Logger.With().Str("simulator", "flights").Logger(),
	}
}

func (s *FlightSimulator) Name() string {
	return "flights"
}

type routeBaseline struct {
	price    int
	duration int
}

// Search generates a batch of flights for the route and returns the ones
// passing the request filters. The result may be empty.
func (s *FlightSimulator) Search(ctx context.Context, req models.FlightSearchRequest) ([]models.FlightOffer, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := s.searchLatency.Wait(ctx, s.rand); err != nil {
		return nil, err
	}

	if s.rand.Chance(NoAvailabilityRate) {
		s.log.Info().
			Str("origin", req.DepartureCity).
			Str("destination", req.ArrivalCity).
			Msg("no flights available")
		return []models.FlightOffer{}, nil
	}

	day, err := timeutil.ParseDate(req.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", models.ErrInvalidDepartureDate, req.DepartureDate)
	}

	count := s.rand.IntRange(2, 5)
	route := routeBaseline{
		price:    s.rand.IntRange(200, 600),
		duration: s.rand.IntRange(120, 480),
	}

	flights := make([]models.FlightOffer, 0, count)
	used := make(map[string]struct{}, count)

	for i := 0; i < count; i++ {
		f, err := s.generate(req, day, route, used)
		if err != nil {
			return nil, err
		}

		if filter.FlightMatches(f, req) {
			flights = append(flights, f)
		}
	}

	s.log.Info().
		Str("origin", req.DepartureCity).
		Str("destination", req.ArrivalCity).
		Str("date", req.DepartureDate).
		Int("generated", count).
		Int("results", len(flights)).
		Msg("flight search completed")

	for _, f := range flights {
		s.log.Debug().
			Str("flight_id", f.FlightID).
			Str("airline", f.Airline).
			Str("departure", f.DepartureTime.String()).
			Str("arrival", f.ArrivalTime.String()).
			Float64("price", f.Price).
			Str("class", f.Class).
			Int("seats", f.SeatsAvailable).
			Msg("flight offer")
	}

	return flights, nil
}

func (s *FlightSimulator) generate(req models.FlightSearchRequest, day time.Time, route routeBaseline, used map[string]struct{}) (models.FlightOffer, error) {
	carrier := random.Pick(s.rand, s.data.Airlines)

	flightNumber, err := uniqueID(used, func() string {
		return fmt.Sprintf("%s%d", carrier.Code, s.rand.IntRange(1000, 9999))
	})
	if err != nil {
		return models.FlightOffer{}, err
	}

	hour := s.rand.IntRange(6, 22)
	minute := random.Pick(s.rand, departureMinutes)
	departure := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC)

	duration := route.duration + s.rand.IntRange(-30, 30)
	arrival := departure.Add(time.Duration(duration) * time.Minute)

	priceMultiplier := s.rand.Uniform(0.8, 1.4)
	demandMultiplier := s.rand.Uniform(0.9, 1.3)
	fare := float64(route.price) * priceMultiplier * TimeOfDayMultiplier(hour) * demandMultiplier

	var seats int
	if s.rand.Chance(0.2) {
		seats = s.rand.IntRange(1, 3)
	} else {
		seats = s.rand.IntRange(4, 50)
	}

	class := req.PreferredClass
	if class == "" {
		class = random.Pick(s.rand, s.data.FlightClasses)
	}

	price := currency.Round2(fare * ClassMultiplier(class))
	date := day.Format(timeutil.DateLayout)

	return models.FlightOffer{
		FlightID:        flightNumber + "-" + date,
		Airline:         carrier.Name,
		AirlineCode:     carrier.Code,
		FlightNumber:    flightNumber,
		Origin:          req.DepartureCity,
		OriginCity:      s.data.AirportCity(req.DepartureCity),
		Destination:     req.ArrivalCity,
		DestinationCity: s.data.AirportCity(req.ArrivalCity),
		DepartureTime:   timeutil.NewTimestamp(departure),
		ArrivalTime:     timeutil.NewTimestamp(arrival),
		DurationMinutes: duration,
		Stops:           0,
		Price:           price,
		PriceFormatted:  currency.FormatUSD(price),
		SeatsAvailable:  seats,
		AircraftType:    random.Pick(s.rand, s.data.AircraftTypes),
		Class:           class,
		Refundable:      s.rand.Bool(),
	}, nil
}

// Verify re-checks a previously quoted flight.
func (s *FlightSimulator) Verify(ctx context.Context, offerID string, expectedPrice float64) (models.Verification, error) {
	v, err := runVerify(ctx, s.rand, s.verifyLatency, flightVerifyPolicy, offerID, expectedPrice)
	if err != nil {
		return v, err
	}

	s.log.Info().
		Str("flight_id", offerID).
		Bool("available", v.Available).
		Bool("price_changed", v.PriceChanged).
		Msg("flight verified")

	return v, nil
}
