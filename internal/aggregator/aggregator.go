package aggregator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dharmasatrya/travelsim/internal/cache"
	"github.com/dharmasatrya/travelsim/internal/filter"
	"github.com/dharmasatrya/travelsim/internal/metrics"
	"github.com/dharmasatrya/travelsim/internal/models"
	"github.com/dharmasatrya/travelsim/internal/ratelimit"
)

var ErrRateLimited = errors.New("rate limit exceeded")

type FlightSearcher interface {
	Name() string
	Search(ctx context.Context, req models.FlightSearchRequest) ([]models.FlightOffer, error)
	Verify(ctx context.Context, offerID string, expectedPrice float64) (models.Verification, error)
}

type HotelSearcher interface {
	Name() string
	Search(ctx context.Context, req models.HotelSearchRequest) ([]models.HotelOffer, error)
	Verify(ctx context.Context, offerID string, expectedPrice float64) (models.Verification, error)
}

type Config struct {
	TripTimeout time.Duration
	RateLimiter *ratelimit.SimulatorLimiter
	Cache       cache.Cache
	Logger      *zerolog.Logger
}

// Aggregator sits between the HTTP handlers and the simulators: it applies
// rate limits, the replay cache, sorting and metrics.
type Aggregator struct {
	flights FlightSearcher
	hotels  HotelSearcher
	config  Config
	log     zerolog.Logger
}

func NewAggregator(flights FlightSearcher, hotels HotelSearcher, config Config) *Aggregator {
	if config.Cache == nil {
		config.Cache = cache.NewNoOpCache()
	}
	if config.TripTimeout <= 0 {
		config.TripTimeout = 5 * time.Second
	}
	log := zerolog.Nop()
	if config.Logger != nil {
		log = *config.Logger
	}

	return &Aggregator{
		flights: flights,
		hotels:  hotels,
		config:  config,
		log:     log.With().Str("component", "aggregator").Logger(),
	}
}

func (a *Aggregator) SearchFlights(ctx context.Context, req models.FlightSearchRequest) (*models.FlightSearchResponse, error) {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	flights, cacheHit, err := a.flightOffers(ctx, req)
	if err != nil {
		return nil, err
	}

	return &models.FlightSearchResponse{
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			SearchID:     uuid.NewString(),
			TotalResults: len(flights),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
		Flights: flights,
	}, nil
}

func (a *Aggregator) SearchHotels(ctx context.Context, req models.HotelSearchRequest) (*models.HotelSearchResponse, error) {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	hotels, cacheHit, err := a.hotelOffers(ctx, req)
	if err != nil {
		return nil, err
	}

	return &models.HotelSearchResponse{
		SearchCriteria: req,
		Metadata: models.SearchMetadata{
			SearchID:     uuid.NewString(),
			TotalResults: len(hotels),
			SearchTimeMs: time.Since(startTime).Milliseconds(),
			CacheHit:     cacheHit,
		},
		Hotels: hotels,
	}, nil
}

func (a *Aggregator) VerifyFlight(ctx context.Context, req models.VerifyRequest) (models.Verification, error) {
	if err := req.Validate(); err != nil {
		return models.Verification{}, err
	}
	if err := a.wait(ctx, a.flights.Name()); err != nil {
		return models.Verification{}, err
	}

	v, err := a.flights.Verify(ctx, req.OfferID, req.ExpectedPrice)
	metrics.ObserveVerification(a.flights.Name(), v, err)
	return v, err
}

func (a *Aggregator) VerifyHotel(ctx context.Context, req models.VerifyRequest) (models.Verification, error) {
	if err := req.Validate(); err != nil {
		return models.Verification{}, err
	}
	if err := a.wait(ctx, a.hotels.Name()); err != nil {
		return models.Verification{}, err
	}

	v, err := a.hotels.Verify(ctx, req.OfferID, req.ExpectedPrice)
	metrics.ObserveVerification(a.hotels.Name(), v, err)
	return v, err
}

// SearchTrip runs the outbound flight, the optional return flight and the
// optional hotel stay concurrently. Only an outbound failure fails the trip;
// other failed legs are reported in the metadata.
func (a *Aggregator) SearchTrip(ctx context.Context, req models.TripSearchRequest) (*models.TripSearchResponse, error) {
	startTime := time.Now()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	tripCtx, cancel := context.WithTimeout(ctx, a.config.TripTimeout)
	defer cancel()

	resp := &models.TripSearchResponse{
		OutboundFlights: make([]models.FlightOffer, 0),
	}

	var mu sync.Mutex
	legFailed := func(leg string, err error) {
		a.log.Warn().Err(err).Str("leg", leg).Msg("trip leg failed")
		mu.Lock()
		resp.Metadata.FailedLegs = append(resp.Metadata.FailedLegs, leg)
		mu.Unlock()
	}

	g, gctx := errgroup.WithContext(tripCtx)

	g.Go(func() error {
		flights, _, err := a.flightOffers(gctx, *req.Flight)
		if err != nil {
			return fmt.Errorf("outbound flight search: %w", err)
		}
		resp.OutboundFlights = flights
		return nil
	})

	if req.ReturnDate != "" {
		g.Go(func() error {
			flights, _, err := a.flightOffers(gctx, req.ReturnRequest())
			if err != nil {
				legFailed("return", err)
				return nil
			}
			resp.ReturnFlights = flights
			return nil
		})
	}

	if req.Hotel != nil {
		g.Go(func() error {
			hotels, _, err := a.hotelOffers(gctx, *req.Hotel)
			if err != nil {
				legFailed("hotel", err)
				return nil
			}
			resp.Hotels = hotels
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp.Metadata.SearchID = uuid.NewString()
	resp.Metadata.TotalResults = len(resp.OutboundFlights) + len(resp.ReturnFlights) + len(resp.Hotels)
	resp.Metadata.SearchTimeMs = time.Since(startTime).Milliseconds()

	return resp, nil
}

func (a *Aggregator) flightOffers(ctx context.Context, req models.FlightSearchRequest) ([]models.FlightOffer, bool, error) {
	startTime := time.Now()
	name := a.flights.Name()

	if cached, found := a.config.Cache.GetFlights(ctx, req); found {
		metrics.ObserveSearch(name, len(cached), time.Since(startTime), true, nil)
		return filter.SortFlights(cached, req.SortBy, req.SortOrder), true, nil
	}

	if err := a.wait(ctx, name); err != nil {
		metrics.ObserveSearch(name, 0, time.Since(startTime), false, err)
		return nil, false, err
	}

	flights, err := a.flights.Search(ctx, req)
	metrics.ObserveSearch(name, len(flights), time.Since(startTime), false, err)
	if err != nil {
		return nil, false, err
	}

	if err := a.config.Cache.SetFlights(ctx, req, flights); err != nil {
		a.log.Warn().Err(err).Msg("failed to cache flight results")
	}

	return filter.SortFlights(flights, req.SortBy, req.SortOrder), false, nil
}

func (a *Aggregator) hotelOffers(ctx context.Context, req models.HotelSearchRequest) ([]models.HotelOffer, bool, error) {
	startTime := time.Now()
	name := a.hotels.Name()

	if cached, found := a.config.Cache.GetHotels(ctx, req); found {
		metrics.ObserveSearch(name, len(cached), time.Since(startTime), true, nil)
		return filter.SortHotels(cached, req.SortBy, req.SortOrder), true, nil
	}

	if err := a.wait(ctx, name); err != nil {
		metrics.ObserveSearch(name, 0, time.Since(startTime), false, err)
		return nil, false, err
	}

	hotels, err := a.hotels.Search(ctx, req)
	metrics.ObserveSearch(name, len(hotels), time.Since(startTime), false, err)
	if err != nil {
		return nil, false, err
	}

	if err := a.config.Cache.SetHotels(ctx, req, hotels); err != nil {
		a.log.Warn().Err(err).Msg("failed to cache hotel results")
	}

	return filter.SortHotels(hotels, req.SortBy, req.SortOrder), false, nil
}

func (a *Aggregator) wait(ctx context.Context, simulator string) error {
	if a.config.RateLimiter == nil {
		return nil
	}
	if err := a.config.RateLimiter.Wait(ctx, simulator); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %s: %v", ErrRateLimited, simulator, err)
	}
	return nil
}
