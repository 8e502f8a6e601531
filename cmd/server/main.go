package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/dharmasatrya/travelsim/internal/aggregator"
	"github.com/dharmasatrya/travelsim/internal/cache"
	"github.com/dharmasatrya/travelsim/internal/config"
	"github.com/dharmasatrya/travelsim/internal/handler"
	"github.com/dharmasatrya/travelsim/internal/logger"
	"github.com/dharmasatrya/travelsim/internal/random"
	"github.com/dharmasatrya/travelsim/internal/ratelimit"
	"github.com/dharmasatrya/travelsim/internal/refdata"
	"github.com/dharmasatrya/travelsim/internal/simulator"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(getEnv("CONFIG_PATH", "./config"))
	if err != nil {
		bootLog := logger.L()
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.Init(cfg.Log)

	flights, hotels, err := initializeSimulators(cfg, &log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize simulators")
	}

	rateLimiter := ratelimit.NewSimulatorLimiterWithDefaults()
	rateLimiter.SetLimit(flights.Name(), cfg.RateLimit.Flights.RPS, cfg.RateLimit.Flights.Burst)
	rateLimiter.SetLimit(hotels.Name(), cfg.RateLimit.Hotels.RPS, cfg.RateLimit.Hotels.Burst)

	searchCache := initializeCache(cfg, log)
	defer searchCache.Close()

	agg := aggregator.NewAggregator(flights, hotels, aggregator.Config{
		TripTimeout: cfg.Trip.Timeout,
		RateLimiter: rateLimiter,
		Cache:       searchCache,
		Logger:      &log,
	})

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	searchHandler := handler.NewSearchHandler(agg, log)

	api := e.Group("/api/v1")
	api.POST("/flights/search", searchHandler.FlightSearch)
	api.POST("/flights/verify", searchHandler.FlightVerify)
	api.POST("/hotels/search", searchHandler.HotelSearch)
	api.POST("/hotels/verify", searchHandler.HotelVerify)
	api.POST("/trips/search", searchHandler.TripSearch)
	e.GET("/health", handler.HealthHandler)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting travel simulator server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped")
}

func initializeSimulators(cfg *config.Config, log *zerolog.Logger) (*simulator.FlightSimulator, *simulator.HotelSimulator, error) {
	flightData, err := refdata.LoadFlightData(cfg.Data.FlightsFile)
	if err != nil {
		return nil, nil, err
	}
	hotelData, err := refdata.LoadHotelData(cfg.Data.HotelsFile)
	if err != nil {
		return nil, nil, err
	}

	opts := simulator.Options{
		Random:        random.New(cfg.Random.Seed),
		SearchLatency: cfg.Latency.Search(),
		VerifyLatency: cfg.Latency.Verify(),
		Logger:        log,
	}

	flights := simulator.NewFlightSimulator(flightData, opts)
	hotels, err := simulator.NewHotelSimulator(hotelData, opts)
	if err != nil {
		return nil, nil, err
	}

	log.Info().
		Int("airports", len(flightData.Airports)).
		Int("airlines", len(flightData.Airlines)).
		Int("cities", len(hotelData.Cities)).
		Int64("seed", cfg.Random.Seed).
		Bool("latency", cfg.Latency.Enabled).
		Msg("simulators initialized")

	return flights, hotels, nil
}

func initializeCache(cfg *config.Config, log zerolog.Logger) cache.Cache {
	if !cfg.Cache.Enabled {
		log.Info().Msg("cache disabled")
		return cache.NewNoOpCache()
	}

	redisCache, err := cache.NewRedisCache(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		TTL:      cfg.Redis.TTL,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	log.Info().
		Str("addr", cfg.Redis.Host+":"+cfg.Redis.Port).
		Dur("ttl", cfg.Redis.TTL).
		Msg("redis cache enabled")
	return redisCache
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
