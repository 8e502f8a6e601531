package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dharmasatrya/travelsim/internal/models"
)

// Cache replays earlier search results for an identical request.
type Cache interface {
	GetFlights(ctx context.Context, req models.FlightSearchRequest) ([]models.FlightOffer, bool)
	SetFlights(ctx context.Context, req models.FlightSearchRequest, flights []models.FlightOffer) error
	GetHotels(ctx context.Context, req models.HotelSearchRequest) ([]models.HotelOffer, bool)
	SetHotels(ctx context.Context, req models.HotelSearchRequest, hotels []models.HotelOffer) error
	Close() error
}

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

func DefaultRedisConfig() RedisConfig {
	return RedisConfig{
		Host:     "localhost",
		Port:     "6379",
		Password: "",
		DB:       0,
		TTL:      5 * time.Minute,
	}
}

func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Host + ":" + cfg.Port,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    cfg.TTL,
	}, nil
}

func (c *RedisCache) GetFlights(ctx context.Context, req models.FlightSearchRequest) ([]models.FlightOffer, bool) {
	var flights []models.FlightOffer
	if !c.get(ctx, flightKey(req), &flights) {
		return nil, false
	}
	return flights, true
}

func (c *RedisCache) SetFlights(ctx context.Context, req models.FlightSearchRequest, flights []models.FlightOffer) error {
	return c.set(ctx, flightKey(req), flights)
}

func (c *RedisCache) GetHotels(ctx context.Context, req models.HotelSearchRequest) ([]models.HotelOffer, bool) {
	var hotels []models.HotelOffer
	if !c.get(ctx, hotelKey(req), &hotels) {
		return nil, false
	}
	return hotels, true
}

func (c *RedisCache) SetHotels(ctx context.Context, req models.HotelSearchRequest, hotels []models.HotelOffer) error {
	return c.set(ctx, hotelKey(req), hotels)
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) get(ctx context.Context, key string, dst any) bool {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (c *RedisCache) set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

type NoOpCache struct{}

func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

func (c *NoOpCache) GetFlights(ctx context.Context, req models.FlightSearchRequest) ([]models.FlightOffer, bool) {
	return nil, false
}

func (c *NoOpCache) SetFlights(ctx context.Context, req models.FlightSearchRequest, flights []models.FlightOffer) error {
	return nil
}

func (c *NoOpCache) GetHotels(ctx context.Context, req models.HotelSearchRequest) ([]models.HotelOffer, bool) {
	return nil, false
}

func (c *NoOpCache) SetHotels(ctx context.Context, req models.HotelSearchRequest, hotels []models.HotelOffer) error {
	return nil
}

func (c *NoOpCache) Close() error {
	return nil
}

// Sorting is applied after the cache, so it is not part of the key.
func flightKey(req models.FlightSearchRequest) string {
	req.SortBy, req.SortOrder = "", ""
	return generateKey("flight:", req)
}

func hotelKey(req models.HotelSearchRequest) string {
	req.SortBy, req.SortOrder = "", ""
	return generateKey("hotel:", req)
}

func generateKey(prefix string, keyData any) string {
	data, _ := json.Marshal(keyData)
	hash := sha256.Sum256(data)
	return prefix + hex.EncodeToString(hash[:])
}
