package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/dharmasatrya/travelsim/internal/latency"
	"github.com/dharmasatrya/travelsim/internal/logger"
)

type Config struct {
	Port      string          `mapstructure:"port"`
	Log       logger.Config   `mapstructure:"log"`
	Random    RandomConfig    `mapstructure:"random"`
	Latency   LatencyConfig   `mapstructure:"latency"`
	Data      DataConfig      `mapstructure:"data"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Trip      TripConfig      `mapstructure:"trip"`
}

type RandomConfig struct {
	// Seed fixes every random draw; 0 seeds from the clock.
	Seed int64 `mapstructure:"seed"`
}

type LatencyConfig struct {
	Enabled   bool          `mapstructure:"enabled"`
	SearchMin time.Duration `mapstructure:"search_min"`
	SearchMax time.Duration `mapstructure:"search_max"`
	VerifyMin time.Duration `mapstructure:"verify_min"`
	VerifyMax time.Duration `mapstructure:"verify_max"`
}

func (c LatencyConfig) Search() latency.Range {
	if !c.Enabled {
		return latency.Disabled()
	}
	return latency.Range{Min: c.SearchMin, Max: c.SearchMax}
}

func (c LatencyConfig) Verify() latency.Range {
	if !c.Enabled {
		return latency.Disabled()
	}
	return latency.Range{Min: c.VerifyMin, Max: c.VerifyMax}
}

// DataConfig points at reference data files; empty paths use the bundled data.
type DataConfig struct {
	FlightsFile string `mapstructure:"flights_file"`
	HotelsFile  string `mapstructure:"hotels_file"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type RedisConfig struct {
	Host     string        `mapstructure:"host"`
	Port     string        `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

type LimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type RateLimitConfig struct {
	Flights LimitConfig `mapstructure:"flights"`
	Hotels  LimitConfig `mapstructure:"hotels"`
}

type TripConfig struct {
	Timeout time.Duration `mapstructure:"timeout"`
}

// Load reads config.yaml from configPath (if present) and applies
// environment overrides, e.g. LATENCY_ENABLED=false or REDIS_HOST=redis.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)
	v.SetDefault("log.service_name", "travelsim")

	v.SetDefault("random.seed", 0)

	v.SetDefault("latency.enabled", true)
	v.SetDefault("latency.search_min", 500*time.Millisecond)
	v.SetDefault("latency.search_max", 2*time.Second)
	v.SetDefault("latency.verify_min", 200*time.Millisecond)
	v.SetDefault("latency.verify_max", time.Second)

	v.SetDefault("data.flights_file", "")
	v.SetDefault("data.hotels_file", "")

	v.SetDefault("cache.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 5*time.Minute)

	v.SetDefault("ratelimit.flights.rps", 20)
	v.SetDefault("ratelimit.flights.burst", 30)
	v.SetDefault("ratelimit.hotels.rps", 20)
	v.SetDefault("ratelimit.hotels.burst", 30)

	v.SetDefault("trip.timeout", 5*time.Second)
}

func (c *Config) validate() error {
	if c.Latency.Enabled {
		if c.Latency.SearchMin > c.Latency.SearchMax {
			return fmt.Errorf("latency.search_min (%s) exceeds latency.search_max (%s)", c.Latency.SearchMin, c.Latency.SearchMax)
		}
		if c.Latency.VerifyMin > c.Latency.VerifyMax {
			return fmt.Errorf("latency.verify_min (%s) exceeds latency.verify_max (%s)", c.Latency.VerifyMin, c.Latency.VerifyMax)
		}
	}
	if c.RateLimit.Flights.RPS <= 0 || c.RateLimit.Hotels.RPS <= 0 {
		return errors.New("ratelimit rps must be positive")
	}
	return nil
}
