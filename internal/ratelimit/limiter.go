package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// SimulatorLimiter holds one token bucket per simulator name.
type SimulatorLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewSimulatorLimiter(config RateLimitConfig) *SimulatorLimiter {
	return &SimulatorLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewSimulatorLimiterWithDefaults() *SimulatorLimiter {
	return NewSimulatorLimiter(DefaultConfig())
}

func (p *SimulatorLimiter) GetLimiter(simulator string) *rate.Limiter {
	p.mu.RLock()
	limiter, exists := p.limiters[simulator]
	p.mu.RUnlock()

	if exists {
		return limiter
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if limiter, exists = p.limiters[simulator]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(p.defaults.RequestsPerSecond), p.defaults.BurstSize)
	p.limiters[simulator] = limiter
	return limiter
}

func (p *SimulatorLimiter) SetLimit(simulator string, rps float64, burst int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.limiters[simulator] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the simulator has a free token or ctx ends.
func (p *SimulatorLimiter) Wait(ctx context.Context, simulator string) error {
	return p.GetLimiter(simulator).Wait(ctx)
}
