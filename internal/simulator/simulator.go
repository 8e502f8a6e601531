// Package simulator generates randomized flight and hotel offers.
package simulator

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/dharmasatrya/travelsim/internal/latency"
	"github.com/dharmasatrya/travelsim/internal/models"
	"github.com/dharmasatrya/travelsim/internal/random"
	"github.com/dharmasatrya/travelsim/pkg/currency"
)

// ErrIDSpaceExhausted is returned when no unused offer ID was drawn within
// maxIDAttempts tries.
var ErrIDSpaceExhausted = errors.New("offer id space exhausted")

const (
	maxIDAttempts = 64

	// NoAvailabilityRate is the chance a search returns no offers at all.
	NoAvailabilityRate = 0.05
)

// Options configures a simulator. Zero fields fall back to DefaultOptions.
type Options struct {
	Random        *random.Source
	SearchLatency latency.Range
	VerifyLatency latency.Range
	Logger        *zerolog.Logger
}

func DefaultOptions() Options {
	nop := zerolog.Nop()
	return Options{
		Random:        random.New(0),
		SearchLatency: latency.Range{Min: 500 * time.Millisecond, Max: 2 * time.Second},
		VerifyLatency: latency.Range{Min: 200 * time.Millisecond, Max: time.Second},
		Logger:        &nop,
	}
}

func (o Options) withDefaults() Options {
	if o.Random == nil {
		o.Random = random.New(0)
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
	return o
}

// uniqueID draws candidates until one is not yet in used, then records it.
func uniqueID(used map[string]struct{}, draw func() string) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := draw()
		if _, taken := used[id]; !taken {
			used[id] = struct{}{}
			return id, nil
		}
	}
	return "", ErrIDSpaceExhausted
}

type verifyPolicy struct {
	unavailableRate float64
	changeRate      float64
	changeMin       float64
	changeMax       float64
	reason          string
}

func runVerify(ctx context.Context, src *random.Source, lat latency.Range, p verifyPolicy, offerID string, expectedPrice float64) (models.Verification, error) {
	req := models.VerifyRequest{OfferID: offerID, ExpectedPrice: expectedPrice}
	if err := req.Validate(); err != nil {
		return models.Verification{}, err
	}

	if err := lat.Wait(ctx, src); err != nil {
		return models.Verification{}, err
	}

	if src.Chance(p.unavailableRate) {
		return models.Verification{
			OfferID:   offerID,
			Available: false,
			Reason:    p.reason,
		}, nil
	}

	if src.Chance(p.changeRate) {
		original := expectedPrice
		newPrice := currency.Round2(expectedPrice + expectedPrice*src.Uniform(p.changeMin, p.changeMax))
		return models.Verification{
			OfferID:       offerID,
			Available:     true,
			PriceChanged:  true,
			OriginalPrice: &original,
			NewPrice:      &newPrice,
		}, nil
	}

	price := expectedPrice
	return models.Verification{
		OfferID:      offerID,
		Available:    true,
		PriceChanged: false,
		Price:        &price,
	}, nil
}
