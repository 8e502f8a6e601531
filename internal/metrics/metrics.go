package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dharmasatrya/travelsim/internal/models"
)

var (
	searchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelsim_searches_total",
		Help: "Searches served, by simulator and outcome",
	}, []string{"simulator", "outcome"})

	offersReturned = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "travelsim_offers_returned",
		Help:    "Offers returned per search",
		Buckets: []float64{0, 1, 2, 3, 4, 5, 6, 8},
	}, []string{"simulator"})

	searchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "travelsim_search_duration_seconds",
		Help:    "Time taken to serve a search, simulated latency included",
		Buckets: []float64{0.1, 0.5, 1, 2, 5},
	}, []string{"simulator"})

	verificationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "travelsim_verifications_total",
		Help: "Offer verifications, by simulator and outcome",
	}, []string{"simulator", "outcome"})
)

func ObserveSearch(simulator string, offers int, took time.Duration, cacheHit bool, err error) {
	outcome := "ok"
	switch {
	case err != nil:
		outcome = "error"
	case cacheHit:
		outcome = "cache_hit"
	case offers == 0:
		outcome = "empty"
	}

	searchesTotal.WithLabelValues(simulator, outcome).Inc()
	if err == nil {
		offersReturned.WithLabelValues(simulator).Observe(float64(offers))
		searchDuration.WithLabelValues(simulator).Observe(took.Seconds())
	}
}

func ObserveVerification(simulator string, v models.Verification, err error) {
	outcome := "unchanged"
	switch {
	case err != nil:
		outcome = "error"
	case !v.Available:
		outcome = "unavailable"
	case v.PriceChanged:
		outcome = "price_changed"
	}
	verificationsTotal.WithLabelValues(simulator, outcome).Inc()
}
