package service

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/sunilmaharaj1991-max/BlinkLean/internal/catalog"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/domain/model"
	"github.com/sunilmaharaj1991-max/BlinkLean/internal/metrics"
)

// Pricing defaults.
const (
	DefaultFluctuationMin       = 0.95
	DefaultFluctuationMax       = 1.05
	DefaultFraudThresholdKg     = 500.0
	DefaultLargeBasketThreshold = 5
	DefaultMaxWeightKg          = 5000.0
	BaselineConfidence          = 98.0
	LargeBasketPenalty          = 5.0
	FraudPenalty                = 40.0
)

// ErrInvalidWeight is returned for item weights outside (0, max].
var ErrInvalidWeight = errors.New("item weight out of range")

// FluctuationSource draws a market fluctuation multiplier in [lo, hi].
// Implementations must be safe for concurrent use.
type FluctuationSource interface {
	Multiplier(lo, hi float64) float64
}

// FluctuationFunc adapts a function to FluctuationSource.
type FluctuationFunc func(lo, hi float64) float64

// Multiplier calls f.
func (f FluctuationFunc) Multiplier(lo, hi float64) float64 {
	return f(lo, hi)
}

// UniformFluctuation draws uniformly from the top-level math/rand/v2 generator,
// which is safe for concurrent use and seeded per process.
var UniformFluctuation FluctuationSource = FluctuationFunc(func(lo, hi float64) float64 {
	return lo + rand.Float64()*(hi-lo)
})

// Pricer values baskets of scrap.
type Pricer interface {
	Predict(items []model.ScrapItem) (model.BasketPrediction, error)
}

// PricerOption configures a ScrapPricer.
type PricerOption func(*ScrapPricer)

// ScrapPricer implements Pricer over an immutable rate table.
// Predict is intentionally not idempotent: every item draws its own multiplier.
type ScrapPricer struct {
	rates                *catalog.RateTable
	source               FluctuationSource
	fluctuationMin       float64
	fluctuationMax       float64
	fraudThresholdKg     float64
	largeBasketThreshold int
	maxWeightKg          float64
}

// NewScrapPricer creates a pricer with the reference parameters.
func NewScrapPricer(rates *catalog.RateTable, opts ...PricerOption) *ScrapPricer {
	p := &ScrapPricer{
		rates:                rates,
		source:               UniformFluctuation,
		fluctuationMin:       DefaultFluctuationMin,
		fluctuationMax:       DefaultFluctuationMax,
		fraudThresholdKg:     DefaultFraudThresholdKg,
		largeBasketThreshold: DefaultLargeBasketThreshold,
		maxWeightKg:          DefaultMaxWeightKg,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithFluctuationSource injects the multiplier source.
func WithFluctuationSource(src FluctuationSource) PricerOption {
	return func(p *ScrapPricer) {
		if src != nil {
			p.source = src
		}
	}
}

// WithFluctuationRange sets the closed multiplier interval.
func WithFluctuationRange(lo, hi float64) PricerOption {
	return func(p *ScrapPricer) {
		if lo > 0 && lo <= hi {
			p.fluctuationMin, p.fluctuationMax = lo, hi
		}
	}
}

// WithFraudThreshold sets the per-item weight above which a basket is flagged.
func WithFraudThreshold(kg float64) PricerOption {
	return func(p *ScrapPricer) {
		if kg > 0 {
			p.fraudThresholdKg = kg
		}
	}
}

// WithLargeBasketThreshold sets the item count above which confidence is reduced.
func WithLargeBasketThreshold(n int) PricerOption {
	return func(p *ScrapPricer) {
		if n > 0 {
			p.largeBasketThreshold = n
		}
	}
}

// Predict values every item in input order and scores the basket.
func (p *ScrapPricer) Predict(items []model.ScrapItem) (model.BasketPrediction, error) {
	start := time.Now()

	for i, item := range items {
		if !(item.WeightKg > 0 && item.WeightKg <= p.maxWeightKg) {
			metrics.RecordPrediction(time.Since(start), "error", false)
			return model.BasketPrediction{}, fmt.Errorf("%w: item %d (%s) weighs %v kg", ErrInvalidWeight, i, item.Material, item.WeightKg)
		}
	}

	if len(items) == 0 {
		metrics.RecordPrediction(time.Since(start), "success", false)
		return model.EmptyBasket(BaselineConfidence), nil
	}

	breakdown := make([]model.PricePrediction, 0, len(items))
	var sum float64
	fraud := false
	for _, item := range items {
		material, base, known := p.rates.Lookup(item.Material)
		if !known {
			metrics.RecordFallbackRate()
			log.Debug().
				Str("material", material).
				Str("fallback", p.rates.Fallback().Material).
				Msg("Unknown material priced at fallback rate")
		}

		rate := Round(base*p.multiplier(), 2)
		value := Round(rate*item.WeightKg, 2)
		breakdown = append(breakdown, model.PricePrediction{
			Material:           material,
			RatePerKg:          rate,
			EstimatedWeight:    item.WeightKg,
			ItemEstimatedValue: value,
		})
		sum += value

		if item.WeightKg > p.fraudThresholdKg {
			fraud = true
		}
	}

	result := model.BasketPrediction{
		MaterialsBreakdown:  breakdown,
		TotalEstimatedValue: Round(sum, 2),
		ConfidenceScore:     p.confidence(len(items), fraud),
		FraudFlag:           fraud,
	}
	metrics.RecordPrediction(time.Since(start), "success", fraud)
	return result, nil
}

func (p *ScrapPricer) multiplier() float64 {
	m := p.source.Multiplier(p.fluctuationMin, p.fluctuationMax)
	return math.Min(math.Max(m, p.fluctuationMin), p.fluctuationMax)
}

// confidence is unclamped; it can go below zero if penalties are reconfigured.
func (p *ScrapPricer) confidence(count int, fraud bool) float64 {
	score := BaselineConfidence
	if count > p.largeBasketThreshold {
		score -= LargeBasketPenalty
	}
	if fraud {
		score -= FraudPenalty
	}
	return Round(score, 1)
}

// Round rounds x to the given number of decimal places, half to even on the
// exact binary value of x. 2.675 rounds to 2.67 because its binary value is
// slightly below the midpoint.
func Round(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	if err != nil {
		return x
	}
	return r
}

// Advisory returns the customer-facing note for a prediction.
func Advisory(p model.BasketPrediction) string {
	if p.FraudFlag {
		return "Unusually high weight detected. Manual collector verification strictly required at pickup."
	}
	return "Estimated value is based on current market rates. Final value will be confirmed at pickup."
}
