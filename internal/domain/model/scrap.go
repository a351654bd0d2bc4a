package model

// ScrapItem is a single material submitted for valuation.
type ScrapItem struct {
	// Material is free text, matched case-insensitively against the rate table
	Material string `json:"material"`
	// WeightKg must lie in (0, 5000]
	WeightKg float64 `json:"weight"`
}

// PricePrediction is the valuation of one scrap item.
//
// @Description Per-item valuation
// @Example {"material": "copper", "rate_per_kg": 403.12, "estimated_weight": 10, "item_estimated_value": 4031.2}
type PricePrediction struct {
	// Material is the normalized material name
	Material string `json:"material" example:"copper"`
	// RatePerKg is the adjusted rate actually used
	RatePerKg float64 `json:"rate_per_kg" example:"403.12"`
	// EstimatedWeight echoes the input weight in kilograms
	EstimatedWeight float64 `json:"estimated_weight" example:"10"`
	// ItemEstimatedValue is RatePerKg × EstimatedWeight rounded to 2 places
	ItemEstimatedValue float64 `json:"item_estimated_value" example:"4031.2"`
}

// BasketPrediction is the valuation of a whole submission.
//
// @Description Basket valuation with anomaly flag and confidence
type BasketPrediction struct {
	MaterialsBreakdown  []PricePrediction `json:"materials_breakdown"`
	TotalEstimatedValue float64           `json:"total_estimated_value" example:"4031.2"`
	ConfidenceScore     float64           `json:"confidence_score" example:"98"`
	FraudFlag           bool              `json:"fraud_flag" example:"false"`
}

// EmptyBasket returns the prediction for a submission with no items.
func EmptyBasket(baseline float64) BasketPrediction {
	return BasketPrediction{
		MaterialsBreakdown: []PricePrediction{},
		ConfidenceScore:    baseline,
	}
}

// BreakdownTotal sums the item values of the breakdown in order.
func (b BasketPrediction) BreakdownTotal() float64 {
	var sum float64
	for _, p := range b.MaterialsBreakdown {
		sum += p.ItemEstimatedValue
	}
	return sum
}
