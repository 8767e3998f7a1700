package service

import (
	"context"
	"fmt"

	"luxe/infras/predictor"
	"luxe/internal/domains/pricing/model"
)

// PriceStrategy produces a raw nightly price with a factor breakdown naming
// the branch that fired. The raw price still needs rounding.
type PriceStrategy interface {
	Price(ctx context.Context, basePrice float64, features model.FeatureVector, occupancy float64) (float64, map[string]any, error)
}

type learnedModel struct {
	predictor predictor.Predictor
}

// NewLearnedModel prices through the regression model. Any prediction error
// surfaces to the caller, which degrades to the rule-based strategy.
func NewLearnedModel(p predictor.Predictor) PriceStrategy {
	return &learnedModel{predictor: p}
}

func (l *learnedModel) Price(ctx context.Context, _ float64, features model.FeatureVector, _ float64) (float64, map[string]any, error) {
	raw, err := l.predictor.Predict(ctx, predictor.Features{
		Year:          features.Year,
		Day:           features.Day,
		Month:         features.Month,
		WeekendNights: features.WeekendNights,
		WeekNights:    features.WeekNights,
		RoomType:      features.RoomType,
		IsHoliday:     features.IsHoliday,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("prediction failed: %w", err)
	}

	factors := map[string]any{
		"model":          "random_forest",
		"year":           features.Year,
		"month":          features.Month,
		"weekend_nights": features.WeekendNights,
		"week_nights":    features.WeekNights,
		"room_type":      features.RoomType,
		"is_holiday":     features.IsHoliday == 1,
	}

	return raw, factors, nil
}

type ruleBasedFallback struct{}

// NewRuleBasedFallback prices from the base rate with at most one multiplier,
// chosen by strict priority: holiday, then weekend, then occupancy.
func NewRuleBasedFallback() PriceStrategy {
	return &ruleBasedFallback{}
}

func (r *ruleBasedFallback) Price(_ context.Context, basePrice float64, features model.FeatureVector, occupancy float64) (float64, map[string]any, error) {
	price := basePrice
	factors := map[string]any{"model": "fallback"}

	switch {
	case features.IsHoliday == 1:
		price *= model.HolidayMultiplier
		factors["holiday"] = model.HolidayMultiplier
	case features.WeekendNights > 0:
		price *= model.WeekendMultiplier
		factors["weekend"] = model.WeekendMultiplier
	case occupancy < model.LowOccupancyThreshold:
		price *= model.LowOccupancyDiscount
		factors["low_occupancy"] = model.LowOccupancyDiscount
	case occupancy > model.HighOccupancyCutoff:
		price *= model.HighOccupancyPremium
		factors["high_occupancy"] = model.HighOccupancyPremium
	}

	return price, factors, nil
}
