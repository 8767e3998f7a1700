package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luxe/infras/predictor"
	predictorMocks "luxe/infras/predictor/mocks"
	"luxe/internal/domains/pricing/model"
	"luxe/internal/domains/pricing/service"
)

func TestRuleBasedFallback_Price(t *testing.T) {
	strategy := service.NewRuleBasedFallback()

	tests := []struct {
		name        string
		basePrice   float64
		features    model.FeatureVector
		occupancy   float64
		wantPrice   float64
		wantFactors map[string]any
	}{
		{
			name:      "holiday wins over weekend and occupancy",
			basePrice: 2499,
			features:  model.FeatureVector{IsHoliday: 1, WeekendNights: 2},
			occupancy: 0.1,
			wantPrice: 2499 * 1.5,
			wantFactors: map[string]any{
				"model":   "fallback",
				"holiday": 1.5,
			},
		},
		{
			name:      "weekend wins over occupancy",
			basePrice: 3999,
			features:  model.FeatureVector{WeekendNights: 1},
			occupancy: 0.1,
			wantPrice: 3999 * 1.2,
			wantFactors: map[string]any{
				"model":   "fallback",
				"weekend": 1.2,
			},
		},
		{
			name:      "low occupancy discount",
			basePrice: 5599,
			features:  model.FeatureVector{WeekNights: 3},
			occupancy: 0.4,
			wantPrice: 5599 * 0.9,
			wantFactors: map[string]any{
				"model":         "fallback",
				"low_occupancy": 0.9,
			},
		},
		{
			name:      "high occupancy premium",
			basePrice: 5599,
			features:  model.FeatureVector{WeekNights: 3},
			occupancy: 0.85,
			wantPrice: 5599 * 1.2,
			wantFactors: map[string]any{
				"model":         "fallback",
				"high_occupancy": 1.2,
			},
		},
		{
			name:      "neutral occupancy leaves the base price",
			basePrice: 7499,
			features:  model.FeatureVector{WeekNights: 2},
			occupancy: 0.6,
			wantPrice: 7499,
			wantFactors: map[string]any{
				"model": "fallback",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, factors, err := strategy.Price(context.Background(), tt.basePrice, tt.features, tt.occupancy)

			assert.NoError(t, err)
			assert.InDelta(t, tt.wantPrice, price, 1e-9)
			assert.Equal(t, tt.wantFactors, factors)
		})
	}
}

func TestLearnedModel_Price(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPredictor := predictorMocks.NewMockPredictor(ctrl)
	strategy := service.NewLearnedModel(mockPredictor)

	features := model.FeatureVector{
		Year:          2024,
		Day:           14,
		Month:         1,
		WeekendNights: 1,
		WeekNights:    1,
		RoomType:      0,
		IsHoliday:     1,
	}

	t.Run("successful prediction reports the feature breakdown", func(t *testing.T) {
		mockPredictor.EXPECT().
			Predict(gomock.Any(), predictor.Features{
				Year:          2024,
				Day:           14,
				Month:         1,
				WeekendNights: 1,
				WeekNights:    1,
				RoomType:      0,
				IsHoliday:     1,
			}).
			Return(3650.0, nil)

		price, factors, err := strategy.Price(context.Background(), 2499, features, 0.6)

		assert.NoError(t, err)
		assert.Equal(t, 3650.0, price)
		assert.Equal(t, map[string]any{
			"model":          "random_forest",
			"year":           2024,
			"month":          1,
			"weekend_nights": 1,
			"week_nights":    1,
			"room_type":      0,
			"is_holiday":     true,
		}, factors)
	})

	t.Run("prediction failure surfaces so the caller can degrade", func(t *testing.T) {
		mockPredictor.EXPECT().
			Predict(gomock.Any(), gomock.Any()).
			Return(0.0, predictor.ErrUnavailable)

		_, _, err := strategy.Price(context.Background(), 2499, features, 0.6)

		assert.Error(t, err)
		assert.ErrorIs(t, err, predictor.ErrUnavailable)
	})
}
