package predictor

//go:generate go run go.uber.org/mock/mockgen -source=./predictor.go -destination=./mocks/predictor_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"luxe/config"
	"luxe/infras/otel"
	"luxe/shared/constant"
	"luxe/shared/logger"
)

// ErrUnavailable marks the predictor as not configured or unreachable.
// Callers degrade to rule-based pricing on any error from Predict.
var ErrUnavailable = errors.New("price predictor unavailable")

// Features is the wire payload of one inference call.
type Features struct {
	Year          int `json:"year"`
	Day           int `json:"day"`
	Month         int `json:"month"`
	WeekendNights int `json:"weekend_nights"`
	WeekNights    int `json:"week_nights"`
	RoomType      int `json:"room_type"`
	IsHoliday     int `json:"is_holiday"`
}

type prediction struct {
	Price float64 `json:"price"`
}

// Predictor calls the regression model serving endpoint.
type Predictor interface {
	Predict(ctx context.Context, features Features) (float64, error)
}

type predictorImpl struct {
	cfg    *config.Config
	otel   otel.Otel
	client *http.Client
}

func New(cfg *config.Config, ot otel.Otel) Predictor {
	return &predictorImpl{
		cfg:  cfg,
		otel: ot,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Predictor.TimeoutSeconds) * time.Second,
		},
	}
}

func (p *predictorImpl) Predict(ctx context.Context, features Features) (res float64, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".predictor.Predict")
	defer scope.End()
	defer scope.TraceIfError(err)

	endpoint := p.cfg.External.Predictor.Endpoint
	if endpoint == constant.Empty {
		return 0, ErrUnavailable
	}

	body, err := json.Marshal(features)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to encode features: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to build prediction request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := p.client.Do(req)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var out prediction
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to decode prediction: %w", err)
	}

	return out.Price, nil
}
