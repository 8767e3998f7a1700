package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luxe/config"
	calendarMocks "luxe/infras/calendar/mocks"
	"luxe/infras/otel/mocks"
	"luxe/infras/predictor"
	predictorMocks "luxe/infras/predictor/mocks"
	bookingMocks "luxe/internal/domains/booking/mocks"
	bookingModel "luxe/internal/domains/booking/model"
	"luxe/internal/domains/pricing/model/dto"
	"luxe/internal/domains/pricing/service"
	roomMocks "luxe/internal/domains/room/mocks"
	roomModel "luxe/internal/domains/room/model"
	cacheMocks "luxe/shared/cache/mocks"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pricing.MaxStayDays = 30
	cfg.Pricing.DefaultOccupancy = 0.6
	cfg.Cache.TTL = 3600
	cfg.Cache.HolidayTTL = 86400

	return cfg
}

func TestPricingService_Quotes_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCalendar := calendarMocks.NewMockCalendar(ctrl)
	mockPredictor := predictorMocks.NewMockPredictor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRooms, mockBookings, mockCalendar, mockPredictor, newTestConfig(), mockCache, mockOtel)

	tests := []struct {
		name string
		req  dto.StayQuery
	}{
		{
			name: "malformed check_in",
			req:  dto.StayQuery{CheckIn: "14-01-2024", CheckOut: "2024-01-16"},
		},
		{
			name: "malformed check_out",
			req:  dto.StayQuery{CheckIn: "2024-01-14", CheckOut: "tomorrow"},
		},
		{
			name: "check_out equals check_in",
			req:  dto.StayQuery{CheckIn: "2024-01-14", CheckOut: "2024-01-14"},
		},
		{
			name: "check_out before check_in",
			req:  dto.StayQuery{CheckIn: "2024-01-16", CheckOut: "2024-01-14"},
		},
		{
			name: "span over thirty days",
			req:  dto.StayQuery{CheckIn: "2024-01-01", CheckOut: "2024-02-01"},
		},
	}

	// No expectations on any collaborator: validation must reject before the
	// catalog, ledger or calendar are touched.
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Quotes(context.Background(), tt.req)

			assert.Error(t, err)
		})
	}
}

func TestPricingService_Quotes_HolidayFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCalendar := calendarMocks.NewMockCalendar(ctrl)
	mockPredictor := predictorMocks.NewMockPredictor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRooms, mockBookings, mockCalendar, mockPredictor, newTestConfig(), mockCache, mockOtel)

	mockRooms.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{ID: "a", RoomID: 1, BasePrice: 2499, TotalRooms: 5},
		}, nil)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCalendar.EXPECT().
		Holidays(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]string{"2024-01-15": "Pongal"}, nil)

	mockBookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{}, nil)

	mockPredictor.EXPECT().
		Predict(gomock.Any(), gomock.Any()).
		Return(0.0, predictor.ErrUnavailable)

	res, err := svc.Quotes(context.Background(), dto.StayQuery{CheckIn: "2024-01-14", CheckOut: "2024-01-16"})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)

	quote := res.Rooms[0]
	assert.Equal(t, 1, quote.RoomID)
	assert.Equal(t, 2499.0, quote.BasePrice)
	assert.Equal(t, 3799.0, quote.Price)
	assert.Equal(t, map[string]any{"model": "fallback", "holiday": 1.5}, quote.PriceFactors)
}

func TestPricingService_Quotes_CollaboratorFailuresRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCalendar := calendarMocks.NewMockCalendar(ctrl)
	mockPredictor := predictorMocks.NewMockPredictor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRooms, mockBookings, mockCalendar, mockPredictor, newTestConfig(), mockCache, mockOtel)

	mockRooms.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{ID: "a", RoomID: 1, BasePrice: 2499, TotalRooms: 5},
			{ID: "b", RoomID: 2, BasePrice: 3999, TotalRooms: 3},
		}, nil)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	// Holiday lookup and the booking ledger both fail; pricing proceeds with
	// an empty holiday set and the default occupancy.
	mockCalendar.EXPECT().
		Holidays(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("calendar unreachable"))

	mockBookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("ledger unreachable"))

	mockPredictor.EXPECT().
		Predict(gomock.Any(), gomock.Any()).
		Return(0.0, predictor.ErrUnavailable).
		Times(2)

	// Midweek stay: Tue 2024-03-05 to Thu 2024-03-07, no weekend nights, so
	// default occupancy 0.6 selects no multiplier.
	res, err := svc.Quotes(context.Background(), dto.StayQuery{CheckIn: "2024-03-05", CheckOut: "2024-03-07"})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 2)

	// Catalog order is preserved.
	assert.Equal(t, 1, res.Rooms[0].RoomID)
	assert.Equal(t, 2, res.Rooms[1].RoomID)

	assert.Equal(t, 2499.0, res.Rooms[0].Price)
	assert.Equal(t, map[string]any{"model": "fallback"}, res.Rooms[0].PriceFactors)
	assert.Equal(t, 3999.0, res.Rooms[1].Price)
}

func TestPricingService_Quotes_LearnedModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCalendar := calendarMocks.NewMockCalendar(ctrl)
	mockPredictor := predictorMocks.NewMockPredictor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRooms, mockBookings, mockCalendar, mockPredictor, newTestConfig(), mockCache, mockOtel)

	mockRooms.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{
			{ID: "a", RoomID: 1, BasePrice: 2499, TotalRooms: 5},
		}, nil)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCalendar.EXPECT().
		Holidays(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(map[string]string{}, nil)

	mockBookings.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]bookingModel.Booking{}, nil)

	mockPredictor.EXPECT().
		Predict(gomock.Any(), gomock.Any()).
		Return(3650.0, nil)

	res, err := svc.Quotes(context.Background(), dto.StayQuery{CheckIn: "2024-03-05", CheckOut: "2024-03-07"})

	assert.NoError(t, err)
	assert.Len(t, res.Rooms, 1)

	quote := res.Rooms[0]
	assert.Equal(t, 3699.0, quote.Price)
	assert.Equal(t, "random_forest", quote.PriceFactors["model"])
}

func TestPricingService_Quotes_EmptyCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCalendar := calendarMocks.NewMockCalendar(ctrl)
	mockPredictor := predictorMocks.NewMockPredictor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRooms, mockBookings, mockCalendar, mockPredictor, newTestConfig(), mockCache, mockOtel)

	mockRooms.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]roomModel.Room{}, nil)

	_, err := svc.Quotes(context.Background(), dto.StayQuery{CheckIn: "2024-03-05", CheckOut: "2024-03-07"})

	assert.Error(t, err)
}

func TestPricingService_Quotes_CatalogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCalendar := calendarMocks.NewMockCalendar(ctrl)
	mockPredictor := predictorMocks.NewMockPredictor(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRooms, mockBookings, mockCalendar, mockPredictor, newTestConfig(), mockCache, mockOtel)

	mockRooms.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("database error"))

	_, err := svc.Quotes(context.Background(), dto.StayQuery{CheckIn: "2024-03-05", CheckOut: "2024-03-07"})

	assert.Error(t, err)
}
