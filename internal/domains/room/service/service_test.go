package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"luxe/config"
	"luxe/infras/otel/mocks"
	bookingMocks "luxe/internal/domains/booking/mocks"
	bookingModel "luxe/internal/domains/booking/model"
	roomMocks "luxe/internal/domains/room/mocks"
	"luxe/internal/domains/room/model"
	"luxe/internal/domains/room/model/dto"
	"luxe/internal/domains/room/service"
	cacheMocks "luxe/shared/cache/mocks"
	"luxe/shared/constant"
	gDto "luxe/shared/dto"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.StayDateFormat, value)
	assert.NoError(t, err)

	return parsed
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return cfg
}

func TestRoomService_Availability(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookings, newTestConfig(), mockCache, mockOtel, nil)

	rooms := []model.Room{
		{ID: "a", RoomID: 1, Type: "Standard Single", TotalRooms: 5},
		{ID: "b", RoomID: 2, Type: "Deluxe", TotalRooms: 2},
	}

	tests := []struct {
		name          string
		query         dto.AvailabilityQuery
		setupMock     func()
		wantErr       bool
		wantAvailable []int
		wantOccupied  []int
	}{
		{
			name:  "no range counts every unit as free",
			query: dto.AvailabilityQuery{},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)
			},
			wantAvailable: []int{5, 2},
			wantOccupied:  []int{0, 0},
		},
		{
			name:  "empty ledger leaves all units free",
			query: dto.AvailabilityQuery{CheckIn: "2024-01-10", CheckOut: "2024-01-12"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)

				mockBookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{}, nil)
			},
			wantAvailable: []int{5, 2},
			wantOccupied:  []int{0, 0},
		},
		{
			name:  "overlapping bookings reduce availability",
			query: dto.AvailabilityQuery{CheckIn: "2024-01-10", CheckOut: "2024-01-12"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(rooms, nil)

				mockBookings.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]bookingModel.Booking{
						{RoomID: 1},
						{RoomID: 1},
						{RoomID: 2},
						{RoomID: 2},
					}, nil)
			},
			wantAvailable: []int{3, 0},
			wantOccupied:  []int{2, 2},
		},
		{
			name:  "only one date provided",
			query: dto.AvailabilityQuery{CheckIn: "2024-01-10"},
			setupMock: func() {
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Availability(context.Background(), tt.query, gDto.QueryParams{}, gDto.FilterGroup{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Len(t, res.Rooms, len(tt.wantAvailable))

			for i := range res.Rooms {
				assert.Equal(t, tt.wantAvailable[i], res.Rooms[i].Available)
				assert.Equal(t, tt.wantOccupied[i], res.Rooms[i].OccupiedCount)
			}
		})
	}
}

func TestRoomService_NextAvailableDates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookings, newTestConfig(), mockCache, mockOtel, nil)

	t.Run("fully booked room reports the day after the last checkout", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{
				{ID: "a", RoomID: 1, TotalRooms: 2},
				{ID: "b", RoomID: 2, TotalRooms: 2},
			}, nil)

		// Room 1: both units run until the same checkout.
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{RoomID: 1, CheckIn: mustDate(t, "2024-01-10"), CheckOut: mustDate(t, "2024-01-20")},
				{RoomID: 1, CheckIn: mustDate(t, "2024-01-12"), CheckOut: mustDate(t, "2024-01-20")},
			}, nil)

		// Room 2: one unit still free, no entry expected.
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{RoomID: 2, CheckIn: mustDate(t, "2024-01-10"), CheckOut: mustDate(t, "2024-01-15")},
			}, nil)

		res := svc.NextAvailableDates(context.Background())

		assert.Equal(t, map[int]string{1: "2024-01-21"}, res)
	})

	t.Run("rooms without bookings are skipped", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{
				{ID: "a", RoomID: 1, TotalRooms: 2},
			}, nil)

		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		res := svc.NextAvailableDates(context.Background())

		assert.Empty(t, res)
	})

	t.Run("catalog failure degrades to an empty result", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		res := svc.NextAvailableDates(context.Background())

		assert.Empty(t, res)
	})

	t.Run("ledger failure for one room skips just that room", func(t *testing.T) {
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{
				{ID: "a", RoomID: 1, TotalRooms: 1},
				{ID: "b", RoomID: 2, TotalRooms: 1},
			}, nil)

		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{RoomID: 2, CheckIn: mustDate(t, "2024-01-10"), CheckOut: mustDate(t, "2024-01-15")},
			}, nil)

		res := svc.NextAvailableDates(context.Background())

		assert.Equal(t, map[int]string{2: "2024-01-16"}, res)
	})
}

func TestRoomService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockBookings, newTestConfig(), mockCache, mockOtel, nil)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Room{
			{ID: "a", RoomID: 1, TotalRooms: 6},
			{ID: "b", RoomID: 2, TotalRooms: 4},
		}, nil)

	mockBookings.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(3, nil)

	res, err := svc.Stats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 10, res.TotalRooms)
	assert.Equal(t, 3, res.OccupiedRooms)
	assert.Equal(t, 30, res.OccupancyRate)
}
