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
	"luxe/internal/domains/booking/model"
	"luxe/internal/domains/booking/model/dto"
	"luxe/internal/domains/booking/service"
	roomMocks "luxe/internal/domains/room/mocks"
	roomModel "luxe/internal/domains/room/model"
	cacheMocks "luxe/shared/cache/mocks"
	"luxe/shared/constant"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return cfg
}

func validRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		RoomID:        1,
		GuestName:     "Arun Kumar",
		GuestEmail:    "arun@example.com",
		GuestPhone:    "+91 98400 00000",
		Guests:        2,
		CheckIn:       "2024-02-10",
		CheckOut:      "2024-02-13",
		PricePerNight: 2500,
	}
}

func TestBookingService_Create(t *testing.T) {
	standardRoom := roomModel.Room{
		ID:         "a",
		RoomID:     1,
		Type:       "Standard Single",
		Capacity:   2,
		TotalRooms: 3,
	}

	tests := []struct {
		name      string
		req       func() dto.CreateBookingRequest
		setupMock func(mockRooms *roomMocks.MockRoom, mockRepo *bookingMocks.MockBooking)
		wantErr   string
	}{
		{
			name: "success",
			req:  validRequest,
			setupMock: func(mockRooms *roomMocks.MockRoom, mockRepo *bookingMocks.MockBooking) {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardRoom, nil)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, 1, booking.RoomID)
						assert.Equal(t, model.StatusConfirmed, booking.Status)
						assert.InDelta(t, 7500, booking.TotalPrice, 0.001)

						return nil
					})
			},
		},
		{
			name: "unknown room",
			req:  validRequest,
			setupMock: func(mockRooms *roomMocks.MockRoom, mockRepo *bookingMocks.MockBooking) {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr: "room does not exist",
		},
		{
			name: "too many guests",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.Guests = 5

				return req
			},
			setupMock: func(mockRooms *roomMocks.MockRoom, mockRepo *bookingMocks.MockBooking) {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardRoom, nil)
			},
			wantErr: "room holds at most 2 guests",
		},
		{
			name: "checkout before checkin",
			req: func() dto.CreateBookingRequest {
				req := validRequest()
				req.CheckIn = "2024-02-13"
				req.CheckOut = "2024-02-10"

				return req
			},
			setupMock: func(mockRooms *roomMocks.MockRoom, mockRepo *bookingMocks.MockBooking) {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardRoom, nil)
			},
			wantErr: "check_out must not precede check_in",
		},
		{
			name: "every unit already held",
			req:  validRequest,
			setupMock: func(mockRooms *roomMocks.MockRoom, mockRepo *bookingMocks.MockBooking) {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardRoom, nil)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(3, nil)
			},
			wantErr: "no units available for the selected dates",
		},
		{
			name: "overlap count failure",
			req:  validRequest,
			setupMock: func(mockRooms *roomMocks.MockRoom, mockRepo *bookingMocks.MockBooking) {
				mockRooms.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(standardRoom, nil)

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: "failed to count overlapping bookings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := bookingMocks.NewMockBooking(ctrl)
			mockRooms := roomMocks.NewMockRoom(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockOtel := mocks.NewOtel()

			mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			tt.setupMock(mockRooms, mockRepo)

			svc := service.New(mockRepo, mockRooms, newTestConfig(), mockCache, mockOtel)

			err := svc.Create(context.Background(), tt.req())

			if tt.wantErr != constant.Empty {
				assert.ErrorContains(t, err, tt.wantErr)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockRooms, newTestConfig(), mockCache, mockOtel)

	t.Run("found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		checkIn, _ := time.Parse(constant.StayDateFormat, "2024-02-10")
		checkOut, _ := time.Parse(constant.StayDateFormat, "2024-02-13")

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{
				ID:       "b1",
				RoomID:   1,
				CheckIn:  checkIn,
				CheckOut: checkOut,
				Status:   model.StatusConfirmed,
			}, nil)

		res, err := svc.Get(context.Background(), "b1")

		assert.NoError(t, err)
		assert.Equal(t, "b1", res.ID)
		assert.Equal(t, "2024-02-10", res.CheckIn)
		assert.Equal(t, "2024-02-13", res.CheckOut)
	})

	t.Run("not found", func(t *testing.T) {
		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Booking{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.ErrorContains(t, err, "booking not found")
	})
}

func TestBookingService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockRooms, newTestConfig(), mockCache, mockOtel)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		mockRepo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), "b1"))
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		assert.ErrorContains(t, svc.Delete(context.Background(), "missing"), "booking not found")
	})
}
