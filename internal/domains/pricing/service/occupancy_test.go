package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	bookingModel "luxe/internal/domains/booking/model"
	"luxe/internal/domains/pricing/service"
	"luxe/shared/constant"
)

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	parsed, err := time.Parse(constant.StayDateFormat, value)
	assert.NoError(t, err)

	return parsed
}

func TestEstimateOccupancy(t *testing.T) {
	tests := []struct {
		name       string
		checkIn    string
		checkOut   string
		totalUnits int
		bookings   []bookingModel.Booking
		want       float64
	}{
		{
			name:       "no units falls back to default",
			checkIn:    "2024-01-10",
			checkOut:   "2024-01-12",
			totalUnits: 0,
			want:       0.6,
		},
		{
			name:       "empty window falls back to default",
			checkIn:    "2024-01-10",
			checkOut:   "2024-01-10",
			totalUnits: 4,
			want:       0.6,
		},
		{
			name:       "weekday stay averages booked share",
			checkIn:    "2024-01-10",
			checkOut:   "2024-01-12",
			totalUnits: 4,
			bookings: []bookingModel.Booking{
				{RoomID: 1, CheckIn: mustTime("2024-01-09"), CheckOut: mustTime("2024-01-12")},
			},
			want: 0.25,
		},
		{
			name:       "checkout day still holds the unit",
			checkIn:    "2024-01-10",
			checkOut:   "2024-01-11",
			totalUnits: 2,
			bookings: []bookingModel.Booking{
				{RoomID: 1, CheckIn: mustTime("2024-01-08"), CheckOut: mustTime("2024-01-10")},
			},
			want: 0.5,
		},
		{
			name:       "weekend boost is capped at full occupancy",
			checkIn:    "2024-01-13",
			checkOut:   "2024-01-14",
			totalUnits: 1,
			bookings: []bookingModel.Booking{
				{RoomID: 1, CheckIn: mustTime("2024-01-13"), CheckOut: mustTime("2024-01-15")},
			},
			want: 1.0,
		},
		{
			name:       "empty ledger on a weekend only gets the boost",
			checkIn:    "2024-01-13",
			checkOut:   "2024-01-14",
			totalUnits: 5,
			want:       0.2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.EstimateOccupancy(mustDate(t, tt.checkIn), mustDate(t, tt.checkOut), tt.totalUnits, tt.bookings, 0.6)

			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestEstimateOccupancy_StaysWithinBounds(t *testing.T) {
	bookings := []bookingModel.Booking{
		{RoomID: 1, CheckIn: mustTime("2024-01-01"), CheckOut: mustTime("2024-02-01")},
		{RoomID: 2, CheckIn: mustTime("2024-01-01"), CheckOut: mustTime("2024-02-01")},
		{RoomID: 3, CheckIn: mustTime("2024-01-01"), CheckOut: mustTime("2024-02-01")},
	}

	got := service.EstimateOccupancy(mustTime("2024-01-10"), mustTime("2024-01-20"), 3, bookings, 0.6)

	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
}

func mustTime(value string) time.Time {
	parsed, _ := time.Parse(constant.StayDateFormat, value)

	return parsed
}
