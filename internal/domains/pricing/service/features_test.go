package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"luxe/internal/domains/pricing/model"
	"luxe/internal/domains/pricing/service"
)

func TestBuildFeatures(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		roomID   int
		holidays model.HolidaySet
		want     model.FeatureVector
	}{
		{
			name:     "festival weekend stay",
			checkIn:  "2024-01-14",
			checkOut: "2024-01-16",
			roomID:   1,
			holidays: model.HolidaySet{"2024-01-15": "Pongal"},
			want: model.FeatureVector{
				Year:          2024,
				Day:           14,
				Month:         1,
				WeekendNights: 1,
				WeekNights:    1,
				RoomType:      0,
				IsHoliday:     1,
			},
		},
		{
			name:     "plain midweek stay",
			checkIn:  "2024-03-05",
			checkOut: "2024-03-08",
			roomID:   3,
			holidays: model.HolidaySet{},
			want: model.FeatureVector{
				Year:          2024,
				Day:           5,
				Month:         3,
				WeekendNights: 0,
				WeekNights:    3,
				RoomType:      2,
				IsHoliday:     0,
			},
		},
		{
			name:     "holiday on departure day is not a stay night",
			checkIn:  "2024-03-05",
			checkOut: "2024-03-07",
			roomID:   2,
			holidays: model.HolidaySet{"2024-03-07": "Festival"},
			want: model.FeatureVector{
				Year:          2024,
				Day:           5,
				Month:         3,
				WeekendNights: 0,
				WeekNights:    2,
				RoomType:      1,
				IsHoliday:     0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.BuildFeatures(mustDate(t, tt.checkIn), mustDate(t, tt.checkOut), tt.roomID, tt.holidays)

			assert.Equal(t, tt.want, got)
		})
	}
}
