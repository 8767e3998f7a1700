package service

import (
	"time"

	"luxe/internal/domains/pricing/model"
	"luxe/shared/constant"
)

// BuildFeatures derives the regression input for one room and stay window.
// Night counts iterate [checkIn, checkOut); the holiday flag is set when any
// night of the stay lands on a holiday.
func BuildFeatures(checkIn, checkOut time.Time, roomID int, holidays model.HolidaySet) model.FeatureVector {
	features := model.FeatureVector{
		Year:     checkIn.Year(),
		Day:      checkIn.Day(),
		Month:    int(checkIn.Month()),
		RoomType: roomID - 1,
	}

	for day := checkIn; day.Before(checkOut); day = day.AddDate(0, 0, 1) {
		if isWeekend(day) {
			features.WeekendNights++
		} else {
			features.WeekNights++
		}

		if holidays.Contains(day.Format(constant.StayDateFormat)) {
			features.IsHoliday = 1
		}
	}

	return features
}
