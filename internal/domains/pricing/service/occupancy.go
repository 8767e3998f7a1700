package service

import (
	"math"
	"time"

	bookingModel "luxe/internal/domains/booking/model"
	"luxe/internal/domains/pricing/model"
)

// EstimateOccupancy averages per-night occupancy over [checkIn, checkOut).
// Each confirmed booking holds one unit; a booking occupies every calendar
// date of its stay including the check-out day. Saturday and Sunday nights
// get a demand boost capped at full occupancy. With no sellable units or an
// empty window the estimate degrades to defaultRate.
func EstimateOccupancy(checkIn, checkOut time.Time, totalUnits int, bookings []bookingModel.Booking, defaultRate float64) float64 {
	if totalUnits <= 0 {
		return defaultRate
	}

	nights := nightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return defaultRate
	}

	total := 0.0

	for day := checkIn; day.Before(checkOut); day = day.AddDate(0, 0, 1) {
		active := 0

		for i := range bookings {
			if bookings[i].OccupiesDate(day) {
				active++
			}
		}

		rate := float64(active) / float64(totalUnits)

		if isWeekend(day) {
			rate = math.Min(1.0, rate+model.WeekendOccupancyBoost)
		}

		total += rate
	}

	return total / float64(nights)
}

func nightsBetween(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn).Hours() / 24)
}

func isWeekend(day time.Time) bool {
	wd := day.Weekday()

	return wd == time.Saturday || wd == time.Sunday
}
