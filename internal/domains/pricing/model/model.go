package model

const (
	EntityName = "pricing"
)

// Fallback multipliers and the occupancy thresholds that select them.
const (
	HolidayMultiplier     = 1.5
	WeekendMultiplier     = 1.2
	LowOccupancyDiscount  = 0.9
	HighOccupancyPremium  = 1.2
	LowOccupancyThreshold = 0.5
	HighOccupancyCutoff   = 0.8
)

// WeekendOccupancyBoost is added to a day's occupancy rate on Saturdays and
// Sundays, capped at 1.0.
const WeekendOccupancyBoost = 0.2

// FeatureVector is the fixed-shape numeric input the learned regressor
// consumes. RoomType is zero-based (room_id - 1).
type FeatureVector struct {
	Year          int `json:"year"`
	Day           int `json:"day"`
	Month         int `json:"month"`
	WeekendNights int `json:"weekend_nights"`
	WeekNights    int `json:"week_nights"`
	RoomType      int `json:"room_type"`
	IsHoliday     int `json:"is_holiday"`
}

// HolidaySet maps calendar dates (YYYY-MM-DD) to holiday names.
type HolidaySet map[string]string

// Contains reports whether the given date key is a holiday.
func (h HolidaySet) Contains(date string) bool {
	_, ok := h[date]

	return ok
}
