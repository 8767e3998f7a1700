package model

import (
	"time"

	"luxe/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldRoomID        = "room_id"
	FieldGuestName     = "guest_name"
	FieldGuestEmail    = "guest_email"
	FieldGuestPhone    = "guest_phone"
	FieldGuests        = "guests"
	FieldCheckIn       = "check_in"
	FieldCheckOut      = "check_out"
	FieldPricePerNight = "price_per_night"
	FieldTotalPrice    = "total_price"
	FieldStatus        = "status"
)

const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking is one row of the ledger. A booking occupies every calendar date in
// [check_in, check_out] inclusive: the unit is not sellable again on the
// check-out day of an overlapping stay. Occupancy counting and availability
// both follow this closed-closed convention.
type Booking struct {
	ID            string    `db:"id"`
	RoomID        int       `db:"room_id"`
	GuestName     string    `db:"guest_name"`
	GuestEmail    string    `db:"guest_email"`
	GuestPhone    string    `db:"guest_phone"`
	Guests        int       `db:"guests"`
	CheckIn       time.Time `db:"check_in"`
	CheckOut      time.Time `db:"check_out"`
	PricePerNight float64   `db:"price_per_night"`
	TotalPrice    float64   `db:"total_price"`
	Status        string    `db:"status"`
	model.Metadata
}

// OccupiesDate reports whether the booking holds a unit on the given calendar day.
func (b *Booking) OccupiesDate(day time.Time) bool {
	d := truncateToDay(day)

	return !d.Before(truncateToDay(b.CheckIn)) && !d.After(truncateToDay(b.CheckOut))
}

// Overlaps reports whether the booking intersects the closed date range
// [checkIn, checkOut].
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return !truncateToDay(b.CheckIn).After(truncateToDay(checkOut)) &&
		!truncateToDay(b.CheckOut).Before(truncateToDay(checkIn))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
