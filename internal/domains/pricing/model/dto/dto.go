package dto

import (
	"fmt"
	"time"

	"luxe/shared/constant"
	"luxe/shared/failure"
)

// StayQuery is the requested stay window. Dates use the YYYY-MM-DD wire
// format; check_out is exclusive (the departure day is not a night).
type StayQuery struct {
	CheckIn  string `json:"check_in"  validate:"required,staydate"`
	CheckOut string `json:"check_out" validate:"required,staydate"`
}

// Validate parses both dates and enforces ordering and the stay-length cap.
// It must reject before any collaborator is touched.
func (q *StayQuery) Validate(maxStayDays int) (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.StayDateFormat, q.CheckIn)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid date format, use YYYY-MM-DD") // nolint:wrapcheck
	}

	checkOut, err = time.Parse(constant.StayDateFormat, q.CheckOut)
	if err != nil {
		return checkIn, checkOut, failure.BadRequestFromString("invalid date format, use YYYY-MM-DD") // nolint:wrapcheck
	}

	if !checkIn.Before(checkOut) {
		return checkIn, checkOut, failure.BadRequestFromString("check_out must be after check_in") // nolint:wrapcheck
	}

	if int(checkOut.Sub(checkIn).Hours()/24) > maxStayDays {
		return checkIn, checkOut, failure.BadRequestFromString(fmt.Sprintf("date range too large, maximum is %d days", maxStayDays)) // nolint:wrapcheck
	}

	return checkIn, checkOut, nil
}

// RoomQuote is one priced catalog entry. PriceFactors records which pricing
// branch produced the price.
type RoomQuote struct {
	RoomID       int            `json:"room_id"`
	Price        float64        `json:"price"`
	BasePrice    float64        `json:"base_price"`
	PriceFactors map[string]any `json:"price_factors"`
}

type GetQuotesResponse struct {
	Rooms []RoomQuote `json:"rooms"`
}
