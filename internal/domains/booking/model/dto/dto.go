package dto

import (
	"time"

	"github.com/google/uuid"

	"luxe/internal/domains/booking/model"
	"luxe/shared"
	"luxe/shared/constant"
	gDto "luxe/shared/dto"
	gModel "luxe/shared/model"
	"luxe/shared/timezone"
)

type CreateBookingRequest struct {
	RoomID        int     `json:"room_id"         validate:"required,gte=1"`
	GuestName     string  `json:"guest_name"      validate:"required,max=200"`
	GuestEmail    string  `json:"guest_email"     validate:"required,email"`
	GuestPhone    string  `json:"guest_phone"     validate:"omitempty,max=30"`
	Guests        int     `json:"guests"          validate:"required,gte=1"`
	CheckIn       string  `json:"check_in"        validate:"required,staydate"`
	CheckOut      string  `json:"check_out"       validate:"required,staydate"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	checkIn, err := time.Parse(constant.StayDateFormat, c.CheckIn)
	if err != nil {
		return model.Booking{}, err
	}

	checkOut, err := time.Parse(constant.StayDateFormat, c.CheckOut)
	if err != nil {
		return model.Booking{}, err
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	return model.Booking{
		ID:            uuid.NewString(),
		RoomID:        c.RoomID,
		GuestName:     c.GuestName,
		GuestEmail:    c.GuestEmail,
		GuestPhone:    c.GuestPhone,
		Guests:        c.Guests,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		PricePerNight: c.PricePerNight,
		TotalPrice:    float64(nights) * c.PricePerNight,
		Status:        model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	GuestName  string `db:"guest_name"  json:"guest_name"  validate:"omitempty,max=200"`
	GuestEmail string `db:"guest_email" json:"guest_email" validate:"omitempty,email"`
	GuestPhone string `db:"guest_phone" json:"guest_phone" validate:"omitempty,max=30"`
	Guests     int    `db:"guests"      json:"guests"      validate:"omitempty,gte=1"`
	Status     string `db:"status"      json:"status"      validate:"omitempty,oneof=confirmed cancelled"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	RoomID        int     `json:"room_id"`
	GuestName     string  `json:"guest_name"`
	GuestEmail    string  `json:"guest_email"`
	GuestPhone    string  `json:"guest_phone"`
	Guests        int     `json:"guests"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.RoomID = model.RoomID
	b.GuestName = model.GuestName
	b.GuestEmail = model.GuestEmail
	b.GuestPhone = model.GuestPhone
	b.Guests = model.Guests
	b.CheckIn = model.CheckIn.Format(constant.StayDateFormat)
	b.CheckOut = model.CheckOut.Format(constant.StayDateFormat)
	b.PricePerNight = model.PricePerNight
	b.TotalPrice = model.TotalPrice
	b.Status = model.Status

	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (b *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	b.TotalData = totalData
	b.TotalPage = shared.CalculateTotalPage(totalData, limit)

	b.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		b.Bookings[i].FromModel(mod)
	}
}
