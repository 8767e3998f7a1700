package dto

import (
	"encoding/json"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"

	"luxe/internal/domains/room/model"
	"luxe/shared"
	"luxe/shared/constant"
	gDto "luxe/shared/dto"
	gModel "luxe/shared/model"
	"luxe/shared/timezone"
)

type CreateRoomRequest struct {
	RoomID      int                   `json:"room_id"     validate:"required,gte=1"`
	Type        string                `json:"type"        validate:"required,max=100"`
	BasePrice   float64               `json:"base_price"  validate:"required,gt=0"`
	TotalRooms  int                   `json:"total_rooms" validate:"gte=0"`
	Description string                `json:"description" validate:"omitempty"`
	Amenities   []string              `json:"amenities"   validate:"omitempty"`
	Capacity    int                   `json:"capacity"    validate:"omitempty,gte=1"`
	Image       *multipart.FileHeader `json:"-"           validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreateRoomRequest) ToModel(user, imageURL string) model.Room {
	amenities, err := json.Marshal(c.Amenities)
	if err != nil {
		amenities = []byte("[]")
	}

	return model.Room{
		ID:          uuid.NewString(),
		RoomID:      c.RoomID,
		Type:        c.Type,
		BasePrice:   c.BasePrice,
		TotalRooms:  c.TotalRooms,
		Description: c.Description,
		Amenities:   types.JSONText(amenities),
		Capacity:    c.Capacity,
		Image:       imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Type        string                `db:"type"        json:"type"        validate:"omitempty,max=100"`
	BasePrice   float64               `db:"base_price"  json:"base_price"  validate:"omitempty,gt=0"`
	TotalRooms  int                   `db:"total_rooms" json:"total_rooms" validate:"omitempty,gte=0"`
	Description string                `db:"description" json:"description" validate:"omitempty"`
	Capacity    int                   `db:"capacity"    json:"capacity"    validate:"omitempty,gte=1"`
	Image       *multipart.FileHeader `json:"-"         validate:"omitempty,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
	ImageFile   multipart.File        `json:"-"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	RoomID      int      `json:"room_id"`
	Type        string   `json:"type"`
	BasePrice   float64  `json:"base_price"`
	TotalRooms  int      `json:"total_rooms"`
	Description string   `json:"description"`
	Amenities   []string `json:"amenities"`
	Capacity    int      `json:"capacity"`
	Image       string   `json:"image"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.Type = model.Type
	r.BasePrice = model.BasePrice
	r.TotalRooms = model.TotalRooms
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.Image = model.Image

	if err := json.Unmarshal(model.Amenities, &r.Amenities); err != nil {
		r.Amenities = []string{}
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// RoomAvailabilityResponse is a room plus its open inventory for a stay window.
type RoomAvailabilityResponse struct {
	RoomResponse
	Available     int `json:"available"`
	OccupiedCount int `json:"occupied_count"`
}

type GetRoomAvailabilityResponse struct {
	Rooms []RoomAvailabilityResponse `json:"rooms"`
}

// AvailabilityQuery is the optional stay window for availability listings.
// Both dates or neither must be present.
type AvailabilityQuery struct {
	CheckIn  string `json:"check_in"  validate:"omitempty,staydate"`
	CheckOut string `json:"check_out" validate:"omitempty,staydate"`
}

func (q *AvailabilityQuery) HasRange() bool {
	return q.CheckIn != constant.Empty && q.CheckOut != constant.Empty
}

func (q *AvailabilityQuery) Range() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.StayDateFormat, q.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = time.Parse(constant.StayDateFormat, q.CheckOut)

	return checkIn, checkOut, err
}

// RoomStatsResponse mirrors the front-desk dashboard counters.
type RoomStatsResponse struct {
	TotalRooms    int `json:"total_rooms"`
	OccupiedRooms int `json:"occupied_rooms"`
	OccupancyRate int `json:"occupancy_rate"`
}
