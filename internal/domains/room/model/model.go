package model

import (
	"github.com/jmoiron/sqlx/types"

	"luxe/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomID      = "room_id"
	FieldType        = "type"
	FieldBasePrice   = "base_price"
	FieldTotalRooms  = "total_rooms"
	FieldDescription = "description"
	FieldAmenities   = "amenities"
	FieldCapacity    = "capacity"
	FieldImage       = "image"
)

// Room is one catalog entry. RoomID is the small stable key the pricing
// pipeline works with; ID is the storage primary key.
type Room struct {
	ID          string         `db:"id"`
	RoomID      int            `db:"room_id"`
	Type        string         `db:"type"`
	BasePrice   float64        `db:"base_price"`
	TotalRooms  int            `db:"total_rooms"`
	Description string         `db:"description"`
	Amenities   types.JSONText `db:"amenities"`
	Capacity    int            `db:"capacity"`
	Image       string         `db:"image"`
	model.Metadata
}
