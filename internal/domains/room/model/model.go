package model

import (
	"hostal/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID            = "id"
	FieldBusinessID    = "business_id"
	FieldNumber        = "number"
	FieldFloor         = "floor"
	FieldRoomType      = "room_type"
	FieldCapacity      = "capacity"
	FieldPricePerNight = "price_per_night"
	FieldStatus        = "status"
)

const (
	StatusAvailable   = "available"
	StatusOccupied    = "occupied"
	StatusCleaning    = "cleaning"
	StatusMaintenance = "maintenance"
	StatusReserved    = "reserved"
)

type Room struct {
	ID            string  `db:"id"`
	BusinessID    string  `db:"business_id"`
	Number        string  `db:"number"`
	Floor         int     `db:"floor"`
	RoomType      string  `db:"room_type"`
	Capacity      int     `db:"capacity"`
	PricePerNight float64 `db:"price_per_night"`
	Status        string  `db:"status"`
	model.Metadata
}
