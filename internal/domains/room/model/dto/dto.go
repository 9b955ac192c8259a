package dto

import (
	"github.com/google/uuid"

	"hostal/internal/domains/room/model"
	"hostal/shared"
	gDto "hostal/shared/dto"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

type CreateRoomRequest struct {
	BusinessID    string  `json:"business_id"     validate:"required,uuid"`
	Number        string  `json:"number"          validate:"required,max=10"`
	Floor         int     `json:"floor"           validate:"omitempty,gte=0"`
	RoomType      string  `json:"room_type"       validate:"required,max=50"`
	Capacity      int     `json:"capacity"        validate:"required,gte=1,lte=20"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gte=0"`
	Status        string  `json:"status"          validate:"omitempty,oneof=available occupied cleaning maintenance reserved"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Room{
		ID:            uuid.NewString(),
		BusinessID:    c.BusinessID,
		Number:        c.Number,
		Floor:         c.Floor,
		RoomType:      c.RoomType,
		Capacity:      c.Capacity,
		PricePerNight: c.PricePerNight,
		Status:        status,
		Metadata:      gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateRoomRequest struct {
	Number        string  `db:"number"          json:"number"          validate:"omitempty,max=10"`
	Floor         int     `db:"floor"           json:"floor"           validate:"omitempty,gte=0"`
	RoomType      string  `db:"room_type"       json:"room_type"       validate:"omitempty,max=50"`
	Capacity      int     `db:"capacity"        json:"capacity"        validate:"omitempty,gte=1,lte=20"`
	PricePerNight float64 `db:"price_per_night" json:"price_per_night" validate:"omitempty,gte=0"`
	Status        string  `db:"status"          json:"status"          validate:"omitempty,oneof=available occupied cleaning maintenance reserved"`
}

// BulkUpdateRoomsRequest applies one update per room; items fail or succeed
// independently.
type BulkUpdateRoomsRequest struct {
	Items []BulkUpdateRoomItem `json:"items" validate:"required,min=1,max=100,dive"`
}

type BulkUpdateRoomItem struct {
	RoomID string            `json:"room_id" validate:"required,uuid"`
	Update UpdateRoomRequest `json:"update"  validate:"required"`
}

type BulkUpdateRoomResult struct {
	RoomID  string `json:"room_id"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type BulkUpdateRoomsResponse struct {
	Updated int                    `json:"updated"`
	Failed  int                    `json:"failed"`
	Results []BulkUpdateRoomResult `json:"results"`
}

type RoomResponse struct {
	ID            string  `json:"id"`
	BusinessID    string  `json:"business_id"`
	Number        string  `json:"number"`
	Floor         int     `json:"floor"`
	RoomType      string  `json:"room_type"`
	Capacity      int     `json:"capacity"`
	PricePerNight float64 `json:"price_per_night"`
	Status        string  `json:"status"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(mod model.Room) {
	r.ID = mod.ID
	r.BusinessID = mod.BusinessID
	r.Number = mod.Number
	r.Floor = mod.Floor
	r.RoomType = mod.RoomType
	r.Capacity = mod.Capacity
	r.PricePerNight = mod.PricePerNight
	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
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
