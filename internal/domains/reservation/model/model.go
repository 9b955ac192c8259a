package model

import (
	"time"

	"hostal/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID              = "id"
	FieldBusinessID      = "business_id"
	FieldRoomID          = "room_id"
	FieldGuestName       = "guest_name"
	FieldGuestEmail      = "guest_email"
	FieldGuestPhone      = "guest_phone"
	FieldGuestCount      = "guest_count"
	FieldCheckInDate     = "check_in_date"
	FieldCheckInTime     = "check_in_time"
	FieldCheckOutDate    = "check_out_date"
	FieldCheckOutTime    = "check_out_time"
	FieldTotalAmount     = "total_amount"
	FieldSpecialRequests = "special_requests"
	FieldStatus          = "status"
)

const (
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

type Reservation struct {
	ID              string    `db:"id"`
	BusinessID      string    `db:"business_id"`
	RoomID          string    `db:"room_id"`
	GuestName       string    `db:"guest_name"`
	GuestEmail      string    `db:"guest_email"`
	GuestPhone      *string   `db:"guest_phone"`
	GuestCount      int       `db:"guest_count"`
	CheckInDate     time.Time `db:"check_in_date"`
	CheckInTime     string    `db:"check_in_time"`
	CheckOutDate    time.Time `db:"check_out_date"`
	CheckOutTime    string    `db:"check_out_time"`
	TotalAmount     float64   `db:"total_amount"`
	SpecialRequests *string   `db:"special_requests"`
	Status          string    `db:"status"`
	model.Metadata
}

// EffectiveCheckInTime resolves the reservation check-in time, falling back to the
// business default when the row has none.
func (r *Reservation) EffectiveCheckInTime(businessDefault string) string {
	if r.CheckInTime != "" {
		return r.CheckInTime
	}

	return businessDefault
}

// EffectiveCheckOutTime resolves the reservation check-out time, falling back to the
// business default when the row has none.
func (r *Reservation) EffectiveCheckOutTime(businessDefault string) string {
	if r.CheckOutTime != "" {
		return r.CheckOutTime
	}

	return businessDefault
}
