package model

import (
	"hostal/shared/constant"
	"hostal/shared/model"
)

const (
	TableName  = "businesses"
	EntityName = "business"

	FieldID           = "id"
	FieldName         = "name"
	FieldRut          = "rut"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldAddress      = "address"
	FieldCheckInTime  = "check_in_time"
	FieldCheckOutTime = "check_out_time"
	FieldActive       = "active"
)

type Business struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Rut          string  `db:"rut"`
	Email        string  `db:"email"`
	Phone        *string `db:"phone"`
	Address      *string `db:"address"`
	CheckInTime  string  `db:"check_in_time"`
	CheckOutTime string  `db:"check_out_time"`
	Active       bool    `db:"active"`
	model.Metadata
}

// EffectiveCheckInTime resolves the scheduled check-in time, falling back to the
// property-wide default when the business has not configured one.
func (b *Business) EffectiveCheckInTime() string {
	if b.CheckInTime != "" {
		return b.CheckInTime
	}

	return constant.DefaultCheckInTime
}

// EffectiveCheckOutTime resolves the scheduled check-out time, falling back to the
// property-wide default when the business has not configured one.
func (b *Business) EffectiveCheckOutTime() string {
	if b.CheckOutTime != "" {
		return b.CheckOutTime
	}

	return constant.DefaultCheckOutTime
}
