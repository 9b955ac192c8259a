package model

import (
	"time"

	"hostal/shared/model"
)

const (
	TableName  = "qr_tokens"
	EntityName = "qr_token"

	FieldID         = "id"
	FieldBusinessID = "business_id"
	FieldStaffID    = "staff_id"
	FieldToken      = "token"
	FieldExpiresAt  = "expires_at"
	FieldUsedAt     = "used_at"
)

type QRToken struct {
	ID         string     `db:"id"`
	BusinessID string     `db:"business_id"`
	StaffID    string     `db:"staff_id"`
	Token      string     `db:"token"`
	ExpiresAt  time.Time  `db:"expires_at"`
	UsedAt     *time.Time `db:"used_at"`
	model.Metadata
}
