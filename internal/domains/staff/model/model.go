package model

import (
	"hostal/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID         = "id"
	FieldBusinessID = "business_id"
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPhone      = "phone"
	FieldRole       = "role"
	FieldActive     = "active"
)

type Staff struct {
	ID         string  `db:"id"`
	BusinessID string  `db:"business_id"`
	Name       string  `db:"name"`
	Email      string  `db:"email"`
	Phone      *string `db:"phone"`
	Role       string  `db:"role"`
	Active     bool    `db:"active"`
	model.Metadata
}
