package model

import "hostal/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID                = "id"
	FieldEmail             = "email"
	FieldPassword          = "password"
	FieldRole              = "role"
	FieldBusinessID        = "business_id"
	FieldFullName          = "full_name"
	FieldProfileImage      = "profile_image"
	FieldIsVerified        = "is_verified"
	FieldVerificationToken = "verification_token"
	FieldLastLogin         = "last_login"
	FieldActive            = "active"
)

type User struct {
	ID                string  `db:"id"`
	Email             string  `db:"email"`
	Password          string  `db:"password"`
	Role              string  `db:"role"`
	BusinessID        *string `db:"business_id"`
	FullName          *string `db:"full_name"`
	ProfileImage      *string `db:"profile_image"`
	IsVerified        bool    `db:"is_verified"`
	VerificationToken *string `db:"verification_token"`
	LastLogin         *string `db:"last_login"`
	Active            bool    `db:"active"`
	model.Metadata
}
