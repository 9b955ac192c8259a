package model

import (
	"time"

	"hostal/shared/model"
)

const (
	PlanTableName  = "subscription_plans"
	PlanEntityName = "subscription_plan"

	PlanFieldID           = "id"
	PlanFieldCode         = "code"
	PlanFieldName         = "name"
	PlanFieldLevel        = "level"
	PlanFieldMaxRooms     = "max_rooms"
	PlanFieldPriceMonthly = "price_monthly"
	PlanFieldTrialDays    = "trial_days"
)

const (
	TableName  = "subscriptions"
	EntityName = "subscription"

	FieldID                  = "id"
	FieldUserID              = "user_id"
	FieldBusinessID          = "business_id"
	FieldPlanID              = "plan_id"
	FieldStatus              = "status"
	FieldTrialEndsAt         = "trial_ends_at"
	FieldCurrentPeriodEndsAt = "current_period_ends_at"
)

const (
	LevelBasic      = "basic"
	LevelStandard   = "standard"
	LevelPremium    = "premium"
	LevelEnterprise = "enterprise"

	StatusTrial          = "trial"
	StatusActive         = "active"
	StatusCancelled      = "cancelled"
	StatusExpired        = "expired"
	StatusPendingContact = "pending_contact"
)

type Plan struct {
	ID           string  `db:"id"`
	Code         string  `db:"code"`
	Name         string  `db:"name"`
	Level        string  `db:"level"`
	MaxRooms     int     `db:"max_rooms"`
	PriceMonthly float64 `db:"price_monthly"`
	TrialDays    int     `db:"trial_days"`
	model.Metadata
}

type Subscription struct {
	ID                  string     `db:"id"`
	UserID              string     `db:"user_id"`
	BusinessID          *string    `db:"business_id"`
	PlanID              string     `db:"plan_id"`
	Status              string     `db:"status"`
	TrialEndsAt         *time.Time `db:"trial_ends_at"`
	CurrentPeriodEndsAt *time.Time `db:"current_period_ends_at"`
	model.Metadata
}
