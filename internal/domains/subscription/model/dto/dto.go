package dto

import (
	"time"

	"github.com/google/uuid"

	"hostal/internal/domains/subscription/model"
	"hostal/shared"
	gDto "hostal/shared/dto"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

type CreateSubscriptionRequest struct {
	UserID     string `json:"user_id"     validate:"required,uuid"`
	BusinessID string `json:"business_id" validate:"omitempty,uuid"`
	PlanCode   string `json:"plan_code"   validate:"required,max=50"`
}

func (c *CreateSubscriptionRequest) ToModel(plan model.Plan, user string) model.Subscription {
	var businessID *string
	if c.BusinessID != "" {
		businessID = &c.BusinessID
	}

	now := timezone.Now()
	trialEndsAt := now.AddDate(0, 0, plan.TrialDays)

	return model.Subscription{
		ID:          uuid.NewString(),
		UserID:      c.UserID,
		BusinessID:  businessID,
		PlanID:      plan.ID,
		Status:      model.StatusTrial,
		TrialEndsAt: &trialEndsAt,
		Metadata:    gModel.NewMetadata(now, user),
	}
}

type UpgradeSubscriptionRequest struct {
	PlanCode string `json:"plan_code" validate:"required,max=50"`
}

type PlanResponse struct {
	ID           string  `json:"id"`
	Code         string  `json:"code"`
	Name         string  `json:"name"`
	Level        string  `json:"level"`
	MaxRooms     int     `json:"max_rooms"`
	PriceMonthly float64 `json:"price_monthly"`
	TrialDays    int     `json:"trial_days"`
}

func (r *PlanResponse) FromModel(mod model.Plan) {
	r.ID = mod.ID
	r.Code = mod.Code
	r.Name = mod.Name
	r.Level = mod.Level
	r.MaxRooms = mod.MaxRooms
	r.PriceMonthly = mod.PriceMonthly
	r.TrialDays = mod.TrialDays
}

type GetPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

func (r *GetPlansResponse) FromModels(models []model.Plan) {
	r.Plans = make([]PlanResponse, len(models))
	for i, mod := range models {
		r.Plans[i].FromModel(mod)
	}
}

type SubscriptionResponse struct {
	ID                  string `json:"id"`
	UserID              string `json:"user_id"`
	BusinessID          string `json:"business_id,omitempty"`
	PlanID              string `json:"plan_id"`
	Status              string `json:"status"`
	TrialEndsAt         string `json:"trial_ends_at,omitempty"`
	CurrentPeriodEndsAt string `json:"current_period_ends_at,omitempty"`
	gDto.Metadata
}

func (r *SubscriptionResponse) FromModel(mod model.Subscription) {
	r.ID = mod.ID
	r.UserID = mod.UserID

	if mod.BusinessID != nil {
		r.BusinessID = *mod.BusinessID
	}

	r.PlanID = mod.PlanID
	r.Status = mod.Status

	if mod.TrialEndsAt != nil {
		r.TrialEndsAt = mod.TrialEndsAt.Format(time.RFC3339)
	}

	if mod.CurrentPeriodEndsAt != nil {
		r.CurrentPeriodEndsAt = mod.CurrentPeriodEndsAt.Format(time.RFC3339)
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetSubscriptionsResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetSubscriptionsResponse) FromModels(models []model.Subscription, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Subscriptions = make([]SubscriptionResponse, len(models))
	for i, mod := range models {
		r.Subscriptions[i].FromModel(mod)
	}
}

type ExpireSweepResponse struct {
	Expired int `json:"expired"`
}
