package dto

import (
	"github.com/google/uuid"

	"hostal/internal/domains/housekeeping/model"
	"hostal/shared"
	gDto "hostal/shared/dto"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

type CreateTaskRequest struct {
	BusinessID       string   `json:"business_id"       validate:"required,uuid"`
	RoomID           string   `json:"room_id"           validate:"required,uuid"`
	ReservationID    string   `json:"reservation_id"    validate:"omitempty,uuid"`
	TaskType         string   `json:"task_type"         validate:"required,oneof=checkout_cleaning maintenance inspection"`
	Priority         string   `json:"priority"          validate:"omitempty,oneof=low medium high urgent"`
	AssignedTo       string   `json:"assigned_to"       validate:"omitempty,uuid"`
	EstimatedMinutes int      `json:"estimated_minutes" validate:"omitempty,min=5,max=480"`
	Checklist        []string `json:"checklist"         validate:"omitempty,dive,max=200"`
	Notes            string   `json:"notes"             validate:"omitempty,max=500"`
}

func (c *CreateTaskRequest) ToModel(user string) model.Task {
	var reservationID, assignedTo, notes *string
	if c.ReservationID != "" {
		reservationID = &c.ReservationID
	}

	if c.AssignedTo != "" {
		assignedTo = &c.AssignedTo
	}

	if c.Notes != "" {
		notes = &c.Notes
	}

	priority := c.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}

	minutes := c.EstimatedMinutes
	if minutes == 0 {
		minutes = 30
	}

	checklist := make(model.Checklist, len(c.Checklist))
	for i, description := range c.Checklist {
		checklist[i] = model.ChecklistItem{Description: description}
	}

	return model.Task{
		ID:               uuid.NewString(),
		BusinessID:       c.BusinessID,
		RoomID:           c.RoomID,
		ReservationID:    reservationID,
		TaskType:         c.TaskType,
		Priority:         priority,
		Status:           model.StatusPending,
		AssignedTo:       assignedTo,
		EstimatedMinutes: minutes,
		Checklist:        checklist,
		Notes:            notes,
		Metadata:         gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateTaskRequest struct {
	Priority         string `db:"priority"          json:"priority"          validate:"omitempty,oneof=low medium high urgent"`
	Status           string `db:"status"            json:"status"            validate:"omitempty,oneof=pending in_progress completed cancelled"`
	AssignedTo       string `db:"assigned_to"       json:"assigned_to"       validate:"omitempty,uuid"`
	EstimatedMinutes int    `db:"estimated_minutes" json:"estimated_minutes" validate:"omitempty,min=5,max=480"`
	Notes            string `db:"notes"             json:"notes"             validate:"omitempty,max=500"`
}

type UpdateChecklistItemRequest struct {
	Completed bool `json:"completed"`
}

type ChecklistItemResponse struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

type TaskResponse struct {
	ID               string                  `json:"id"`
	BusinessID       string                  `json:"business_id"`
	RoomID           string                  `json:"room_id"`
	ReservationID    string                  `json:"reservation_id,omitempty"`
	TaskType         string                  `json:"task_type"`
	Priority         string                  `json:"priority"`
	Status           string                  `json:"status"`
	AssignedTo       string                  `json:"assigned_to,omitempty"`
	EstimatedMinutes int                     `json:"estimated_minutes"`
	Checklist        []ChecklistItemResponse `json:"checklist"`
	Notes            string                  `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(mod model.Task) {
	r.ID = mod.ID
	r.BusinessID = mod.BusinessID
	r.RoomID = mod.RoomID

	if mod.ReservationID != nil {
		r.ReservationID = *mod.ReservationID
	}

	r.TaskType = mod.TaskType
	r.Priority = mod.Priority
	r.Status = mod.Status

	if mod.AssignedTo != nil {
		r.AssignedTo = *mod.AssignedTo
	}

	r.EstimatedMinutes = mod.EstimatedMinutes

	r.Checklist = make([]ChecklistItemResponse, len(mod.Checklist))
	for i, item := range mod.Checklist {
		r.Checklist[i] = ChecklistItemResponse{
			Description: item.Description,
			Completed:   item.Completed,
		}
	}

	if mod.Notes != nil {
		r.Notes = *mod.Notes
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.Task, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}

type GenerateTasksRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
}

type GenerateTaskFailure struct {
	ReservationID string `json:"reservation_id"`
	Reason        string `json:"reason"`
}

type GenerateTasksResponse struct {
	Generated int                   `json:"generated"`
	Skipped   int                   `json:"skipped"`
	Failed    int                   `json:"failed"`
	Tasks     []TaskResponse        `json:"tasks"`
	Failures  []GenerateTaskFailure `json:"failures,omitempty"`
}
