package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"hostal/shared/model"
)

const (
	TableName  = "housekeeping_tasks"
	EntityName = "housekeeping_task"

	FieldID               = "id"
	FieldBusinessID       = "business_id"
	FieldRoomID           = "room_id"
	FieldReservationID    = "reservation_id"
	FieldTaskType         = "task_type"
	FieldPriority         = "priority"
	FieldStatus           = "status"
	FieldAssignedTo       = "assigned_to"
	FieldEstimatedMinutes = "estimated_minutes"
	FieldChecklist        = "checklist"
	FieldNotes            = "notes"
)

const (
	TaskTypeCheckoutCleaning = "checkout_cleaning"
	TaskTypeMaintenance      = "maintenance"
	TaskTypeInspection       = "inspection"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

type ChecklistItem struct {
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Checklist is an ordered list of cleaning steps stored as a JSONB column.
type Checklist []ChecklistItem

func (c Checklist) Value() (driver.Value, error) {
	if c == nil {
		c = Checklist{}
	}

	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checklist: %w", err)
	}

	return data, nil
}

func (c *Checklist) Scan(src any) error {
	if src == nil {
		*c = Checklist{}

		return nil
	}

	var data []byte

	switch value := src.(type) {
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("unsupported checklist source type %T", src)
	}

	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to unmarshal checklist: %w", err)
	}

	return nil
}

type Task struct {
	ID               string    `db:"id"`
	BusinessID       string    `db:"business_id"`
	RoomID           string    `db:"room_id"`
	ReservationID    *string   `db:"reservation_id"`
	TaskType         string    `db:"task_type"`
	Priority         string    `db:"priority"`
	Status           string    `db:"status"`
	AssignedTo       *string   `db:"assigned_to"`
	EstimatedMinutes int       `db:"estimated_minutes"`
	Checklist        Checklist `db:"checklist"`
	Notes            *string   `db:"notes"`
	model.Metadata
}
