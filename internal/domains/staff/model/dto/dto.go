package dto

import (
	"github.com/google/uuid"

	"hostal/internal/domains/staff/model"
	"hostal/shared"
	gDto "hostal/shared/dto"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

type CreateStaffRequest struct {
	BusinessID string `json:"business_id" validate:"required,uuid"`
	Name       string `json:"name"        validate:"required,max=150"`
	Email      string `json:"email"       validate:"required,email,max=100"`
	Phone      string `json:"phone"       validate:"omitempty,max=20"`
	Role       string `json:"role"        validate:"required,oneof=housekeeping reception maintenance manager"`
}

func (c *CreateStaffRequest) ToModel(user string) model.Staff {
	var phone *string
	if c.Phone != "" {
		phone = &c.Phone
	}

	return model.Staff{
		ID:         uuid.NewString(),
		BusinessID: c.BusinessID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      phone,
		Role:       c.Role,
		Active:     true,
		Metadata:   gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateStaffRequest struct {
	Name   string `db:"name"   json:"name"             validate:"omitempty,max=150"`
	Email  string `db:"email"  json:"email"            validate:"omitempty,email,max=100"`
	Phone  string `db:"phone"  json:"phone"            validate:"omitempty,max=20"`
	Role   string `db:"role"   json:"role"             validate:"omitempty,oneof=housekeeping reception maintenance manager"`
	Active *bool  `db:"active" json:"active,omitempty" validate:"omitempty"`
}

type StaffResponse struct {
	ID         string `json:"id"`
	BusinessID string `json:"business_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Role       string `json:"role"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(mod model.Staff) {
	r.ID = mod.ID
	r.BusinessID = mod.BusinessID
	r.Name = mod.Name
	r.Email = mod.Email

	if mod.Phone != nil {
		r.Phone = *mod.Phone
	}

	r.Role = mod.Role
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
