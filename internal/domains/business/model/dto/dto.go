package dto

import (
	"github.com/google/uuid"

	"hostal/internal/domains/business/model"
	"hostal/shared"
	gDto "hostal/shared/dto"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

type CreateBusinessRequest struct {
	Name         string `json:"name"           validate:"required,max=150"`
	Rut          string `json:"rut"            validate:"required,max=12"`
	Email        string `json:"email"          validate:"required,email,max=100"`
	Phone        string `json:"phone"          validate:"omitempty,max=20"`
	Address      string `json:"address"        validate:"omitempty,max=250"`
	CheckInTime  string `json:"check_in_time"  validate:"omitempty,clock"`
	CheckOutTime string `json:"check_out_time" validate:"omitempty,clock"`
}

func (c *CreateBusinessRequest) ToModel(user string) model.Business {
	var phone, address *string
	if c.Phone != "" {
		phone = &c.Phone
	}

	if c.Address != "" {
		address = &c.Address
	}

	return model.Business{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Rut:          c.Rut,
		Email:        c.Email,
		Phone:        phone,
		Address:      address,
		CheckInTime:  c.CheckInTime,
		CheckOutTime: c.CheckOutTime,
		Active:       true,
		Metadata:     gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateBusinessRequest struct {
	Name         string `db:"name"           json:"name"           validate:"omitempty,max=150"`
	Email        string `db:"email"          json:"email"          validate:"omitempty,email,max=100"`
	Phone        string `db:"phone"          json:"phone"          validate:"omitempty,max=20"`
	Address      string `db:"address"        json:"address"        validate:"omitempty,max=250"`
	CheckInTime  string `db:"check_in_time"  json:"check_in_time"  validate:"omitempty,clock"`
	CheckOutTime string `db:"check_out_time" json:"check_out_time" validate:"omitempty,clock"`
}

type BusinessResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Rut          string `json:"rut"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	CheckInTime  string `json:"check_in_time"`
	CheckOutTime string `json:"check_out_time"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *BusinessResponse) FromModel(mod model.Business) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Rut = mod.Rut
	r.Email = mod.Email

	if mod.Phone != nil {
		r.Phone = *mod.Phone
	}

	if mod.Address != nil {
		r.Address = *mod.Address
	}

	r.CheckInTime = mod.EffectiveCheckInTime()
	r.CheckOutTime = mod.EffectiveCheckOutTime()
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetBusinessesResponse struct {
	Businesses []BusinessResponse `json:"businesses"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetBusinessesResponse) FromModels(models []model.Business, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Businesses = make([]BusinessResponse, len(models))
	for i, mod := range models {
		r.Businesses[i].FromModel(mod)
	}
}
