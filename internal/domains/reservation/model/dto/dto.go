package dto

import (
	"time"

	"github.com/google/uuid"

	"hostal/internal/domains/reservation/model"
	"hostal/shared"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

type CreateReservationRequest struct {
	BusinessID      string  `json:"business_id"      validate:"required,uuid"`
	RoomID          string  `json:"room_id"          validate:"required,uuid"`
	GuestName       string  `json:"guest_name"       validate:"required,max=150"`
	GuestEmail      string  `json:"guest_email"      validate:"required,email,max=100"`
	GuestPhone      string  `json:"guest_phone"      validate:"omitempty,max=20"`
	GuestCount      int     `json:"guest_count"      validate:"required,min=1,max=20"`
	CheckInDate     string  `json:"check_in_date"    validate:"required,dateonly"`
	CheckInTime     string  `json:"check_in_time"    validate:"omitempty,clock"`
	CheckOutDate    string  `json:"check_out_date"   validate:"required,dateonly"`
	CheckOutTime    string  `json:"check_out_time"   validate:"omitempty,clock"`
	TotalAmount     float64 `json:"total_amount"     validate:"required,min=0"`
	SpecialRequests string  `json:"special_requests" validate:"omitempty,max=500"`
}

func (c *CreateReservationRequest) ToModel(user string) model.Reservation {
	var phone, requests *string
	if c.GuestPhone != "" {
		phone = &c.GuestPhone
	}

	if c.SpecialRequests != "" {
		requests = &c.SpecialRequests
	}

	checkInDate, _ := time.ParseInLocation(constant.DateOnlyFormat, c.CheckInDate, timezone.Now().Location())
	checkOutDate, _ := time.ParseInLocation(constant.DateOnlyFormat, c.CheckOutDate, timezone.Now().Location())

	return model.Reservation{
		ID:              uuid.NewString(),
		BusinessID:      c.BusinessID,
		RoomID:          c.RoomID,
		GuestName:       c.GuestName,
		GuestEmail:      c.GuestEmail,
		GuestPhone:      phone,
		GuestCount:      c.GuestCount,
		CheckInDate:     checkInDate,
		CheckInTime:     c.CheckInTime,
		CheckOutDate:    checkOutDate,
		CheckOutTime:    c.CheckOutTime,
		TotalAmount:     c.TotalAmount,
		SpecialRequests: requests,
		Status:          model.StatusConfirmed,
		Metadata:        gModel.NewMetadata(timezone.Now(), user),
	}
}

type UpdateReservationRequest struct {
	GuestName       string  `db:"guest_name"       json:"guest_name"       validate:"omitempty,max=150"`
	GuestEmail      string  `db:"guest_email"      json:"guest_email"      validate:"omitempty,email,max=100"`
	GuestPhone      string  `db:"guest_phone"      json:"guest_phone"      validate:"omitempty,max=20"`
	GuestCount      int     `db:"guest_count"      json:"guest_count"      validate:"omitempty,min=1,max=20"`
	CheckInDate     string  `db:"check_in_date"    json:"check_in_date"    validate:"omitempty,dateonly"`
	CheckInTime     string  `db:"check_in_time"    json:"check_in_time"    validate:"omitempty,clock"`
	CheckOutDate    string  `db:"check_out_date"   json:"check_out_date"   validate:"omitempty,dateonly"`
	CheckOutTime    string  `db:"check_out_time"   json:"check_out_time"   validate:"omitempty,clock"`
	TotalAmount     float64 `db:"total_amount"     json:"total_amount"     validate:"omitempty,min=0"`
	SpecialRequests string  `db:"special_requests" json:"special_requests" validate:"omitempty,max=500"`
}

type ReservationResponse struct {
	ID              string  `json:"id"`
	BusinessID      string  `json:"business_id"`
	RoomID          string  `json:"room_id"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	GuestPhone      string  `json:"guest_phone,omitempty"`
	GuestCount      int     `json:"guest_count"`
	CheckInDate     string  `json:"check_in_date"`
	CheckInTime     string  `json:"check_in_time,omitempty"`
	CheckOutDate    string  `json:"check_out_date"`
	CheckOutTime    string  `json:"check_out_time,omitempty"`
	TotalAmount     float64 `json:"total_amount"`
	SpecialRequests string  `json:"special_requests,omitempty"`
	Status          string  `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(mod model.Reservation) {
	r.ID = mod.ID
	r.BusinessID = mod.BusinessID
	r.RoomID = mod.RoomID
	r.GuestName = mod.GuestName
	r.GuestEmail = mod.GuestEmail

	if mod.GuestPhone != nil {
		r.GuestPhone = *mod.GuestPhone
	}

	r.GuestCount = mod.GuestCount
	r.CheckInDate = mod.CheckInDate.Format(constant.DateOnlyFormat)
	r.CheckInTime = mod.CheckInTime
	r.CheckOutDate = mod.CheckOutDate.Format(constant.DateOnlyFormat)
	r.CheckOutTime = mod.CheckOutTime
	r.TotalAmount = mod.TotalAmount

	if mod.SpecialRequests != nil {
		r.SpecialRequests = *mod.SpecialRequests
	}

	r.Status = mod.Status
	r.Metadata.FromModel(mod.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}

const (
	AlertTypeOverdueCheckIn  = "overdue_checkin"
	AlertTypeOverdueCheckOut = "overdue_checkout"
	AlertSeverityError       = "error"
)

type Alert struct {
	ReservationID string `json:"reservation_id"`
	RoomID        string `json:"room_id"`
	AlertType     string `json:"alert_type"`
	Severity      string `json:"severity"`
	GuestName     string `json:"guest_name"`
	ScheduledAt   string `json:"scheduled_at"`
	Message       string `json:"message"`
}

type GetAlertsResponse struct {
	Alerts    []Alert `json:"alerts"`
	TotalData int     `json:"total_data"`
}
