package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostal/config"
	mailerMocks "hostal/infras/mailer/mocks"
	"hostal/infras/otel/mocks"
	businessMocks "hostal/internal/domains/business/mocks"
	businessModel "hostal/internal/domains/business/model"
	reservationMocks "hostal/internal/domains/reservation/mocks"
	"hostal/internal/domains/reservation/model"
	"hostal/internal/domains/reservation/model/dto"
	"hostal/internal/domains/reservation/service"
	roomMocks "hostal/internal/domains/room/mocks"
	roomModel "hostal/internal/domains/room/model"
	cacheMocks "hostal/shared/cache/mocks"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
)

type reservationFixture struct {
	svc              service.Reservation
	mockRepo         *reservationMocks.MockReservation
	mockRoomRepo     *roomMocks.MockRoom
	mockBusinessRepo *businessMocks.MockBusiness
	mockMailer       *mailerMocks.MockMailer
	mockCache        *cacheMocks.MockRedisCache
}

func newReservationFixture(t *testing.T) reservationFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := reservationFixture{
		mockRepo:         reservationMocks.NewMockReservation(ctrl),
		mockRoomRepo:     roomMocks.NewMockRoom(ctrl),
		mockBusinessRepo: businessMocks.NewMockBusiness(ctrl),
		mockMailer:       mailerMocks.NewMockMailer(ctrl),
		mockCache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Invitation mail and cache invalidation run on detached goroutines.
	f.mockMailer.EXPECT().Send(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.mockRepo, f.mockRoomRepo, f.mockBusinessRepo, f.mockMailer, &config.Config{}, f.mockCache, mocks.NewOtel())

	return f
}

func reservationCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:         "room-id-123",
		BusinessID: "business-id-123",
		Number:     "101",
		Status:     roomModel.StatusAvailable,
	}
}

func confirmedReservation() model.Reservation {
	return model.Reservation{
		ID:           "reservation-id-123",
		BusinessID:   "business-id-123",
		RoomID:       "room-id-123",
		GuestName:    "Ana Rojas",
		GuestEmail:   "ana@example.com",
		GuestCount:   2,
		CheckInDate:  time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC),
		TotalAmount:  90000,
		Status:       model.StatusConfirmed,
	}
}

func TestReservationService_Create(t *testing.T) {
	validReq := dto.CreateReservationRequest{
		BusinessID:   "business-id-123",
		RoomID:       "room-id-123",
		GuestName:    "Ana Rojas",
		GuestEmail:   "ana@example.com",
		GuestCount:   2,
		CheckInDate:  "2026-03-01",
		CheckOutDate: "2026-03-03",
		TotalAmount:  90000,
	}

	t.Run("success", func(t *testing.T) {
		f := newReservationFixture(t)

		f.mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
				assert.Equal(t, model.StatusConfirmed, reservation.Status)
				assert.Equal(t, "Ana Rojas", reservation.GuestName)

				return nil
			})
		f.mockRoomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, roomModel.StatusReserved, fields[roomModel.FieldStatus])

				return nil
			})

		res, err := f.svc.Create(reservationCtx(), validReq)

		assert.NoError(t, err)
		assert.NotEmpty(t, res.ID)
		assert.Equal(t, model.StatusConfirmed, res.Status)
	})

	t.Run("room not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(roomModel.Room{}, nil)

		_, err := f.svc.Create(reservationCtx(), validReq)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "room not found")
	})

	t.Run("room belongs to another business", func(t *testing.T) {
		f := newReservationFixture(t)

		room := availableRoom()
		room.BusinessID = "other-business"
		f.mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

		_, err := f.svc.Create(reservationCtx(), validReq)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "room not found")
	})

	t.Run("occupied room rejected", func(t *testing.T) {
		f := newReservationFixture(t)

		room := availableRoom()
		room.Status = roomModel.StatusOccupied
		f.mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

		_, err := f.svc.Create(reservationCtx(), validReq)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "room is not available")
	})

	t.Run("check-out before check-in rejected", func(t *testing.T) {
		f := newReservationFixture(t)

		f.mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)

		req := validReq
		req.CheckInDate = "2026-03-03"
		req.CheckOutDate = "2026-03-01"

		_, err := f.svc.Create(reservationCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "check-out date cannot precede check-in date")
	})

	t.Run("insert error", func(t *testing.T) {
		f := newReservationFixture(t)

		f.mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(availableRoom(), nil)
		f.mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		_, err := f.svc.Create(reservationCtx(), validReq)

		assert.Error(t, err)
	})
}

func TestReservationService_CheckIn(t *testing.T) {
	t.Run("success moves room to occupied", func(t *testing.T) {
		f := newReservationFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmedReservation(), nil)
		f.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCheckedIn, fields[model.FieldStatus])

				return nil
			})
		f.mockRoomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, roomModel.StatusOccupied, fields[roomModel.FieldStatus])

				return nil
			})

		err := f.svc.CheckIn(reservationCtx(), "reservation-id-123")

		assert.NoError(t, err)
	})

	t.Run("already checked in", func(t *testing.T) {
		f := newReservationFixture(t)

		reservation := confirmedReservation()
		reservation.Status = model.StatusCheckedIn
		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

		err := f.svc.CheckIn(reservationCtx(), "reservation-id-123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only confirmed reservations can be checked in")
	})

	t.Run("reservation not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Reservation{}, nil)

		err := f.svc.CheckIn(reservationCtx(), "missing-id")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "reservation not found")
	})
}

func TestReservationService_CheckOut(t *testing.T) {
	t.Run("success queues room for cleaning", func(t *testing.T) {
		f := newReservationFixture(t)

		reservation := confirmedReservation()
		reservation.Status = model.StatusCheckedIn
		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)
		f.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCheckedOut, fields[model.FieldStatus])

				return nil
			})
		f.mockRoomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, roomModel.StatusCleaning, fields[roomModel.FieldStatus])

				return nil
			})

		err := f.svc.CheckOut(reservationCtx(), "reservation-id-123")

		assert.NoError(t, err)
	})

	t.Run("not checked in yet", func(t *testing.T) {
		f := newReservationFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmedReservation(), nil)

		err := f.svc.CheckOut(reservationCtx(), "reservation-id-123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only checked-in reservations can be checked out")
	})
}

func TestReservationService_Cancel(t *testing.T) {
	t.Run("success releases the room", func(t *testing.T) {
		f := newReservationFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(confirmedReservation(), nil)
		f.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

				return nil
			})
		f.mockRoomRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, roomModel.StatusAvailable, fields[roomModel.FieldStatus])

				return nil
			})

		err := f.svc.Cancel(reservationCtx(), "reservation-id-123")

		assert.NoError(t, err)
	})

	t.Run("checked-in reservation cannot be cancelled", func(t *testing.T) {
		f := newReservationFixture(t)

		reservation := confirmedReservation()
		reservation.Status = model.StatusCheckedIn
		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(reservation, nil)

		err := f.svc.Cancel(reservationCtx(), "reservation-id-123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only confirmed reservations can be cancelled")
	})
}

func TestReservationService_GetAlerts(t *testing.T) {
	business := businessModel.Business{
		ID:           "business-id-123",
		Name:         "Hostal Lima",
		CheckInTime:  "15:00",
		CheckOutTime: "11:00",
	}

	t.Run("surfaces overdue checkouts", func(t *testing.T) {
		f := newReservationFixture(t)

		overdue := confirmedReservation()
		overdue.Status = model.StatusCheckedIn
		overdue.CheckOutDate = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

		f.mockBusinessRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(business, nil)
		f.mockRepo.EXPECT().
			GetOverdueCandidates(gomock.Any(), "business-id-123", gomock.Any()).
			Return([]model.Reservation{overdue}, nil)

		res, err := f.svc.GetAlerts(reservationCtx(), "business-id-123")

		assert.NoError(t, err)
		assert.Equal(t, 1, res.TotalData)
		assert.Equal(t, dto.AlertTypeOverdueCheckOut, res.Alerts[0].AlertType)
	})

	t.Run("business not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.mockBusinessRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(businessModel.Business{}, nil)

		_, err := f.svc.GetAlerts(reservationCtx(), "missing-business")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "business not found")
	})
}

func TestDetectOverdueAlerts(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	baseCheckIn := func() model.Reservation {
		reservation := confirmedReservation()
		reservation.CheckInDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

		return reservation
	}

	t.Run("confirmed reservation past check-in time is flagged", func(t *testing.T) {
		reservation := baseCheckIn()

		alerts := service.DetectOverdueAlerts(now, "11:00", "10:00", []model.Reservation{reservation})

		assert.Len(t, alerts, 1)
		assert.Equal(t, dto.AlertTypeOverdueCheckIn, alerts[0].AlertType)
		assert.Equal(t, dto.AlertSeverityError, alerts[0].Severity)
		assert.Equal(t, reservation.ID, alerts[0].ReservationID)
		assert.Contains(t, alerts[0].Message, "Ana Rojas")
	})

	t.Run("reservation before its scheduled time is not flagged", func(t *testing.T) {
		reservation := baseCheckIn()

		alerts := service.DetectOverdueAlerts(now, "15:00", "11:00", []model.Reservation{reservation})

		assert.Empty(t, alerts)
	})

	t.Run("reservation clock overrides the business default", func(t *testing.T) {
		reservation := baseCheckIn()
		reservation.CheckInTime = "14:00"

		// Default alone would flag it, the per-reservation time keeps it on schedule.
		alerts := service.DetectOverdueAlerts(now, "11:00", "10:00", []model.Reservation{reservation})

		assert.Empty(t, alerts)
	})

	t.Run("checked-in reservation past check-out time is flagged", func(t *testing.T) {
		reservation := baseCheckIn()
		reservation.Status = model.StatusCheckedIn
		reservation.CheckOutDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

		alerts := service.DetectOverdueAlerts(now, "15:00", "11:00", []model.Reservation{reservation})

		assert.Len(t, alerts, 1)
		assert.Equal(t, dto.AlertTypeOverdueCheckOut, alerts[0].AlertType)
	})

	t.Run("one alert per room per alert type", func(t *testing.T) {
		first := baseCheckIn()
		second := baseCheckIn()
		second.ID = "reservation-id-456"

		alerts := service.DetectOverdueAlerts(now, "11:00", "10:00", []model.Reservation{first, second})

		assert.Len(t, alerts, 1)
	})

	t.Run("closed reservations are ignored", func(t *testing.T) {
		reservation := baseCheckIn()
		reservation.Status = model.StatusCancelled

		alerts := service.DetectOverdueAlerts(now, "11:00", "10:00", []model.Reservation{reservation})

		assert.Empty(t, alerts)
	})
}
