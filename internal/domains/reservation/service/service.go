package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"hostal/config"
	"hostal/infras/mailer"
	"hostal/infras/otel"
	bizModel "hostal/internal/domains/business/model"
	bizRepository "hostal/internal/domains/business/repository"
	"hostal/internal/domains/reservation/model"
	"hostal/internal/domains/reservation/model/dto"
	"hostal/internal/domains/reservation/repository"
	roomModel "hostal/internal/domains/room/model"
	roomRepository "hostal/internal/domains/room/repository"
	"hostal/shared"
	"hostal/shared/cache"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/failure"
	"hostal/shared/timezone"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Cancel(ctx context.Context, id string) error
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) error
	GetAlerts(ctx context.Context, businessID string) (dto.GetAlertsResponse, error)
}

type serviceImpl struct {
	repo     repository.Reservation
	roomRepo roomRepository.Room
	bizRepo  bizRepository.Business
	mailer   mailer.Mailer
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Reservation,
	roomRepo roomRepository.Room,
	bizRepo bizRepository.Business,
	mailer mailer.Mailer,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		bizRepo:  bizRepo,
		mailer:   mailer,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	room, err := s.roomRepo.Get(ctx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.ID == constant.Empty || room.BusinessID != req.BusinessID {
		return res, failure.NotFound("room not found") // nolint:wrapcheck
	}

	if room.Status == roomModel.StatusOccupied || room.Status == roomModel.StatusMaintenance {
		return res, failure.Conflict("room is not available for reservation") // nolint:wrapcheck
	}

	if req.CheckOutDate < req.CheckInDate {
		return res, failure.BadRequestFromString("check-out date cannot precede check-in date") // nolint:wrapcheck
	}

	reservation := req.ToModel(user)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return res, fmt.Errorf("failed to create reservation: %w", err)
	}

	roomFields := map[string]any{
		roomModel.FieldStatus:    roomModel.StatusReserved,
		constant.FieldModifiedBy: user,
	}

	if err = s.roomRepo.Update(ctx, roomFields, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to mark room as reserved")

		return res, fmt.Errorf("failed to mark room as reserved: %w", err)
	}

	s.sendInvitation(ctx, reservation, room.Number)
	s.invalidate(ctx, reservation.ID)

	res.FromModel(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReservationRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status == model.StatusCheckedOut || reservation.Status == model.StatusCancelled {
		return failure.Conflict("a closed reservation cannot be modified") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status != model.StatusConfirmed {
		return failure.Conflict("only confirmed reservations can be cancelled") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel reservation")

		return fmt.Errorf("failed to cancel reservation: %w", err)
	}

	if err := s.setRoomStatus(ctx, reservation.RoomID, roomModel.StatusAvailable, user); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status != model.StatusConfirmed {
		return failure.Conflict("only confirmed reservations can be checked in") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        model.StatusCheckedIn,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to check in reservation")

		return fmt.Errorf("failed to check in reservation: %w", err)
	}

	if err := s.setRoomStatus(ctx, reservation.RoomID, roomModel.StatusOccupied, user); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if reservation.Status != model.StatusCheckedIn {
		return failure.Conflict("only checked-in reservations can be checked out") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        model.StatusCheckedOut,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to check out reservation")

		return fmt.Errorf("failed to check out reservation: %w", err)
	}

	if err := s.setRoomStatus(ctx, reservation.RoomID, roomModel.StatusCleaning, user); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) GetAlerts(ctx context.Context, businessID string) (res dto.GetAlertsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAlerts")
	defer scope.End()
	defer scope.TraceIfError(err)

	business, err := s.bizRepo.Get(ctx, shared.FilterByID(businessID, bizModel.FieldID, bizModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business")

		return res, fmt.Errorf("failed to get business: %w", err)
	}

	if business.ID == constant.Empty {
		return res, failure.NotFound("business not found") // nolint:wrapcheck
	}

	now := timezone.Now()

	candidates, err := s.repo.GetOverdueCandidates(ctx, businessID, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to get overdue candidates")

		return res, fmt.Errorf("failed to get overdue candidates: %w", err)
	}

	res.Alerts = DetectOverdueAlerts(now, business.EffectiveCheckInTime(), business.EffectiveCheckOutTime(), candidates)
	res.TotalData = len(res.Alerts)

	return res, nil
}

// DetectOverdueAlerts flags reservations past their scheduled check-in or check-out
// date+time. Only one alert per room per alert type is surfaced, alerts are computed
// on the fly and never persisted.
func DetectOverdueAlerts(now time.Time, defaultCheckIn, defaultCheckOut string, reservations []model.Reservation) []dto.Alert {
	alerts := []dto.Alert{}
	seen := map[string]bool{}

	for _, reservation := range reservations {
		var (
			alertType string
			scheduled time.Time
		)

		switch reservation.Status {
		case model.StatusConfirmed:
			alertType = dto.AlertTypeOverdueCheckIn
			scheduled = scheduleFor(reservation.CheckInDate, reservation.EffectiveCheckInTime(defaultCheckIn), now.Location())
		case model.StatusCheckedIn:
			alertType = dto.AlertTypeOverdueCheckOut
			scheduled = scheduleFor(reservation.CheckOutDate, reservation.EffectiveCheckOutTime(defaultCheckOut), now.Location())
		default:
			continue
		}

		if !now.After(scheduled) {
			continue
		}

		dedupeKey := reservation.RoomID + ":" + alertType
		if seen[dedupeKey] {
			continue
		}

		seen[dedupeKey] = true

		verb := "check in"
		if alertType == dto.AlertTypeOverdueCheckOut {
			verb = "check out"
		}

		alerts = append(alerts, dto.Alert{
			ReservationID: reservation.ID,
			RoomID:        reservation.RoomID,
			AlertType:     alertType,
			Severity:      dto.AlertSeverityError,
			GuestName:     reservation.GuestName,
			ScheduledAt:   scheduled.Format(time.RFC3339),
			Message:       fmt.Sprintf("guest %s was scheduled to %s at %s", reservation.GuestName, verb, scheduled.Format("2006-01-02 15:04")),
		})
	}

	return alerts
}

func scheduleFor(date time.Time, clock string, loc *time.Location) time.Time {
	hour, minute := parseClock(clock)

	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, loc)
}

func parseClock(clock string) (int, int) {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}

	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])

	return hour, minute
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Reservation, error) {
	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return reservation, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return reservation, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

func (s *serviceImpl) setRoomStatus(ctx context.Context, roomID, status, user string) error {
	fields := map[string]any{
		roomModel.FieldStatus:    status,
		constant.FieldModifiedBy: user,
	}

	if err := s.roomRepo.Update(ctx, fields, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update room status")

		return fmt.Errorf("failed to update room status: %w", err)
	}

	return nil
}

func (s *serviceImpl) sendInvitation(ctx context.Context, reservation model.Reservation, roomNumber string) {
	go func() {
		c := context.WithoutCancel(ctx)

		checkInTime := reservation.CheckInTime
		if checkInTime == "" {
			checkInTime = constant.DefaultCheckInTime
		}

		subject := "Your reservation is confirmed"
		body := fmt.Sprintf(
			"<html><body><h2>Reservation confirmed</h2>"+
				"<p>Hola %s,</p>"+
				"<p>Your stay in room %s is confirmed. Check-in opens on %s at %s.</p>"+
				"<p>We look forward to welcoming you.</p></body></html>",
			reservation.GuestName,
			roomNumber,
			reservation.CheckInDate.Format(constant.DateOnlyFormat),
			checkInTime,
		)

		if err := s.mailer.Send(c, reservation.GuestEmail, subject, body); err != nil {
			log.Error().Err(err).Str("email", reservation.GuestEmail).Msg("failed to send check-in invitation")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
	}()
}
