package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostal/infras/kafka"
	"hostal/internal/domains/housekeeping/model"
	"hostal/internal/domains/housekeeping/model/dto"
	reservationModel "hostal/internal/domains/reservation/model"
	roomModel "hostal/internal/domains/room/model"
	staffModel "hostal/internal/domains/staff/model"
	"hostal/shared"
	"hostal/shared/constant"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

// Generate walks the reservations checking out today and creates one checkout
// cleaning task per room. Rooms that already have a pending checkout task are
// skipped, a failing reservation is reported and never aborts the batch, and the
// processed reservations end up checked out with their rooms queued for cleaning.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateTasksRequest) (res dto.GenerateTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	now := timezone.Now()

	reservations, err := s.reservationRepo.GetDueCheckouts(ctx, req.BusinessID, now)
	if err != nil {
		log.Error().Err(err).Msg("failed to get due checkouts")

		return res, fmt.Errorf("failed to get due checkouts: %w", err)
	}

	roster, err := s.staffRepo.GetActiveHousekeepers(ctx, req.BusinessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping roster")

		return res, fmt.Errorf("failed to get housekeeping roster: %w", err)
	}

	res.Tasks = []dto.TaskResponse{}
	counter := 0

	for _, reservation := range reservations {
		pending, err := s.repo.HasPendingCheckoutTask(ctx, reservation.RoomID)
		if err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to check pending checkout task")

			res.Failed++
			res.Failures = append(res.Failures, dto.GenerateTaskFailure{
				ReservationID: reservation.ID,
				Reason:        "failed to check pending checkout task",
			})

			continue
		}

		if pending {
			res.Skipped++

			continue
		}

		task := buildCheckoutTask(reservation, roster, counter, user)

		if err := s.repo.Insert(ctx, task); err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to insert generated task")

			res.Failed++
			res.Failures = append(res.Failures, dto.GenerateTaskFailure{
				ReservationID: reservation.ID,
				Reason:        "failed to insert task",
			})

			continue
		}

		counter++

		if err := s.closeOutReservation(ctx, reservation, user); err != nil {
			log.Error().Err(err).Str("reservationID", reservation.ID).Msg("failed to close out reservation")
		}

		s.publishTaskGenerated(ctx, task)

		taskRes := dto.TaskResponse{}
		taskRes.FromModel(task)
		res.Tasks = append(res.Tasks, taskRes)
		res.Generated++
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllTask)
	}()

	return res, nil
}

func buildCheckoutTask(reservation reservationModel.Reservation, roster []staffModel.Staff, counter int, user string) model.Task {
	specialRequests := ""
	if reservation.SpecialRequests != nil {
		specialRequests = *reservation.SpecialRequests
	}

	reservationID := reservation.ID

	return model.Task{
		ID:               uuid.NewString(),
		BusinessID:       reservation.BusinessID,
		RoomID:           reservation.RoomID,
		ReservationID:    &reservationID,
		TaskType:         model.TaskTypeCheckoutCleaning,
		Priority:         computePriority(reservation.TotalAmount, specialRequests),
		Status:           model.StatusPending,
		AssignedTo:       assignHousekeeper(roster, counter),
		EstimatedMinutes: estimateMinutes(reservation.GuestCount, reservation.TotalAmount),
		Checklist:        defaultChecklist(),
		Metadata:         gModel.NewMetadata(timezone.Now(), user),
	}
}

func (s *serviceImpl) closeOutReservation(ctx context.Context, reservation reservationModel.Reservation, user string) error {
	reservationFields := map[string]any{
		reservationModel.FieldStatus: reservationModel.StatusCheckedOut,
		constant.FieldModifiedBy:     user,
	}

	filter := shared.FilterByID(reservation.ID, reservationModel.FieldID, reservationModel.TableName)
	if err := s.reservationRepo.Update(ctx, reservationFields, filter); err != nil {
		return fmt.Errorf("failed to mark reservation as checked out: %w", err)
	}

	roomFields := map[string]any{
		roomModel.FieldStatus:    roomModel.StatusCleaning,
		constant.FieldModifiedBy: user,
	}

	roomFilter := shared.FilterByID(reservation.RoomID, roomModel.FieldID, roomModel.TableName)
	if err := s.roomRepo.Update(ctx, roomFields, roomFilter); err != nil {
		return fmt.Errorf("failed to mark room for cleaning: %w", err)
	}

	return nil
}

func (s *serviceImpl) publishTaskGenerated(ctx context.Context, task model.Task) {
	message := kafka.Message{
		Key: task.ID,
		Value: map[string]any{
			"task_id":     task.ID,
			"business_id": task.BusinessID,
			"room_id":     task.RoomID,
			"priority":    task.Priority,
			"assigned_to": task.AssignedTo,
		},
	}

	if err := s.publisher.Publish(ctx, constant.KafkaTopicHousekeeping, message); err != nil {
		log.Error().Err(err).Str("taskID", task.ID).Msg("failed to publish task generated event")
	}
}
