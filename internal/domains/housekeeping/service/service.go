package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostal/config"
	"hostal/infras/kafka"
	"hostal/infras/otel"
	"hostal/internal/domains/housekeeping/model"
	"hostal/internal/domains/housekeeping/model/dto"
	"hostal/internal/domains/housekeeping/repository"
	reservationRepository "hostal/internal/domains/reservation/repository"
	roomModel "hostal/internal/domains/room/model"
	roomRepository "hostal/internal/domains/room/repository"
	staffRepository "hostal/internal/domains/staff/repository"
	"hostal/shared"
	"hostal/shared/cache"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/failure"
)

const (
	cacheGetTask    = "housekeeping:get"
	cacheGetAllTask = "housekeeping:gets"
)

type Housekeeping interface {
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTasksResponse, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Update(ctx context.Context, req dto.UpdateTaskRequest, id string) error
	UpdateChecklistItem(ctx context.Context, taskID string, index int, completed bool) error
	Delete(ctx context.Context, id string) error
	Generate(ctx context.Context, req dto.GenerateTasksRequest) (dto.GenerateTasksResponse, error)
}

type serviceImpl struct {
	repo            repository.Housekeeping
	reservationRepo reservationRepository.Reservation
	roomRepo        roomRepository.Room
	staffRepo       staffRepository.Staff
	publisher       kafka.Publisher
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	repo repository.Housekeeping,
	reservationRepo reservationRepository.Reservation,
	roomRepo roomRepository.Room,
	staffRepo staffRepository.Staff,
	publisher kafka.Publisher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Housekeeping {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		roomRepo:        roomRepo,
		staffRepo:       staffRepo,
		publisher:       publisher,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, err error) {
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

	if req.TaskType == model.TaskTypeCheckoutCleaning {
		pending, err := s.repo.HasPendingCheckoutTask(ctx, req.RoomID)
		if err != nil {
			log.Error().Err(err).Msg("failed to check pending checkout task")

			return res, fmt.Errorf("failed to check pending checkout task: %w", err)
		}

		if pending {
			return res, failure.Conflict("room already has a pending checkout cleaning task") // nolint:wrapcheck
		}
	}

	task := req.ToModel(user)
	if len(task.Checklist) == 0 && task.TaskType == model.TaskTypeCheckoutCleaning {
		task.Checklist = defaultChecklist()
	}

	if err = s.repo.Insert(ctx, task); err != nil {
		log.Error().Err(err).Msg("failed to create housekeeping task")

		return res, fmt.Errorf("failed to create housekeeping task: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllTask)
	}()

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTask, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping tasks")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count housekeeping tasks")

		return res, fmt.Errorf("failed to count housekeeping tasks: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping tasks")

		return res, fmt.Errorf("failed to get housekeeping tasks: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping tasks to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTask, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for housekeeping task")

		return res, nil
	}

	task, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(task)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save housekeeping task to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTaskRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTaskRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update housekeeping task")

		return fmt.Errorf("failed to update housekeeping task: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateChecklistItem(ctx context.Context, taskID string, index int, completed bool) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateChecklistItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	task, err := s.getByID(ctx, taskID)
	if err != nil {
		return err
	}

	if index < 0 || index >= len(task.Checklist) {
		return failure.BadRequestFromString("checklist item index out of range") // nolint:wrapcheck
	}

	task.Checklist[index].Completed = completed

	fields := map[string]any{
		model.FieldChecklist:     task.Checklist,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(taskID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update checklist item")

		return fmt.Errorf("failed to update checklist item: %w", err)
	}

	s.invalidate(ctx, taskID)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if housekeeping task exists")

		return fmt.Errorf("failed to check if housekeeping task exists: %w", err)
	}

	if !exist {
		return failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete housekeeping task")

		return fmt.Errorf("failed to delete housekeeping task: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Task, error) {
	task, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get housekeeping task")

		return task, fmt.Errorf("failed to get housekeeping task: %w", err)
	}

	if task.ID == constant.Empty {
		return task, failure.NotFound("housekeeping task not found") // nolint:wrapcheck
	}

	return task, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTask, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete housekeeping task from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTask)
	}()
}
