package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostal/config"
	"hostal/infras/otel"
	"hostal/internal/domains/business/model"
	"hostal/internal/domains/business/model/dto"
	"hostal/internal/domains/business/repository"
	"hostal/shared"
	"hostal/shared/cache"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/failure"
)

const (
	cacheGetBusiness    = "business:get"
	cacheGetAllBusiness = "business:gets"
	cacheCountBusiness  = "business:count"
)

type Business interface {
	Create(ctx context.Context, req dto.CreateBusinessRequest) (dto.BusinessResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBusinessesResponse, error)
	Get(ctx context.Context, id string) (dto.BusinessResponse, error)
	Update(ctx context.Context, req dto.UpdateBusinessRequest, id string) error
	Deactivate(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Business
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Business, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Business {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBusinessRequest) (res dto.BusinessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rutFilter := gDto.FilterGroup{
		Filters: []any{shared.FilterByField(req.Rut, model.FieldRut, model.TableName)},
	}

	exists, err := s.repo.Exist(ctx, rutFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if business exists")

		return res, fmt.Errorf("failed to check if business exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("a business with this RUT is already registered") // nolint:wrapcheck
	}

	business := req.ToModel(user)

	if err = s.repo.Insert(ctx, business); err != nil {
		log.Error().Err(err).Msg("failed to create business")

		return res, fmt.Errorf("failed to create business: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBusiness)
		shared.InvalidateCaches(c, s.cache, cacheCountBusiness)
	}()

	res.FromModel(business)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBusinessesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBusiness, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for businesses")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count businesses")

		return res, fmt.Errorf("failed to count businesses: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get businesses")

		return res, fmt.Errorf("failed to get businesses: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save businesses to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BusinessResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBusiness, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for business")

		return res, nil
	}

	business, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business")

		return res, fmt.Errorf("failed to get business: %w", err)
	}

	if business.ID == constant.Empty {
		return res, failure.NotFound("business not found") // nolint:wrapcheck
	}

	res.FromModel(business)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save business to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBusinessRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBusinessRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if business exists")

		return fmt.Errorf("failed to check if business exists: %w", err)
	}

	if !exist {
		return failure.NotFound("business not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update business")

		return fmt.Errorf("failed to update business: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Deactivate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Deactivate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if business exists")

		return fmt.Errorf("failed to check if business exists: %w", err)
	}

	if !exist {
		return failure.NotFound("business not found") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldActive:        false,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, filter); err != nil {
		log.Error().Err(err).Msg("failed to deactivate business")

		return fmt.Errorf("failed to deactivate business: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBusiness, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete business from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBusiness)
		shared.InvalidateCaches(c, s.cache, cacheCountBusiness)
	}()
}
