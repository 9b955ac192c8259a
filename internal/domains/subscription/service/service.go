package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"hostal/config"
	"hostal/infras/otel"
	roomModel "hostal/internal/domains/room/model"
	roomRepository "hostal/internal/domains/room/repository"
	"hostal/internal/domains/subscription/model"
	"hostal/internal/domains/subscription/model/dto"
	"hostal/internal/domains/subscription/repository"
	"hostal/shared"
	"hostal/shared/cache"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/failure"
	"hostal/shared/timezone"
)

const (
	cacheGetSubscription    = "subscription:get"
	cacheGetAllSubscription = "subscription:gets"
	cacheGetPlans           = "subscription:plans"

	activePeriodDays = 30
)

type Subscription interface {
	Create(ctx context.Context, req dto.CreateSubscriptionRequest) (dto.SubscriptionResponse, error)
	GetPlans(ctx context.Context) (dto.GetPlansResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSubscriptionsResponse, error)
	Get(ctx context.Context, id string) (dto.SubscriptionResponse, error)
	Upgrade(ctx context.Context, req dto.UpgradeSubscriptionRequest, id string) (dto.SubscriptionResponse, error)
	Cancel(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
	ExpireSweep(ctx context.Context) (dto.ExpireSweepResponse, error)
}

type serviceImpl struct {
	repo     repository.Subscription
	planRepo repository.Plan
	roomRepo roomRepository.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
}

func New(
	repo repository.Subscription,
	planRepo repository.Plan,
	roomRepo roomRepository.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Subscription {
	return &serviceImpl{
		repo:     repo,
		planRepo: planRepo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateSubscriptionRequest) (res dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	plan, err := s.getPlanByCode(ctx, req.PlanCode)
	if err != nil {
		return res, err
	}

	openFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByField(req.UserID, model.FieldUserID, model.TableName),
			gDto.Filter{
				ArgName:  "open_status",
				Field:    model.FieldStatus,
				Value:    []string{model.StatusTrial, model.StatusActive, model.StatusPendingContact},
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	exists, err := s.repo.Exist(ctx, openFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for open subscription")

		return res, fmt.Errorf("failed to check for open subscription: %w", err)
	}

	if exists {
		return res, failure.Conflict("user already has an open subscription") // nolint:wrapcheck
	}

	subscription := req.ToModel(plan, user)

	if err = s.repo.Insert(ctx, subscription); err != nil {
		log.Error().Err(err).Msg("failed to create subscription")

		return res, fmt.Errorf("failed to create subscription: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSubscription)
	}()

	res.FromModel(subscription)

	return res, nil
}

func (s *serviceImpl) GetPlans(ctx context.Context) (res dto.GetPlansResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPlans")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetPlans, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetPlans).Msg("cache hit for plans")

		return res, nil
	}

	params := gDto.QueryParams{
		SortBy:  model.PlanFieldPriceMonthly,
		SortDir: "ASC",
	}

	plans, err := s.planRepo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get plans")

		return res, fmt.Errorf("failed to get plans: %w", err)
	}

	res.FromModels(plans)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetPlans, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save plans to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSubscriptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSubscription, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for subscriptions")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count subscriptions")

		return res, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscriptions")

		return res, fmt.Errorf("failed to get subscriptions: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save subscriptions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	subscription, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(subscription)

	return res, nil
}

// Upgrade moves a subscription to another plan. A plan that cannot hold the business'
// current room inventory is rejected outright, an enterprise target parks the
// subscription until sales reaches out.
func (s *serviceImpl) Upgrade(ctx context.Context, req dto.UpgradeSubscriptionRequest, id string) (res dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Upgrade")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	subscription, err := s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	if subscription.Status == model.StatusCancelled || subscription.Status == model.StatusExpired {
		return res, failure.Conflict("a closed subscription cannot be upgraded") // nolint:wrapcheck
	}

	plan, err := s.getPlanByCode(ctx, req.PlanCode)
	if err != nil {
		return res, err
	}

	fields := map[string]any{
		model.FieldPlanID:        plan.ID,
		constant.FieldModifiedBy: user,
	}

	if plan.Level == model.LevelEnterprise {
		fields[model.FieldStatus] = model.StatusPendingContact
	} else if subscription.BusinessID != nil {
		roomFilter := gDto.FilterGroup{
			Filters: []any{shared.FilterByField(*subscription.BusinessID, roomModel.FieldBusinessID, roomModel.TableName)},
		}

		roomCount, err := s.roomRepo.Count(ctx, roomFilter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count rooms")

			return res, fmt.Errorf("failed to count rooms: %w", err)
		}

		if roomCount > plan.MaxRooms {
			msg := fmt.Sprintf("plan %s allows %d rooms but the business has %d, remove rooms before downgrading", plan.Code, plan.MaxRooms, roomCount)

			return res, failure.BadRequestFromString(msg) // nolint:wrapcheck
		}
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to upgrade subscription")

		return res, fmt.Errorf("failed to upgrade subscription: %w", err)
	}

	s.invalidate(ctx, id)

	subscription, err = s.getByID(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(subscription)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	subscription, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if subscription.Status == model.StatusCancelled || subscription.Status == model.StatusExpired {
		return failure.Conflict("subscription is already closed") // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to cancel subscription")

		return fmt.Errorf("failed to cancel subscription: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// Activate is invoked by the payment flow once a charge is authorized. The
// subscription goes active and its billing period restarts from now.
func (s *serviceImpl) Activate(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Activate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err := s.getByID(ctx, id); err != nil {
		return err
	}

	periodEnd := timezone.Now().AddDate(0, 0, activePeriodDays)

	fields := map[string]any{
		model.FieldStatus:              model.StatusActive,
		model.FieldCurrentPeriodEndsAt: periodEnd,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to activate subscription")

		return fmt.Errorf("failed to activate subscription: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ExpireSweep(ctx context.Context) (res dto.ExpireSweepResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExpireSweep")
	defer scope.End()
	defer scope.TraceIfError(err)

	expired, err := s.repo.ExpireTrials(ctx, timezone.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to expire trial subscriptions")

		return res, fmt.Errorf("failed to expire trial subscriptions: %w", err)
	}

	if expired > 0 {
		go func() {
			shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllSubscription)
		}()
	}

	log.Info().Int("expired", expired).Msg("trial expiry sweep completed")

	res.Expired = expired

	return res, nil
}

func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Subscription, error) {
	subscription, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get subscription")

		return subscription, fmt.Errorf("failed to get subscription: %w", err)
	}

	if subscription.ID == constant.Empty {
		return subscription, failure.NotFound("subscription not found") // nolint:wrapcheck
	}

	return subscription, nil
}

func (s *serviceImpl) getPlanByCode(ctx context.Context, code string) (model.Plan, error) {
	filter := gDto.FilterGroup{
		Filters: []any{shared.FilterByField(code, model.PlanFieldCode, model.PlanTableName)},
	}

	plan, err := s.planRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get plan")

		return plan, fmt.Errorf("failed to get plan: %w", err)
	}

	if plan.ID == constant.Empty {
		return plan, failure.NotFound("plan not found") // nolint:wrapcheck
	}

	return plan, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSubscription, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete subscription from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSubscription)
	}()
}
