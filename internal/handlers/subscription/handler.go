package subscription

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostal/infras/otel"
	"hostal/internal/domains/subscription/model"
	"hostal/internal/domains/subscription/model/dto"
	"hostal/internal/domains/subscription/service"
	"hostal/shared"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/validator"
	"hostal/transport/http/middleware"
	"hostal/transport/http/response"
)

type Handler struct {
	service service.Subscription
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Subscription, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/subscriptions", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateSubscription)
		routerGroup.Get("/", handler.GetSubscriptions)
		routerGroup.Get("/plans", handler.GetPlans)
		routerGroup.With(handler.auth.APIKey).Post("/expire", handler.ExpireTrials)
		routerGroup.Get("/{id}", handler.GetSubscriptionByID)
		routerGroup.Post("/{id}/upgrade", handler.UpgradeSubscription)
		routerGroup.Post("/{id}/cancel", handler.CancelSubscription)
	})
}

// CreateSubscription starts a trial subscription on the requested plan.
func (handler *Handler) CreateSubscription(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSubscription")
	defer scope.End()

	req := dto.CreateSubscriptionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	subscription, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create subscription")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, subscription)
}

// GetPlans lists the available subscription plans.
func (handler *Handler) GetPlans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPlans")
	defer scope.End()

	plans, err := handler.service.GetPlans(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get plans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, plans)
}

// GetSubscriptions lists subscriptions filtered by user or status.
func (handler *Handler) GetSubscriptions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscriptions")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if userID := r.URL.Query().Get(model.FieldUserID); userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByField(userID, model.FieldUserID, model.TableName))
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByField(status, model.FieldStatus, model.TableName))
	}

	subscriptions, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscriptions")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subscriptions)
}

// GetSubscriptionByID retrieves a subscription by ID.
func (handler *Handler) GetSubscriptionByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSubscriptionByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	subscription, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get subscription by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subscription)
}

// UpgradeSubscription moves a subscription to another plan.
func (handler *Handler) UpgradeSubscription(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpgradeSubscription")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpgradeSubscriptionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	subscription, err := handler.service.Upgrade(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upgrade subscription")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, subscription)
}

// CancelSubscription cancels an open subscription.
func (handler *Handler) CancelSubscription(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelSubscription")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel subscription")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Subscription cancelled successfully")
}

// ExpireTrials flips lapsed trials to expired, internal callers only.
func (handler *Handler) ExpireTrials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExpireTrials")
	defer scope.End()

	result, err := handler.service.ExpireSweep(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to run trial expiry sweep")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, result)
}
