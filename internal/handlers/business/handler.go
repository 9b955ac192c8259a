package business

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostal/infras/otel"
	"hostal/internal/domains/business/model"
	"hostal/internal/domains/business/model/dto"
	"hostal/internal/domains/business/service"
	"hostal/shared"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/validator"
	"hostal/transport/http/response"
)

type Handler struct {
	service service.Business
	otel    otel.Otel
}

func New(service service.Business, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/businesses", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBusiness)
		routerGroup.Get("/", handler.GetBusinesses)
		routerGroup.Get("/{id}", handler.GetBusinessByID)
		routerGroup.Patch("/{id}", handler.UpdateBusiness)
		routerGroup.Delete("/{id}", handler.DeactivateBusiness)
	})
}

// CreateBusiness registers a new tenant property.
func (handler *Handler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBusiness")
	defer scope.End()

	req := dto.CreateBusinessRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	business, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create business")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Business created successfully")

	response.WithJSON(w, http.StatusCreated, business)
}

// GetBusinesses lists tenants with optional filtering and pagination.
func (handler *Handler) GetBusinesses(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusinesses")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name := r.URL.Query().Get(model.FieldName); name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByField(*active, model.FieldActive, model.TableName))
	}

	businesses, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get businesses")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, businesses)
}

// GetBusinessByID retrieves a tenant by its identifier.
func (handler *Handler) GetBusinessByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBusinessByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	business, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get business by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, business)
}

// UpdateBusiness updates tenant details, including configured check-in/out times.
func (handler *Handler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBusiness")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBusinessRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update business")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Business updated successfully")
}

// DeactivateBusiness soft-deletes a tenant, keeping its rows for tax history.
func (handler *Handler) DeactivateBusiness(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateBusiness")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate business")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Business deactivated successfully")
}
