package qraccess

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostal/infras/otel"
	"hostal/internal/domains/qraccess/model/dto"
	"hostal/internal/domains/qraccess/service"
	"hostal/shared/constant"
	"hostal/shared/validator"
	"hostal/transport/http/response"
)

type Handler struct {
	service service.QRAccess
	otel    otel.Otel
}

func New(service service.QRAccess, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/qr", func(routerGroup chi.Router) {
		routerGroup.Post("/generate", handler.GenerateToken)
		routerGroup.Post("/validate", handler.ValidateToken)
	})
}

// GenerateToken mints a single-use QR access token for a staff member.
func (handler *Handler) GenerateToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateToken")
	defer scope.End()

	req := dto.GenerateTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	token, err := handler.service.Generate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate access token")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, token)
}

// ValidateToken exchanges a scanned token for a session credential.
func (handler *Handler) ValidateToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ValidateToken")
	defer scope.End()

	req := dto.ValidateTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	session, err := handler.service.Validate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate access token")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, session)
}
