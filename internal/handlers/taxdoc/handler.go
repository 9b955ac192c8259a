package taxdoc

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hostal/infras/otel"
	"hostal/internal/domains/taxdoc/model"
	"hostal/internal/domains/taxdoc/model/dto"
	"hostal/internal/domains/taxdoc/service"
	"hostal/shared"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/validator"
	"hostal/transport/http/response"
)

type Handler struct {
	service service.TaxDocument
	otel    otel.Otel
}

func New(service service.TaxDocument, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the document routes. Issued documents are immutable so there
// are no update or delete endpoints.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/documents", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.IssueDocument)
		routerGroup.Get("/", handler.GetDocuments)
		routerGroup.Get("/{id}", handler.GetDocumentByID)
	})
}

// IssueDocument issues a boleta or factura with the next folio.
func (handler *Handler) IssueDocument(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".IssueDocument")
	defer scope.End()

	req := dto.IssueDocumentRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	document, err := handler.service.Issue(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to issue tax document")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, document)
}

// GetDocuments lists issued documents filtered by business or type.
func (handler *Handler) GetDocuments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocuments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if businessID := r.URL.Query().Get(model.FieldBusinessID); businessID != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByField(businessID, model.FieldBusinessID, model.TableName))
	}

	if documentType := r.URL.Query().Get(model.FieldDocumentType); documentType != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByField(documentType, model.FieldDocumentType, model.TableName))
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, shared.FilterByField(status, model.FieldStatus, model.TableName))
	}

	documents, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tax documents")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, documents)
}

// GetDocumentByID retrieves an issued document by ID.
func (handler *Handler) GetDocumentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDocumentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	document, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tax document by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, document)
}
