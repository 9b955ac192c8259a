package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"hostal/config"
	"hostal/infras/kafka"
	"hostal/infras/otel"
	"hostal/infras/s3"
	bizModel "hostal/internal/domains/business/model"
	bizRepository "hostal/internal/domains/business/repository"
	"hostal/internal/domains/taxdoc/model"
	"hostal/internal/domains/taxdoc/model/dto"
	"hostal/internal/domains/taxdoc/repository"
	"hostal/shared"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/failure"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

// ivaRate is the Chilean value-added tax applied when only the gross total is known.
const ivaRate = 0.19

const envelopeVersion = "1.0"

type TaxDocument interface {
	Issue(ctx context.Context, req dto.IssueDocumentRequest) (dto.DocumentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetDocumentsResponse, error)
	Get(ctx context.Context, id string) (dto.DocumentResponse, error)
}

type serviceImpl struct {
	repo      repository.TaxDocument
	bizRepo   bizRepository.Business
	storage   s3.S3
	publisher kafka.Publisher
	cfg       *config.Config
	otel      otel.Otel
}

func New(
	repo repository.TaxDocument,
	bizRepo bizRepository.Business,
	storage s3.S3,
	publisher kafka.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) TaxDocument {
	return &serviceImpl{
		repo:      repo,
		bizRepo:   bizRepo,
		storage:   storage,
		publisher: publisher,
		cfg:       cfg,
		otel:      otel,
	}
}

// Issue claims the next folio, archives the XML envelope and records the document.
// Issued documents are immutable, there is no update or delete path.
func (s *serviceImpl) Issue(ctx context.Context, req dto.IssueDocumentRequest) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Issue")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	business, err := s.bizRepo.Get(ctx, shared.FilterByID(req.BusinessID, bizModel.FieldID, bizModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get business")

		return res, fmt.Errorf("failed to get business: %w", err)
	}

	if business.ID == constant.Empty {
		return res, failure.NotFound("business not found") // nolint:wrapcheck
	}

	var reservationID *string

	if req.ReservationID != "" {
		duplicateFilter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				shared.FilterByField(req.ReservationID, model.FieldReservationID, model.TableName),
				shared.FilterByField(req.DocumentType, model.FieldDocumentType, model.TableName),
			},
		}

		exists, err := s.repo.Exist(ctx, duplicateFilter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check for existing document")

			return res, fmt.Errorf("failed to check for existing document: %w", err)
		}

		if exists {
			return res, failure.Conflict("reservation already has a document of this type") // nolint:wrapcheck
		}

		reservationID = &req.ReservationID
	}

	netAmount, taxAmount := splitAmounts(req.NetAmount, req.TotalAmount)

	folio, err := s.repo.ClaimFolio(ctx, req.BusinessID, req.DocumentType)
	if err != nil {
		log.Error().Err(err).Msg("failed to claim folio")

		return res, fmt.Errorf("failed to claim folio: %w", err)
	}

	now := timezone.Now()

	envelope := model.Envelope{
		Version:      envelopeVersion,
		DocumentType: req.DocumentType,
		Folio:        folio,
		IssuedAt:     now.Format(constant.DateOnlyFormat),
		IssuerRut:    business.Rut,
		IssuerName:   business.Name,
		NetAmount:    netAmount,
		TaxAmount:    taxAmount,
		TotalAmount:  req.TotalAmount,
	}

	xmlPath, err := s.archiveEnvelope(ctx, req.BusinessID, req.DocumentType, folio, envelope)
	if err != nil {
		return res, err
	}

	document := model.Document{
		ID:            uuid.NewString(),
		BusinessID:    req.BusinessID,
		DocumentType:  req.DocumentType,
		Folio:         folio,
		ReservationID: reservationID,
		NetAmount:     netAmount,
		TaxAmount:     taxAmount,
		TotalAmount:   req.TotalAmount,
		IssuedAt:      now,
		Status:        model.StatusIssued,
		XMLPath:       xmlPath,
		Metadata:      gModel.NewMetadata(now, user),
	}

	if err = s.repo.Insert(ctx, document); err != nil {
		log.Error().Err(err).Msg("failed to insert tax document")

		return res, fmt.Errorf("failed to insert tax document: %w", err)
	}

	s.publishDocumentIssued(ctx, document)

	res.FromModel(document)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetDocumentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tax documents")

		return res, fmt.Errorf("failed to count tax documents: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tax documents")

		return res, fmt.Errorf("failed to get tax documents: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DocumentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	document, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get tax document")

		return res, fmt.Errorf("failed to get tax document: %w", err)
	}

	if document.ID == constant.Empty {
		return res, failure.NotFound("tax document not found") // nolint:wrapcheck
	}

	res.FromModel(document)

	return res, nil
}

// splitAmounts derives the net/tax split. When the caller only knows the gross
// total, the net is backed out at the IVA rate and the tax is the remainder, so
// the three amounts always add up.
func splitAmounts(netAmount, totalAmount float64) (float64, float64) {
	if netAmount > 0 {
		return netAmount, totalAmount - netAmount
	}

	net := math.Round(totalAmount / (1 + ivaRate))

	return net, totalAmount - net
}

func (s *serviceImpl) archiveEnvelope(ctx context.Context, businessID, documentType string, folio int64, envelope model.Envelope) (string, error) {
	data, err := xml.MarshalIndent(envelope, "", "  ")
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal document envelope")

		return "", fmt.Errorf("failed to marshal document envelope: %w", err)
	}

	data = append([]byte(xml.Header), data...)

	directory := "dte/" + businessID
	objectName := fmt.Sprintf("%s-%d.xml", documentType, folio)

	url, err := s.storage.UploadBytes(ctx, directory, objectName, "application/xml", data)
	if err != nil {
		log.Error().Err(err).Msg("failed to archive document envelope")

		return "", fmt.Errorf("failed to archive document envelope: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) publishDocumentIssued(ctx context.Context, document model.Document) {
	message := kafka.Message{
		Key: document.ID,
		Value: map[string]any{
			"document_id":   document.ID,
			"business_id":   document.BusinessID,
			"document_type": document.DocumentType,
			"folio":         document.Folio,
			"total_amount":  document.TotalAmount,
		},
	}

	if err := s.publisher.Publish(ctx, constant.KafkaTopicTaxDocument, message); err != nil {
		log.Error().Err(err).Str("documentID", document.ID).Msg("failed to publish document issued event")
	}
}
