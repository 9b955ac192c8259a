package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hostal/infras/otel"
	"hostal/infras/postgres"
	"hostal/internal/domains/taxdoc/model"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/logger"
	gRepo "hostal/shared/repository"
)

type TaxDocument interface {
	Insert(ctx context.Context, model model.Document) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Document, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Document, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	ClaimFolio(ctx context.Context, businessID, documentType string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Document]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) TaxDocument {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Document](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ClaimFolio atomically reserves the next folio for a business and document type.
// The single upsert statement guarantees folios are strictly increasing and never
// reused, even under concurrent issuance.
func (repo *repositoryImpl) ClaimFolio(ctx context.Context, businessID, documentType string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".tax_document.ClaimFolio")
	defer scope.End()

	query := fmt.Sprintf(
		`INSERT INTO %s (business_id, document_type, last_folio) VALUES ($1, $2, 1)
		ON CONFLICT (business_id, document_type)
		DO UPDATE SET last_folio = %s.last_folio + 1
		RETURNING last_folio`,
		model.CounterTableName,
		model.CounterTableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var folio int64

	err := repo.db.Write.GetContext(ctx, &folio, query, businessID, documentType)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to claim folio: %w", err)
	}

	return folio, nil
}
