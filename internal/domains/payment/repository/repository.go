package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hostal/infras/otel"
	"hostal/infras/postgres"
	"hostal/internal/domains/payment/model"
	"hostal/shared"
	gDto "hostal/shared/dto"
	gRepo "hostal/shared/repository"
)

type Payment interface {
	Insert(ctx context.Context, model model.Transaction) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Transaction, error)
	GetByToken(ctx context.Context, token string) (model.Transaction, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Transaction, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Transaction]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Transaction](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (repo *repositoryImpl) GetByToken(ctx context.Context, token string) (model.Transaction, error) {
	filter := gDto.FilterGroup{
		Filters: []any{shared.FilterByField(token, model.FieldToken, model.TableName)},
	}

	return repo.Get(ctx, filter) //nolint:wrapcheck
}
