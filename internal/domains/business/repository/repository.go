package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hostal/infras/otel"
	"hostal/infras/postgres"
	"hostal/internal/domains/business/model"
	gDto "hostal/shared/dto"
	gRepo "hostal/shared/repository"
)

type Business interface {
	Insert(ctx context.Context, model model.Business) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Business, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Business, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Business]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Business {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Business](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
