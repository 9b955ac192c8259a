package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hostal/infras/otel"
	"hostal/infras/postgres"
	"hostal/internal/domains/staff/model"
	"hostal/shared"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	gRepo "hostal/shared/repository"
)

type Staff interface {
	Insert(ctx context.Context, model model.Staff) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Staff, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Staff, error)
	GetActiveHousekeepers(ctx context.Context, businessID string) ([]model.Staff, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Staff]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Staff](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetActiveHousekeepers returns the active housekeeping roster of a business in a
// stable order, which task assignment depends on.
func (repo *repositoryImpl) GetActiveHousekeepers(ctx context.Context, businessID string) ([]model.Staff, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByField(businessID, model.FieldBusinessID, model.TableName),
			shared.FilterByField(constant.RoleHousekeeping, model.FieldRole, model.TableName),
			shared.FilterByField(true, model.FieldActive, model.TableName),
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}
