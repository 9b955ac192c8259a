package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hostal/infras/otel"
	"hostal/infras/postgres"
	"hostal/internal/domains/housekeeping/model"
	"hostal/shared"
	gDto "hostal/shared/dto"
	gRepo "hostal/shared/repository"
)

type Housekeeping interface {
	Insert(ctx context.Context, model model.Task) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Task, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Task, error)
	HasPendingCheckoutTask(ctx context.Context, roomID string) (bool, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Task]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Housekeeping {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// HasPendingCheckoutTask reports whether a room already has an open checkout cleaning
// task, which guards against generating duplicates.
func (repo *repositoryImpl) HasPendingCheckoutTask(ctx context.Context, roomID string) (bool, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByField(roomID, model.FieldRoomID, model.TableName),
			shared.FilterByField(model.TaskTypeCheckoutCleaning, model.FieldTaskType, model.TableName),
			shared.FilterByField(model.StatusPending, model.FieldStatus, model.TableName),
		},
	}

	return repo.Exist(ctx, filter) //nolint:wrapcheck
}
