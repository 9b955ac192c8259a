package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"time"

	"hostal/infras/otel"
	"hostal/infras/postgres"
	"hostal/internal/domains/reservation/model"
	"hostal/shared"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	gRepo "hostal/shared/repository"
)

type Reservation interface {
	Insert(ctx context.Context, model model.Reservation) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Reservation, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Reservation, error)
	GetDueCheckouts(ctx context.Context, businessID string, date time.Time) ([]model.Reservation, error)
	GetOverdueCandidates(ctx context.Context, businessID string, date time.Time) ([]model.Reservation, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Reservation]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetDueCheckouts returns the reservations of a business scheduled to check out on the
// given date that have not been closed yet.
func (repo *repositoryImpl) GetDueCheckouts(ctx context.Context, businessID string, date time.Time) ([]model.Reservation, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByField(businessID, model.FieldBusinessID, model.TableName),
			shared.FilterByField(date.Format(constant.DateOnlyFormat), model.FieldCheckOutDate, model.TableName),
			gDto.Filter{
				ArgName:  "due_status",
				Field:    model.FieldStatus,
				Value:    []string{model.StatusConfirmed, model.StatusCheckedIn},
				Operator: gDto.FilterOperatorIn,
				Table:    model.TableName,
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// GetOverdueCandidates returns reservations that may be overdue on the given date: not
// yet arrived guests whose check-in date has passed and in-house guests whose check-out
// date has passed. Time-of-day comparison happens in the service layer.
func (repo *repositoryImpl) GetOverdueCandidates(ctx context.Context, businessID string, date time.Time) ([]model.Reservation, error) {
	day := date.Format(constant.DateOnlyFormat)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			shared.FilterByField(businessID, model.FieldBusinessID, model.TableName),
			gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.FilterGroup{
						Operator: gDto.FilterGroupOperatorAnd,
						Filters: []any{
							gDto.Filter{
								ArgName:  "arrival_status",
								Field:    model.FieldStatus,
								Value:    model.StatusConfirmed,
								Operator: gDto.FilterOperatorEq,
								Table:    model.TableName,
							},
							gDto.Filter{
								ArgName:  "arrival_date",
								Field:    model.FieldCheckInDate,
								Value:    day,
								Operator: gDto.FilterOperatorLessEq,
								Table:    model.TableName,
							},
						},
					},
					gDto.FilterGroup{
						Operator: gDto.FilterGroupOperatorAnd,
						Filters: []any{
							gDto.Filter{
								ArgName:  "departure_status",
								Field:    model.FieldStatus,
								Value:    model.StatusCheckedIn,
								Operator: gDto.FilterOperatorEq,
								Table:    model.TableName,
							},
							gDto.Filter{
								ArgName:  "departure_date",
								Field:    model.FieldCheckOutDate,
								Value:    day,
								Operator: gDto.FilterOperatorLessEq,
								Table:    model.TableName,
							},
						},
					},
				},
			},
		},
	}

	params := gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	return repo.GetAll(ctx, params, filter) //nolint:wrapcheck
}
