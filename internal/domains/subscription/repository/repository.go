package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hostal/infras/otel"
	"hostal/infras/postgres"
	"hostal/internal/domains/subscription/model"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/logger"
	gRepo "hostal/shared/repository"
)

type Plan interface {
	Insert(ctx context.Context, model model.Plan) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Plan, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Plan, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type Subscription interface {
	Insert(ctx context.Context, model model.Subscription) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Subscription, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Subscription, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	ExpireTrials(ctx context.Context, now time.Time) (int, error)
}

type planRepositoryImpl struct {
	gRepo.Repository[model.Plan]
}

func NewPlan(db *postgres.Connection, otel otel.Otel) Plan {
	return &planRepositoryImpl{
		Repository: gRepo.NewRepository[model.Plan](model.PlanEntityName, model.PlanTableName, model.PlanFieldID, db, otel),
	}
}

type repositoryImpl struct {
	gRepo.Repository[model.Subscription]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Subscription {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Subscription](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ExpireTrials flips every trial whose window has lapsed to expired and reports how
// many rows changed. Runs on the write connection in a single statement.
func (repo *repositoryImpl) ExpireTrials(ctx context.Context, now time.Time) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".subscription.ExpireTrials")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3 AND %s < $2",
		model.TableName,
		model.FieldStatus,
		constant.FieldModifiedAt,
		model.FieldStatus,
		model.FieldTrialEndsAt,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := repo.db.Write.ExecContext(ctx, query, model.StatusExpired, now, model.StatusTrial)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to expire trial subscriptions: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return int(affected), nil
}
