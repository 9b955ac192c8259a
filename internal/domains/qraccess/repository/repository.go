package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"hostal/infras/otel"
	"hostal/infras/postgres"
	"hostal/internal/domains/qraccess/model"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
	"hostal/shared/logger"
	gRepo "hostal/shared/repository"
)

// ErrTokenNotClaimable is returned when a token cannot be claimed because it does
// not exist, was already used, or has expired.
var ErrTokenNotClaimable = errors.New("token not claimable")

type QRAccess interface {
	Insert(ctx context.Context, model model.QRToken) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.QRToken, error)
	ClaimToken(ctx context.Context, token string, now time.Time) (model.QRToken, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.QRToken]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) QRAccess {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.QRToken](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// ClaimToken marks a token as used in a single conditional update, so exactly one
// caller wins even when the same code is scanned concurrently. Losing callers get
// ErrTokenNotClaimable.
func (repo *repositoryImpl) ClaimToken(ctx context.Context, token string, now time.Time) (model.QRToken, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".qr_token.ClaimToken")
	defer scope.End()

	query := fmt.Sprintf(
		`UPDATE %s SET used_at = $2, modified_at = $2
		WHERE token = $1 AND used_at IS NULL AND expires_at > $2
		RETURNING id, business_id, staff_id, token, expires_at, used_at, created_at, modified_at, created_by, modified_by`,
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var claimed model.QRToken

	err := repo.db.Write.GetContext(ctx, &claimed, query, token, now)
	if errors.Is(err, sql.ErrNoRows) {
		return claimed, ErrTokenNotClaimable
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return claimed, fmt.Errorf("failed to claim token: %w", err)
	}

	return claimed, nil
}
