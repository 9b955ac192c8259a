package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/skip2/go-qrcode"

	"hostal/config"
	"hostal/infras/jwt"
	"hostal/infras/otel"
	"hostal/internal/domains/qraccess/model"
	"hostal/internal/domains/qraccess/model/dto"
	"hostal/internal/domains/qraccess/repository"
	staffModel "hostal/internal/domains/staff/model"
	staffRepository "hostal/internal/domains/staff/repository"
	"hostal/shared"
	"hostal/shared/constant"
	"hostal/shared/failure"
	gModel "hostal/shared/model"
	"hostal/shared/timezone"
)

const qrImageSize = 256

type QRAccess interface {
	Generate(ctx context.Context, req dto.GenerateTokenRequest) (dto.GenerateTokenResponse, error)
	Validate(ctx context.Context, req dto.ValidateTokenRequest) (dto.ValidateTokenResponse, error)
}

type serviceImpl struct {
	repo       repository.QRAccess
	staffRepo  staffRepository.Staff
	jwtService jwt.JWT
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.QRAccess,
	staffRepo staffRepository.Staff,
	jwtService jwt.JWT,
	cfg *config.Config,
	otel otel.Otel,
) QRAccess {
	return &serviceImpl{
		repo:       repo,
		staffRepo:  staffRepo,
		jwtService: jwtService,
		cfg:        cfg,
		otel:       otel,
	}
}

// Generate mints a single-use access token for a staff member and renders it as a
// QR code the employee scans at the door.
func (s *serviceImpl) Generate(ctx context.Context, req dto.GenerateTokenRequest) (res dto.GenerateTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	staff, err := s.getStaff(ctx, req.StaffID)
	if err != nil {
		return res, err
	}

	if staff.BusinessID != req.BusinessID {
		return res, failure.NotFound("staff not found") // nolint:wrapcheck
	}

	if !staff.Active {
		return res, failure.Conflict("inactive staff cannot receive access tokens") // nolint:wrapcheck
	}

	now := timezone.Now()
	expiresAt := now.Add(time.Duration(s.cfg.QR.TokenExpireMin) * time.Minute)

	qrToken := model.QRToken{
		ID:         uuid.NewString(),
		BusinessID: req.BusinessID,
		StaffID:    req.StaffID,
		Token:      uuid.NewString(),
		ExpiresAt:  expiresAt,
		Metadata:   gModel.NewMetadata(now, user),
	}

	if err = s.repo.Insert(ctx, qrToken); err != nil {
		log.Error().Err(err).Msg("failed to insert access token")

		return res, fmt.Errorf("failed to insert access token: %w", err)
	}

	accessURL := fmt.Sprintf("%s/v1/qr/validate?token=%s", s.cfg.App.BaseURL, qrToken.Token)

	png, err := qrcode.Encode(accessURL, qrcode.Medium, qrImageSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode QR image")

		return res, fmt.Errorf("failed to encode QR image: %w", err)
	}

	res = dto.GenerateTokenResponse{
		Token:     qrToken.Token,
		AccessURL: accessURL,
		QRImage:   "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		ExpiresAt: expiresAt.Format(time.RFC3339),
	}

	return res, nil
}

// Validate claims a token exactly once and exchanges it for a session credential.
// A token that was already scanned, or whose window lapsed, is rejected.
func (s *serviceImpl) Validate(ctx context.Context, req dto.ValidateTokenRequest) (res dto.ValidateTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Validate")
	defer scope.End()
	defer scope.TraceIfError(err)

	claimed, err := s.repo.ClaimToken(ctx, req.Token, timezone.Now())
	if errors.Is(err, repository.ErrTokenNotClaimable) {
		return res, s.rejectToken(ctx, req.Token)
	}

	if err != nil {
		log.Error().Err(err).Msg("failed to claim access token")

		return res, fmt.Errorf("failed to claim access token: %w", err)
	}

	staff, err := s.getStaff(ctx, claimed.StaffID)
	if err != nil {
		return res, err
	}

	sessionToken, expiresIn, err := s.jwtService.GenerateQRSessionToken(ctx, staff.ID, staff.Email, staff.Role, claimed.BusinessID)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate session token")

		return res, fmt.Errorf("failed to generate session token: %w", err)
	}

	res = dto.ValidateTokenResponse{
		SessionToken: sessionToken,
		ExpiresIn:    expiresIn,
		StaffID:      claimed.StaffID,
		BusinessID:   claimed.BusinessID,
	}

	return res, nil
}

// rejectToken turns a failed claim into the precise unauthorized reason.
func (s *serviceImpl) rejectToken(ctx context.Context, token string) error {
	existing, err := s.repo.Get(ctx, shared.FilterByID(token, model.FieldToken, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to look up access token")

		return fmt.Errorf("failed to look up access token: %w", err)
	}

	switch {
	case existing.ID == constant.Empty:
		return failure.Unauthorized("invalid access token") // nolint:wrapcheck
	case existing.UsedAt != nil:
		return failure.Unauthorized("access token already used") // nolint:wrapcheck
	default:
		return failure.Unauthorized("access token expired") // nolint:wrapcheck
	}
}

func (s *serviceImpl) getStaff(ctx context.Context, staffID string) (staffModel.Staff, error) {
	staff, err := s.staffRepo.Get(ctx, shared.FilterByID(staffID, staffModel.FieldID, staffModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get staff")

		return staff, fmt.Errorf("failed to get staff: %w", err)
	}

	if staff.ID == constant.Empty {
		return staff, failure.NotFound("staff not found") // nolint:wrapcheck
	}

	return staff, nil
}
