package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostal/config"
	jwtMocks "hostal/infras/jwt/mocks"
	"hostal/infras/otel/mocks"
	qraccessMocks "hostal/internal/domains/qraccess/mocks"
	"hostal/internal/domains/qraccess/model"
	"hostal/internal/domains/qraccess/model/dto"
	"hostal/internal/domains/qraccess/repository"
	"hostal/internal/domains/qraccess/service"
	staffMocks "hostal/internal/domains/staff/mocks"
	staffModel "hostal/internal/domains/staff/model"
	"hostal/shared/constant"
	"hostal/shared/timezone"
)

type qrFixture struct {
	svc           service.QRAccess
	mockRepo      *qraccessMocks.MockQRAccess
	mockStaffRepo *staffMocks.MockStaff
	mockJWT       *jwtMocks.MockJWT
}

func newQRFixture(t *testing.T) qrFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := qrFixture{
		mockRepo:      qraccessMocks.NewMockQRAccess(ctrl),
		mockStaffRepo: staffMocks.NewMockStaff(ctrl),
		mockJWT:       jwtMocks.NewMockJWT(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.BaseURL = "https://app.example.com"
	cfg.QR.TokenExpireMin = 15

	f.svc = service.New(f.mockRepo, f.mockStaffRepo, f.mockJWT, cfg, mocks.NewOtel())

	return f
}

func qrCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
}

func activeStaff() staffModel.Staff {
	return staffModel.Staff{
		ID:         "staff-id-123",
		BusinessID: "business-id-123",
		Name:       "Carla Muñoz",
		Email:      "carla@example.com",
		Role:       constant.RoleReception,
		Active:     true,
	}
}

func TestQRAccessService_Generate(t *testing.T) {
	req := dto.GenerateTokenRequest{
		BusinessID: "business-id-123",
		StaffID:    "staff-id-123",
	}

	t.Run("success renders a QR image", func(t *testing.T) {
		f := newQRFixture(t)

		f.mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeStaff(), nil)

		var stored model.QRToken

		f.mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, token model.QRToken) error {
				stored = token

				return nil
			})

		res, err := f.svc.Generate(qrCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, stored.Token, res.Token)
		assert.Equal(t, "https://app.example.com/v1/qr/validate?token="+stored.Token, res.AccessURL)
		assert.True(t, strings.HasPrefix(res.QRImage, "data:image/png;base64,"))
		assert.True(t, stored.ExpiresAt.After(timezone.Now()))
		assert.Nil(t, stored.UsedAt)
	})

	t.Run("staff from another business", func(t *testing.T) {
		f := newQRFixture(t)

		staff := activeStaff()
		staff.BusinessID = "other-business"
		f.mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)

		_, err := f.svc.Generate(qrCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "staff not found")
	})

	t.Run("inactive staff rejected", func(t *testing.T) {
		f := newQRFixture(t)

		staff := activeStaff()
		staff.Active = false
		f.mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(staff, nil)

		_, err := f.svc.Generate(qrCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "inactive staff cannot receive access tokens")
	})
}

func TestQRAccessService_Validate(t *testing.T) {
	req := dto.ValidateTokenRequest{Token: "33333333-3333-3333-3333-333333333333"}

	claimed := model.QRToken{
		ID:         "qr-token-id-123",
		BusinessID: "business-id-123",
		StaffID:    "staff-id-123",
		Token:      req.Token,
		ExpiresAt:  timezone.Now().Add(10 * time.Minute),
	}

	t.Run("success exchanges the token for a session", func(t *testing.T) {
		f := newQRFixture(t)

		f.mockRepo.EXPECT().ClaimToken(gomock.Any(), req.Token, gomock.Any()).Return(claimed, nil)
		f.mockStaffRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(activeStaff(), nil)
		f.mockJWT.EXPECT().
			GenerateQRSessionToken(gomock.Any(), "staff-id-123", "carla@example.com", constant.RoleReception, "business-id-123").
			Return("session-jwt", int64(900), nil)

		res, err := f.svc.Validate(qrCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, "session-jwt", res.SessionToken)
		assert.Equal(t, int64(900), res.ExpiresIn)
		assert.Equal(t, "staff-id-123", res.StaffID)
		assert.Equal(t, "business-id-123", res.BusinessID)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newQRFixture(t)

		f.mockRepo.EXPECT().ClaimToken(gomock.Any(), req.Token, gomock.Any()).Return(model.QRToken{}, repository.ErrTokenNotClaimable)
		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.QRToken{}, nil)

		_, err := f.svc.Validate(qrCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid access token")
	})

	t.Run("token already used", func(t *testing.T) {
		f := newQRFixture(t)

		usedAt := timezone.Now().Add(-time.Minute)
		used := claimed
		used.UsedAt = &usedAt

		f.mockRepo.EXPECT().ClaimToken(gomock.Any(), req.Token, gomock.Any()).Return(model.QRToken{}, repository.ErrTokenNotClaimable)
		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(used, nil)

		_, err := f.svc.Validate(qrCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "access token already used")
	})

	t.Run("token expired", func(t *testing.T) {
		f := newQRFixture(t)

		expired := claimed
		expired.ExpiresAt = timezone.Now().Add(-time.Hour)

		f.mockRepo.EXPECT().ClaimToken(gomock.Any(), req.Token, gomock.Any()).Return(model.QRToken{}, repository.ErrTokenNotClaimable)
		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(expired, nil)

		_, err := f.svc.Validate(qrCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "access token expired")
	})

	t.Run("claim error", func(t *testing.T) {
		f := newQRFixture(t)

		f.mockRepo.EXPECT().ClaimToken(gomock.Any(), req.Token, gomock.Any()).Return(model.QRToken{}, errors.New("db error"))

		_, err := f.svc.Validate(qrCtx(), req)

		assert.Error(t, err)
	})
}
