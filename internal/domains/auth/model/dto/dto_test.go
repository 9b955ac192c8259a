package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hostal/infras/jwt"
	"hostal/internal/domains/auth/model/dto"
	"hostal/shared/constant"
	"hostal/shared/timezone"
)

func TestLoginResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "test-access-token",
		RefreshToken: "test-refresh-token",
	}

	var response dto.LoginResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestRefreshTokenResponse_FromTokenPair(t *testing.T) {
	tokenPair := &jwt.TokenPair{
		AccessToken:  "new-access-token",
		RefreshToken: "new-refresh-token",
	}

	var response dto.RefreshTokenResponse
	response.FromTokenPair(tokenPair)

	assert.Equal(t, tokenPair.AccessToken, response.AccessToken)
	assert.Equal(t, tokenPair.RefreshToken, response.RefreshToken)
}

func TestUpdateLastLoginRequest(t *testing.T) {
	now := timezone.Now()

	req := dto.UpdateLastLoginRequest{
		LastLogin: now,
	}

	assert.Equal(t, now, req.LastLogin)
}

func TestUpdatePasswordRequest(t *testing.T) {
	hashedPassword := "hashed-new-password"

	req := dto.UpdatePasswordRequest{
		Password: hashedPassword,
	}

	assert.Equal(t, hashedPassword, req.Password)
}

func TestRegisterRequest_ToUserModel(t *testing.T) {
	req := dto.RegisterRequest{
		Email:    "owner@example.com",
		Password: "plaintext",
		FullName: stringPtr("Owner"),
	}

	user := req.ToUserModel("guest", "hashed-password", "verification-token")

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "hashed-password", user.Password)
	assert.Equal(t, constant.RoleAdmin, user.Role)
	assert.False(t, user.IsVerified)
	assert.True(t, user.Active)

	if assert.NotNil(t, user.VerificationToken) {
		assert.Equal(t, "verification-token", *user.VerificationToken)
	}
}

// Helper function to create string pointer
func stringPtr(s string) *string {
	return &s
}
