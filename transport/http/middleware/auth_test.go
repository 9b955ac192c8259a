package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostal/config"
	"hostal/infras/jwt"
	jwtMocks "hostal/infras/jwt/mocks"
	"hostal/infras/otel/mocks"
	"hostal/shared/constant"
	"hostal/transport/http/middleware"
)

func newAuthRouter(t *testing.T) (*chi.Mux, *jwtMocks.MockJWT, *bool) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockJWT := jwtMocks.NewMockJWT(ctrl)
	mockOtel := mocks.NewOtel()
	cfg := &config.Config{}

	authRole := middleware.NewAuthRoleMiddleware(mockJWT, mockOtel, nil, cfg)

	handlerCalled := false

	router := chi.NewRouter()
	router.Use(authRole.Auth)
	router.Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true

		w.WriteHeader(http.StatusOK)
	})

	return router, mockJWT, &handlerCalled
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		setupMock   func(mockJWT *jwtMocks.MockJWT)
		wantStatus  int
		wantHandler bool
	}{
		{
			name:       "valid token reaches the handler",
			authHeader: "Bearer valid-token",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					ValidateToken(gomock.Any(), "valid-token", jwt.AccessToken).
					Return(&jwt.Claims{
						UserID:  "user-id-123",
						Email:   "test@example.com",
						Role:    constant.RoleAdmin,
						TokenID: "token-id-123",
					}, nil)
			},
			wantStatus:  http.StatusOK,
			wantHandler: true,
		},
		{
			name:        "missing authorization header",
			authHeader:  "",
			setupMock:   func(mockJWT *jwtMocks.MockJWT) {},
			wantStatus:  http.StatusUnauthorized,
			wantHandler: false,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					ValidateToken(gomock.Any(), "bad-token", jwt.AccessToken).
					Return(nil, jwt.ErrInvalidToken)
			},
			wantStatus:  http.StatusUnauthorized,
			wantHandler: false,
		},
		{
			name:       "signed token with empty user id is rejected",
			authHeader: "Bearer empty-user-token",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					ValidateToken(gomock.Any(), "empty-user-token", jwt.AccessToken).
					Return(&jwt.Claims{
						Email: "test@example.com",
					}, nil)
			},
			wantStatus:  http.StatusUnauthorized,
			wantHandler: false,
		},
		{
			name:       "signed token with empty email is rejected",
			authHeader: "Bearer empty-email-token",
			setupMock: func(mockJWT *jwtMocks.MockJWT) {
				mockJWT.EXPECT().
					ValidateToken(gomock.Any(), "empty-email-token", jwt.AccessToken).
					Return(&jwt.Claims{
						UserID: "user-id-123",
					}, nil)
			},
			wantStatus:  http.StatusUnauthorized,
			wantHandler: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockJWT, handlerCalled := newAuthRouter(t)
			tt.setupMock(mockJWT)

			request := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				request.Header.Set(constant.RequestHeaderAuthorization, tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantHandler, *handlerCalled)
		})
	}
}
