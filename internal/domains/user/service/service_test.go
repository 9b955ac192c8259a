package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostal/config"
	"hostal/infras/otel/mocks"
	userMocks "hostal/internal/domains/user/mocks"
	"hostal/internal/domains/user/model"
	"hostal/internal/domains/user/model/dto"
	"hostal/internal/domains/user/service"
	cacheMocks "hostal/shared/cache/mocks"
	"hostal/shared/constant"
	"hostal/shared/password"
)

func newUserService(t *testing.T) (service.User, *userMocks.MockUser, *cacheMocks.MockRedisCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := userMocks.NewMockUser(ctrl)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func userCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id-123")
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Email:    "new@example.com",
		Password: "secret-password",
		Role:     constant.RoleReception,
	}

	t.Run("success hashes the password", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user model.User) error {
				assert.Equal(t, constant.RoleReception, user.Role)
				assert.NotEqual(t, "secret-password", user.Password)
				assert.NoError(t, password.Verify("secret-password", user.Password))

				return nil
			})

		err := svc.Create(userCtx(), req)

		assert.NoError(t, err)
	})

	t.Run("email already registered", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		err := svc.Create(userCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email already registered")
	})

	t.Run("insert error", func(t *testing.T) {
		svc, mockRepo, _ := newUserService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		err := svc.Create(userCtx(), req)

		assert.Error(t, err)
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{}, nil)

		_, err := svc.Get(userCtx(), "missing-id")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "user not found")
	})

	t.Run("success on cache miss", func(t *testing.T) {
		svc, mockRepo, mockCache := newUserService(t)

		mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.User{ID: "user-id-123", Email: "test@example.com"}, nil)

		res, err := svc.Get(userCtx(), "user-id-123")

		assert.NoError(t, err)
		assert.Equal(t, "test@example.com", res.Email)
	})
}
