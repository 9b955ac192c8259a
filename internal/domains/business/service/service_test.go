package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostal/config"
	"hostal/infras/otel/mocks"
	businessMocks "hostal/internal/domains/business/mocks"
	"hostal/internal/domains/business/model"
	"hostal/internal/domains/business/model/dto"
	"hostal/internal/domains/business/service"
	cacheMocks "hostal/shared/cache/mocks"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
)

func newBusinessService(t *testing.T) (service.Business, *businessMocks.MockBusiness) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := businessMocks.NewMockBusiness(ctrl)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockRepo
}

func businessCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
}

func TestBusinessService_Create(t *testing.T) {
	req := dto.CreateBusinessRequest{
		Name:  "Hostal Lima SpA",
		Rut:   "76.123.456-7",
		Email: "contacto@hostal-lima.cl",
	}

	t.Run("success", func(t *testing.T) {
		svc, mockRepo := newBusinessService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, business model.Business) error {
				assert.Equal(t, "76.123.456-7", business.Rut)
				assert.True(t, business.Active)

				return nil
			})

		res, err := svc.Create(businessCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Hostal Lima SpA", res.Name)
	})

	t.Run("duplicate rut", func(t *testing.T) {
		svc, mockRepo := newBusinessService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(businessCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "a business with this RUT is already registered")
	})

	t.Run("exist error", func(t *testing.T) {
		svc, mockRepo := newBusinessService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db error"))

		_, err := svc.Create(businessCtx(), req)

		assert.Error(t, err)
	})
}

func TestBusinessService_Deactivate(t *testing.T) {
	t.Run("success flips the active flag", func(t *testing.T) {
		svc, mockRepo := newBusinessService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, false, fields[model.FieldActive])

				return nil
			})

		err := svc.Deactivate(businessCtx(), "business-id-123")

		assert.NoError(t, err)
	})

	t.Run("business not found", func(t *testing.T) {
		svc, mockRepo := newBusinessService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Deactivate(businessCtx(), "missing-id")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "business not found")
	})
}
