package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostal/config"
	"hostal/infras/otel/mocks"
	businessMocks "hostal/internal/domains/business/mocks"
	staffMocks "hostal/internal/domains/staff/mocks"
	"hostal/internal/domains/staff/model"
	"hostal/internal/domains/staff/model/dto"
	"hostal/internal/domains/staff/service"
	cacheMocks "hostal/shared/cache/mocks"
	"hostal/shared/constant"
)

func newStaffService(t *testing.T) (service.Staff, *staffMocks.MockStaff, *businessMocks.MockBusiness) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := staffMocks.NewMockStaff(ctrl)
	mockBusinessRepo := businessMocks.NewMockBusiness(ctrl)

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockBusinessRepo, &config.Config{}, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockBusinessRepo
}

func staffCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
}

func TestStaffService_Create(t *testing.T) {
	req := dto.CreateStaffRequest{
		BusinessID: "11111111-1111-1111-1111-111111111111",
		Name:       "Carla Muñoz",
		Email:      "carla@example.com",
		Role:       constant.RoleHousekeeping,
	}

	t.Run("success", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newStaffService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, staff model.Staff) error {
				assert.Equal(t, constant.RoleHousekeeping, staff.Role)
				assert.True(t, staff.Active)

				return nil
			})

		res, err := svc.Create(staffCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Carla Muñoz", res.Name)
	})

	t.Run("business not found", func(t *testing.T) {
		svc, _, mockBusinessRepo := newStaffService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(staffCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "business not found")
	})

	t.Run("duplicate email within the business", func(t *testing.T) {
		svc, mockRepo, mockBusinessRepo := newStaffService(t)

		mockBusinessRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Create(staffCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "a staff member with this email already exists for this business")
	})
}

func TestStaffService_Update(t *testing.T) {
	t.Run("staff not found", func(t *testing.T) {
		svc, mockRepo, _ := newStaffService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := svc.Update(staffCtx(), dto.UpdateStaffRequest{Name: "Nuevo Nombre"}, "missing-id")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "staff not found")
	})

	t.Run("empty request", func(t *testing.T) {
		svc, _, _ := newStaffService(t)

		err := svc.Update(staffCtx(), dto.UpdateStaffRequest{}, "staff-id-123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "update request cannot be empty")
	})
}
