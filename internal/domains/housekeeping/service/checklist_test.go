package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hostal/config"
	kafkaMocks "hostal/infras/kafka/mocks"
	"hostal/infras/otel/mocks"
	housekeepingMocks "hostal/internal/domains/housekeeping/mocks"
	housekeepingModel "hostal/internal/domains/housekeeping/model"
	"hostal/internal/domains/housekeeping/model/dto"
	"hostal/internal/domains/housekeeping/service"
	reservationMocks "hostal/internal/domains/reservation/mocks"
	roomMocks "hostal/internal/domains/room/mocks"
	roomModel "hostal/internal/domains/room/model"
	staffMocks "hostal/internal/domains/staff/mocks"
	cacheMocks "hostal/shared/cache/mocks"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
)

type housekeepingFixture struct {
	svc          service.Housekeeping
	mockRepo     *housekeepingMocks.MockHousekeeping
	mockRoomRepo *roomMocks.MockRoom
}

func newHousekeepingFixture(t *testing.T) housekeepingFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := housekeepingFixture{
		mockRepo:     housekeepingMocks.NewMockHousekeeping(ctrl),
		mockRoomRepo: roomMocks.NewMockRoom(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(
		f.mockRepo,
		reservationMocks.NewMockReservation(ctrl),
		f.mockRoomRepo,
		staffMocks.NewMockStaff(ctrl),
		kafkaMocks.NewMockPublisher(ctrl),
		&config.Config{},
		mockCache,
		mocks.NewOtel(),
	)

	return f
}

func housekeepingCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
}

func cleaningRoom() roomModel.Room {
	return roomModel.Room{
		ID:         "room-id-123",
		BusinessID: testBusinessID,
		Number:     "101",
		Status:     roomModel.StatusCleaning,
	}
}

func pendingTask() housekeepingModel.Task {
	return housekeepingModel.Task{
		ID:         "task-id-123",
		BusinessID: testBusinessID,
		RoomID:     "room-id-123",
		TaskType:   housekeepingModel.TaskTypeCheckoutCleaning,
		Priority:   housekeepingModel.PriorityMedium,
		Status:     housekeepingModel.StatusPending,
		Checklist: housekeepingModel.Checklist{
			{Description: "Cambiar sábanas y ropa de cama"},
			{Description: "Limpiar y desinfectar baño"},
		},
	}
}

func TestHousekeepingService_Create(t *testing.T) {
	req := dto.CreateTaskRequest{
		BusinessID: testBusinessID,
		RoomID:     "room-id-123",
		TaskType:   housekeepingModel.TaskTypeCheckoutCleaning,
	}

	t.Run("checkout cleaning gets the default checklist", func(t *testing.T) {
		f := newHousekeepingFixture(t)

		f.mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cleaningRoom(), nil)
		f.mockRepo.EXPECT().HasPendingCheckoutTask(gomock.Any(), "room-id-123").Return(false, nil)
		f.mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, task housekeepingModel.Task) error {
				assert.Len(t, task.Checklist, 8)
				assert.Equal(t, housekeepingModel.StatusPending, task.Status)

				return nil
			})

		res, err := f.svc.Create(housekeepingCtx(), req)

		assert.NoError(t, err)
		assert.Len(t, res.Checklist, 8)
	})

	t.Run("room with a pending checkout task is rejected", func(t *testing.T) {
		f := newHousekeepingFixture(t)

		f.mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cleaningRoom(), nil)
		f.mockRepo.EXPECT().HasPendingCheckoutTask(gomock.Any(), "room-id-123").Return(true, nil)

		_, err := f.svc.Create(housekeepingCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "room already has a pending checkout cleaning task")
	})

	t.Run("room from another business", func(t *testing.T) {
		f := newHousekeepingFixture(t)

		room := cleaningRoom()
		room.BusinessID = "other-business"
		f.mockRoomRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(room, nil)

		_, err := f.svc.Create(housekeepingCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "room not found")
	})
}

func TestHousekeepingService_UpdateChecklistItem(t *testing.T) {
	t.Run("marks the item completed", func(t *testing.T) {
		f := newHousekeepingFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingTask(), nil)
		f.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				checklist, ok := fields[housekeepingModel.FieldChecklist].(housekeepingModel.Checklist)
				assert.True(t, ok)
				assert.True(t, checklist[1].Completed)
				assert.False(t, checklist[0].Completed)

				return nil
			})

		err := f.svc.UpdateChecklistItem(housekeepingCtx(), "task-id-123", 1, true)

		assert.NoError(t, err)
	})

	t.Run("index out of range", func(t *testing.T) {
		f := newHousekeepingFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(pendingTask(), nil)

		err := f.svc.UpdateChecklistItem(housekeepingCtx(), "task-id-123", 5, true)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "checklist item index out of range")
	})

	t.Run("task not found", func(t *testing.T) {
		f := newHousekeepingFixture(t)

		f.mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(housekeepingModel.Task{}, nil)

		err := f.svc.UpdateChecklistItem(housekeepingCtx(), "missing-id", 0, true)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "housekeeping task not found")
	})
}
