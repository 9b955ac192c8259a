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
	roomMocks "hostal/internal/domains/room/mocks"
	"hostal/internal/domains/room/model"
	"hostal/internal/domains/room/model/dto"
	"hostal/internal/domains/room/service"
	cacheMocks "hostal/shared/cache/mocks"
	"hostal/shared/constant"
	gDto "hostal/shared/dto"
)

type roomFixture struct {
	svc              service.Room
	mockRepo         *roomMocks.MockRoom
	mockBusinessRepo *businessMocks.MockBusiness
	mockCache        *cacheMocks.MockRedisCache
}

func newRoomFixture(t *testing.T) roomFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := roomFixture{
		mockRepo:         roomMocks.NewMockRoom(ctrl),
		mockBusinessRepo: businessMocks.NewMockBusiness(ctrl),
		mockCache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	// Cache invalidation runs on detached goroutines.
	f.mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	f.svc = service.New(f.mockRepo, f.mockBusinessRepo, &config.Config{}, f.mockCache, mocks.NewOtel())

	return f
}

func roomCtx() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-123")
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		BusinessID:    "11111111-1111-1111-1111-111111111111",
		Number:        "101",
		Floor:         1,
		RoomType:      "double",
		Capacity:      2,
		PricePerNight: 45000,
	}

	t.Run("success defaults to available", func(t *testing.T) {
		f := newRoomFixture(t)

		f.mockBusinessRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		f.mockRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, room model.Room) error {
				assert.Equal(t, model.StatusAvailable, room.Status)
				assert.Equal(t, "101", room.Number)

				return nil
			})

		res, err := f.svc.Create(roomCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, model.StatusAvailable, res.Status)
	})

	t.Run("unknown business", func(t *testing.T) {
		f := newRoomFixture(t)

		f.mockBusinessRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(roomCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "business does not exist")
	})

	t.Run("duplicate room number", func(t *testing.T) {
		f := newRoomFixture(t)

		f.mockBusinessRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := f.svc.Create(roomCtx(), req)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "room number already exists for this business")
	})
}

func TestRoomService_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newRoomFixture(t)

		f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Equal(t, model.StatusCleaning, fields[model.FieldStatus])

				return nil
			})

		err := f.svc.Update(roomCtx(), dto.UpdateRoomRequest{Status: model.StatusCleaning}, "room-id-123")

		assert.NoError(t, err)
	})

	t.Run("empty request", func(t *testing.T) {
		f := newRoomFixture(t)

		err := f.svc.Update(roomCtx(), dto.UpdateRoomRequest{}, "room-id-123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "update request cannot be empty")
	})

	t.Run("room not found", func(t *testing.T) {
		f := newRoomFixture(t)

		f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Update(roomCtx(), dto.UpdateRoomRequest{Status: model.StatusCleaning}, "missing-id")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "room not found")
	})
}

func TestRoomService_BulkUpdate(t *testing.T) {
	t.Run("failing item never aborts the batch", func(t *testing.T) {
		f := newRoomFixture(t)

		req := dto.BulkUpdateRoomsRequest{
			Items: []dto.BulkUpdateRoomItem{
				{RoomID: "room-1", Update: dto.UpdateRoomRequest{Status: model.StatusMaintenance}},
				{RoomID: "room-2", Update: dto.UpdateRoomRequest{Status: model.StatusAvailable}},
				{RoomID: "room-3", Update: dto.UpdateRoomRequest{Status: model.StatusAvailable}},
			},
		}

		gomock.InOrder(
			f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
			f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
			f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
		)
		f.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

		res, err := f.svc.BulkUpdate(roomCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Updated)
		assert.Equal(t, 1, res.Failed)
		assert.Len(t, res.Results, 3)

		assert.True(t, res.Results[0].Success)
		assert.False(t, res.Results[1].Success)
		assert.Contains(t, res.Results[1].Error, "room not found")
		assert.True(t, res.Results[2].Success)
	})

	t.Run("repository errors surface per item", func(t *testing.T) {
		f := newRoomFixture(t)

		req := dto.BulkUpdateRoomsRequest{
			Items: []dto.BulkUpdateRoomItem{
				{RoomID: "room-1", Update: dto.UpdateRoomRequest{Status: model.StatusAvailable}},
			},
		}

		f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db error"))

		res, err := f.svc.BulkUpdate(roomCtx(), req)

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Updated)
		assert.Equal(t, 1, res.Failed)
		assert.NotEmpty(t, res.Results[0].Error)
	})
}

func TestRoomService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newRoomFixture(t)

		f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.mockRepo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

		err := f.svc.Delete(roomCtx(), "room-id-123")

		assert.NoError(t, err)
	})

	t.Run("room not found", func(t *testing.T) {
		f := newRoomFixture(t)

		f.mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.svc.Delete(roomCtx(), "missing-id")

		assert.Error(t, err)
	})
}
