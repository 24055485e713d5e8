package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lagovibes/config"
	"lagovibes/infras/otel/mocks"
	blockedMocks "lagovibes/internal/domains/blockeddate/mocks"
	"lagovibes/internal/domains/blockeddate/model"
	"lagovibes/internal/domains/blockeddate/model/dto"
	"lagovibes/internal/domains/blockeddate/service"
	propertyMocks "lagovibes/internal/domains/property/mocks"
	propertyModel "lagovibes/internal/domains/property/model"
	reservationMocks "lagovibes/internal/domains/reservation/mocks"
	cacheMocks "lagovibes/shared/cache/mocks"
	"lagovibes/shared/constant"
	"lagovibes/shared/failure"
)

type blockedDateFixture struct {
	svc             service.BlockedDate
	repo            *blockedMocks.MockBlockedDate
	propertyRepo    *propertyMocks.MockProperty
	reservationRepo *reservationMocks.MockReservation
}

func newBlockedDateFixture(t *testing.T) blockedDateFixture {
	ctrl := gomock.NewController(t)

	repo := blockedMocks.NewMockBlockedDate(ctrl)
	propertyRepo := propertyMocks.NewMockProperty(ctrl)
	reservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return blockedDateFixture{
		svc:             service.New(repo, propertyRepo, reservationRepo, cfg, mockCache, mockOtel),
		repo:            repo,
		propertyRepo:    propertyRepo,
		reservationRepo: reservationRepo,
	}
}

func TestBlockedDateService_Create(t *testing.T) {
	property := propertyModel.Property{
		ID:      "property-1",
		Name:    "Casa do Lago",
		OwnerID: "owner-1",
	}

	req := dto.CreateBlockedDateRequest{
		PropertyID: "property-1",
		Date:       "2026-04-05",
	}

	t.Run("blocks a free day", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.reservationRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		var inserted model.BlockedDate

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.BlockedDate) error {
				inserted = m

				return nil
			})

		err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "property-1", inserted.PropertyID)
		assert.Equal(t, model.TypeOwnerBlock, inserted.Type)
	})

	t.Run("rejects a day taken by a reservation", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.reservationRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rejects an already blocked day", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.reservationRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rejects unknown property", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(propertyModel.Property{}, nil)

		err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("owner may block their own property", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-1")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleOwner)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.reservationRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Create(ctx, req)

		assert.NoError(t, err)
	})

	t.Run("owner may not block someone else's property", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-2")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleOwner)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		err := f.svc.Create(ctx, req)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestBlockedDateService_DeleteByDay(t *testing.T) {
	property := propertyModel.Property{
		ID:      "property-1",
		OwnerID: "owner-1",
	}

	day := time.Date(2026, 4, 5, 0, 0, 0, 0, time.UTC)

	t.Run("unblocks an existing day", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.DeleteByDay(context.Background(), "property-1", day)

		assert.NoError(t, err)
	})

	t.Run("not found when the day is not blocked", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.DeleteByDay(context.Background(), "property-1", day)

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})

	t.Run("owner scoping applies to unblocking too", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "owner-2")
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, constant.RoleOwner)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		err := f.svc.DeleteByDay(ctx, "property-1", day)

		assert.Error(t, err)
		assert.Equal(t, 403, failure.GetCode(err))
	})
}

func TestBlockedDateService_Delete(t *testing.T) {
	t.Run("deletes by id", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(context.Background(), "block-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newBlockedDateFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
