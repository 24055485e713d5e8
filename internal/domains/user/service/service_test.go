package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lagovibes/config"
	"lagovibes/infras/otel/mocks"
	userMocks "lagovibes/internal/domains/user/mocks"
	"lagovibes/internal/domains/user/model"
	"lagovibes/internal/domains/user/model/dto"
	"lagovibes/internal/domains/user/service"
	"lagovibes/shared/cache"
	cacheMocks "lagovibes/shared/cache/mocks"
	"lagovibes/shared/constant"
	"lagovibes/shared/failure"
	"lagovibes/shared/password"
)

type userFixture struct {
	svc   service.User
	repo  *userMocks.MockUser
	cache *cacheMocks.MockRedisCache
}

func newUserFixture(t *testing.T) userFixture {
	ctrl := gomock.NewController(t)

	repo := userMocks.NewMockUser(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return userFixture{
		svc:   service.New(repo, cfg, mockCache, mockOtel),
		repo:  repo,
		cache: mockCache,
	}
}

func TestUserService_Create(t *testing.T) {
	req := dto.CreateUserRequest{
		Email:    "staff@example.com",
		Password: "supersecret",
	}

	t.Run("creates a limited admin by default", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		var inserted model.User

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.User) error {
				inserted = m

				return nil
			})

		err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, constant.RoleAdminLimited, inserted.Level)
		assert.True(t, inserted.Active)
		assert.NoError(t, password.Verify("supersecret", inserted.Password))
	})

	t.Run("rejects an already registered email", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("returns the user on cache miss", func(t *testing.T) {
		f := newUserFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{ID: "user-1", Email: "staff@example.com", Level: constant.RoleAdminMaster}, nil)

		res, err := f.svc.Get(context.Background(), "user-1")

		assert.NoError(t, err)
		assert.Equal(t, "staff@example.com", res.Email)
		assert.Equal(t, constant.RoleAdminMaster, res.Level)
	})

	t.Run("not found", func(t *testing.T) {
		f := newUserFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.User{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_Update(t *testing.T) {
	level := constant.RoleAdminMaster

	t.Run("updates an existing user", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Update(context.Background(), dto.UpdateUserRequest{Level: &level}, "user-1")

		assert.NoError(t, err)
	})

	t.Run("rejects an empty update", func(t *testing.T) {
		f := newUserFixture(t)

		err := f.svc.Update(context.Background(), dto.UpdateUserRequest{}, "user-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Update(context.Background(), dto.UpdateUserRequest{Level: &level}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes an existing user", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(context.Background(), "user-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newUserFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
