package service_test

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lagovibes/config"
	"lagovibes/infras/otel/mocks"
	s3Mocks "lagovibes/infras/s3/mocks"
	ownerMocks "lagovibes/internal/domains/owner/mocks"
	propertyMocks "lagovibes/internal/domains/property/mocks"
	"lagovibes/internal/domains/property/model"
	"lagovibes/internal/domains/property/model/dto"
	"lagovibes/internal/domains/property/service"
	"lagovibes/shared/cache"
	cacheMocks "lagovibes/shared/cache/mocks"
	"lagovibes/shared/failure"
)

type propertyFixture struct {
	svc       service.Property
	repo      *propertyMocks.MockProperty
	ownerRepo *ownerMocks.MockOwner
	s3        *s3Mocks.MockS3
	cache     *cacheMocks.MockRedisCache
}

func newPropertyFixture(t *testing.T) propertyFixture {
	ctrl := gomock.NewController(t)

	repo := propertyMocks.NewMockProperty(ctrl)
	ownerRepo := ownerMocks.NewMockOwner(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "lagovibes-media"

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return propertyFixture{
		svc:       service.New(repo, ownerRepo, cfg, mockCache, mockOtel, mockS3),
		repo:      repo,
		ownerRepo: ownerRepo,
		s3:        mockS3,
		cache:     mockCache,
	}
}

func TestPropertyService_Create(t *testing.T) {
	req := dto.CreatePropertyRequest{
		Name:         "Casa do Lago",
		Location:     "Capitolio",
		Capacity:     8,
		WeekdayPrice: 500,
		BasePrice:    500,
		OwnerID:      "owner-1",
	}

	t.Run("creates a property without image", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.ownerRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		var inserted model.Property

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.Property) error {
				inserted = m

				return nil
			})

		err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, "Casa do Lago", inserted.Name)
		assert.Equal(t, model.StatusAvailable, inserted.Status)
		assert.Empty(t, inserted.Images)
	})

	t.Run("uploads the image and stores its URL", func(t *testing.T) {
		f := newPropertyFixture(t)

		withImage := req
		withImage.Image = &multipart.FileHeader{Filename: "front.jpg"}

		f.ownerRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "lagovibes-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/properties/front.jpg", nil)

		var inserted model.Property

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.Property) error {
				inserted = m

				return nil
			})

		err := f.svc.Create(context.Background(), withImage)

		assert.NoError(t, err)
		assert.Equal(t, []string{"https://cdn.example.com/properties/front.jpg"}, []string(inserted.Images))
	})

	t.Run("removes the uploaded image when the insert fails", func(t *testing.T) {
		f := newPropertyFixture(t)

		withImage := req
		withImage.Image = &multipart.FileHeader{Filename: "front.jpg"}

		f.ownerRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "lagovibes-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/properties/front.jpg", nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		f.s3.EXPECT().
			DeleteFile(gomock.Any(), "lagovibes-media", model.EntityName, gomock.Any()).
			Return(nil)

		err := f.svc.Create(context.Background(), withImage)

		assert.Error(t, err)
	})

	t.Run("keeps the insert error when the rollback delete fails", func(t *testing.T) {
		f := newPropertyFixture(t)

		withImage := req
		withImage.Image = &multipart.FileHeader{Filename: "front.jpg"}

		f.ownerRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "lagovibes-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/properties/front.jpg", nil)

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			Return(errors.New("insert failed"))

		f.s3.EXPECT().
			DeleteFile(gomock.Any(), "lagovibes-media", model.EntityName, gomock.Any()).
			Return(errors.New("s3 delete error"))

		err := f.svc.Create(context.Background(), withImage)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "insert failed")
	})

	t.Run("rejects unknown owner", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.ownerRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})
}

func TestPropertyService_Get(t *testing.T) {
	t.Run("returns the property on cache miss", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{ID: "property-1", Name: "Casa do Lago", WeekdayPrice: 500}, nil)

		res, err := f.svc.Get(context.Background(), "property-1")

		assert.NoError(t, err)
		assert.Equal(t, "Casa do Lago", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.cache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(cache.Nil)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{}, nil)

		_, err := f.svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPropertyService_Update(t *testing.T) {
	current := model.Property{ID: "property-1", OwnerID: "owner-1"}

	t.Run("updates fields without changing the owner", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Update(context.Background(), dto.UpdatePropertyRequest{Name: "Casa Nova"}, "property-1")

		assert.NoError(t, err)
	})

	t.Run("validates the new owner on transfer", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		f.ownerRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Update(context.Background(), dto.UpdatePropertyRequest{OwnerID: "owner-2"}, "property-1")

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{}, nil)

		err := f.svc.Update(context.Background(), dto.UpdatePropertyRequest{}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPropertyService_AddImage(t *testing.T) {
	t.Run("appends the uploaded image URL", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{
				ID:     "property-1",
				Images: pq.StringArray{"https://cdn.example.com/properties/old.jpg"},
			}, nil)

		f.s3.EXPECT().
			UploadFile(gomock.Any(), "lagovibes-media", model.EntityName, gomock.Any(), gomock.Any(), gomock.Any()).
			Return("https://cdn.example.com/properties/new.jpg", nil)

		var updated map[string]any

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				updated = fields

				return nil
			})

		req := dto.AddPropertyImageRequest{Image: &multipart.FileHeader{Filename: "new.jpg"}}

		err := f.svc.AddImage(context.Background(), req, "property-1")

		assert.NoError(t, err)
		assert.Equal(t, pq.StringArray{
			"https://cdn.example.com/properties/old.jpg",
			"https://cdn.example.com/properties/new.jpg",
		}, updated[model.FieldImages])
	})

	t.Run("not found", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{}, nil)

		req := dto.AddPropertyImageRequest{Image: &multipart.FileHeader{Filename: "new.jpg"}}

		err := f.svc.AddImage(context.Background(), req, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestPropertyService_Delete(t *testing.T) {
	t.Run("deletes the property and its stored images", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{
				ID:     "property-1",
				Images: pq.StringArray{"https://cdn.example.com/properties/front.jpg"},
			}, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		f.s3.EXPECT().
			GetObjectNameFromURL("lagovibes-media", "https://cdn.example.com/properties/front.jpg").
			Return("front.jpg")

		f.s3.EXPECT().
			DeleteFile(gomock.Any(), "lagovibes-media", model.EntityName, "front.jpg").
			Return(nil)

		err := f.svc.Delete(context.Background(), "property-1")

		assert.NoError(t, err)
	})

	t.Run("succeeds even when an image cleanup fails", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{
				ID:     "property-1",
				Images: pq.StringArray{"https://cdn.example.com/properties/front.jpg"},
			}, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		f.s3.EXPECT().
			GetObjectNameFromURL("lagovibes-media", "https://cdn.example.com/properties/front.jpg").
			Return("front.jpg")

		f.s3.EXPECT().
			DeleteFile(gomock.Any(), "lagovibes-media", model.EntityName, "front.jpg").
			Return(errors.New("s3 delete error"))

		err := f.svc.Delete(context.Background(), "property-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPropertyFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Property{}, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}
