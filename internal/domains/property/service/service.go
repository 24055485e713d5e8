package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"lagovibes/config"
	"lagovibes/infras/otel"
	"lagovibes/infras/s3"
	availabilityService "lagovibes/internal/domains/availability/service"
	ownerModel "lagovibes/internal/domains/owner/model"
	ownerRepo "lagovibes/internal/domains/owner/repository"
	"lagovibes/internal/domains/property/model"
	"lagovibes/internal/domains/property/model/dto"
	"lagovibes/internal/domains/property/repository"
	"lagovibes/shared"
	"lagovibes/shared/cache"
	"lagovibes/shared/constant"
	gDto "lagovibes/shared/dto"
	"lagovibes/shared/failure"
	"lagovibes/shared/timezone"
)

const (
	cacheGetProperty    = "property:get"
	cacheGetAllProperty = "property:gets"
	cacheCountProperty  = "property:count"
)

type Property interface {
	Create(ctx context.Context, req dto.CreatePropertyRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetPropertiesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.PropertyResponse, error)
	Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) error
	AddImage(ctx context.Context, req dto.AddPropertyImageRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Property
	ownerRepo ownerRepo.Owner
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	s3        s3.S3
}

func New(repo repository.Property, ownerRepo ownerRepo.Owner, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Property {
	return &serviceImpl{
		repo:      repo,
		ownerRepo: ownerRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		s3:        s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreatePropertyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	ownerExist, err := s.ownerRepo.Exist(ctx, shared.FilterByID(req.OwnerID, ownerModel.FieldID, ownerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check owner existence")

		return fmt.Errorf("failed to check owner existence: %w", err)
	}

	if !ownerExist {
		return failure.BadRequestFromString("owner does not exist") // nolint:wrapcheck
	}

	var imageURLs []string
	var uploadedObjectName string
	if req.Image != nil {
		url, objectName, err := s.uploadImage(ctx, req.Image.Filename, req.ImageFile, req.Image)
		if err != nil {
			return err
		}
		imageURLs = append(imageURLs, url)
		uploadedObjectName = objectName
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, imageURLs)); err != nil {
		if uploadedObjectName != constant.Empty {
			if delErr := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, uploadedObjectName); delErr != nil {
				log.Error().Err(delErr).Str("objectName", uploadedObjectName).Msg("failed to delete file from S3")
			}
		}

		log.Error().Err(err).Msg("failed to create property")

		return fmt.Errorf("failed to create property: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetPropertiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for properties")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get properties")

		return res, fmt.Errorf("failed to get properties: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save properties to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountProperty, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count properties")

		return res, fmt.Errorf("failed to count properties: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.PropertyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetProperty, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for property")

		return res, nil
	}

	property, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return res, fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return res, failure.NotFound("property not found") // nolint:wrapcheck
	}

	res.FromModel(property)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save property to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdatePropertyRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property for update")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	if req.OwnerID != constant.Empty && req.OwnerID != current.OwnerID {
		ownerExist, err := s.ownerRepo.Exist(ctx, shared.FilterByID(req.OwnerID, ownerModel.FieldID, ownerModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check owner existence")

			return fmt.Errorf("failed to check owner existence: %w", err)
		}

		if !ownerExist {
			return failure.BadRequestFromString("owner does not exist") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update property")

		return fmt.Errorf("failed to update property: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// AddImage uploads one more image for the property and appends its URL to the
// stored list.
func (s *serviceImpl) AddImage(ctx context.Context, req dto.AddPropertyImageRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddImage")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get property for image upload")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	url, objectName, err := s.uploadImage(ctx, req.Image.Filename, req.ImageFile, req.Image)
	if err != nil {
		return err
	}

	updatedFields := map[string]any{
		model.FieldImages:        pq.StringArray(append([]string(current.Images), url)),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		if delErr := s.s3.DeleteFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, objectName); delErr != nil {
			log.Error().Err(delErr).Str("objectName", objectName).Msg("failed to delete file from S3")
		}

		log.Error().Err(err).Msg("failed to attach image to property")

		return fmt.Errorf("failed to attach image to property: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	current, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property for delete")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("property not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete property")

		return fmt.Errorf("failed to delete property: %w", err)
	}

	bucketName := s.cfg.External.S3.BucketName
	for _, imageURL := range current.Images {
		objectName := s.s3.GetObjectNameFromURL(bucketName, imageURL)
		if objectName != constant.Empty {
			if delErr := s.s3.DeleteFile(ctx, bucketName, model.EntityName, objectName); delErr != nil {
				log.Error().Err(delErr).Str("objectName", objectName).Msg("failed to delete file from S3")
			}
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) uploadImage(ctx context.Context, originalName string, file multipart.File, header *multipart.FileHeader) (url, objectName string, err error) {
	filename := uuid.NewString()

	parts := strings.Split(originalName, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	url, err = s.s3.UploadFile(ctx, s.cfg.External.S3.BucketName, model.EntityName, file, header, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return constant.Empty, constant.Empty, fmt.Errorf("failed to upload image: %w", err)
	}

	return url, filename, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetProperty, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete property from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllProperty)
		shared.InvalidateCaches(c, s.cache, cacheCountProperty)
		shared.InvalidateCaches(c, s.cache, availabilityService.CacheCalendar)
	}()
}
