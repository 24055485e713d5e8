package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lagovibes/config"
	"lagovibes/infras/otel"
	"lagovibes/internal/domains/owner/model"
	"lagovibes/internal/domains/owner/model/dto"
	"lagovibes/internal/domains/owner/repository"
	propertyModel "lagovibes/internal/domains/property/model"
	propertyRepo "lagovibes/internal/domains/property/repository"
	"lagovibes/shared"
	"lagovibes/shared/cache"
	"lagovibes/shared/constant"
	gDto "lagovibes/shared/dto"
	"lagovibes/shared/failure"
	"lagovibes/shared/password"
)

const (
	cacheGetOwner    = "owner:get"
	cacheGetAllOwner = "owner:gets"
	cacheCountOwner  = "owner:count"
)

type Owner interface {
	Create(ctx context.Context, req dto.CreateOwnerRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetOwnersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.OwnerDetailResponse, error)
	Update(ctx context.Context, req dto.UpdateOwnerRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Owner
	propertyRepo propertyRepo.Property
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(repo repository.Owner, propertyRepo propertyRepo.Property, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Owner {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateOwnerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	emailTaken, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.Email,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check owner email")

		return fmt.Errorf("failed to check owner email: %w", err)
	}

	if emailTaken {
		return failure.Conflict("an owner with this email already exists") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Credential)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash owner credential")

		return fmt.Errorf("failed to hash owner credential: %w", err)
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, hashed)); err != nil {
		log.Error().Err(err).Msg("failed to create owner")

		return fmt.Errorf("failed to create owner: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOwner)
		shared.InvalidateCaches(c, s.cache, cacheCountOwner)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetOwnersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOwner, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for owners")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count owners")

		return res, fmt.Errorf("failed to count owners: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get owners")

		return res, fmt.Errorf("failed to get owners: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save owners to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountOwner, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count owners")

		return res, fmt.Errorf("failed to count owners: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save owner count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.OwnerDetailResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOwner, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for owner")

		return res, nil
	}

	owner, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get owner")

		return res, fmt.Errorf("failed to get owner: %w", err)
	}

	if owner.ID == constant.Empty {
		return res, failure.NotFound("owner not found") // nolint:wrapcheck
	}

	properties, err := s.propertyRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    propertyModel.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    propertyModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get owner properties")

		return res, fmt.Errorf("failed to get owner properties: %w", err)
	}

	res.FromModels(owner, properties)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save owner to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateOwnerRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if owner exists")

		return fmt.Errorf("failed to check if owner exists: %w", err)
	}

	if !exist {
		return failure.NotFound("owner not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update owner")

		return fmt.Errorf("failed to update owner: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if owner exists")

		return fmt.Errorf("failed to check if owner exists: %w", err)
	}

	if !exist {
		return failure.NotFound("owner not found") // nolint:wrapcheck
	}

	ownsProperties, err := s.propertyRepo.Exist(ctx, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    propertyModel.FieldOwnerID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    propertyModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check owner properties")

		return fmt.Errorf("failed to check owner properties: %w", err)
	}

	if ownsProperties {
		return failure.Conflict("owner still has properties assigned") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete owner")

		return fmt.Errorf("failed to delete owner: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOwner, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete owner from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOwner)
		shared.InvalidateCaches(c, s.cache, cacheCountOwner)
	}()
}
