package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"lagovibes/config"
	"lagovibes/infras/otel"
	availabilityService "lagovibes/internal/domains/availability/service"
	"lagovibes/internal/domains/blockeddate/model"
	"lagovibes/internal/domains/blockeddate/model/dto"
	"lagovibes/internal/domains/blockeddate/repository"
	propertyModel "lagovibes/internal/domains/property/model"
	propertyRepo "lagovibes/internal/domains/property/repository"
	reservationModel "lagovibes/internal/domains/reservation/model"
	reservationRepo "lagovibes/internal/domains/reservation/repository"
	"lagovibes/shared"
	"lagovibes/shared/cache"
	"lagovibes/shared/constant"
	"lagovibes/shared/daterange"
	gDto "lagovibes/shared/dto"
	"lagovibes/shared/failure"
)

const (
	cacheGetAllBlockedDate = "blockeddate:gets"
	cacheCountBlockedDate  = "blockeddate:count"
)

type BlockedDate interface {
	Create(ctx context.Context, req dto.CreateBlockedDateRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBlockedDatesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteByDay(ctx context.Context, propertyID string, day time.Time) error
}

type serviceImpl struct {
	repo            repository.BlockedDate
	propertyRepo    propertyRepo.Property
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.BlockedDate, propertyRepo propertyRepo.Property, reservationRepo reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) BlockedDate {
	return &serviceImpl{
		repo:            repo,
		propertyRepo:    propertyRepo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlockedDateRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	day, err := req.Day()
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}
	day = daterange.Normalize(day)

	if err = s.ensureManageable(ctx, req.PropertyID); err != nil {
		return err
	}

	reserved, err := s.reservationRepo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    req.PropertyID,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				ArgName:  "day_end",
				Field:    reservationModel.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    day,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				ArgName:  "day_start",
				Field:    reservationModel.FieldCheckOut,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    day,
				Table:    reservationModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check reservations for the day")

		return fmt.Errorf("failed to check reservations for the day: %w", err)
	}

	if reserved {
		return failure.Conflict("the day is already taken by a reservation") // nolint:wrapcheck
	}

	alreadyBlocked, err := s.repo.Exist(ctx, s.dayFilter(req.PropertyID, day))
	if err != nil {
		log.Error().Err(err).Msg("failed to check existing blocks")

		return fmt.Errorf("failed to check existing blocks: %w", err)
	}

	if alreadyBlocked {
		return failure.Conflict("the day is already blocked") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, day)); err != nil {
		log.Error().Err(err).Msg("failed to create blocked date")

		return fmt.Errorf("failed to create blocked date: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBlockedDatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlockedDate, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for blocked dates")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocked dates")

		return res, fmt.Errorf("failed to count blocked dates: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked dates")

		return res, fmt.Errorf("failed to get blocked dates: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blocked dates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBlockedDate, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocked dates")

		return res, fmt.Errorf("failed to count blocked dates: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blocked date count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if blocked date exists")

		return fmt.Errorf("failed to check if blocked date exists: %w", err)
	}

	if !exist {
		return failure.NotFound("blocked date not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete blocked date")

		return fmt.Errorf("failed to delete blocked date: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// DeleteByDay removes the block on one calendar day of a property, the way the
// calendar UI unblocks a day without knowing the block's id.
func (s *serviceImpl) DeleteByDay(ctx context.Context, propertyID string, day time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteByDay")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.ensureManageable(ctx, propertyID); err != nil {
		return err
	}

	day = daterange.Normalize(day)
	filter := s.dayFilter(propertyID, day)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if blocked date exists")

		return fmt.Errorf("failed to check if blocked date exists: %w", err)
	}

	if !exist {
		return failure.NotFound("blocked date not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete blocked date")

		return fmt.Errorf("failed to delete blocked date: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

// ensureManageable checks the property exists and, for owner tokens, that it
// belongs to the caller.
func (s *serviceImpl) ensureManageable(ctx context.Context, propertyID string) error {
	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(propertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return failure.BadRequestFromString("property does not exist") // nolint:wrapcheck
	}

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)
	callerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if role == constant.RoleOwner && property.OwnerID != callerID {
		return failure.Forbidden("owners may only manage blocks on their own properties") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) dayFilter(propertyID string, day time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    day,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlockedDate)
		shared.InvalidateCaches(c, s.cache, cacheCountBlockedDate)
		shared.InvalidateCaches(c, s.cache, availabilityService.CacheCalendar)
	}()
}
