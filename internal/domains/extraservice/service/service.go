package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"lagovibes/config"
	"lagovibes/infras/otel"
	"lagovibes/internal/domains/extraservice/model"
	"lagovibes/internal/domains/extraservice/model/dto"
	"lagovibes/internal/domains/extraservice/repository"
	reservationModel "lagovibes/internal/domains/reservation/model"
	reservationRepo "lagovibes/internal/domains/reservation/repository"
	"lagovibes/shared"
	"lagovibes/shared/cache"
	"lagovibes/shared/constant"
	"lagovibes/shared/daterange"
	gDto "lagovibes/shared/dto"
	"lagovibes/shared/failure"
	"lagovibes/shared/payment"
	"lagovibes/shared/timezone"
)

const (
	cacheGetExtraService    = "extraservice:get"
	cacheGetAllExtraService = "extraservice:gets"
	cacheCountExtraService  = "extraservice:count"
)

type ExtraService interface {
	Create(ctx context.Context, req dto.CreateExtraServiceRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetExtraServicesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ExtraServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateExtraServiceRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.ExtraService
	reservationRepo reservationRepo.Reservation
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(repo repository.ExtraService, reservationRepo reservationRepo.Reservation, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) ExtraService {
	return &serviceImpl{
		repo:            repo,
		reservationRepo: reservationRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateExtraServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	serviceDate, err := req.Day()
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid service date: %v", err)) // nolint:wrapcheck
	}

	reservation, err := s.reservationRepo.Get(ctx, shared.FilterByID(req.ReservationID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation for extra service")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.BadRequestFromString("reservation does not exist") // nolint:wrapcheck
	}

	if !daterange.WithinInclusive(serviceDate, reservation.CheckIn, reservation.CheckOut) {
		return failure.BadRequestFromString("service date falls outside the reservation stay") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user, reservation.PropertyID, reservation.ClientName, serviceDate)); err != nil {
		log.Error().Err(err).Msg("failed to create extra service")

		return fmt.Errorf("failed to create extra service: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetExtraServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllExtraService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for extra services")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count extra services")

		return res, fmt.Errorf("failed to count extra services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get extra services")

		return res, fmt.Errorf("failed to get extra services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save extra services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountExtraService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count extra services")

		return res, fmt.Errorf("failed to count extra services: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save extra service count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ExtraServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetExtraService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for extra service")

		return res, nil
	}

	extraService, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get extra service")

		return res, fmt.Errorf("failed to get extra service: %w", err)
	}

	if extraService.ID == constant.Empty {
		return res, failure.NotFound("extra service not found") // nolint:wrapcheck
	}

	res.FromModel(extraService)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save extra service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateExtraServiceRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get extra service for update")

		return fmt.Errorf("failed to get extra service: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("extra service not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.ServiceDate != constant.Empty {
		serviceDate, err := timezone.Parse(constant.CalendarDateFormat, req.ServiceDate)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid service date: %v", err)) // nolint:wrapcheck
		}

		reservation, err := s.reservationRepo.Get(ctx, shared.FilterByID(current.ReservationID, reservationModel.FieldID, reservationModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get reservation for extra service")

			return fmt.Errorf("failed to get reservation: %w", err)
		}

		if !daterange.WithinInclusive(serviceDate, reservation.CheckIn, reservation.CheckOut) {
			return failure.BadRequestFromString("service date falls outside the reservation stay") // nolint:wrapcheck
		}

		updatedFields[model.FieldServiceDate] = serviceDate
	}

	totalValue := current.TotalValue
	if req.TotalValue != nil {
		totalValue = *req.TotalValue
	}

	paidValue := current.PaidValue
	if req.PaidValue != nil {
		paidValue = *req.PaidValue
	}

	updatedFields[model.FieldPaymentStatus] = payment.DeriveStatus(totalValue, paidValue)

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update extra service")

		return fmt.Errorf("failed to update extra service: %w", err)
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
		log.Error().Err(err).Msg("failed to check if extra service exists")

		return fmt.Errorf("failed to check if extra service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("extra service not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete extra service")

		return fmt.Errorf("failed to delete extra service: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetExtraService, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete extra service from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllExtraService)
		shared.InvalidateCaches(c, s.cache, cacheCountExtraService)
	}()
}
