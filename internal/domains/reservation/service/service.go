package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"lagovibes/config"
	"lagovibes/infras/kafka"
	"lagovibes/infras/otel"
	availabilityService "lagovibes/internal/domains/availability/service"
	blockedModel "lagovibes/internal/domains/blockeddate/model"
	blockedRepo "lagovibes/internal/domains/blockeddate/repository"
	propertyModel "lagovibes/internal/domains/property/model"
	propertyRepo "lagovibes/internal/domains/property/repository"
	"lagovibes/internal/domains/reservation/model"
	"lagovibes/internal/domains/reservation/model/dto"
	"lagovibes/internal/domains/reservation/pricing"
	"lagovibes/internal/domains/reservation/repository"
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
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

const (
	eventReservationCreated   = "reservation.created"
	eventReservationUpdated   = "reservation.updated"
	eventReservationCancelled = "reservation.cancelled"
)

// reservationEvent is the payload published to Kafka on every reservation
// write, keyed by reservation ID. Downstream consumers drive guest
// notifications from it.
type reservationEvent struct {
	Event      string `json:"event"`
	ID         string `json:"id"`
	PropertyID string `json:"property_id,omitempty"`
	ClientName string `json:"client_name,omitempty"`
	CheckIn    string `json:"check_in,omitempty"`
	CheckOut   string `json:"check_out,omitempty"`
}

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Reservation
	propertyRepo propertyRepo.Property
	blockedRepo  blockedRepo.BlockedDate
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	kafka        kafka.Client
}

func New(repo repository.Reservation, propertyRepo propertyRepo.Property, blockedRepo blockedRepo.BlockedDate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafka kafka.Client) Reservation {
	return &serviceImpl{
		repo:         repo,
		propertyRepo: propertyRepo,
		blockedRepo:  blockedRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		kafka:        kafka,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.Window()
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if daterange.Normalize(checkOut).Before(daterange.Normalize(checkIn)) {
		return failure.BadRequestFromString("check-out must not be before check-in") // nolint:wrapcheck
	}

	property, err := s.propertyRepo.Get(ctx, shared.FilterByID(req.PropertyID, propertyModel.FieldID, propertyModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get property for reservation")

		return fmt.Errorf("failed to get property: %w", err)
	}

	if property.ID == constant.Empty {
		return failure.BadRequestFromString("property does not exist") // nolint:wrapcheck
	}

	if err = s.ensureBookable(ctx, req.PropertyID, checkIn, checkOut, constant.Empty); err != nil {
		return err
	}

	totalValue := req.TotalValue
	if totalValue == 0 {
		totalValue = pricing.Total(property.WeekdayPrice, checkIn, checkOut)
	}

	ownerTotalValue := req.OwnerTotalValue
	if ownerTotalValue == 0 {
		ownerTotalValue = pricing.OwnerShare(totalValue, property.OwnerPercentage)
	}

	reservation := req.ToModel(user, checkIn, checkOut, totalValue, ownerTotalValue)

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return fmt.Errorf("failed to create reservation: %w", err)
	}

	s.invalidate(ctx, constant.Empty)
	s.publish(ctx, reservationEvent{
		Event:      eventReservationCreated,
		ID:         reservation.ID,
		PropertyID: reservation.PropertyID,
		ClientName: reservation.ClientName,
		CheckIn:    reservation.CheckIn.Format(constant.CalendarDateFormat),
		CheckOut:   reservation.CheckOut.Format(constant.CalendarDateFormat),
	})

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	current, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation for update")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if current.ID == constant.Empty {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	checkIn := current.CheckIn
	checkOut := current.CheckOut

	if req.CheckIn != "" {
		if checkIn, err = timezone.Parse(constant.CalendarDateFormat, req.CheckIn); err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid check-in date: %v", err)) // nolint:wrapcheck
		}
	}

	if req.CheckOut != "" {
		if checkOut, err = timezone.Parse(constant.CalendarDateFormat, req.CheckOut); err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid check-out date: %v", err)) // nolint:wrapcheck
		}
	}

	if daterange.Normalize(checkOut).Before(daterange.Normalize(checkIn)) {
		return failure.BadRequestFromString("check-out must not be before check-in") // nolint:wrapcheck
	}

	windowChanged := !checkIn.Equal(current.CheckIn) || !checkOut.Equal(current.CheckOut)
	if windowChanged {
		if err = s.ensureBookable(ctx, current.PropertyID, checkIn, checkOut, id); err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if windowChanged {
		updatedFields[model.FieldCheckIn] = checkIn
		updatedFields[model.FieldCheckOut] = checkOut
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
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidate(ctx, id)
	s.publish(ctx, reservationEvent{
		Event:      eventReservationUpdated,
		ID:         id,
		PropertyID: current.PropertyID,
		ClientName: current.ClientName,
		CheckIn:    checkIn.Format(constant.CalendarDateFormat),
		CheckOut:   checkOut.Format(constant.CalendarDateFormat),
	})

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx, id)
	s.publish(ctx, reservationEvent{Event: eventReservationCancelled, ID: id})

	return nil
}

// ensureBookable rejects stays whose inclusive day range collides with an
// existing reservation of the property or contains a manually blocked day.
// excludeID skips the reservation being rescheduled.
func (s *serviceImpl) ensureBookable(ctx context.Context, propertyID string, checkIn, checkOut time.Time, excludeID string) error {
	overlapFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "window_end",
				Field:    model.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    checkOut,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "window_start",
				Field:    model.FieldCheckOut,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    checkIn,
				Table:    model.TableName,
			},
		},
	}

	if excludeID != constant.Empty {
		overlapFilter.Filters = append(overlapFilter.Filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	overlapping, err := s.repo.Exist(ctx, overlapFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for overlapping reservations")

		return fmt.Errorf("failed to check for overlapping reservations: %w", err)
	}

	if overlapping {
		return failure.Conflict("the selected dates overlap an existing reservation") // nolint:wrapcheck
	}

	blockedFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    blockedModel.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    blockedModel.TableName,
			},
			gDto.Filter{
				ArgName:  "date_from",
				Field:    blockedModel.FieldDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    daterange.Normalize(checkIn),
				Table:    blockedModel.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    blockedModel.FieldDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    daterange.Normalize(checkOut),
				Table:    blockedModel.TableName,
			},
		},
	}

	blocked, err := s.blockedRepo.Exist(ctx, blockedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check for blocked dates")

		return fmt.Errorf("failed to check for blocked dates: %w", err)
	}

	if blocked {
		return failure.Conflict("the selected dates contain a blocked day") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, event reservationEvent) {
	if !s.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		msg := kafka.Message{Key: event.ID, Value: event}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.ReservationEvents, msg); err != nil {
			log.Error().Err(err).Str("event", event.Event).Msg("failed to publish reservation event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete reservation from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
		shared.InvalidateCaches(c, s.cache, availabilityService.CacheCalendar)
	}()
}
