package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"lagovibes/config"
	"lagovibes/infras/otel"
	"lagovibes/internal/domains/availability/model/dto"
	blockedModel "lagovibes/internal/domains/blockeddate/model"
	blockedRepo "lagovibes/internal/domains/blockeddate/repository"
	reservationModel "lagovibes/internal/domains/reservation/model"
	reservationRepo "lagovibes/internal/domains/reservation/repository"
	"lagovibes/shared"
	"lagovibes/shared/cache"
	"lagovibes/shared/constant"
	"lagovibes/shared/daterange"
	gDto "lagovibes/shared/dto"
	"lagovibes/shared/timezone"
)

const (
	// CacheCalendar is the calendar cache prefix; reservation and
	// blocked-date writes invalidate it.
	CacheCalendar = "availability:calendar"
)

// Availability resolves the booking status of calendar days. It is a pure
// read over the reservation and blocked-date collections: reservations win
// over blocks, blocks win over free days.
type Availability interface {
	ResolveDate(ctx context.Context, propertyID string, day time.Time) (dto.DateStatusResponse, error)
	Calendar(ctx context.Context, propertyID string, year, month int) (dto.CalendarResponse, error)
}

type serviceImpl struct {
	reservationRepo reservationRepo.Reservation
	blockedRepo     blockedRepo.BlockedDate
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(reservationRepo reservationRepo.Reservation, blockedRepo blockedRepo.BlockedDate, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		reservationRepo: reservationRepo,
		blockedRepo:     blockedRepo,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

func (s *serviceImpl) ResolveDate(ctx context.Context, propertyID string, day time.Time) (res dto.DateStatusResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	day = daterange.Normalize(day)

	reservations, blocks, err := s.load(ctx, propertyID, day, day)
	if err != nil {
		return res, err
	}

	return resolveDay(propertyID, day, reservations, blocks), nil
}

func (s *serviceImpl) Calendar(ctx context.Context, propertyID string, year, month int) (res dto.CalendarResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Calendar")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(CacheCalendar, propertyID, fmt.Sprintf("%04d-%02d", year, month))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability calendar")

		return res, nil
	}

	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.GetLocation())
	last := first.AddDate(0, 1, -1)

	reservations, blocks, err := s.load(ctx, propertyID, first, last)
	if err != nil {
		return res, err
	}

	res = dto.CalendarResponse{
		PropertyID: propertyID,
		Year:       year,
		Month:      month,
		Days:       make([]dto.DateStatusResponse, 0, last.Day()),
	}

	for _, day := range daterange.Days(first, last) {
		res.Days = append(res.Days, resolveDay(propertyID, day, reservations, blocks))
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability calendar to cache")
		}
	}()

	return res, nil
}

// load fetches the property's reservations whose inclusive stay touches
// [from, to] and its blocks inside that window.
func (s *serviceImpl) load(ctx context.Context, propertyID string, from, to time.Time) ([]reservationModel.Reservation, []blockedModel.BlockedDate, error) {
	reservationFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldPropertyID,
				Operator: gDto.FilterOperatorEq,
				Value:    propertyID,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				ArgName:  "window_end",
				Field:    reservationModel.FieldCheckIn,
				Operator: gDto.FilterOperatorLessEq,
				Value:    to,
				Table:    reservationModel.TableName,
			},
			gDto.Filter{
				ArgName:  "window_start",
				Field:    reservationModel.FieldCheckOut,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    from,
				Table:    reservationModel.TableName,
			},
		},
	}

	reservations, err := s.reservationRepo.GetAll(ctx, gDto.QueryParams{}, reservationFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load reservations for availability")

		return nil, nil, fmt.Errorf("failed to load reservations: %w", err)
	}

	blockFilter := gDto.FilterGroup{
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
				Value:    from,
				Table:    blockedModel.TableName,
			},
			gDto.Filter{
				ArgName:  "date_to",
				Field:    blockedModel.FieldDate,
				Operator: gDto.FilterOperatorLessEq,
				Value:    to,
				Table:    blockedModel.TableName,
			},
		},
	}

	blocks, err := s.blockedRepo.GetAll(ctx, gDto.QueryParams{}, blockFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to load blocked dates for availability")

		return nil, nil, fmt.Errorf("failed to load blocked dates: %w", err)
	}

	return reservations, blocks, nil
}

// resolveDay classifies one calendar day. Reservations are scanned first
// with inclusive containment (the check-out day itself counts as occupied);
// the first match wins, so overlapping reservations, a data-integrity bug
// upstream, resolve deterministically. Only then are manual blocks
// considered, and otherwise the day is free.
func resolveDay(propertyID string, day time.Time, reservations []reservationModel.Reservation, blocks []blockedModel.BlockedDate) dto.DateStatusResponse {
	for _, reservation := range reservations {
		if daterange.WithinInclusive(day, reservation.CheckIn, reservation.CheckOut) {
			res := dto.NewDateStatus(propertyID, day, dto.StatusReserved)
			res.ReservationID = reservation.ID

			return res
		}
	}

	for _, block := range blocks {
		if daterange.SameDay(day, block.Date) {
			res := dto.NewDateStatus(propertyID, day, dto.StatusBlocked)
			res.BlockType = block.Type

			return res
		}
	}

	return dto.NewDateStatus(propertyID, day, dto.StatusAvailable)
}
