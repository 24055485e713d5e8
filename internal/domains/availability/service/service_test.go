package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lagovibes/config"
	"lagovibes/infras/otel/mocks"
	"lagovibes/internal/domains/availability/model/dto"
	"lagovibes/internal/domains/availability/service"
	blockedMocks "lagovibes/internal/domains/blockeddate/mocks"
	blockedModel "lagovibes/internal/domains/blockeddate/model"
	reservationMocks "lagovibes/internal/domains/reservation/mocks"
	reservationModel "lagovibes/internal/domains/reservation/model"
	"lagovibes/shared/cache"
	cacheMocks "lagovibes/shared/cache/mocks"
)

func day(value string) time.Time {
	d, _ := time.Parse("2006-01-02", value)
	return d
}

func TestAvailabilityService_ResolveDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockBlockedRepo := blockedMocks.NewMockBlockedDate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockReservationRepo, mockBlockedRepo, cfg, mockCache, mockOtel)

	reservation := reservationModel.Reservation{
		ID:         "reservation-1",
		PropertyID: "property-1",
		CheckIn:    day("2026-03-10"),
		CheckOut:   day("2026-03-12"),
	}

	block := blockedModel.BlockedDate{
		ID:         "block-1",
		PropertyID: "property-1",
		Date:       day("2026-03-12"),
		Type:       "maintenance",
	}

	tests := []struct {
		name          string
		queryDay      time.Time
		setupMock     func()
		wantStatus    dto.DateStatus
		wantReservID  string
		wantBlockType string
		wantErr       bool
	}{
		{
			name:     "day inside a reservation is reserved",
			queryDay: day("2026-03-11"),
			setupMock: func() {
				mockReservationRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]reservationModel.Reservation{reservation}, nil)

				mockBlockedRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantStatus:   dto.StatusReserved,
			wantReservID: "reservation-1",
		},
		{
			name:     "check-out day itself counts as reserved",
			queryDay: day("2026-03-12"),
			setupMock: func() {
				mockReservationRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]reservationModel.Reservation{reservation}, nil)

				mockBlockedRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantStatus:   dto.StatusReserved,
			wantReservID: "reservation-1",
		},
		{
			name:     "reservation wins over a block on the same day",
			queryDay: day("2026-03-12"),
			setupMock: func() {
				mockReservationRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]reservationModel.Reservation{reservation}, nil)

				mockBlockedRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]blockedModel.BlockedDate{block}, nil)
			},
			wantStatus:   dto.StatusReserved,
			wantReservID: "reservation-1",
		},
		{
			name:     "blocked day with no reservation",
			queryDay: day("2026-03-12"),
			setupMock: func() {
				mockReservationRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				mockBlockedRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]blockedModel.BlockedDate{block}, nil)
			},
			wantStatus:    dto.StatusBlocked,
			wantBlockType: "maintenance",
		},
		{
			name:     "free day is available",
			queryDay: day("2026-03-20"),
			setupMock: func() {
				mockReservationRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)

				mockBlockedRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantStatus: dto.StatusAvailable,
		},
		{
			name:     "repository error propagates",
			queryDay: day("2026-03-20"),
			setupMock: func() {
				mockReservationRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.ResolveDate(context.Background(), "property-1", tt.queryDay)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Equal(t, tt.wantReservID, res.ReservationID)
			assert.Equal(t, tt.wantBlockType, res.BlockType)
		})
	}
}

func TestAvailabilityService_Calendar(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockBlockedRepo := blockedMocks.NewMockBlockedDate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockReservationRepo, mockBlockedRepo, cfg, mockCache, mockOtel)

	reservation := reservationModel.Reservation{
		ID:         "reservation-1",
		PropertyID: "property-1",
		CheckIn:    day("2026-03-10"),
		CheckOut:   day("2026-03-12"),
	}

	block := blockedModel.BlockedDate{
		ID:         "block-1",
		PropertyID: "property-1",
		Date:       day("2026-03-15"),
		Type:       "owner_use",
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).
		Return(nil).
		AnyTimes()

	mockReservationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]reservationModel.Reservation{reservation}, nil)

	mockBlockedRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]blockedModel.BlockedDate{block}, nil)

	res, err := svc.Calendar(context.Background(), "property-1", 2026, 3)

	assert.NoError(t, err)
	assert.Equal(t, "property-1", res.PropertyID)
	assert.Equal(t, 2026, res.Year)
	assert.Equal(t, 3, res.Month)
	assert.Len(t, res.Days, 31)

	byDate := make(map[string]dto.DateStatusResponse, len(res.Days))
	for _, d := range res.Days {
		byDate[d.Date] = d
	}

	assert.Equal(t, dto.StatusAvailable, byDate["2026-03-09"].Status)
	assert.Equal(t, dto.StatusReserved, byDate["2026-03-10"].Status)
	assert.Equal(t, dto.StatusReserved, byDate["2026-03-11"].Status)
	assert.Equal(t, dto.StatusReserved, byDate["2026-03-12"].Status)
	assert.Equal(t, dto.StatusAvailable, byDate["2026-03-13"].Status)
	assert.Equal(t, dto.StatusBlocked, byDate["2026-03-15"].Status)
	assert.Equal(t, "owner_use", byDate["2026-03-15"].BlockType)
}

func TestAvailabilityService_CalendarMixedLocations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockBlockedRepo := blockedMocks.NewMockBlockedDate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 60

	svc := service.New(mockReservationRepo, mockBlockedRepo, cfg, mockCache, mockOtel)

	jakarta, err := time.LoadLocation("Asia/Jakarta")
	assert.NoError(t, err)

	saoPaulo, err := time.LoadLocation("America/Sao_Paulo")
	assert.NoError(t, err)

	// Rows scanned from the database can carry the session location; the
	// calendar cells must still resolve by date label.
	reservation := reservationModel.Reservation{
		ID:         "reservation-1",
		PropertyID: "property-1",
		CheckIn:    time.Date(2026, 3, 10, 0, 0, 0, 0, jakarta),
		CheckOut:   time.Date(2026, 3, 12, 0, 0, 0, 0, jakarta),
	}

	block := blockedModel.BlockedDate{
		ID:         "block-1",
		PropertyID: "property-1",
		Date:       time.Date(2026, 3, 20, 0, 0, 0, 0, saoPaulo),
		Type:       "maintenance",
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), 60).
		Return(nil).
		AnyTimes()

	mockReservationRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]reservationModel.Reservation{reservation}, nil)

	mockBlockedRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]blockedModel.BlockedDate{block}, nil)

	res, err := svc.Calendar(context.Background(), "property-1", 2026, 3)

	assert.NoError(t, err)

	byDate := make(map[string]dto.DateStatusResponse, len(res.Days))
	for _, d := range res.Days {
		byDate[d.Date] = d
	}

	assert.Equal(t, dto.StatusReserved, byDate["2026-03-10"].Status)
	assert.Equal(t, dto.StatusReserved, byDate["2026-03-12"].Status)
	assert.Equal(t, dto.StatusAvailable, byDate["2026-03-13"].Status)
	assert.Equal(t, dto.StatusBlocked, byDate["2026-03-20"].Status)
	assert.Equal(t, "maintenance", byDate["2026-03-20"].BlockType)
}

func TestAvailabilityService_CalendarCacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockBlockedRepo := blockedMocks.NewMockBlockedDate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockReservationRepo, mockBlockedRepo, cfg, mockCache, mockOtel)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			cached, _ := value.(*dto.CalendarResponse)
			cached.PropertyID = "property-1"
			cached.Year = 2026
			cached.Month = 4

			return nil
		})

	res, err := svc.Calendar(context.Background(), "property-1", 2026, 4)

	assert.NoError(t, err)
	assert.Equal(t, 4, res.Month)
}
