package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"lagovibes/config"
	kafkaMocks "lagovibes/infras/kafka/mocks"
	"lagovibes/infras/otel/mocks"
	blockedMocks "lagovibes/internal/domains/blockeddate/mocks"
	propertyMocks "lagovibes/internal/domains/property/mocks"
	propertyModel "lagovibes/internal/domains/property/model"
	reservationMocks "lagovibes/internal/domains/reservation/mocks"
	"lagovibes/internal/domains/reservation/model"
	"lagovibes/internal/domains/reservation/model/dto"
	"lagovibes/internal/domains/reservation/service"
	cacheMocks "lagovibes/shared/cache/mocks"
	"lagovibes/shared/failure"
	"lagovibes/shared/payment"
)

type reservationFixture struct {
	svc          service.Reservation
	repo         *reservationMocks.MockReservation
	propertyRepo *propertyMocks.MockProperty
	blockedRepo  *blockedMocks.MockBlockedDate
	cache        *cacheMocks.MockRedisCache
}

func newReservationFixture(t *testing.T) reservationFixture {
	ctrl := gomock.NewController(t)

	repo := reservationMocks.NewMockReservation(ctrl)
	propertyRepo := propertyMocks.NewMockProperty(ctrl)
	blockedRepo := blockedMocks.NewMockBlockedDate(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return reservationFixture{
		svc:          service.New(repo, propertyRepo, blockedRepo, cfg, mockCache, mockOtel, mockKafka),
		repo:         repo,
		propertyRepo: propertyRepo,
		blockedRepo:  blockedRepo,
		cache:        mockCache,
	}
}

func TestReservationService_Create(t *testing.T) {
	property := propertyModel.Property{
		ID:              "property-1",
		Name:            "Casa do Lago",
		WeekdayPrice:    500,
		OwnerPercentage: 70,
	}

	baseReq := dto.CreateReservationRequest{
		PropertyID:  "property-1",
		ClientName:  "Joao Pereira",
		ClientPhone: "+5511999990000",
		CheckIn:     "2026-03-10",
		CheckOut:    "2026-03-13",
		Guests:      2,
	}

	t.Run("prices from the weekday rate when total is omitted", func(t *testing.T) {
		f := newReservationFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.blockedRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		var inserted model.Reservation

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.Reservation) error {
				inserted = m

				return nil
			})

		err := f.svc.Create(context.Background(), baseReq)

		assert.NoError(t, err)
		// 3 nights at 500
		assert.Equal(t, float64(1500), inserted.TotalValue)
		// 70% owner share
		assert.Equal(t, float64(1050), inserted.OwnerTotalValue)
		assert.Equal(t, payment.StatusPending, inserted.PaymentStatus)
	})

	t.Run("keeps an explicit total value", func(t *testing.T) {
		f := newReservationFixture(t)

		req := baseReq
		req.TotalValue = 2000
		req.PaidValue = 2000

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.blockedRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		var inserted model.Reservation

		f.repo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m model.Reservation) error {
				inserted = m

				return nil
			})

		err := f.svc.Create(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, float64(2000), inserted.TotalValue)
		assert.Equal(t, float64(1400), inserted.OwnerTotalValue)
		assert.Equal(t, payment.StatusPaid, inserted.PaymentStatus)
	})

	t.Run("rejects check-out before check-in", func(t *testing.T) {
		f := newReservationFixture(t)

		req := baseReq
		req.CheckIn = "2026-03-13"
		req.CheckOut = "2026-03-10"

		err := f.svc.Create(context.Background(), req)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects unknown property", func(t *testing.T) {
		f := newReservationFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(propertyModel.Property{}, nil)

		err := f.svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 400, failure.GetCode(err))
	})

	t.Run("rejects overlapping reservation with conflict", func(t *testing.T) {
		f := newReservationFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("rejects stay containing a blocked day with conflict", func(t *testing.T) {
		f := newReservationFixture(t)

		f.propertyRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(property, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		f.blockedRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.Create(context.Background(), baseReq)

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})
}

func TestReservationService_Update(t *testing.T) {
	current := model.Reservation{
		ID:            "reservation-1",
		PropertyID:    "property-1",
		ClientName:    "Joao Pereira",
		CheckIn:       mustDay("2026-03-10"),
		CheckOut:      mustDay("2026-03-13"),
		TotalValue:    1500,
		PaidValue:     0,
		PaymentStatus: payment.StatusPending,
	}

	t.Run("recomputes payment status from partial payment", func(t *testing.T) {
		f := newReservationFixture(t)

		paid := float64(700)
		req := dto.UpdateReservationRequest{PaidValue: &paid}

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		var updated map[string]any

		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				updated = fields

				return nil
			})

		err := f.svc.Update(context.Background(), req, "reservation-1")

		assert.NoError(t, err)
		assert.Equal(t, payment.StatusPartial, updated[model.FieldPaymentStatus])
	})

	t.Run("rescheduling re-checks the window excluding itself", func(t *testing.T) {
		f := newReservationFixture(t)

		req := dto.UpdateReservationRequest{
			CheckIn:  "2026-03-20",
			CheckOut: "2026-03-22",
		}

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(current, nil)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := f.svc.Update(context.Background(), req, "reservation-1")

		assert.Error(t, err)
		assert.Equal(t, 409, failure.GetCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Reservation{}, nil)

		err := f.svc.Update(context.Background(), dto.UpdateReservationRequest{}, "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestReservationService_Delete(t *testing.T) {
	t.Run("deletes an existing reservation", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		f.repo.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil)

		err := f.svc.Delete(context.Background(), "reservation-1")

		assert.NoError(t, err)
	})

	t.Run("not found", func(t *testing.T) {
		f := newReservationFixture(t)

		f.repo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := f.svc.Delete(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func mustDay(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}

	return d
}
