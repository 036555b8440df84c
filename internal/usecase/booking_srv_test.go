package usecase_test

import (
	"context"
	"errors"
	"testing"

	"bike-rental/internal/data/entity"
	"bike-rental/internal/dto/request"
	"bike-rental/internal/usecase"
	"bike-rental/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestCreateBookingSuccess(t *testing.T) {
	bike := testBike("500.00")
	userID := uuid.New()

	var created *entity.Booking
	repo := repoWith(
		&bookingRepoMock{
			createFn: func(ctx context.Context, booking *entity.Booking) error {
				created = booking
				return nil
			},
		},
		&bikeRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Bike, error) {
				if id != bike.ID {
					t.Errorf("looked up bike %s, want %s", id, bike.ID)
				}
				return bike, nil
			},
		},
		&transactionRepoMock{}, nil,
	)

	svc := usecase.NewBookingService(repo, zap.NewNop())

	resp, err := svc.CreateBooking(context.Background(), userID.String(), &request.CreateBookingRequest{
		BikeID:    bike.ID.String(),
		StartDate: futureDate(1).Format(testDateLayout),
		EndDate:   futureDate(3).Format(testDateLayout),
	})
	if err != nil {
		t.Fatalf("CreateBooking: %v", err)
	}

	if created == nil {
		t.Fatal("booking was never persisted")
	}
	if created.TotalDays != 3 {
		t.Errorf("total days = %d, want 3", created.TotalDays)
	}
	if want := decimal.RequireFromString("1500.00"); !created.TotalPrice.Equal(want) {
		t.Errorf("total price = %s, want %s", created.TotalPrice, want)
	}
	if created.PaymentStatus != entity.PaymentStatusPending {
		t.Errorf("payment status = %s, want pending", created.PaymentStatus)
	}
	if created.BookingStatus != entity.BookingStatusActive {
		t.Errorf("booking status = %s, want active", created.BookingStatus)
	}
	if created.UserID != userID {
		t.Errorf("user id = %s, want %s", created.UserID, userID)
	}

	if resp.BikeName != bike.Name {
		t.Errorf("response bike name = %q, want %q", resp.BikeName, bike.Name)
	}
	if resp.TotalDays != 3 {
		t.Errorf("response total days = %d, want 3", resp.TotalDays)
	}
}

func TestCreateBookingRejectsPastStart(t *testing.T) {
	bike := testBike("500.00")
	repo := repoWith(
		&bookingRepoMock{
			createFn: func(ctx context.Context, booking *entity.Booking) error {
				t.Fatal("booking must not be persisted when the start date is invalid")
				return nil
			},
		},
		&bikeRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Bike, error) {
				return bike, nil
			},
		},
		&transactionRepoMock{}, nil,
	)

	svc := usecase.NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), &request.CreateBookingRequest{
		BikeID:    bike.ID.String(),
		StartDate: futureDate(-1).Format(testDateLayout),
		EndDate:   futureDate(3).Format(testDateLayout),
	})
	if err == nil {
		t.Fatal("expected error for past start date")
	}
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateBookingRejectsEndBeforeStart(t *testing.T) {
	bike := testBike("500.00")
	repo := repoWith(
		&bookingRepoMock{
			createFn: func(ctx context.Context, booking *entity.Booking) error {
				t.Fatal("booking must not be persisted with an inverted date range")
				return nil
			},
		},
		&bikeRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Bike, error) {
				return bike, nil
			},
		},
		&transactionRepoMock{}, nil,
	)

	svc := usecase.NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), &request.CreateBookingRequest{
		BikeID:    bike.ID.String(),
		StartDate: futureDate(5).Format(testDateLayout),
		EndDate:   futureDate(3).Format(testDateLayout),
	})
	if err == nil {
		t.Fatal("expected error for end date before start date")
	}
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateBookingBikeNotFound(t *testing.T) {
	repo := repoWith(
		&bookingRepoMock{},
		&bikeRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Bike, error) {
				return nil, nil
			},
		},
		&transactionRepoMock{}, nil,
	)

	svc := usecase.NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), &request.CreateBookingRequest{
		BikeID:    uuid.NewString(),
		StartDate: futureDate(1).Format(testDateLayout),
		EndDate:   futureDate(3).Format(testDateLayout),
	})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestCreateBookingBikeUnavailable(t *testing.T) {
	bike := testBike("500.00")
	bike.Available = false

	repo := repoWith(
		&bookingRepoMock{},
		&bikeRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Bike, error) {
				return bike, nil
			},
		},
		&transactionRepoMock{}, nil,
	)

	svc := usecase.NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), &request.CreateBookingRequest{
		BikeID:    bike.ID.String(),
		StartDate: futureDate(1).Format(testDateLayout),
		EndDate:   futureDate(3).Format(testDateLayout),
	})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateBookingPersistFailure(t *testing.T) {
	bike := testBike("500.00")
	repo := repoWith(
		&bookingRepoMock{
			createFn: func(ctx context.Context, booking *entity.Booking) error {
				return errors.New("connection refused")
			},
		},
		&bikeRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Bike, error) {
				return bike, nil
			},
		},
		&transactionRepoMock{}, nil,
	)

	svc := usecase.NewBookingService(repo, zap.NewNop())

	_, err := svc.CreateBooking(context.Background(), uuid.NewString(), &request.CreateBookingRequest{
		BikeID:    bike.ID.String(),
		StartDate: futureDate(1).Format(testDateLayout),
		EndDate:   futureDate(3).Format(testDateLayout),
	})
	if !apperr.IsKind(err, apperr.KindPersistence) {
		t.Errorf("expected persistence error, got %v", err)
	}
}
