package usecase_test

import (
	"context"
	"testing"

	"bike-rental/internal/data/entity"
	"bike-rental/internal/dto/request"
	"bike-rental/internal/usecase"
	"bike-rental/pkg/apperr"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func TestTransitionBookingCancelsActive(t *testing.T) {
	booking := testBooking(uuid.New(), "1500.00")

	var updates int
	repo := repoWith(
		&bookingRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return booking, nil
			},
			updateStatusFn: func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
				updates++
				if status != entity.BookingStatusCancelled {
					t.Errorf("update status = %s, want cancelled", status)
				}
				return nil
			},
		},
		nil, &transactionRepoMock{}, nil,
	)

	svc := usecase.NewAdminService(repo, zap.NewNop())

	resp, err := svc.TransitionBooking(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "cancelled"})
	if err != nil {
		t.Fatalf("TransitionBooking: %v", err)
	}
	if updates != 1 {
		t.Errorf("status updates = %d, want 1", updates)
	}
	if resp.BookingStatus != entity.BookingStatusCancelled {
		t.Errorf("response status = %s, want cancelled", resp.BookingStatus)
	}
	// The operator transition never touches the payment side.
	if resp.PaymentStatus != entity.PaymentStatusPending {
		t.Errorf("payment status = %s, must stay pending", resp.PaymentStatus)
	}
}

func TestTransitionBookingRepeatIsNoOp(t *testing.T) {
	booking := testBooking(uuid.New(), "1500.00")
	booking.BookingStatus = entity.BookingStatusCancelled

	repo := repoWith(
		&bookingRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return booking, nil
			},
			updateStatusFn: func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
				t.Fatal("repeating the current status must not write")
				return nil
			},
		},
		nil, &transactionRepoMock{}, nil,
	)

	svc := usecase.NewAdminService(repo, zap.NewNop())

	resp, err := svc.TransitionBooking(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "cancelled"})
	if err != nil {
		t.Fatalf("repeated transition must succeed: %v", err)
	}
	if resp.BookingStatus != entity.BookingStatusCancelled {
		t.Errorf("response status = %s, want cancelled", resp.BookingStatus)
	}
}

func TestTransitionBookingTerminalCrossConflicts(t *testing.T) {
	booking := testBooking(uuid.New(), "1500.00")
	booking.BookingStatus = entity.BookingStatusCompleted

	repo := repoWith(
		&bookingRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return booking, nil
			},
			updateStatusFn: func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
				t.Fatal("a terminal booking must not be rewritten")
				return nil
			},
		},
		nil, &transactionRepoMock{}, nil,
	)

	svc := usecase.NewAdminService(repo, zap.NewNop())

	_, err := svc.TransitionBooking(context.Background(), booking.ID.String(), &request.UpdateBookingStatusRequest{Status: "cancelled"})
	if !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("expected conflict error, got %v", err)
	}
}

func TestTransitionBookingNotFound(t *testing.T) {
	repo := repoWith(
		&bookingRepoMock{
			findByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
				return nil, nil
			},
		},
		nil, &transactionRepoMock{}, nil,
	)

	svc := usecase.NewAdminService(repo, zap.NewNop())

	_, err := svc.TransitionBooking(context.Background(), uuid.NewString(), &request.UpdateBookingStatusRequest{Status: "completed"})
	if !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestTransitionBookingRejectsUnknownStatus(t *testing.T) {
	repo := repoWith(&bookingRepoMock{}, nil, &transactionRepoMock{}, nil)
	svc := usecase.NewAdminService(repo, zap.NewNop())

	_, err := svc.TransitionBooking(context.Background(), uuid.NewString(), &request.UpdateBookingStatusRequest{Status: "archived"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}
