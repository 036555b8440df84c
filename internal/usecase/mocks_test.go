package usecase_test

import (
	"context"
	"errors"
	"time"

	"bike-rental/internal/data/entity"
	"bike-rental/internal/data/repository"
	"bike-rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const testDateLayout = "2006-01-02"

type bikeRepoMock struct {
	findByIDFn func(ctx context.Context, id uuid.UUID) (*entity.Bike, error)
}

func (m *bikeRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bike, error) {
	return m.findByIDFn(ctx, id)
}
func (m *bikeRepoMock) FindAllAvailable(ctx context.Context, limit, offset int) ([]*entity.Bike, error) {
	return nil, nil
}
func (m *bikeRepoMock) CountAvailable(ctx context.Context) (int64, error) { return 0, nil }

type bookingRepoMock struct {
	createFn       func(ctx context.Context, booking *entity.Booking) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	updateStatusFn func(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

func (m *bookingRepoMock) Create(ctx context.Context, booking *entity.Booking) error {
	return m.createFn(ctx, booking)
}
func (m *bookingRepoMock) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *bookingRepoMock) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.BookingDetail, error) {
	return nil, nil
}
func (m *bookingRepoMock) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}
func (m *bookingRepoMock) FindAll(ctx context.Context, limit, offset int) ([]*entity.BookingDetail, error) {
	return nil, nil
}
func (m *bookingRepoMock) Count(ctx context.Context) (int64, error) { return 0, nil }
func (m *bookingRepoMock) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	return m.updateStatusFn(ctx, bookingID, status)
}

type transactionRepoMock struct {
	createFn func(ctx context.Context, txn *entity.PaymentTransaction) error
}

func (m *transactionRepoMock) Create(ctx context.Context, txn *entity.PaymentTransaction) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, txn)
}
func (m *transactionRepoMock) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PaymentTransaction, error) {
	return nil, nil
}
func (m *transactionRepoMock) FindAll(ctx context.Context, limit, offset int) ([]*entity.TransactionDetail, error) {
	return nil, nil
}
func (m *transactionRepoMock) Count(ctx context.Context) (int64, error) { return 0, nil }

type settlementRepoMock struct {
	recordFn func(ctx context.Context, txn *entity.PaymentTransaction) error
}

func (m *settlementRepoMock) RecordSettlement(ctx context.Context, txn *entity.PaymentTransaction) error {
	return m.recordFn(ctx, txn)
}

type gatewayMock struct {
	chargeFn func(ctx context.Context, amount decimal.Decimal, card usecase.CardDetails) (string, error)
}

func (m *gatewayMock) Charge(ctx context.Context, amount decimal.Decimal, card usecase.CardDetails) (string, error) {
	return m.chargeFn(ctx, amount, card)
}

// settlementStore is an in-memory settlement unit that honors the
// both-or-neither contract: on success it flips the booking and keeps the
// transaction; when failSecondWrite is set the booking update "fails" after
// the insert, and the whole unit rolls back.
type settlementStore struct {
	booking         *entity.Booking
	completed       []*entity.PaymentTransaction
	failSecondWrite bool
}

func (s *settlementStore) RecordSettlement(ctx context.Context, txn *entity.PaymentTransaction) error {
	// stage the insert
	staged := append(s.completed, txn)

	if s.failSecondWrite {
		// booking update failed: roll the staged insert back
		return errors.New("update booking payment status: connection reset")
	}

	if s.booking.PaymentStatus != entity.PaymentStatusPending {
		return errors.New("booking is not pending payment")
	}

	s.completed = staged
	s.booking.PaymentStatus = entity.PaymentStatusPaid
	return nil
}

func futureDate(daysFromNow int) time.Time {
	return time.Now().UTC().AddDate(0, 0, daysFromNow)
}

func testBike(rate string) *entity.Bike {
	return &entity.Bike{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		Name:        "Thunderbird 350",
		Brand:       "Royal Enfield",
		Model:       "Thunderbird",
		Type:        "Cruiser",
		PricePerDay: decimal.RequireFromString(rate),
		Available:   true,
	}
}

func testBooking(userID uuid.UUID, total string) *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:        userID,
		BikeID:        uuid.New(),
		StartDate:     futureDate(1),
		EndDate:       futureDate(3),
		TotalDays:     3,
		TotalPrice:    decimal.RequireFromString(total),
		PaymentStatus: entity.PaymentStatusPending,
		BookingStatus: entity.BookingStatusActive,
	}
}

func repoWith(booking repository.BookingRepository, bike repository.BikeRepository,
	txn repository.TransactionRepository, settlement repository.SettlementRepository) *repository.Repository {
	return &repository.Repository{
		Booking:     booking,
		Bike:        bike,
		Transaction: txn,
		Settlement:  settlement,
	}
}
