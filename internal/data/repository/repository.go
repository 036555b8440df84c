package repository

import (
	"bike-rental/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Bike        BikeRepository
	Booking     BookingRepository
	Transaction TransactionRepository
	Settlement  SettlementRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Bike:        NewBikeRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		Transaction: NewTransactionRepository(db, log),
		Settlement:  NewSettlementRepository(db, log),
	}
}
