package usecase

import (
	"bike-rental/internal/data/repository"
	"bike-rental/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Bike    BikeService
	Booking BookingService
	Payment PaymentService
	Admin   AdminService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	gateway := NewSimulatedGateway(config.Payment)

	return &Service{
		Bike:    NewBikeService(repo, log),
		Booking: NewBookingService(repo, log),
		Payment: NewPaymentService(repo, gateway, config, log),
		Admin:   NewAdminService(repo, log),
	}
}
