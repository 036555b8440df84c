package adaptor

import (
	"bike-rental/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Bike    *BikeHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Admin   *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Bike:    NewBikeHandler(service.Bike, log),
		Booking: NewBookingHandler(service.Booking, log),
		Payment: NewPaymentHandler(service.Payment, log),
		Admin:   NewAdminHandler(service.Admin, log),
	}
}
