package wire

import (
	"bike-rental/internal/adaptor"
	"bike-rental/internal/data/repository"
	"bike-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/bookings - Create new booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - View the caller's booking history
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)

		// POST /api/bookings/{id}/pay - Run the payment capture flow
		r.Post("/api/bookings/{id}/pay", paymentHandler.Pay)
	})

	// ==================== PUBLIC ROUTES ====================
	// GET /api/payment/test-cards - Development form-fill shortcuts
	r.Get("/api/payment/test-cards", paymentHandler.GetTestCards)
}
