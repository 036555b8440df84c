package wire

import (
	"bike-rental/internal/adaptor"
	"bike-rental/internal/data/repository"
	"bike-rental/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Require both authentication AND admin role
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/bookings - All bookings with customer and bike fields
		r.Get("/bookings", adminHandler.ListBookings)

		// PUT /api/admin/bookings/{id}/status - Operator status transition
		r.Put("/bookings/{id}/status", adminHandler.UpdateBookingStatus)

		// GET /api/admin/transactions - Payment transaction audit trail
		r.Get("/transactions", adminHandler.ListTransactions)
	})
}
