package wire

import (
	"bike-rental/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBike(r chi.Router, bikeHandler *adaptor.BikeHandler) {
	// GET /api/bikes - Available catalog (public)
	r.Get("/api/bikes", bikeHandler.GetAvailableBikes)
}
