package adaptor

import (
	"encoding/json"
	"net/http"

	"bike-rental/internal/dto/request"
	"bike-rental/internal/usecase"
	"bike-rental/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// ListBookings handles GET /api/admin/bookings (admin only)
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListBookings(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateBookingStatus handles PUT /api/admin/bookings/{id}/status (admin only)
func (h *AdminHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.TransitionBooking(r.Context(), bookingID, &req)
	if err != nil {
		respondError(w, h.log, err, "transition booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// ListTransactions handles GET /api/admin/transactions (admin only)
func (h *AdminHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	transactions, err := h.service.ListTransactions(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "list transactions")
		return
	}

	utils.ResponseSuccess(w, "success", transactions)
}
