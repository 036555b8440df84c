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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Pay handles POST /api/bookings/{id}/pay (protected)
func (h *PaymentHandler) Pay(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	bookingID := chi.URLParam(r, "id")
	if bookingID == "" {
		utils.ResponseBadRequest(w, "Booking ID is required", nil)
		return
	}

	var req request.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	transaction, err := h.service.Pay(r.Context(), userID.String(), bookingID, &req)
	if err != nil {
		respondError(w, h.log, err, "process payment")
		return
	}

	utils.ResponseCreated(w, "success", transaction)
}

// GetTestCards handles GET /api/payment/test-cards (public)
func (h *PaymentHandler) GetTestCards(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.TestCards())
}
