package adaptor

import (
	"net/http"

	"bike-rental/internal/dto/request"
	"bike-rental/internal/usecase"
	"bike-rental/pkg/utils"

	"go.uber.org/zap"
)

type BikeHandler struct {
	service usecase.BikeService
	log     *zap.Logger
}

func NewBikeHandler(service usecase.BikeService, log *zap.Logger) *BikeHandler {
	return &BikeHandler{
		service: service,
		log:     log.With(zap.String("handler", "bike")),
	}
}

// GetAvailableBikes handles GET /api/bikes (public)
func (h *BikeHandler) GetAvailableBikes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bikes, err := h.service.GetAvailableBikes(r.Context(), req)
	if err != nil {
		respondError(w, h.log, err, "get available bikes")
		return
	}

	utils.ResponseSuccess(w, "success", bikes)
}
