package response

import (
	"time"

	"bike-rental/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BikeResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Brand       string          `json:"brand"`
	Model       string          `json:"model"`
	Type        string          `json:"type"`
	PricePerDay decimal.Decimal `json:"price_per_day"`
	Available   bool            `json:"available"`
	ImageURL    *string         `json:"image_url,omitempty"`
	Description *string         `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

func BikeToResponse(bike *entity.Bike) BikeResponse {
	return BikeResponse{
		ID:          bike.ID.String(),
		Name:        bike.Name,
		Brand:       bike.Brand,
		Model:       bike.Model,
		Type:        bike.Type,
		PricePerDay: bike.PricePerDay,
		Available:   bike.Available,
		ImageURL:    bike.ImageURL,
		Description: bike.Description,
		CreatedAt:   bike.CreatedAt,
	}
}
