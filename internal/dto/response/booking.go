package response

import (
	"time"

	"bike-rental/internal/data/entity"

	"github.com/shopspring/decimal"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"user_id"`
	BikeID        string               `json:"bike_id"`
	BikeName      string               `json:"bike_name,omitempty"`
	BikeBrand     string               `json:"bike_brand,omitempty"`
	BikeModel     string               `json:"bike_model,omitempty"`
	BikeImageURL  *string              `json:"bike_image_url,omitempty"`
	CustomerName  string               `json:"customer_name,omitempty"`
	StartDate     string               `json:"start_date"`
	EndDate       string               `json:"end_date"`
	TotalDays     int                  `json:"total_days"`
	TotalPrice    decimal.Decimal      `json:"total_price"`
	PaymentStatus entity.PaymentStatus `json:"payment_status"`
	BookingStatus entity.BookingStatus `json:"booking_status"`
	CreatedAt     time.Time            `json:"created_at"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:            booking.ID.String(),
		UserID:        booking.UserID.String(),
		BikeID:        booking.BikeID.String(),
		StartDate:     booking.StartDate.Format("2006-01-02"),
		EndDate:       booking.EndDate.Format("2006-01-02"),
		TotalDays:     booking.TotalDays,
		TotalPrice:    booking.TotalPrice,
		PaymentStatus: booking.PaymentStatus,
		BookingStatus: booking.BookingStatus,
		CreatedAt:     booking.CreatedAt,
	}
}

func BookingDetailToResponse(detail *entity.BookingDetail) BookingResponse {
	resp := BookingToResponse(&detail.Booking)
	resp.BikeName = detail.BikeName
	resp.BikeBrand = detail.BikeBrand
	resp.BikeModel = detail.BikeModel
	resp.BikeImageURL = detail.BikeImageURL
	resp.CustomerName = detail.CustomerName
	return resp
}
