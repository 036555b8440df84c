package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type BookingStatus string

const (
	BookingStatusActive    BookingStatus = "active"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// IsTerminal reports whether no further operator transition is expected.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// Booking reserves a bike for an inclusive date range. StartDate and EndDate
// are calendar dates; TotalDays and TotalPrice are fixed at creation and never
// recomputed from a later bike price.
type Booking struct {
	Base
	UserID        uuid.UUID       `db:"user_id"`
	BikeID        uuid.UUID       `db:"bike_id"`
	StartDate     time.Time       `db:"start_date"`
	EndDate       time.Time       `db:"end_date"`
	TotalDays     int             `db:"total_days"`
	TotalPrice    decimal.Decimal `db:"total_price"`
	PaymentStatus PaymentStatus   `db:"payment_status"`
	BookingStatus BookingStatus   `db:"booking_status"`
}

// BookingDetail is a booking row joined with bike and customer display
// fields. CustomerName falls back to a placeholder when the profile row is
// missing.
type BookingDetail struct {
	Booking
	BikeName     string  `db:"bike_name"`
	BikeBrand    string  `db:"bike_brand"`
	BikeModel    string  `db:"bike_model"`
	BikeImageURL *string `db:"bike_image_url"`
	CustomerName string  `db:"customer_name"`
}
