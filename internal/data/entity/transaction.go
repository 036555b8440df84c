package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// PaymentTransaction records the outcome of one settlement attempt. Rows are
// immutable after insert; a booking may accumulate several failed attempts
// before the completed one. Only the last four PAN digits and the derived
// brand survive the capture flow.
type PaymentTransaction struct {
	Base
	BookingID     uuid.UUID         `db:"booking_id"`
	UserID        uuid.UUID         `db:"user_id"`
	Amount        decimal.Decimal   `db:"amount"`
	PaymentMethod string            `db:"payment_method"`
	CardLastFour  string            `db:"card_last_four"`
	CardBrand     string            `db:"card_brand"`
	Currency      string            `db:"currency"`
	Status        TransactionStatus `db:"transaction_status"`
	TransactionID string            `db:"transaction_id"`
}

// TransactionDetail joins the audit row with display fields for the admin
// listing.
type TransactionDetail struct {
	PaymentTransaction
	BikeName     string `db:"bike_name"`
	CustomerName string `db:"customer_name"`
}
