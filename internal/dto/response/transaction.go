package response

import (
	"time"

	"bike-rental/internal/data/entity"

	"github.com/shopspring/decimal"
)

type TransactionResponse struct {
	ID            string                   `json:"id"`
	BookingID     string                   `json:"booking_id"`
	UserID        string                   `json:"user_id"`
	BikeName      string                   `json:"bike_name,omitempty"`
	CustomerName  string                   `json:"customer_name,omitempty"`
	Amount        decimal.Decimal          `json:"amount"`
	PaymentMethod string                   `json:"payment_method"`
	CardLastFour  string                   `json:"card_last_four"`
	CardBrand     string                   `json:"card_brand"`
	Currency      string                   `json:"currency"`
	Status        entity.TransactionStatus `json:"transaction_status"`
	TransactionID string                   `json:"transaction_id"`
	CreatedAt     time.Time                `json:"created_at"`
}

type TestCardResponse struct {
	Number      string `json:"number"`
	Brand       string `json:"brand"`
	Description string `json:"description"`
}

func TransactionToResponse(txn *entity.PaymentTransaction) TransactionResponse {
	return TransactionResponse{
		ID:            txn.ID.String(),
		BookingID:     txn.BookingID.String(),
		UserID:        txn.UserID.String(),
		Amount:        txn.Amount,
		PaymentMethod: txn.PaymentMethod,
		CardLastFour:  txn.CardLastFour,
		CardBrand:     txn.CardBrand,
		Currency:      txn.Currency,
		Status:        txn.Status,
		TransactionID: txn.TransactionID,
		CreatedAt:     txn.CreatedAt,
	}
}

func TransactionDetailToResponse(detail *entity.TransactionDetail) TransactionResponse {
	resp := TransactionToResponse(&detail.PaymentTransaction)
	resp.BikeName = detail.BikeName
	resp.CustomerName = detail.CustomerName
	return resp
}
