package repository

import (
	"context"
	"fmt"

	"bike-rental/internal/data/entity"
	"bike-rental/pkg/database"

	"go.uber.org/zap"
)

// SettlementRepository is the one place where a booking's paid flag and its
// completed transaction row are written. Both writes run inside a single
// database transaction, so a booking can never be observed paid without a
// matching completed transaction, and vice versa.
type SettlementRepository interface {
	RecordSettlement(ctx context.Context, txn *entity.PaymentTransaction) error
}

type settlementRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSettlementRepository(db database.PgxIface, log *zap.Logger) SettlementRepository {
	return &settlementRepository{
		db:  db,
		log: log.With(zap.String("repository", "settlement")),
	}
}

func (r *settlementRepository) RecordSettlement(ctx context.Context, txn *entity.PaymentTransaction) error {
	if txn.Status != entity.TransactionStatusCompleted {
		return fmt.Errorf("record settlement: transaction status must be completed, got %s", txn.Status)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin settlement transaction",
			zap.Error(err),
			zap.String("booking_id", txn.BookingID.String()),
		)
		return fmt.Errorf("begin settlement for booking %s: %w", txn.BookingID.String(), err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO payment_transactions (id, booking_id, user_id, amount, payment_method,
		                                  card_last_four, card_brand, currency, transaction_status,
		                                  transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err = tx.Exec(ctx, insertQuery,
		txn.ID,
		txn.BookingID,
		txn.UserID,
		txn.Amount,
		txn.PaymentMethod,
		txn.CardLastFour,
		txn.CardBrand,
		txn.Currency,
		txn.Status,
		txn.TransactionID,
		txn.CreatedAt,
		txn.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert settlement transaction",
			zap.Error(err),
			zap.String("booking_id", txn.BookingID.String()),
			zap.String("transaction_id", txn.TransactionID),
		)
		return fmt.Errorf("insert settlement transaction for booking %s: %w", txn.BookingID.String(), err)
	}

	// Guarded against a concurrent payment or admin write: the flip only
	// applies if the booking is still pending.
	updateQuery := `
		UPDATE bookings
		SET payment_status = $2, updated_at = NOW()
		WHERE id = $1 AND payment_status = $3
	`

	result, err := tx.Exec(ctx, updateQuery, txn.BookingID, entity.PaymentStatusPaid, entity.PaymentStatusPending)
	if err != nil {
		r.log.Error("Failed to update booking payment status",
			zap.Error(err),
			zap.String("booking_id", txn.BookingID.String()),
		)
		return fmt.Errorf("update booking %s payment status: %w", txn.BookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s is not pending payment", txn.BookingID.String())
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit settlement",
			zap.Error(err),
			zap.String("booking_id", txn.BookingID.String()),
		)
		return fmt.Errorf("commit settlement for booking %s: %w", txn.BookingID.String(), err)
	}

	return nil
}
