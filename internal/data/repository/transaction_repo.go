package repository

import (
	"context"
	"fmt"

	"bike-rental/internal/data/entity"
	"bike-rental/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionRepository interface {
	// Create inserts a single attempt row. Rows are never updated afterwards.
	Create(ctx context.Context, txn *entity.PaymentTransaction) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PaymentTransaction, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.TransactionDetail, error)
	Count(ctx context.Context) (int64, error)
}

type transactionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTransactionRepository(db database.PgxIface, log *zap.Logger) TransactionRepository {
	return &transactionRepository{
		db:  db,
		log: log.With(zap.String("repository", "transaction")),
	}
}

func (r *transactionRepository) Create(ctx context.Context, txn *entity.PaymentTransaction) error {
	query := `
		INSERT INTO payment_transactions (id, booking_id, user_id, amount, payment_method,
		                                  card_last_four, card_brand, currency, transaction_status,
		                                  transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
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
		r.log.Error("Failed to create payment transaction",
			zap.Error(err),
			zap.String("booking_id", txn.BookingID.String()),
			zap.String("transaction_id", txn.TransactionID),
		)
		return fmt.Errorf("create transaction for booking %s: %w", txn.BookingID.String(), err)
	}

	return nil
}

func (r *transactionRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.PaymentTransaction, error) {
	query := `
		SELECT id, booking_id, user_id, amount, payment_method, card_last_four, card_brand,
		       currency, transaction_status, transaction_id, created_at, updated_at
		FROM payment_transactions
		WHERE booking_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find transactions by booking ID",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find transactions by booking ID %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var txns []*entity.PaymentTransaction
	for rows.Next() {
		var txn entity.PaymentTransaction
		err := rows.Scan(
			&txn.ID,
			&txn.BookingID,
			&txn.UserID,
			&txn.Amount,
			&txn.PaymentMethod,
			&txn.CardLastFour,
			&txn.CardBrand,
			&txn.Currency,
			&txn.Status,
			&txn.TransactionID,
			&txn.CreatedAt,
			&txn.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan transaction row", zap.Error(err))
			return nil, fmt.Errorf("scan transaction row: %w", err)
		}
		txns = append(txns, &txn)
	}

	return txns, nil
}

func (r *transactionRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.TransactionDetail, error) {
	query := `
		SELECT t.id, t.booking_id, t.user_id, t.amount, t.payment_method, t.card_last_four,
		       t.card_brand, t.currency, t.transaction_status, t.transaction_id, t.created_at, t.updated_at,
		       bk.name AS bike_name,
		       COALESCE(u.full_name, 'Unknown User') AS customer_name
		FROM payment_transactions t
		JOIN bookings b ON b.id = t.booking_id
		JOIN bikes bk ON bk.id = b.bike_id
		LEFT JOIN users u ON u.id = t.user_id
		ORDER BY t.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find transactions",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find transactions: %w", err)
	}
	defer rows.Close()

	var details []*entity.TransactionDetail
	for rows.Next() {
		var detail entity.TransactionDetail
		err := rows.Scan(
			&detail.ID,
			&detail.BookingID,
			&detail.UserID,
			&detail.Amount,
			&detail.PaymentMethod,
			&detail.CardLastFour,
			&detail.CardBrand,
			&detail.Currency,
			&detail.Status,
			&detail.TransactionID,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.BikeName,
			&detail.CustomerName,
		)
		if err != nil {
			r.log.Error("Failed to scan transaction detail row", zap.Error(err))
			return nil, fmt.Errorf("scan transaction detail row: %w", err)
		}
		details = append(details, &detail)
	}

	return details, nil
}

func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM payment_transactions`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count transactions", zap.Error(err))
		return 0, fmt.Errorf("count transactions: %w", err)
	}

	return count, nil
}
