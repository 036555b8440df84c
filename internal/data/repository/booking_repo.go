package repository

import (
	"context"
	"fmt"

	"bike-rental/internal/data/entity"
	"bike-rental/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// bookingDetailColumns joins bikes and profiles once, on the repository side,
// so callers never merge the collections by hand. A missing profile row maps
// to the placeholder label instead of failing the listing.
const bookingDetailColumns = `
	b.id, b.user_id, b.bike_id, b.start_date, b.end_date, b.total_days, b.total_price,
	b.payment_status, b.booking_status, b.created_at, b.updated_at,
	bk.name AS bike_name, bk.brand AS bike_brand, bk.model AS bike_model, bk.image_url AS bike_image_url,
	COALESCE(u.full_name, 'Unknown User') AS customer_name
`

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.BookingDetail, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.BookingDetail, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, user_id, bike_id, start_date, end_date, total_days, total_price,
		                      payment_status, booking_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.UserID,
		booking.BikeID,
		booking.StartDate,
		booking.EndDate,
		booking.TotalDays,
		booking.TotalPrice,
		booking.PaymentStatus,
		booking.BookingStatus,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("user_id", booking.UserID.String()),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID.String(), err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `
		SELECT id, user_id, bike_id, start_date, end_date, total_days, total_price,
		       payment_status, booking_status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.UserID,
		&booking.BikeID,
		&booking.StartDate,
		&booking.EndDate,
		&booking.TotalDays,
		&booking.TotalPrice,
		&booking.PaymentStatus,
		&booking.BookingStatus,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return &booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.BookingDetail, error) {
	query := `
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN bikes bk ON bk.id = b.bike_id
		LEFT JOIN users u ON u.id = b.user_id
		WHERE b.user_id = $1
		ORDER BY b.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return scanBookingDetails(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}

	return count, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.BookingDetail, error) {
	query := `
		SELECT ` + bookingDetailColumns + `
		FROM bookings b
		JOIN bikes bk ON bk.id = b.bike_id
		LEFT JOIN users u ON u.id = b.user_id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return scanBookingDetails(rows)
}

func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, bookingID uuid.UUID, status entity.BookingStatus) error {
	query := `UPDATE bookings SET booking_status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func scanBookingDetails(rows pgx.Rows) ([]*entity.BookingDetail, error) {
	var bookings []*entity.BookingDetail
	for rows.Next() {
		var detail entity.BookingDetail
		err := rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.BikeID,
			&detail.StartDate,
			&detail.EndDate,
			&detail.TotalDays,
			&detail.TotalPrice,
			&detail.PaymentStatus,
			&detail.BookingStatus,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.BikeName,
			&detail.BikeBrand,
			&detail.BikeModel,
			&detail.BikeImageURL,
			&detail.CustomerName,
		)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &detail)
	}

	return bookings, nil
}
