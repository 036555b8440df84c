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

type BikeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bike, error)
	FindAllAvailable(ctx context.Context, limit, offset int) ([]*entity.Bike, error)
	CountAvailable(ctx context.Context) (int64, error)
}

type bikeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBikeRepository(db database.PgxIface, log *zap.Logger) BikeRepository {
	return &bikeRepository{
		db:  db,
		log: log.With(zap.String("repository", "bike")),
	}
}

func (r *bikeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bike, error) {
	query := `
		SELECT id, name, brand, model, type, price_per_day, available, image_url, description, created_at
		FROM bikes
		WHERE id = $1
	`

	var bike entity.Bike
	err := r.db.QueryRow(ctx, query, id).Scan(
		&bike.ID,
		&bike.Name,
		&bike.Brand,
		&bike.Model,
		&bike.Type,
		&bike.PricePerDay,
		&bike.Available,
		&bike.ImageURL,
		&bike.Description,
		&bike.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bike by ID",
			zap.Error(err),
			zap.String("bike_id", id.String()),
		)
		return nil, fmt.Errorf("find bike by ID %s: %w", id.String(), err)
	}

	return &bike, nil
}

func (r *bikeRepository) FindAllAvailable(ctx context.Context, limit, offset int) ([]*entity.Bike, error) {
	query := `
		SELECT id, name, brand, model, type, price_per_day, available, image_url, description, created_at
		FROM bikes
		WHERE available = TRUE
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find available bikes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find available bikes: %w", err)
	}
	defer rows.Close()

	var bikes []*entity.Bike
	for rows.Next() {
		var bike entity.Bike
		err := rows.Scan(
			&bike.ID,
			&bike.Name,
			&bike.Brand,
			&bike.Model,
			&bike.Type,
			&bike.PricePerDay,
			&bike.Available,
			&bike.ImageURL,
			&bike.Description,
			&bike.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan bike row", zap.Error(err))
			return nil, fmt.Errorf("scan bike row: %w", err)
		}
		bikes = append(bikes, &bike)
	}

	return bikes, nil
}

func (r *bikeRepository) CountAvailable(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM bikes WHERE available = TRUE`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count available bikes", zap.Error(err))
		return 0, fmt.Errorf("count available bikes: %w", err)
	}

	return count, nil
}
