package repository

import (
	"context"
	"fmt"

	"bike-rental/internal/data/entity"
	"bike-rental/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// SessionRepository validates tokens issued by the identity collaborator.
// This service never creates or revokes sessions.
type SessionRepository interface {
	FindValidSession(ctx context.Context, token string) (*entity.SessionInfo, error)
}

type sessionRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSessionRepository(db database.PgxIface, log *zap.Logger) SessionRepository {
	return &sessionRepository{
		db:  db,
		log: log.With(zap.String("repository", "session")),
	}
}

func (r *sessionRepository) FindValidSession(ctx context.Context, token string) (*entity.SessionInfo, error) {
	query := `
		SELECT s.id, s.user_id, s.token, s.expires_at, s.created_at, u.role, u.email
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > NOW()
	`

	var info entity.SessionInfo
	err := r.db.QueryRow(ctx, query, token).Scan(
		&info.ID,
		&info.UserID,
		&info.Token,
		&info.ExpiresAt,
		&info.CreatedAt,
		&info.Role,
		&info.Email,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find valid session", zap.Error(err))
		return nil, fmt.Errorf("find valid session: %w", err)
	}

	return &info, nil
}
