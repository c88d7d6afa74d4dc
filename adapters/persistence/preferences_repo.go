package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackhunt/stackhunt/internal/domain/user"
	"github.com/stackhunt/stackhunt/pkg/apperror"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

type postgresPreferencesRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresPreferencesRepo(db *pgxpool.Pool, logger logger.Logger) user.PreferencesRepository {
	return &postgresPreferencesRepo{db: db, logger: logger}
}

func (r *postgresPreferencesRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*user.Preferences, error) {
	query := `
		SELECT user_id, onboarding_completed
		FROM user_preferences
		WHERE user_id = $1
	`
	p := &user.Preferences{}
	err := r.db.QueryRow(ctx, query, userID).Scan(&p.UserID, &p.OnboardingCompleted)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &user.Preferences{UserID: userID}, nil
		}
		return nil, apperror.NewInternal("failed to query user preferences", err)
	}
	return p, nil
}

func (r *postgresPreferencesRepo) Upsert(ctx context.Context, prefs *user.Preferences) error {
	query := `
		INSERT INTO user_preferences (user_id, onboarding_completed)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE SET
			onboarding_completed = EXCLUDED.onboarding_completed
	`
	_, err := r.db.Exec(ctx, query, prefs.UserID, prefs.OnboardingCompleted)
	if err != nil {
		return apperror.NewInternal("failed to upsert user preferences", err)
	}
	return nil
}
