package persistence

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/pkg/apperror"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

type postgresUserTechnologyRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresUserTechnologyRepo(db *pgxpool.Pool, logger logger.Logger) technology.UserTechnologyRepository {
	return &postgresUserTechnologyRepo{db: db, logger: logger}
}

func (r *postgresUserTechnologyRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*technology.UserTechnology, error) {
	builder := psql.Select(
		"ut.id", "ut.user_id", "ut.technology_id", "ut.skill_level",
		"ut.created_at", "ut.updated_at",
		"t.id", "t.name", "t.category", "t.description",
		"t.popularity_score", "t.icon_url", "t.created_at", "t.updated_at",
	).
		From("user_technologies ut").
		Join("technologies t ON t.id = ut.technology_id").
		Where(sq.Eq{"ut.user_id": userID}).
		OrderBy("ut.created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list user technologies query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query user technologies", err)
	}
	defer rows.Close()

	items := make([]*technology.UserTechnology, 0)
	for rows.Next() {
		ut := &technology.UserTechnology{Technology: &technology.Technology{}}
		t := ut.Technology
		err := rows.Scan(
			&ut.ID, &ut.UserID, &ut.TechnologyID, &ut.SkillLevel,
			&ut.CreatedAt, &ut.UpdatedAt,
			&t.ID, &t.Name, &t.Category, &t.Description,
			&t.PopularityScore, &t.IconURL, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan user technology row", err)
		}
		items = append(items, ut)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating user technology rows", err)
	}
	return items, nil
}

// ReplaceForUser swaps the user's whole selection set and marks onboarding
// complete in one transaction. pgx.BeginFunc rolls everything back on error,
// so a partial mix of old and new associations cannot be observed.
func (r *postgresUserTechnologyRepo) ReplaceForUser(ctx context.Context, userID uuid.UUID, selections []technology.Selection) error {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM user_technologies WHERE user_id = $1`, userID); err != nil {
			return err
		}

		now := time.Now().UTC()
		batch := &pgx.Batch{}
		for _, sel := range selections {
			batch.Queue(`
				INSERT INTO user_technologies (id, user_id, technology_id, skill_level, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, uuid.New(), userID, sel.TechnologyID, sel.SkillLevel, now, now)
		}
		if batch.Len() > 0 {
			if err := tx.SendBatch(ctx, batch).Close(); err != nil {
				return err
			}
		}

		_, err := tx.Exec(ctx, `
			INSERT INTO user_preferences (user_id, onboarding_completed)
			VALUES ($1, TRUE)
			ON CONFLICT (user_id) DO UPDATE SET onboarding_completed = TRUE
		`, userID)
		return err
	})
	if err != nil {
		return apperror.NewInternal("failed to replace user technologies", err)
	}
	return nil
}
