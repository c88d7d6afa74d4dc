package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stackhunt/stackhunt/internal/domain/technology"
	"github.com/stackhunt/stackhunt/pkg/apperror"
	"github.com/stackhunt/stackhunt/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresTechnologyRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresTechnologyRepo(db *pgxpool.Pool, logger logger.Logger) technology.Repository {
	return &postgresTechnologyRepo{db: db, logger: logger}
}

func scanTechnology(row pgx.Row) (*technology.Technology, error) {
	t := &technology.Technology{}
	err := row.Scan(
		&t.ID, &t.Name, &t.Category, &t.Description,
		&t.PopularityScore, &t.IconURL, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *postgresTechnologyRepo) ListAll(ctx context.Context) ([]*technology.Technology, error) {
	builder := psql.Select(
		"id", "name", "category", "description",
		"popularity_score", "icon_url", "created_at", "updated_at",
	).
		From("technologies").
		OrderBy("popularity_score DESC", "name ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list technologies query", err)
	}
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query technologies", err)
	}
	defer rows.Close()

	items := make([]*technology.Technology, 0)
	for rows.Next() {
		t, err := scanTechnology(rows)
		if err != nil {
			return nil, apperror.NewInternal("failed to scan technology row", err)
		}
		items = append(items, t)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating technology rows", err)
	}
	return items, nil
}

func (r *postgresTechnologyRepo) MissingIDs(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT id FROM technologies WHERE id = ANY($1)`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, apperror.NewInternal("failed to query technology ids", err)
	}
	defer rows.Close()

	found := make(map[uuid.UUID]bool, len(ids))
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, apperror.NewInternal("failed to scan technology id", err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating technology id rows", err)
	}

	missing := make([]uuid.UUID, 0)
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
