package likes

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/dbx"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, like *models.Like) (bool, error) {
	query :=
		`INSERT INTO likes (user_id, username, puisi_id)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, puisi_id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query, like.UserID, like.UserName, like.PostID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}

	return n > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, postID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM likes WHERE user_id = $1 AND puisi_id = $2`, userID, postID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Count(ctx context.Context, postID int64) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM likes WHERE puisi_id = $1`, postID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) Exists(ctx context.Context, userID, postID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND puisi_id = $2)`,
		userID, postID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) ListByPost(ctx context.Context, postID int64) ([]*models.Like, error) {
	query :=
		`SELECT id, user_id, username, puisi_id, created_at FROM likes
		 WHERE puisi_id = $1
		 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Like, 0)
	for rows.Next() {
		l := &models.Like{}
		if err := rows.Scan(&l.ID, &l.UserID, &l.UserName, &l.PostID, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
