package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/dbx"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

const columns = `id, user_id, username, puisi_id, isi, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanComment(s scanner) (*models.Comment, error) {
	c := &models.Comment{}
	if err := s.Scan(&c.ID, &c.UserID, &c.UserName, &c.PostID, &c.Body, &c.CreatedAt); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *PostgresRepository) one(ctx context.Context, query string, args ...any) (*models.Comment, error) {
	c, err := scanComment(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Comment) (*models.Comment, error) {
	query :=
		`INSERT INTO comments (user_id, username, puisi_id, isi)
		 VALUES ($1, $2, $3, $4)
		 RETURNING ` + columns

	return r.one(ctx, query, c.UserID, c.UserName, c.PostID, c.Body)
}

func (r *PostgresRepository) ListByPost(ctx context.Context, postID int64) ([]*models.Comment, error) {
	query := `SELECT ` + columns + ` FROM comments WHERE puisi_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Count(ctx context.Context, postID int64) (int64, error) {
	var total int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE puisi_id = $1`, postID).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return total, nil
}

func (r *PostgresRepository) OwnerID(ctx context.Context, id int64, lock bool) (int64, error) {
	query := `SELECT user_id FROM comments WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var ownerID int64
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return ownerID, nil
}

func (r *PostgresRepository) UpdateBody(ctx context.Context, id int64, body string) (*models.Comment, error) {
	query := `UPDATE comments SET isi = $1 WHERE id = $2 RETURNING ` + columns
	return r.one(ctx, query, body, id)
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
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
