package posts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/puisi/internal/common"
	"github.com/dmitrijs2005/puisi/internal/dbx"
	"github.com/dmitrijs2005/puisi/internal/server/models"
)

const columns = `id, user_id, username, judul, isi, is_public, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (*models.Post, error) {
	p := &models.Post{}
	err := s.Scan(&p.ID, &p.UserID, &p.UserName, &p.Title, &p.Body, &p.IsPublic, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) (*models.Post, error) {
	query :=
		`INSERT INTO puisi (user_id, username, judul, isi, is_public)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING ` + columns

	p, err := scanPost(r.db.QueryRowContext(ctx, query,
		post.UserID, post.UserName, post.Title, post.Body, post.IsPublic))
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `SELECT ` + columns + ` FROM puisi WHERE id = $1`

	p, err := scanPost(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) ListPublic(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT ` + columns + ` FROM puisi WHERE is_public = TRUE ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID int64) ([]*models.Post, error) {
	query := `SELECT ` + columns + ` FROM puisi WHERE user_id = $1 ORDER BY created_at DESC`
	return r.list(ctx, query, userID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) OwnerID(ctx context.Context, id int64, lock bool) (int64, error) {
	query := `SELECT user_id FROM puisi WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}

	var ownerID int64
	err := r.db.QueryRowContext(ctx, query, id).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, common.ErrorNotFound
		}
		return 0, fmt.Errorf("db error: %w", err)
	}

	return ownerID, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, title, body string, isPublic *bool) (*models.Post, error) {
	query :=
		`UPDATE puisi SET judul = $1, isi = $2, is_public = COALESCE($3, is_public)
		 WHERE id = $4
		 RETURNING ` + columns

	visibility := sql.NullBool{}
	if isPublic != nil {
		visibility = sql.NullBool{Bool: *isPublic, Valid: true}
	}

	p, err := scanPost(r.db.QueryRowContext(ctx, query, title, body, visibility, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return p, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM puisi WHERE id = $1`, id)
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
