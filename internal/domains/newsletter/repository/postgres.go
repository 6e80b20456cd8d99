package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"newsletter-backend/internal/domains/newsletter/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresNewsletterRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) Repository {
	return &postgresNewsletterRepository{pool: pool}
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresNewsletterRepository) Create(ctx context.Context, n *model.Newsletter) error {
	query := `
		INSERT INTO newsletters (
			user_id, video_id, video_title, video_author, content
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		n.UserID,
		n.VideoID,
		n.VideoTitle,
		n.VideoAuthor,
		n.Content,
	).Scan(&n.ID, &n.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create newsletter: %w", err)
	}

	return nil
}

// =====================================================
// LIST BY USER
// =====================================================

func (r *postgresNewsletterRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Newsletter, error) {
	query := `
		SELECT id, user_id, video_id, video_title, video_author, content, created_at
		FROM newsletters
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list newsletters: %w", err)
	}
	defer rows.Close()

	newsletters := []model.Newsletter{}
	for rows.Next() {
		var n model.Newsletter
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.VideoID,
			&n.VideoTitle,
			&n.VideoAuthor,
			&n.Content,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan newsletter: %w", err)
		}
		newsletters = append(newsletters, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read newsletters: %w", err)
	}

	return newsletters, nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresNewsletterRepository) GetByID(ctx context.Context, id int64, userID uuid.UUID) (*model.Newsletter, error) {
	// Ownership is part of the predicate, so an unowned row is
	// indistinguishable from a missing one.
	query := `
		SELECT id, user_id, video_id, video_title, video_author, content, created_at
		FROM newsletters
		WHERE id = $1 AND user_id = $2
	`

	n := &model.Newsletter{}
	err := r.pool.QueryRow(ctx, query, id, userID).Scan(
		&n.ID,
		&n.UserID,
		&n.VideoID,
		&n.VideoTitle,
		&n.VideoAuthor,
		&n.Content,
		&n.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNewsletterNotFound
		}
		return nil, fmt.Errorf("failed to find newsletter: %w", err)
	}

	return n, nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresNewsletterRepository) Delete(ctx context.Context, id int64, userID uuid.UUID) (bool, error) {
	query := `DELETE FROM newsletters WHERE id = $1 AND user_id = $2`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return false, fmt.Errorf("failed to delete newsletter: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
