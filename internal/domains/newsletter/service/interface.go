package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"newsletter-backend/internal/domains/newsletter/model"
)

// Service runs the generation pipeline and serves the user's history.
type Service interface {
	// Generate runs the full URL-to-newsletter pipeline and persists
	// the result for userID.
	Generate(ctx context.Context, userID uuid.UUID, req model.GenerateNewsletterRequest) (*model.GenerateNewsletterResponse, error)

	// List returns the user's newsletters, newest first.
	List(ctx context.Context, userID uuid.UUID) ([]model.NewsletterItem, error)

	// Get returns one newsletter; unowned or missing rows yield
	// model.ErrNewsletterNotFound.
	Get(ctx context.Context, userID uuid.UUID, id int64) (*model.NewsletterItem, error)

	// Delete removes one newsletter; returns false when the row was
	// missing or owned by someone else.
	Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error)

	// ExportToExcel builds an xlsx workbook of the user's history.
	ExportToExcel(ctx context.Context, userID uuid.UUID) (*excelize.File, error)
}
