package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"newsletter-backend/internal/domains/newsletter/gateway"
	"newsletter-backend/internal/domains/newsletter/gateway/youtube"
	"newsletter-backend/internal/domains/newsletter/model"
	"newsletter-backend/internal/domains/newsletter/prompt"
	"newsletter-backend/internal/domains/newsletter/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type newsletterService struct {
	repo        repository.Repository
	metadata    gateway.MetadataFetcher
	transcripts gateway.TranscriptFetcher
	generator   gateway.TextGenerator
}

func NewNewsletterService(
	repo repository.Repository,
	metadata gateway.MetadataFetcher,
	transcripts gateway.TranscriptFetcher,
	generator gateway.TextGenerator,
) Service {
	return &newsletterService{
		repo:        repo,
		metadata:    metadata,
		transcripts: transcripts,
		generator:   generator,
	}
}

// =====================================================
// GENERATE
// =====================================================

func (s *newsletterService) Generate(ctx context.Context, userID uuid.UUID, req model.GenerateNewsletterRequest) (*model.GenerateNewsletterResponse, error) {
	// Validation errors stay unwrapped so the handler maps them to 400
	if err := req.Validate(); err != nil {
		return nil, err
	}

	resp, err := s.generate(ctx, userID, req.URL)
	if err != nil {
		log.Error().
			Err(err).
			Str("user_id", userID.String()).
			Msg("newsletter generation failed")

		// Single top-level wrap; stage errors bubble with their
		// original message text intact.
		return nil, fmt.Errorf("Failed to generate newsletter: %w", err)
	}

	return resp, nil
}

// generate runs the pipeline strictly in sequence: extract video data,
// rewrite the transcript, generate the newsletter, persist.
func (s *newsletterService) generate(ctx context.Context, userID uuid.UUID, rawURL string) (*model.GenerateNewsletterResponse, error) {
	// Step 1: Resolve the URL and fetch video data
	videoData, err := s.extractVideoData(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	// Step 2: Refuse caption-less videos before any generative call
	transcript := strings.TrimSpace(videoData.FullTranscript())
	if transcript == "" {
		return nil, model.ErrNoCaptions
	}

	// Step 3: First pass - rewrite the transcript into clean content
	log.Info().
		Str("video_id", videoData.VideoID).
		Int("transcript_chars", len(transcript)).
		Msg("rewriting transcript")

	rewritten, err := s.generator.GenerateText(ctx,
		prompt.RewritePrompt(videoData.Title, videoData.Author, videoData.DurationSeconds, transcript))
	if err != nil {
		return nil, err
	}

	// Step 4: Second pass - turn the rewritten content into a newsletter
	log.Info().
		Str("video_id", videoData.VideoID).
		Int("rewritten_chars", len(rewritten)).
		Msg("generating newsletter")

	content, err := s.generator.GenerateText(ctx,
		prompt.NewsletterPrompt(videoData.Title, videoData.Author, videoData.DurationSeconds, rewritten))
	if err != nil {
		return nil, err
	}

	// Step 5: Clean up blank-line spacing in the model output
	content = prompt.Normalize(content)

	if len(content) < model.MinContentLength {
		return nil, fmt.Errorf("%w: %d characters", model.ErrContentTooShort, len(content))
	}

	// Step 6: Persist
	n := &model.Newsletter{
		UserID:      userID,
		VideoID:     videoData.VideoID,
		VideoTitle:  videoData.Title,
		VideoAuthor: videoData.Author,
		Content:     content,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return nil, err
	}

	log.Info().
		Int64("newsletter_id", n.ID).
		Str("video_id", n.VideoID).
		Int("content_chars", len(content)).
		Msg("newsletter saved")

	return &model.GenerateNewsletterResponse{
		ID:          n.ID,
		VideoTitle:  n.VideoTitle,
		VideoAuthor: n.VideoAuthor,
		Content:     n.Content,
	}, nil
}

// extractVideoData turns a pasted URL into the aggregate the prompts
// consume: id extraction, metadata fetch, then transcript fetch.
func (s *newsletterService) extractVideoData(ctx context.Context, rawURL string) (*gateway.VideoData, error) {
	videoID, err := youtube.ParseVideoURL(rawURL)
	if err != nil {
		return nil, err
	}

	info, err := s.metadata.FetchVideoInfo(ctx, videoID)
	if err != nil {
		return nil, err
	}

	captions, err := s.transcripts.FetchCaptions(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("transcript fetch failed: %w", err)
	}

	return &gateway.VideoData{
		VideoID:         videoID,
		Title:           info.Title,
		Description:     info.Description,
		Author:          info.Author,
		DurationSeconds: info.DurationSeconds,
		Captions:        captions,
	}, nil
}

// =====================================================
// HISTORY
// =====================================================

func (s *newsletterService) List(ctx context.Context, userID uuid.UUID) ([]model.NewsletterItem, error) {
	newsletters, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]model.NewsletterItem, 0, len(newsletters))
	for i := range newsletters {
		items = append(items, newsletters[i].ToItem())
	}

	return items, nil
}

func (s *newsletterService) Get(ctx context.Context, userID uuid.UUID, id int64) (*model.NewsletterItem, error) {
	n, err := s.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	item := n.ToItem()
	return &item, nil
}

func (s *newsletterService) Delete(ctx context.Context, userID uuid.UUID, id int64) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id, userID)
	if err != nil {
		return false, err
	}

	if deleted {
		log.Info().
			Int64("newsletter_id", id).
			Str("user_id", userID.String()).
			Msg("newsletter deleted")
	}

	return deleted, nil
}

// =====================================================
// EXPORT
// =====================================================

func (s *newsletterService) ExportToExcel(ctx context.Context, userID uuid.UUID) (*excelize.File, error) {
	newsletters, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list newsletters: %w", err)
	}

	return buildNewslettersExcelFile(newsletters)
}

func buildNewslettersExcelFile(newsletters []model.Newsletter) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "Newsletter history"
	f.SetSheetName("Sheet1", sheetName)

	// Row 1: Header
	headers := []string{
		"ID",
		"Video ID",
		"Video Title",
		"Video Author",
		"Content",
		"Created At",
	}

	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", "F1", headerStyle)
	}

	// Data rows start at row 2
	for i, n := range newsletters {
		rowNum := i + 2

		cellAt := func(col int) string {
			cell, _ := excelize.CoordinatesToCellName(col, rowNum)
			return cell
		}

		f.SetCellValue(sheetName, cellAt(1), n.ID)
		f.SetCellValue(sheetName, cellAt(2), n.VideoID)
		f.SetCellValue(sheetName, cellAt(3), n.VideoTitle)
		f.SetCellValue(sheetName, cellAt(4), n.VideoAuthor)
		f.SetCellValue(sheetName, cellAt(5), n.Content)
		f.SetCellValue(sheetName, cellAt(6), n.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return f, nil
}
