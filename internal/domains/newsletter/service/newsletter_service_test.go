package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsletter-backend/internal/domains/newsletter/gateway"
	"newsletter-backend/internal/domains/newsletter/gateway/youtube"
	"newsletter-backend/internal/domains/newsletter/model"
)

// =====================================================
// FAKES
// =====================================================

type fakeMetadata struct {
	info *gateway.VideoInfo
	err  error
}

func (f *fakeMetadata) FetchVideoInfo(_ context.Context, _ string) (*gateway.VideoInfo, error) {
	return f.info, f.err
}

type fakeTranscripts struct {
	captions []gateway.Caption
	err      error
}

func (f *fakeTranscripts) FetchCaptions(_ context.Context, _ string) ([]gateway.Caption, error) {
	return f.captions, f.err
}

type fakeGenerator struct {
	outputs []string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateText(_ context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.prompts = append(f.prompts, prompt)
	if len(f.prompts) > len(f.outputs) {
		return "", errors.New("unexpected extra generate call")
	}
	return f.outputs[len(f.prompts)-1], nil
}

type fakeRepo struct {
	created   []*model.Newsletter
	stored    []model.Newsletter
	nextID    int64
	deleteOK  bool
	deleteErr error
}

func (f *fakeRepo) Create(_ context.Context, n *model.Newsletter) error {
	f.nextID++
	n.ID = f.nextID
	f.created = append(f.created, n)
	return nil
}

func (f *fakeRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]model.Newsletter, error) {
	out := []model.Newsletter{}
	for _, n := range f.stored {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64, userID uuid.UUID) (*model.Newsletter, error) {
	for i := range f.stored {
		if f.stored[i].ID == id && f.stored[i].UserID == userID {
			return &f.stored[i], nil
		}
	}
	return nil, model.ErrNewsletterNotFound
}

func (f *fakeRepo) Delete(_ context.Context, _ int64, _ uuid.UUID) (bool, error) {
	return f.deleteOK, f.deleteErr
}

// =====================================================
// GENERATE
// =====================================================

func newPipeline(meta *fakeMetadata, tr *fakeTranscripts, gen *fakeGenerator, repo *fakeRepo) Service {
	return NewNewsletterService(repo, meta, tr, gen)
}

func longContent() string {
	return strings.Repeat("This newsletter paragraph carries real substance. ", 20)
}

func TestGenerate_FullPipeline(t *testing.T) {
	userID := uuid.New()
	meta := &fakeMetadata{info: &gateway.VideoInfo{
		Title:           "How To X",
		Author:          "Creator",
		DurationSeconds: 754,
	}}
	tr := &fakeTranscripts{captions: []gateway.Caption{
		{Text: "today I will show you how to x properly"},
	}}
	gen := &fakeGenerator{outputs: []string{"## Cleaned\n\nRewritten content here.", longContent()}}
	repo := &fakeRepo{}

	svc := newPipeline(meta, tr, gen, repo)

	resp, err := svc.Generate(context.Background(), userID, model.GenerateNewsletterRequest{
		URL: "https://www.youtube.com/watch?v=abc123",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "How To X", resp.VideoTitle)
	assert.Equal(t, "Creator", resp.VideoAuthor)
	assert.GreaterOrEqual(t, len(resp.Content), model.MinContentLength)

	// Two generative calls, strictly in order
	require.Len(t, gen.prompts, 2)
	assert.Contains(t, gen.prompts[0], "today I will show you how to x properly")
	assert.Contains(t, gen.prompts[0], "Title: How To X")
	assert.Contains(t, gen.prompts[0], "Duration: 12 minutes")
	assert.Contains(t, gen.prompts[1], "Rewritten content here.")

	// Persisted snapshot
	require.Len(t, repo.created, 1)
	saved := repo.created[0]
	assert.Equal(t, userID, saved.UserID)
	assert.Equal(t, "abc123", saved.VideoID)
	assert.Equal(t, "How To X", saved.VideoTitle)
}

func TestGenerate_InvalidURL(t *testing.T) {
	gen := &fakeGenerator{}
	svc := newPipeline(&fakeMetadata{}, &fakeTranscripts{}, gen, &fakeRepo{})

	_, err := svc.Generate(context.Background(), uuid.New(), model.GenerateNewsletterRequest{
		URL: "https://example.com/not-youtube",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, youtube.ErrInvalidURL)
	assert.Contains(t, err.Error(), "Failed to generate newsletter")
	assert.Empty(t, gen.prompts)
}

func TestGenerate_NoCaptionsBeforeGenerativeCalls(t *testing.T) {
	meta := &fakeMetadata{info: &gateway.VideoInfo{Title: "T", Author: "A"}}
	tr := &fakeTranscripts{captions: []gateway.Caption{{Text: "   "}}}
	gen := &fakeGenerator{outputs: []string{"should never be used"}}

	svc := newPipeline(meta, tr, gen, &fakeRepo{})

	_, err := svc.Generate(context.Background(), uuid.New(), model.GenerateNewsletterRequest{
		URL: "https://youtu.be/abc123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrNoCaptions)
	assert.Contains(t, err.Error(), "No captions available")

	// The generative API must not have been touched
	assert.Empty(t, gen.prompts)
}

func TestGenerate_ContentTooShort(t *testing.T) {
	meta := &fakeMetadata{info: &gateway.VideoInfo{Title: "T", Author: "A", DurationSeconds: 60}}
	tr := &fakeTranscripts{captions: []gateway.Caption{{Text: "transcript"}}}
	gen := &fakeGenerator{outputs: []string{"rewritten", "too short"}}
	repo := &fakeRepo{}

	svc := newPipeline(meta, tr, gen, repo)

	_, err := svc.Generate(context.Background(), uuid.New(), model.GenerateNewsletterRequest{
		URL: "https://youtu.be/abc123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrContentTooShort)

	// Nothing persisted
	assert.Empty(t, repo.created)
}

func TestGenerate_GeneratorFailureWrapped(t *testing.T) {
	meta := &fakeMetadata{info: &gateway.VideoInfo{Title: "T", Author: "A"}}
	tr := &fakeTranscripts{captions: []gateway.Caption{{Text: "transcript"}}}
	gen := &fakeGenerator{err: errors.New("Gemini API request failed: 429")}

	svc := newPipeline(meta, tr, gen, &fakeRepo{})

	_, err := svc.Generate(context.Background(), uuid.New(), model.GenerateNewsletterRequest{
		URL: "https://youtu.be/abc123",
	})
	require.Error(t, err)
	// Top-level wrap preserves the upstream message text
	assert.Contains(t, err.Error(), "Failed to generate newsletter")
	assert.Contains(t, err.Error(), "429")
}

// =====================================================
// HISTORY
// =====================================================

func TestGet_OwnershipScoped(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	repo := &fakeRepo{stored: []model.Newsletter{
		{ID: 7, UserID: owner, VideoTitle: "Mine"},
	}}

	svc := newPipeline(&fakeMetadata{}, &fakeTranscripts{}, &fakeGenerator{}, repo)

	item, err := svc.Get(context.Background(), owner, 7)
	require.NoError(t, err)
	assert.Equal(t, "Mine", item.VideoTitle)

	_, err = svc.Get(context.Background(), other, 7)
	assert.ErrorIs(t, err, model.ErrNewsletterNotFound)
}

func TestDelete_ReportsOutcome(t *testing.T) {
	svc := newPipeline(&fakeMetadata{}, &fakeTranscripts{}, &fakeGenerator{}, &fakeRepo{deleteOK: true})
	deleted, err := svc.Delete(context.Background(), uuid.New(), 1)
	require.NoError(t, err)
	assert.True(t, deleted)

	svc = newPipeline(&fakeMetadata{}, &fakeTranscripts{}, &fakeGenerator{}, &fakeRepo{deleteOK: false})
	deleted, err = svc.Delete(context.Background(), uuid.New(), 1)
	require.NoError(t, err)
	assert.False(t, deleted)
}

// =====================================================
// EXPORT
// =====================================================

func TestExportToExcel(t *testing.T) {
	userID := uuid.New()
	repo := &fakeRepo{stored: []model.Newsletter{
		{ID: 1, UserID: userID, VideoID: "abc123", VideoTitle: "How To X", VideoAuthor: "Creator", Content: "body"},
	}}

	svc := newPipeline(&fakeMetadata{}, &fakeTranscripts{}, &fakeGenerator{}, repo)

	f, err := svc.ExportToExcel(context.Background(), userID)
	require.NoError(t, err)

	title, err := f.GetCellValue("Newsletter history", "C2")
	require.NoError(t, err)
	assert.Equal(t, "How To X", title)
}
