package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"newsletter-backend/internal/domains/newsletter/model"
	"newsletter-backend/internal/domains/newsletter/service"
)

// =====================================================
// FAKE SERVICE
// =====================================================

type fakeService struct {
	generateResp *model.GenerateNewsletterResponse
	generateErr  error
	items        []model.NewsletterItem
	getItem      *model.NewsletterItem
	getErr       error
	deleted      bool
}

var _ service.Service = (*fakeService)(nil)

func (f *fakeService) Generate(_ context.Context, _ uuid.UUID, _ model.GenerateNewsletterRequest) (*model.GenerateNewsletterResponse, error) {
	return f.generateResp, f.generateErr
}

func (f *fakeService) List(_ context.Context, _ uuid.UUID) ([]model.NewsletterItem, error) {
	return f.items, nil
}

func (f *fakeService) Get(_ context.Context, _ uuid.UUID, _ int64) (*model.NewsletterItem, error) {
	return f.getItem, f.getErr
}

func (f *fakeService) Delete(_ context.Context, _ uuid.UUID, _ int64) (bool, error) {
	return f.deleted, nil
}

func (f *fakeService) ExportToExcel(_ context.Context, _ uuid.UUID) (*excelize.File, error) {
	return excelize.NewFile(), nil
}

func newTestRouter(svc service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewNewsletterHandler(svc)

	// Stand-in for the auth middleware: stamp a fixed user id
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", uuid.New())
	})
	router.POST("/newsletters", h.Generate)
	router.GET("/newsletters/:id", h.Get)
	router.DELETE("/newsletters/:id", h.Delete)
	return router
}

// =====================================================
// GENERATE
// =====================================================

func TestGenerate_Success(t *testing.T) {
	router := newTestRouter(&fakeService{
		generateResp: &model.GenerateNewsletterResponse{
			ID:          1,
			VideoTitle:  "How To X",
			VideoAuthor: "Creator",
			Content:     "newsletter body",
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/newsletters",
		strings.NewReader(`{"url":"https://youtu.be/abc123"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var body struct {
		Success bool                             `json:"success"`
		Data    model.GenerateNewsletterResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "How To X", body.Data.VideoTitle)
}

func TestGenerate_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "no captions",
			err:        fmt.Errorf("Failed to generate newsletter: %w", model.ErrNoCaptions),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "content too short",
			err:        fmt.Errorf("Failed to generate newsletter: %w", model.ErrContentTooShort),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "upstream failure",
			err:        fmt.Errorf("Failed to generate newsletter: YouTube API request failed: 403"),
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter(&fakeService{generateErr: tt.err})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/newsletters",
				strings.NewReader(`{"url":"https://youtu.be/abc123"}`))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			// The wrapped message must reach the client verbatim
			var body struct {
				Error struct {
					Message string `json:"message"`
				} `json:"error"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body.Error.Message, "Failed to generate newsletter")
		})
	}
}

// =====================================================
// GET / DELETE
// =====================================================

func TestGet_NotFound(t *testing.T) {
	router := newTestRouter(&fakeService{getErr: model.ErrNewsletterNotFound})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/newsletters/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGet_InvalidID(t *testing.T) {
	router := newTestRouter(&fakeService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/newsletters/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDelete_UnownedRowReads404(t *testing.T) {
	router := newTestRouter(&fakeService{deleted: false})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/newsletters/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDelete_Success(t *testing.T) {
	router := newTestRouter(&fakeService{deleted: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/newsletters/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
