package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"newsletter-backend/internal/domains/newsletter/gateway"
	"newsletter-backend/pkg/cache"
)

// =====================================================
// YOUTUBE DATA API CLIENT
// =====================================================

var (
	// ErrMissingAPIKey - configuration error, no credential present
	ErrMissingAPIKey = errors.New(
		"YouTube API key is not configured. Please set YOUTUBE_API_KEY environment variable.")

	// ErrVideoNotFound - the API answered but the result set was empty
	ErrVideoNotFound = errors.New("video not found or not accessible")
)

const metadataCacheTTL = 24 * time.Hour

type Config struct {
	APIKey  string
	BaseURL string // e.g. https://www.googleapis.com/youtube/v3
}

type Client struct {
	config     Config
	httpClient *http.Client
	cache      cache.Cache // optional, nil disables caching
}

// NewClient creates a metadata fetcher. cache may be nil.
func NewClient(config Config, c cache.Cache) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		cache: c,
	}
}

// videosResponse mirrors the fields we need from
// GET /videos?part=snippet,contentDetails
type videosResponse struct {
	Items []struct {
		Snippet struct {
			Title        string `json:"title"`
			Description  string `json:"description"`
			ChannelTitle string `json:"channelTitle"`
		} `json:"snippet"`
		ContentDetails struct {
			Duration string `json:"duration"`
		} `json:"contentDetails"`
	} `json:"items"`
}

// FetchVideoInfo fetches title/description/author/duration for a video.
func (c *Client) FetchVideoInfo(ctx context.Context, videoID string) (*gateway.VideoInfo, error) {
	// Step 1: Config check
	if c.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	// Step 2: Cache lookup (non-critical, miss on any error)
	cacheKey := "video:meta:" + videoID
	if c.cache != nil {
		var cached gateway.VideoInfo
		if found, err := c.cache.Get(ctx, cacheKey, &cached); err == nil && found {
			return &cached, nil
		}
	}

	// Step 3: Call the API
	reqURL := fmt.Sprintf("%s/videos?part=snippet,contentDetails&id=%s&key=%s",
		c.config.BaseURL, url.QueryEscape(videoID), url.QueryEscape(c.config.APIKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call YouTube API: %w", err)
	}
	defer resp.Body.Close()

	// Step 4: Check status, surfacing the error body
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("YouTube API request failed: %d %s: %s",
			resp.StatusCode, http.StatusText(resp.StatusCode), string(body))
	}

	// Step 5: Decode and validate the result set
	var data videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode YouTube API response: %w", err)
	}

	if len(data.Items) == 0 {
		return nil, ErrVideoNotFound
	}

	item := data.Items[0]
	info := &gateway.VideoInfo{
		Title:           defaultString(item.Snippet.Title, "Unknown Title"),
		Description:     item.Snippet.Description,
		Author:          defaultString(item.Snippet.ChannelTitle, "Unknown Author"),
		DurationSeconds: ParseISODuration(defaultString(item.ContentDetails.Duration, "PT0S")),
	}

	// Step 6: Populate cache (failures logged, never fatal)
	if c.cache != nil {
		if err := c.cache.Set(ctx, cacheKey, info, metadataCacheTTL); err != nil {
			log.Warn().Err(err).Str("video_id", videoID).Msg("Failed to cache video metadata")
		}
	}

	return info, nil
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
