package transcript

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"newsletter-backend/internal/domains/newsletter/gateway"
)

// =====================================================
// TRANSCRIPT MICROSERVICE CLIENT
// =====================================================
// The caption service accepts POST /transcript with {"videoId": ...}
// and answers with the full transcript as plain text. No timed segments
// come back, so the result is wrapped as a single caption record.

var (
	// ErrMissingServiceURL - configuration error
	ErrMissingServiceURL = errors.New(
		"TRANSCRIPT_SERVICE_URL not configured. Please set this environment variable.")

	// ErrEmptyTranscript - the service answered 2xx but with a blank body
	ErrEmptyTranscript = errors.New("no captions available for this video")
)

type Config struct {
	ServiceURL string
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchCaptions fetches the transcript for a video.
func (c *Client) FetchCaptions(ctx context.Context, videoID string) ([]gateway.Caption, error) {
	// Step 1: Config check
	if c.config.ServiceURL == "" {
		return nil, ErrMissingServiceURL
	}

	// Step 2: Build request
	body, err := json.Marshal(map[string]string{"videoId": videoID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	transcriptURL := strings.TrimSuffix(c.config.ServiceURL, "/") + "/transcript"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, transcriptURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/plain")

	// Step 3: Call the service
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("transcript fetch failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript response: %w", err)
	}

	// Step 4: Non-2xx surfaces the response body as the error detail
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail := strings.TrimSpace(string(respBody))
		if detail == "" {
			detail = fmt.Sprintf("transcript service returned %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("transcript fetch failed: %s", detail)
	}

	// Step 5: Blank body means no captions exist
	text := strings.TrimSpace(string(respBody))
	if text == "" {
		return nil, ErrEmptyTranscript
	}

	// Step 6: Wrap as a single untimed caption
	return []gateway.Caption{
		{Start: 0, Duration: 0, Text: text},
	}, nil
}
