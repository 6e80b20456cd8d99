package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// =====================================================
// GEMINI GENERATECONTENT CLIENT
// =====================================================

var (
	// ErrMissingAPIKey - configuration error
	ErrMissingAPIKey = errors.New(
		"Gemini API key is not configured. Please set GEMINI_API_KEY environment variable.")

	// ErrMalformedResponse - the API answered 2xx but without the
	// expected candidates[0].content.parts[0].text field. Checked
	// against the typed schema below instead of trusting the shape.
	ErrMalformedResponse = errors.New("malformed response from Gemini API: no candidate text")
)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string // e.g. https://generativelanguage.googleapis.com/v1beta
}

type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	return &Client{
		config: config,
		httpClient: &http.Client{
			// Generation over long transcripts is slow; this is the
			// only outbound call that routinely takes minutes.
			Timeout: 5 * time.Minute,
		},
	}
}

// Request/response schema for models/<model>:generateContent.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText sends one user-role prompt and returns the first
// candidate's first text part.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	// Step 1: Config check
	if c.config.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	// Step 2: Build request body
	reqBody := generateRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
	}

	bodyJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.config.BaseURL, c.config.Model, url.QueryEscape(c.config.APIKey))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(bodyJSON))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	// Step 3: Call the API
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("Gemini API request failed: %d: %s",
			resp.StatusCode, string(respBody))
	}

	// Step 4: Validate the response against the expected schema and
	// fail fast on anything that does not carry candidate text.
	var data generateResponse
	if err := json.Unmarshal(respBody, &data); err != nil {
		return "", fmt.Errorf("failed to decode Gemini API response: %w", err)
	}

	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return "", ErrMalformedResponse
	}

	text := data.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrMalformedResponse
	}

	return text, nil
}
