package gateway

import "context"

// =====================================================
// EXTERNAL COLLABORATOR CONTRACTS
// =====================================================
// The generation pipeline talks to three upstream services. Each gets
// its own narrow interface so the service layer can be tested with
// fakes and implementations can be swapped per environment.

// Caption is one transcript segment. The transcript service returns the
// whole transcript as plain text, so in practice there is exactly one
// caption with zeroed timing.
type Caption struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// VideoInfo is the metadata snapshot from the YouTube Data API.
type VideoInfo struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	Author          string `json:"author"`
	DurationSeconds int    `json:"duration_seconds"`
}

// VideoData is the per-request aggregate fed into the prompt builder.
// Never persisted; discarded once generation completes.
type VideoData struct {
	VideoID         string
	Title           string
	Description     string
	Author          string
	DurationSeconds int
	Captions        []Caption
}

// FullTranscript joins all caption text into a single block.
func (v *VideoData) FullTranscript() string {
	if len(v.Captions) == 0 {
		return ""
	}
	text := v.Captions[0].Text
	for _, c := range v.Captions[1:] {
		text += " " + c.Text
	}
	return text
}

// MetadataFetcher fetches video metadata by id.
type MetadataFetcher interface {
	FetchVideoInfo(ctx context.Context, videoID string) (*VideoInfo, error)
}

// TranscriptFetcher fetches captions by video id.
type TranscriptFetcher interface {
	FetchCaptions(ctx context.Context, videoID string) ([]Caption, error)
}

// TextGenerator sends one prompt to the generative-text API and returns
// the first candidate's text.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
