package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// =====================================================
// REQUEST DTOs
// =====================================================

// GenerateNewsletterRequest carries the pasted video URL.
// No URL-format rule here on purpose: inputs like "youtu.be/abc" without
// a scheme are legal and normalized downstream; the extractor is the
// authority on what counts as a valid YouTube URL.
type GenerateNewsletterRequest struct {
	URL string `json:"url" binding:"required"`
}

func (r GenerateNewsletterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.URL,
			validation.Required.Error("url is required"),
			validation.Length(1, 2048),
		),
	)
}

// =====================================================
// RESPONSE DTOs
// =====================================================

// GenerateNewsletterResponse is what the generation endpoint returns.
type GenerateNewsletterResponse struct {
	ID          int64  `json:"id"`
	VideoTitle  string `json:"video_title"`
	VideoAuthor string `json:"video_author"`
	Content     string `json:"content"`
}

// NewsletterItem is a history row as exposed by list/get.
type NewsletterItem struct {
	ID          int64     `json:"id"`
	VideoID     string    `json:"video_id"`
	VideoTitle  string    `json:"video_title"`
	VideoAuthor string    `json:"video_author"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToItem converts the entity to its API representation.
func (n *Newsletter) ToItem() NewsletterItem {
	return NewsletterItem{
		ID:          n.ID,
		VideoID:     n.VideoID,
		VideoTitle:  n.VideoTitle,
		VideoAuthor: n.VideoAuthor,
		Content:     n.Content,
		CreatedAt:   n.CreatedAt,
	}
}
