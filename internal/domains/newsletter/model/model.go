package model

import (
	"time"

	"github.com/google/uuid"
)

// MinContentLength is the minimum size of a generated newsletter.
// Enforced by the service before persistence, not by the store.
const MinContentLength = 300

// Newsletter is the persisted entity. Rows are immutable after insert;
// the only mutation is deletion by the owner.
type Newsletter struct {
	ID     int64     `db:"id" json:"id"`
	UserID uuid.UUID `db:"user_id" json:"user_id"`

	// Video snapshot taken at generation time. Intentionally NOT kept
	// in sync with the source video - the row is a historical record.
	VideoID     string `db:"video_id" json:"video_id"`
	VideoTitle  string `db:"video_title" json:"video_title"`
	VideoAuthor string `db:"video_author" json:"video_author"`

	// Final generated newsletter text (markdown)
	Content string `db:"content" json:"content"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
