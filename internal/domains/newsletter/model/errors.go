package model

import "errors"

// Domain errors. The orchestrator wraps whichever of these surfaces
// with a single "Failed to generate newsletter" prefix at the top level.
var (
	// Not Found
	ErrNewsletterNotFound = errors.New("newsletter not found")

	// Generation pipeline
	ErrNoCaptions = errors.New(
		"No captions available for this video. The video must have captions to generate a newsletter.")
	ErrContentTooShort = errors.New("generated newsletter is too short")
)
