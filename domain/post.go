package domain

import (
	"strings"
	"time"

	"social-intel/errors"
)

type Platform string

const (
	Twitter   Platform = "twitter"
	Facebook  Platform = "facebook"
	Instagram Platform = "instagram"
)

// Post is one social media record submitted for analysis.
// Everything except Content is opaque metadata carried for the caller's
// response shaping; the engine itself only reads Content and the
// optional Language hint.
type Post struct {
	ID        string    `json:"id"`
	Platform  Platform  `json:"platform"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	District  string    `json:"district"`
	Language  string    `json:"language,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Validate rejects posts with empty or whitespace-only content.
// This is a synchronous input check, distinct from an analysis failure.
func (p Post) Validate() error {
	if strings.TrimSpace(p.Content) == "" {
		return errors.ErrEmptyContent
	}
	return nil
}
