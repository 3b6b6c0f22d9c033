package models

// ShortenRequest represents the request body for creating a short link.
// The target is stored as given; only presence is checked.
type ShortenRequest struct {
	TargetURL string `json:"target_url" binding:"required"`
}
