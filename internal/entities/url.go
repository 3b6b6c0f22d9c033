package entities

import "time"

// URL represents a short key -> target URL mapping owned by a user
type URL struct {
	ID        int64     `json:"id"`
	TargetURL string    `json:"target_url"`
	ShortKey  string    `json:"short_key"`
	OwnerID   int64     `json:"owner_id"`
	Clicks    int64     `json:"clicks"`
	CreatedAt time.Time `json:"created_at"`
}
