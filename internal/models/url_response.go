package models

import "snaplink-be/internal/entities"

// ShortLinkResponse is the public view of a short link
type ShortLinkResponse struct {
	ID        int64  `json:"id"`
	TargetURL string `json:"target_url"`
	ShortKey  string `json:"short_key"`
	OwnerID   int64  `json:"owner_id"`
	Clicks    int64  `json:"clicks"`
}

func NewShortLinkResponse(u *entities.URL) *ShortLinkResponse {
	return &ShortLinkResponse{
		ID:        u.ID,
		TargetURL: u.TargetURL,
		ShortKey:  u.ShortKey,
		OwnerID:   u.OwnerID,
		Clicks:    u.Clicks,
	}
}
