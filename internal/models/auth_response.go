package models

import "snaplink-be/internal/entities"

// UserResponse is the public view of a user; it never carries the password hash
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenResponse is returned by a successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func NewUserResponse(u *entities.User) *UserResponse {
	return &UserResponse{ID: u.ID, Username: u.Username}
}
