package entities

// User represents a registered account in the database
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // Never exposed in responses
}
