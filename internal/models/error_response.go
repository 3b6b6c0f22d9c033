package models

// ErrorResponse is the body of every failed request. Detail is a message, or a
// list of FieldError for validation failures.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
