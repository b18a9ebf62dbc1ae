// Package api defines shared response types used across transport handlers.
package api

// ErrorResponse is the uniform error envelope returned by every endpoint.
// Code always mirrors the HTTP status of the response.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// MessageResponse is a plain confirmation payload.
type MessageResponse struct {
	Message string `json:"message"`
}
