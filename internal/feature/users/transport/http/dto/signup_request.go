// Package dto defines data transfer objects for the users feature's HTTP transport layer.
package dto

// SignupReq represents the request body for the /users/signup endpoint.
// It uses Gin's binding tags for validation (required, email format, password length).
type SignupReq struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}
