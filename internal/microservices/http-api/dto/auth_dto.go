package dto

// Data Transfer Objects for authentication requests and responses

// RegisterRequest: payload for user registration
type RegisterRequest struct {
	FullName     string  `json:"full_name" binding:"required,notblank,max=100"`
	Email        string  `json:"email" binding:"required,email"`
	Password     string  `json:"password" binding:"required,min=8"`
	Location     *string `json:"location" binding:"omitempty,max=100"`
	Availability *string `json:"availability" binding:"omitempty,max=100"`
	IsPublic     *bool   `json:"is_public"` // defaults to true
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse: response payload after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int64  `json:"expires_in"` // seconds
	UserID    string `json:"user_id"`
}
