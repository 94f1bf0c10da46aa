package dto

import (
	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims defines the custom claims for JWT.
type AuthClaims struct {
	UserID    string `json:"user_id"`
	TokenType string `json:"token_type"` // always "access"
	jwt.RegisteredClaims
}

// RegisterRequest is the registration form. ConsentGiven must be true.
// @Description Request body for account registration
type RegisterRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	FullName     string `json:"full_name,omitempty"`
	AgeGroup     string `json:"age_group"`
	Gender       string `json:"gender,omitempty"`
	Faculty      string `json:"faculty,omitempty"`
	ConsentGiven bool   `json:"consent_given"`
}

// LoginRequest holds login credentials.
// @Description Request body for login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfileResponse defines the structure for a user's profile information.
type UserProfileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	AgeGroup string `json:"age_group"`
	Faculty  string `json:"faculty,omitempty"`
}

// TokenResponse is returned by register and login.
// @Description Response body for authentication tokens
type TokenResponse struct {
	AccessToken string              `json:"access_token"`
	TokenType   string              `json:"token_type"`
	ExpiresIn   int64               `json:"expires_in"`
	User        UserProfileResponse `json:"user"`
}

// MessageResponse represents a generic message response.
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

// Pagination defines parameters for paginated requests.
type Pagination struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}
