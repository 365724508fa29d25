package handler

import (
	"time"

	"github.com/google/uuid"
)

// SignUpRequest represents the sign-up form
// @Description Account creation payload
type SignUpRequest struct {
	Email     string `json:"email" binding:"required,email,max=254" example:"jane.doe@example.com"`
	Password  string `json:"password" binding:"required,min=8,max=72" example:"s3cretPassw0rd"`
	FirstName string `json:"firstName" binding:"required,max=100" example:"Jane"`
	LastName  string `json:"lastName" binding:"required,max=100" example:"Doe"`
}

// SignInRequest represents the sign-in form
// @Description Credentials payload
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane.doe@example.com"`
	Password string `json:"password" binding:"required" example:"s3cretPassw0rd"`
}

// SessionResponse describes the session set as a cookie
// @Description Session token, also set as the session cookie
type SessionResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AuthUserResponse represents the signed-in user
// @Description Signed-in user
type AuthUserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email" example:"jane.doe@example.com"`
	FirstName string    `json:"firstName" example:"Jane"`
	LastName  string    `json:"lastName" example:"Doe"`
	Role      string    `json:"role,omitempty" example:"agency"`
}

// AuthResponse is returned by sign-up and sign-in
// @Description Sign-in result with the page to navigate to
type AuthResponse struct {
	Redirect string           `json:"redirect" example:"/onboarding/role"`
	Session  SessionResponse  `json:"session"`
	User     AuthUserResponse `json:"user"`
}

// AuthPageResponse describes the sign-in and sign-up pages
// @Description Auth page state
type AuthPageResponse struct {
	Page        string `json:"page" example:"sign-in"`
	RedirectURL string `json:"redirectUrl,omitempty" example:"/agency/dashboard"`
}
