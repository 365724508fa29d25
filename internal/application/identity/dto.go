package identity

import (
	"github.com/google/uuid"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/infrastructure/auth"
)

// SignUpInput contains the input for account creation
type SignUpInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// SignInInput contains the input for user sign-in
type SignInInput struct {
	Email    string
	Password string
}

// SessionResult contains the result of a successful sign-up or sign-in
type SessionResult struct {
	Session *auth.SessionToken
	User    UserInfo
}

// UserInfo contains basic user information returned with a session
type UserInfo struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      identity.Role
}

func toUserInfo(u *identity.User) UserInfo {
	return UserInfo{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
	}
}
