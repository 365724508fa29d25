package identity

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/rentflow/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Password cost for bcrypt
const bcryptCost = 12

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	letterRegex = regexp.MustCompile(`[a-zA-Z]`)
	digitRegex  = regexp.MustCompile(`[0-9]`)
)

// User is the identity provider's record of an account.
type User struct {
	shared.BaseEntity
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
}

// UserProfile is the subset of user attributes shared with role profiles
type UserProfile struct {
	FirstName string
	LastName  string
	Email     string
}

// NewUser creates a new user without a role
func NewUser(email, password, firstName, lastName string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	if utf8.RuneCountInString(firstName) > 100 || utf8.RuneCountInString(lastName) > 100 {
		return nil, shared.NewFieldError(shared.CodeValidation, "firstName", "Names cannot exceed 100 characters")
	}

	hash, err := hashPassword(password)
	if err != nil {
		return nil, shared.WrapDomainError("PASSWORD_HASH_ERROR", "Failed to hash password", err)
	}

	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         RoleUnset,
	}, nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// AssignRole sets the user's role. A role is set once: assigning the same
// role again is a no-op, assigning a different one is rejected.
// It reports whether the user changed.
func (u *User) AssignRole(role Role) (bool, error) {
	if !role.IsSet() {
		return false, shared.NewFieldError(shared.CodeValidation, "role", "Role must be one of tenant, landlord, agency")
	}
	if u.Role == role {
		return false, nil
	}
	if u.Role.IsSet() {
		return false, shared.NewDomainError(shared.CodeInvalidState, "Role has already been assigned")
	}
	u.Role = role
	u.Touch()
	return true, nil
}

// Profile returns the user's public profile
func (u *User) Profile() UserProfile {
	return UserProfile{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewFieldError(shared.CodeValidation, "password", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewFieldError(shared.CodeValidation, "password", "Password must be at least 8 characters")
	}
	if len(password) > 72 {
		return shared.NewFieldError(shared.CodeValidation, "password", "Password cannot exceed 72 characters")
	}
	if !letterRegex.MatchString(password) || !digitRegex.MatchString(password) {
		return shared.NewFieldError(shared.CodeValidation, "password", "Password must contain at least one letter and one number")
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewFieldError(shared.CodeValidation, "email", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewFieldError(shared.CodeValidation, "email", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewFieldError(shared.CodeValidation, "email", "Invalid email format")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
