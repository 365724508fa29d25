package models

import (
	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/shared"
)

// UserModel is the persistence model for the User domain entity.
// Role is NULL until the user picks one.
type UserModel struct {
	BaseModel
	Email        string  `gorm:"type:varchar(200);not null;uniqueIndex"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	FirstName    string  `gorm:"type:varchar(100);not null;default:''"`
	LastName     string  `gorm:"type:varchar(100);not null;default:''"`
	Role         *string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the persistence model to a domain User entity
func (m *UserModel) ToDomain() *identity.User {
	u := &identity.User{
		BaseEntity:   shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
	}
	if m.Role != nil {
		u.Role, _ = identity.ParseRole(*m.Role)
	}
	return u
}

// FromDomain populates the persistence model from a domain User entity
func (m *UserModel) FromDomain(u *identity.User) {
	m.FromDomainBaseEntity(u.BaseEntity)
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.FirstName = u.FirstName
	m.LastName = u.LastName
	m.Role = RoleColumn(u.Role)
}

// UserModelFromDomain creates a new persistence model from a domain User entity
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{}
	m.FromDomain(u)
	return m
}

// RoleColumn maps a role to its nullable column value
func RoleColumn(r identity.Role) *string {
	if !r.IsSet() {
		return nil
	}
	s := r.String()
	return &s
}
