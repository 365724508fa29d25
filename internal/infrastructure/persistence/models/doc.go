// Package models contains GORM-specific persistence models that map to database tables.
// These models are separate from domain entities to keep the domain layer pure and free
// from ORM concerns.
//
// Structure:
// - base.go: BaseModel shared by every table
// - identity.go: users table (identity provider records)
// - profile.go: per-role profile tables (tenants, landlords, agencies)
package models
