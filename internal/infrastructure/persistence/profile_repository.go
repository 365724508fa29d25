package persistence

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/persistence/models"
)

// GormProfileRepository implements onboarding.ProfileRepository on the
// tenants, landlords and agencies tables
type GormProfileRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db, now: time.Now}
}

// Upsert inserts the profile row of userID or, when it exists, updates only
// the given fields. Fields that do not belong to role's profile are ignored.
// Repeated upserts of the same fields leave the row unchanged apart from
// updated_at.
func (r *GormProfileRepository) Upsert(ctx context.Context, role identity.Role, userID string, fields onboarding.Draft) error {
	table, ok := models.ProfileTable(role)
	if !ok {
		return shared.NewFieldError(shared.CodeValidation, "role", fmt.Sprintf("no profile table for role %q", role))
	}
	id, err := uuid.Parse(userID)
	if err != nil {
		return shared.NewDomainError(shared.CodeInvalidInput, "invalid user id")
	}

	now := r.now()
	row := map[string]any{
		"id":         id,
		"created_at": now,
		"updated_at": now,
	}
	updates := make([]string, 0, len(fields)+1)
	for key, value := range onboarding.ProfileFieldsOf(role, fields) {
		column := models.ProfileColumn[key]
		v, err := models.ColumnValue(value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", key, err)
		}
		row[column] = v
		updates = append(updates, column)
	}
	sort.Strings(updates)
	updates = append(updates, "updated_at")

	return r.db.WithContext(ctx).
		Table(table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Create(row).Error
}

// FindByUserID returns the profile record of userID for role
func (r *GormProfileRepository) FindByUserID(ctx context.Context, role identity.Role, userID string) (*onboarding.ProfileRecord, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, shared.ErrNotFound
	}

	var (
		fields onboarding.Draft
		stamps models.ProfileTimestamps
	)
	db := r.db.WithContext(ctx)
	switch role {
	case identity.RoleTenant:
		var m models.TenantModel
		err = db.First(&m, "id = ?", id).Error
		fields, stamps = m.Fields(), m.ProfileTimestamps
	case identity.RoleLandlord:
		var m models.LandlordModel
		err = db.First(&m, "id = ?", id).Error
		fields, stamps = m.Fields(), m.ProfileTimestamps
	case identity.RoleAgency:
		var m models.AgencyModel
		err = db.First(&m, "id = ?", id).Error
		fields, stamps = m.Fields(), m.ProfileTimestamps
	default:
		return nil, shared.ErrNotFound
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	return &onboarding.ProfileRecord{
		UserID:    stamps.ID.String(),
		Role:      role,
		Fields:    fields,
		CreatedAt: stamps.CreatedAt,
		UpdatedAt: stamps.UpdatedAt,
	}, nil
}

var _ onboarding.ProfileRepository = (*GormProfileRepository)(nil)
