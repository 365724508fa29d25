package persistence

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
)

func TestGormProfileRepository_SeedPersonProfiles(t *testing.T) {
	repo := NewGormProfileRepository(newSQLiteDB(t))
	ctx := context.Background()

	for _, role := range []identity.Role{identity.RoleTenant, identity.RoleLandlord} {
		t.Run(role.String(), func(t *testing.T) {
			userID := uuid.NewString()
			seed := onboarding.Draft{
				"firstName": "Alice",
				"lastName":  "Martin",
				"email":     "alice@example.fr",
			}
			require.NoError(t, repo.Upsert(ctx, role, userID, seed))

			rec, err := repo.FindByUserID(ctx, role, userID)
			require.NoError(t, err)
			assert.Equal(t, userID, rec.UserID)
			assert.Equal(t, role, rec.Role)
			assert.Equal(t, seed, rec.Fields)
			assert.False(t, rec.CreatedAt.IsZero())
		})
	}
}

func TestGormProfileRepository_EmptyAgencySeed(t *testing.T) {
	repo := NewGormProfileRepository(newSQLiteDB(t))
	ctx := context.Background()
	userID := uuid.NewString()

	require.NoError(t, repo.Upsert(ctx, identity.RoleAgency, userID, onboarding.Draft{}))

	rec, err := repo.FindByUserID(ctx, identity.RoleAgency, userID)
	require.NoError(t, err)
	assert.Empty(t, rec.Fields)
}

func TestGormProfileRepository_UpsertMergesFields(t *testing.T) {
	repo := NewGormProfileRepository(newSQLiteDB(t))
	ctx := context.Background()
	userID := uuid.NewString()

	first := onboarding.Draft{
		"companyName": "L2a Immo",
		"siretNumber": "79364393300047",
		"address":     "41 Cours Gambetta",
		"zipCode":     "69003",
		"city":        "Lyon",
	}
	second := onboarding.Draft{
		"legalForms":   []string{"sas", "sarl"},
		"unitsManaged": "10-100",
		"city":         "Lyon 3e",
	}

	require.NoError(t, repo.Upsert(ctx, identity.RoleAgency, userID, first))
	created, err := repo.FindByUserID(ctx, identity.RoleAgency, userID)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(ctx, identity.RoleAgency, userID, second))

	rec, err := repo.FindByUserID(ctx, identity.RoleAgency, userID)
	require.NoError(t, err)
	assert.Equal(t, "L2a Immo", rec.Fields.String("companyName"))
	assert.Equal(t, "41 Cours Gambetta", rec.Fields.String("address"))
	assert.Equal(t, "Lyon 3e", rec.Fields.String("city"))
	assert.Equal(t, "10-100", rec.Fields.String("unitsManaged"))
	assert.Equal(t, []string{"sas", "sarl"}, rec.Fields.Strings("legalForms"))
	assert.Equal(t, created.CreatedAt.Unix(), rec.CreatedAt.Unix())
}

func TestGormProfileRepository_UpsertIsIdempotent(t *testing.T) {
	repo := NewGormProfileRepository(newSQLiteDB(t))
	ctx := context.Background()
	userID := uuid.NewString()
	fields := onboarding.Draft{"rentalSoftware": "hecktor", "unitsManaged": "300+"}

	require.NoError(t, repo.Upsert(ctx, identity.RoleAgency, userID, fields))
	once, err := repo.FindByUserID(ctx, identity.RoleAgency, userID)
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(ctx, identity.RoleAgency, userID, fields))
	twice, err := repo.FindByUserID(ctx, identity.RoleAgency, userID)
	require.NoError(t, err)

	assert.Equal(t, once.Fields, twice.Fields)
}

func TestGormProfileRepository_IgnoresForeignFields(t *testing.T) {
	repo := NewGormProfileRepository(newSQLiteDB(t))
	ctx := context.Background()
	userID := uuid.NewString()

	require.NoError(t, repo.Upsert(ctx, identity.RoleTenant, userID, onboarding.Draft{
		"firstName":   "Alice",
		"companyName": "not a tenant field",
	}))

	rec, err := repo.FindByUserID(ctx, identity.RoleTenant, userID)
	require.NoError(t, err)
	assert.Equal(t, onboarding.Draft{"firstName": "Alice"}, rec.Fields)
}

func TestGormProfileRepository_Errors(t *testing.T) {
	repo := NewGormProfileRepository(newSQLiteDB(t))
	ctx := context.Background()

	t.Run("unset role", func(t *testing.T) {
		err := repo.Upsert(ctx, identity.RoleUnset, uuid.NewString(), onboarding.Draft{})
		assert.ErrorIs(t, err, shared.ErrValidation)
	})

	t.Run("invalid user id", func(t *testing.T) {
		err := repo.Upsert(ctx, identity.RoleTenant, "user-1", onboarding.Draft{})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := repo.FindByUserID(ctx, identity.RoleLandlord, uuid.NewString())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByUserID(ctx, identity.RoleUnset, uuid.NewString())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("profile of another role", func(t *testing.T) {
		userID := uuid.NewString()
		require.NoError(t, repo.Upsert(ctx, identity.RoleTenant, userID, onboarding.Draft{"firstName": "A"}))

		_, err := repo.FindByUserID(ctx, identity.RoleAgency, userID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestGormProfileRepository_UpsertSQL(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	repo := NewGormProfileRepository(db.DB)
	repo.now = func() time.Time { return now }
	userID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(
		`INSERT INTO "agencies" ("city","created_at","id","updated_at","zip_code") VALUES ($1,$2,$3,$4,$5) ` +
			`ON CONFLICT ("id") DO UPDATE SET "city"="excluded"."city","zip_code"="excluded"."zip_code","updated_at"="excluded"."updated_at"`,
	)).
		WithArgs("Lyon", now, userID.String(), now, "69003").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Upsert(context.Background(), identity.RoleAgency, userID.String(), onboarding.Draft{
		"zipCode": "69003",
		"city":    "Lyon",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormProfileRepository_UpsertFailure(t *testing.T) {
	db, mock, mockDB := newMockDatabase(t)
	defer mockDB.Close()

	repo := NewGormProfileRepository(db.DB)
	mock.ExpectExec(`INSERT INTO "tenants"`).WillReturnError(errors.New("connection reset"))

	err := repo.Upsert(context.Background(), identity.RoleTenant, uuid.NewString(), onboarding.Draft{"firstName": "A"})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
