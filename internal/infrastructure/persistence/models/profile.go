package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
)

// Profile table names
const (
	TenantsTable   = "tenants"
	LandlordsTable = "landlords"
	AgenciesTable  = "agencies"
)

// ProfileTable returns the table holding role's profile records
func ProfileTable(role identity.Role) (string, bool) {
	switch role {
	case identity.RoleTenant:
		return TenantsTable, true
	case identity.RoleLandlord:
		return LandlordsTable, true
	case identity.RoleAgency:
		return AgenciesTable, true
	default:
		return "", false
	}
}

// ProfileColumn maps a profile field (draft key) to its column name
var ProfileColumn = map[string]string{
	onboarding.FieldFirstName:                "first_name",
	onboarding.FieldLastName:                 "last_name",
	onboarding.FieldEmail:                    "email",
	onboarding.FieldCompanyName:              "company_name",
	onboarding.FieldSiretNumber:              "siret_number",
	onboarding.FieldAddress:                  "address",
	onboarding.FieldAdditionalAddressDetails: "additional_address_details",
	onboarding.FieldZipCode:                  "zip_code",
	onboarding.FieldCity:                     "city",
	onboarding.FieldLegalName:                "legal_name",
	onboarding.FieldLegalForms:               "legal_forms",
	onboarding.FieldSiretSirenNumber:         "siret_siren_number",
	onboarding.FieldRegistrationDate:         "registration_date",
	onboarding.FieldProofOfRegistrationURL:   "proof_of_registration_url",
	onboarding.FieldRentalSoftware:           "rental_software",
	onboarding.FieldOtherRentalSoftware:      "other_rental_software",
	onboarding.FieldUnitsManaged:             "units_managed",
}

// ProfileTimestamps are the bookkeeping columns of every profile table.
// The id column is the owning user's id.
type ProfileTimestamps struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// PersonProfileModel is the profile of a tenant or landlord
type PersonProfileModel struct {
	ProfileTimestamps
	FirstName *string `gorm:"type:varchar(100)"`
	LastName  *string `gorm:"type:varchar(100)"`
	Email     *string `gorm:"type:varchar(200)"`
}

// Fields returns the non-null columns keyed by field name
func (m *PersonProfileModel) Fields() onboarding.Draft {
	d := onboarding.Draft{}
	putString(d, onboarding.FieldFirstName, m.FirstName)
	putString(d, onboarding.FieldLastName, m.LastName)
	putString(d, onboarding.FieldEmail, m.Email)
	return d
}

// TenantModel is the persistence model of tenant profiles
type TenantModel struct {
	PersonProfileModel
}

// TableName returns the table name for GORM
func (TenantModel) TableName() string {
	return TenantsTable
}

// LandlordModel is the persistence model of landlord profiles
type LandlordModel struct {
	PersonProfileModel
}

// TableName returns the table name for GORM
func (LandlordModel) TableName() string {
	return LandlordsTable
}

// AgencyModel is the persistence model of agency profiles. Every column
// is nullable: the row is created empty at role selection and filled step
// by step by the onboarding wizard. LegalForms holds a JSON array.
type AgencyModel struct {
	ProfileTimestamps
	CompanyName              *string `gorm:"type:varchar(255)"`
	SiretNumber              *string `gorm:"type:varchar(14)"`
	Address                  *string `gorm:"type:varchar(255)"`
	AdditionalAddressDetails *string `gorm:"type:varchar(255)"`
	ZipCode                  *string `gorm:"type:varchar(5)"`
	City                     *string `gorm:"type:varchar(100)"`
	LegalName                *string `gorm:"type:varchar(255)"`
	LegalForms               *string `gorm:"type:jsonb"`
	SiretSirenNumber         *string `gorm:"type:varchar(14)"`
	RegistrationDate         *string `gorm:"type:varchar(10)"`
	ProofOfRegistrationURL   *string `gorm:"column:proof_of_registration_url;type:text"`
	RentalSoftware           *string `gorm:"type:varchar(50)"`
	OtherRentalSoftware      *string `gorm:"type:varchar(100)"`
	UnitsManaged             *string `gorm:"type:varchar(20)"`
}

// TableName returns the table name for GORM
func (AgencyModel) TableName() string {
	return AgenciesTable
}

// Fields returns the non-null columns keyed by field name
func (m *AgencyModel) Fields() onboarding.Draft {
	d := onboarding.Draft{}
	putString(d, onboarding.FieldCompanyName, m.CompanyName)
	putString(d, onboarding.FieldSiretNumber, m.SiretNumber)
	putString(d, onboarding.FieldAddress, m.Address)
	putString(d, onboarding.FieldAdditionalAddressDetails, m.AdditionalAddressDetails)
	putString(d, onboarding.FieldZipCode, m.ZipCode)
	putString(d, onboarding.FieldCity, m.City)
	putString(d, onboarding.FieldLegalName, m.LegalName)
	putString(d, onboarding.FieldSiretSirenNumber, m.SiretSirenNumber)
	putString(d, onboarding.FieldRegistrationDate, m.RegistrationDate)
	putString(d, onboarding.FieldProofOfRegistrationURL, m.ProofOfRegistrationURL)
	putString(d, onboarding.FieldRentalSoftware, m.RentalSoftware)
	putString(d, onboarding.FieldOtherRentalSoftware, m.OtherRentalSoftware)
	putString(d, onboarding.FieldUnitsManaged, m.UnitsManaged)
	if m.LegalForms != nil {
		var forms []string
		if err := json.Unmarshal([]byte(*m.LegalForms), &forms); err == nil {
			d[onboarding.FieldLegalForms] = forms
		}
	}
	return d
}

// ColumnValue converts a draft value to the value stored in its column.
// String slices are stored as JSON arrays.
func ColumnValue(v any) (any, error) {
	switch val := v.(type) {
	case []string:
		b, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	case []any:
		b, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		return string(b), nil
	default:
		return v, nil
	}
}

func putString(d onboarding.Draft, key string, v *string) {
	if v != nil {
		d[key] = *v
	}
}
