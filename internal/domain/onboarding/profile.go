package onboarding

import (
	"context"
	"time"

	"github.com/rentflow/backend/internal/domain/identity"
)

// Profile field names. They double as draft keys.
const (
	FieldFirstName                = "firstName"
	FieldLastName                 = "lastName"
	FieldEmail                    = "email"
	FieldCompanyName              = "companyName"
	FieldSiretNumber              = "siretNumber"
	FieldAddress                  = "address"
	FieldAdditionalAddressDetails = "additionalAddressDetails"
	FieldZipCode                  = "zipCode"
	FieldCity                     = "city"
	FieldLegalName                = "legalName"
	FieldLegalForms               = "legalForms"
	FieldSiretSirenNumber         = "siretSirenNumber"
	FieldRegistrationDate         = "registrationDate"
	FieldProofOfRegistrationURL   = "proofOfRegistrationUrl"
	FieldRentalSoftware           = "rentalSoftware"
	FieldOtherRentalSoftware      = "otherRentalSoftware"
	FieldUnitsManaged             = "unitsManaged"
)

var profileFields = map[identity.Role][]string{
	identity.RoleTenant:   {FieldFirstName, FieldLastName, FieldEmail},
	identity.RoleLandlord: {FieldFirstName, FieldLastName, FieldEmail},
	identity.RoleAgency: {
		FieldCompanyName, FieldSiretNumber, FieldAddress, FieldAdditionalAddressDetails,
		FieldZipCode, FieldCity, FieldLegalName, FieldLegalForms, FieldSiretSirenNumber,
		FieldRegistrationDate, FieldProofOfRegistrationURL, FieldRentalSoftware,
		FieldOtherRentalSoftware, FieldUnitsManaged,
	},
}

// ProfileFields returns the fields stored on role's profile record
func ProfileFields(role identity.Role) []string {
	return profileFields[role]
}

// ProfileFieldsOf keeps only the keys of d that belong to role's profile
func ProfileFieldsOf(role identity.Role, d Draft) Draft {
	out := Draft{}
	for _, f := range profileFields[role] {
		if v, ok := d[f]; ok {
			out[f] = v
		}
	}
	return out
}

// ProfileRecord is the durable per-identity, per-role profile row
type ProfileRecord struct {
	UserID    string
	Role      identity.Role
	Fields    Draft
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileRepository persists profile records. Upsert inserts the row keyed
// by userID when absent and otherwise updates only the given fields.
type ProfileRepository interface {
	Upsert(ctx context.Context, role identity.Role, userID string, fields Draft) error
	FindByUserID(ctx context.Context, role identity.Role, userID string) (*ProfileRecord, error)
}
