package onboarding

import (
	"context"
	"regexp"
	"strings"

	"github.com/rentflow/backend/internal/domain/shared"
)

const invalidIdentifierMessage = "Please enter a valid 9-digit SIREN or 14-digit SIRET number."

var companyIdentifierRegex = regexp.MustCompile(`^[0-9]{9}$|^[0-9]{14}$`)

// CompanyIdentifier is a SIREN (9 digits) or SIRET (14 digits) number
type CompanyIdentifier string

// ParseCompanyIdentifier validates s as a SIREN or SIRET number
func ParseCompanyIdentifier(s string) (CompanyIdentifier, error) {
	s = strings.TrimSpace(s)
	if !companyIdentifierRegex.MatchString(s) {
		return "", shared.NewFieldError(shared.CodeValidation, FieldSiretNumber, invalidIdentifierMessage)
	}
	return CompanyIdentifier(s), nil
}

// IsSIRET reports whether the identifier designates an establishment
func (id CompanyIdentifier) IsSIRET() bool {
	return len(id) == 14
}

// SIREN returns the company part of the identifier
func (id CompanyIdentifier) SIREN() string {
	if len(id) < 9 {
		return string(id)
	}
	return string(id[:9])
}

func (id CompanyIdentifier) String() string {
	return string(id)
}

// Company is a registry record resolved from an identifier
type Company struct {
	SIREN     string
	NIC       string
	SIRET     string
	LegalName string
	Address   string
	ZipCode   string
	City      string
}

// Draft returns the draft fields prefilled from the registry
func (c Company) Draft(id CompanyIdentifier) Draft {
	return Draft{
		FieldSiretNumber: id.String(),
		FieldCompanyName: c.LegalName,
		FieldAddress:     c.Address,
		FieldZipCode:     c.ZipCode,
		FieldCity:        c.City,
	}
}

// CompanyRegistry resolves business identifiers to registry records
type CompanyRegistry interface {
	LookupByIdentifier(ctx context.Context, id CompanyIdentifier) (*Company, error)
}
