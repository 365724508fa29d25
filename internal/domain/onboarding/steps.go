package onboarding

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rentflow/backend/internal/domain/shared"
)

// Accepted choices on agency steps
var (
	LegalForms        = []string{"sas", "sarl", "sasu"}
	RentalSoftwares   = []string{"sweepbright", "hecktor", "ac3", "other"}
	UnitsManagedBands = []string{"10-100", "100-300", "300+"}
)

// RentalSoftwareOther requires a free-text software name
const RentalSoftwareOther = "other"

const registrationDateLayout = "02/01/2006"

var registrationDateRegex = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

// AddressInput is submitted on the address steps
type AddressInput struct {
	Address                  string
	AdditionalAddressDetails string
	ZipCode                  string
	City                     string
}

// Validate checks the address fields
func (in AddressInput) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(in.Address)) < 5 {
		return shared.NewFieldError(shared.CodeValidation, FieldAddress, "Address must be at least 5 characters.")
	}
	if utf8.RuneCountInString(in.ZipCode) != 5 {
		return shared.NewFieldError(shared.CodeValidation, FieldZipCode, "Zip code must be 5 characters.")
	}
	if utf8.RuneCountInString(strings.TrimSpace(in.City)) < 2 {
		return shared.NewFieldError(shared.CodeValidation, FieldCity, "City must be at least 2 characters.")
	}
	return nil
}

// Draft returns the draft fields of the input
func (in AddressInput) Draft() Draft {
	return Draft{
		FieldAddress:                  strings.TrimSpace(in.Address),
		FieldAdditionalAddressDetails: strings.TrimSpace(in.AdditionalAddressDetails),
		FieldZipCode:                  in.ZipCode,
		FieldCity:                     strings.TrimSpace(in.City),
	}
}

// ManualInfoInput is submitted on the manual company information step
type ManualInfoInput struct {
	LegalName        string
	LegalForms       []string
	SiretSirenNumber string
	RegistrationDate string
}

// Validate checks the company information fields
func (in ManualInfoInput) Validate() error {
	if utf8.RuneCountInString(strings.TrimSpace(in.LegalName)) < 2 {
		return shared.NewFieldError(shared.CodeValidation, FieldLegalName, "Legal name must be at least 2 characters.")
	}
	if len(in.LegalForms) == 0 {
		return shared.NewFieldError(shared.CodeValidation, FieldLegalForms, "Please select at least one legal form.")
	}
	for _, f := range in.LegalForms {
		if !contains(LegalForms, f) {
			return shared.NewFieldError(shared.CodeValidation, FieldLegalForms, "Unknown legal form: "+f)
		}
	}
	if _, err := ParseCompanyIdentifier(in.SiretSirenNumber); err != nil {
		return shared.NewFieldError(shared.CodeValidation, FieldSiretSirenNumber, invalidIdentifierMessage)
	}
	if !registrationDateRegex.MatchString(in.RegistrationDate) {
		return shared.NewFieldError(shared.CodeValidation, FieldRegistrationDate, "Date must be in DD/MM/YYYY format")
	}
	if _, err := time.Parse(registrationDateLayout, in.RegistrationDate); err != nil {
		return shared.NewFieldError(shared.CodeValidation, FieldRegistrationDate, "Invalid date")
	}
	return nil
}

// Draft returns the draft fields of the input
func (in ManualInfoInput) Draft() Draft {
	forms := make([]string, len(in.LegalForms))
	copy(forms, in.LegalForms)
	return Draft{
		FieldLegalName:        strings.TrimSpace(in.LegalName),
		FieldLegalForms:       forms,
		FieldSiretSirenNumber: in.SiretSirenNumber,
		FieldRegistrationDate: in.RegistrationDate,
	}
}

// FinishingSetupInput is submitted on the final agency step
type FinishingSetupInput struct {
	RentalSoftware      string
	OtherRentalSoftware string
	UnitsManaged        string
}

// Validate checks the software preference fields
func (in FinishingSetupInput) Validate() error {
	if in.RentalSoftware == "" {
		return shared.NewFieldError(shared.CodeValidation, FieldRentalSoftware, "Please select a rental software.")
	}
	if !contains(RentalSoftwares, in.RentalSoftware) {
		return shared.NewFieldError(shared.CodeValidation, FieldRentalSoftware, "Unknown rental software.")
	}
	if in.RentalSoftware == RentalSoftwareOther && strings.TrimSpace(in.OtherRentalSoftware) == "" {
		return shared.NewFieldError(shared.CodeValidation, FieldOtherRentalSoftware, "Please specify the other rental software.")
	}
	if in.UnitsManaged == "" {
		return shared.NewFieldError(shared.CodeValidation, FieldUnitsManaged, "Please select how many units you manage.")
	}
	if !contains(UnitsManagedBands, in.UnitsManaged) {
		return shared.NewFieldError(shared.CodeValidation, FieldUnitsManaged, "Unknown units range.")
	}
	return nil
}

// Draft returns the draft fields of the input. The free-text software name
// is dropped unless "other" was chosen.
func (in FinishingSetupInput) Draft() Draft {
	other := ""
	if in.RentalSoftware == RentalSoftwareOther {
		other = strings.TrimSpace(in.OtherRentalSoftware)
	}
	return Draft{
		FieldRentalSoftware:      in.RentalSoftware,
		FieldOtherRentalSoftware: other,
		FieldUnitsManaged:        in.UnitsManaged,
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
