package handler

import (
	"github.com/rentflow/backend/internal/application/onboarding"
	domain "github.com/rentflow/backend/internal/domain/onboarding"
)

// SiretSearchRequest is the company lookup form
// @Description Company identifier to look up
type SiretSearchRequest struct {
	SiretNumber string `json:"siretNumber" binding:"required,siret" example:"73282932000074"`
}

// ConfirmAddressRequest confirms the looked-up address. Leaving every field
// empty confirms it as is; otherwise the fields replace it.
// @Description Optional address correction
type ConfirmAddressRequest struct {
	Address                  string `json:"address" example:"10 rue de la Paix"`
	AdditionalAddressDetails string `json:"additionalAddressDetails" example:"Bâtiment B"`
	ZipCode                  string `json:"zipCode" binding:"omitempty,zipcode" example:"75002"`
	City                     string `json:"city" example:"Paris"`
}

func (r ConfirmAddressRequest) correction() *domain.AddressInput {
	if r.Address == "" && r.AdditionalAddressDetails == "" && r.ZipCode == "" && r.City == "" {
		return nil
	}
	in := AddressRequest(r).input()
	return &in
}

// AddressRequest is the manual address form
// @Description Company address
type AddressRequest struct {
	Address                  string `json:"address" binding:"required,min=5" example:"10 rue de la Paix"`
	AdditionalAddressDetails string `json:"additionalAddressDetails" example:"Bâtiment B"`
	ZipCode                  string `json:"zipCode" binding:"required,zipcode" example:"75002"`
	City                     string `json:"city" binding:"required,min=2" example:"Paris"`
}

func (r AddressRequest) input() domain.AddressInput {
	return domain.AddressInput{
		Address:                  r.Address,
		AdditionalAddressDetails: r.AdditionalAddressDetails,
		ZipCode:                  r.ZipCode,
		City:                     r.City,
	}
}

// ManualInfoRequest is the manual company information form
// @Description Company information entered by hand
type ManualInfoRequest struct {
	LegalName        string   `json:"legalName" binding:"required,min=2" example:"Agence Dupont"`
	LegalForms       []string `json:"legalForms" binding:"required,min=1,dive,oneof=sas sarl sasu" example:"sas"`
	SiretSirenNumber string   `json:"siretSirenNumber" binding:"required,siret" example:"732829320"`
	RegistrationDate string   `json:"registrationDate" binding:"required,frdate" example:"15/03/2019"`
}

// FinishingSetupRequest is the software preferences form
// @Description Rental software and portfolio size
type FinishingSetupRequest struct {
	RentalSoftware      string `json:"rentalSoftware" binding:"required,oneof=sweepbright hecktor ac3 other" example:"other"`
	OtherRentalSoftware string `json:"otherRentalSoftware" binding:"required_if=RentalSoftware other" example:"Immo Facile"`
	UnitsManaged        string `json:"unitsManaged" binding:"required,oneof=10-100 100-300 300+" example:"100-300"`
}

// BackRequest names the step the client is leaving
// @Description Current step
type BackRequest struct {
	From string `json:"from" binding:"required" example:"/onboarding/agency/confirm-address"`
}

// WizardResponse is the wizard state of a step page
// @Description Wizard position and accumulated answers
type WizardResponse struct {
	Flow     string         `json:"flow" example:"agency"`
	Step     string         `json:"step" example:"/onboarding/agency/confirm-address"`
	Index    int            `json:"index" example:"1"`
	Total    int            `json:"total" example:"3"`
	Previous string         `json:"previous,omitempty" example:"/onboarding/agency/siret-search"`
	Next     string         `json:"next,omitempty" example:"/onboarding/agency/finishing-setup"`
	Draft    map[string]any `json:"draft"`
}

// StepResponse is returned by wizard submissions
// @Description Next page and the wizard state
type StepResponse struct {
	Redirect  string          `json:"redirect" example:"/onboarding/agency/confirm-address"`
	Completed bool            `json:"completed,omitempty"`
	Wizard    *WizardResponse `json:"wizard,omitempty"`
}

// UploadResponse is returned after a proof of registration upload
// @Description Stored document URL
type UploadResponse struct {
	URL    string          `json:"url" example:"https://storage.example.com/proofs/u/1.pdf"`
	Wizard *WizardResponse `json:"wizard,omitempty"`
}

// CompanyResponse is a company registry record
// @Description Company registry record
type CompanyResponse struct {
	SIREN     string `json:"siren" example:"732829320"`
	SIRET     string `json:"siret,omitempty" example:"73282932000074"`
	LegalName string `json:"legalName" example:"AGENCE DUPONT"`
	Address   string `json:"address" example:"10 RUE DE LA PAIX"`
	ZipCode   string `json:"zipCode" example:"75002"`
	City      string `json:"city" example:"PARIS"`
}

func toWizardResponse(v *onboarding.WizardView) *WizardResponse {
	if v == nil {
		return nil
	}
	draft := map[string]any(v.Draft)
	if draft == nil {
		draft = map[string]any{}
	}
	return &WizardResponse{
		Flow:     v.Flow,
		Step:     string(v.Step),
		Index:    v.Index,
		Total:    v.Total,
		Previous: string(v.Previous),
		Next:     string(v.Next),
		Draft:    draft,
	}
}

func toStepResponse(r *onboarding.StepResult) StepResponse {
	return StepResponse{
		Redirect:  r.Redirect,
		Completed: r.Completed,
		Wizard:    toWizardResponse(r.Wizard),
	}
}

func toCompanyResponse(c *domain.Company) CompanyResponse {
	return CompanyResponse{
		SIREN:     c.SIREN,
		SIRET:     c.SIRET,
		LegalName: c.LegalName,
		Address:   c.Address,
		ZipCode:   c.ZipCode,
		City:      c.City,
	}
}
