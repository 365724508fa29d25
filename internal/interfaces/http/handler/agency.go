package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rentflow/backend/internal/application/onboarding"
	domain "github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/interfaces/http/dto"
	"github.com/rentflow/backend/internal/interfaces/http/middleware"
)

const agencyStepPrefix = "/onboarding/agency/"

// AgencyWizard runs the agency onboarding steps
type AgencyWizard interface {
	View(ctx context.Context, actor onboarding.Actor, step domain.StepID) (*onboarding.WizardView, error)
	SubmitSiretSearch(ctx context.Context, actor onboarding.Actor, siret string) (*onboarding.StepResult, error)
	ConfirmAddress(ctx context.Context, actor onboarding.Actor, correction *domain.AddressInput) (*onboarding.StepResult, error)
	BranchToManual(ctx context.Context, actor onboarding.Actor, from domain.StepID) (*onboarding.StepResult, error)
	SubmitManualInfo(ctx context.Context, actor onboarding.Actor, input domain.ManualInfoInput) (*onboarding.StepResult, error)
	UploadProof(ctx context.Context, actor onboarding.Actor, doc domain.Document) (*onboarding.UploadResult, error)
	SubmitManualAddress(ctx context.Context, actor onboarding.Actor, input domain.AddressInput) (*onboarding.StepResult, error)
	FinishSetup(ctx context.Context, actor onboarding.Actor, input domain.FinishingSetupInput) (*onboarding.StepResult, error)
	Back(ctx context.Context, actor onboarding.Actor, from domain.StepID) (*onboarding.StepResult, error)
}

// AgencyHandler handles the agency onboarding wizard pages
type AgencyHandler struct {
	BaseHandler
	wizard AgencyWizard
}

// NewAgencyHandler creates a new AgencyHandler
func NewAgencyHandler(wizard AgencyWizard) *AgencyHandler {
	return &AgencyHandler{wizard: wizard}
}

// GetStep godoc
// @ID           getAgencyStep
// @Summary      Agency wizard step
// @Description  Returns the wizard state on a step: position, neighbouring steps and the answers so far
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        step path string true "Step" Enums(siret-search, confirm-address, manual-info, manual-address, finishing-setup)
// @Success      200 {object} APIResponse[WizardResponse]
// @Failure      500 {object} ErrorResponse
// @Router       /onboarding/agency/{step} [get]
func (h *AgencyHandler) GetStep(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	view, err := h.wizard.View(c.Request.Context(), actor, domain.StepID(agencyStepPrefix+c.Param("step")))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toWizardResponse(view))
}

// SiretSearch godoc
// @ID           submitSiretSearch
// @Summary      Look up the agency company
// @Description  Looks the SIREN/SIRET up in the company registry, stores the result and moves to address confirmation
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SiretSearchRequest true "Identifier"
// @Success      200 {object} APIResponse[StepResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /onboarding/agency/siret-search [post]
func (h *AgencyHandler) SiretSearch(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req SiretSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.wizard.SubmitSiretSearch(c.Request.Context(), actor, req.SiretNumber)
	h.respondStep(c, result, err)
}

// ConfirmAddress godoc
// @ID           confirmAgencyAddress
// @Summary      Confirm the company address
// @Description  Confirms the looked-up address, or replaces it when a corrected address is sent
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ConfirmAddressRequest false "Corrected address"
// @Success      200 {object} APIResponse[StepResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /onboarding/agency/confirm-address [post]
func (h *AgencyHandler) ConfirmAddress(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req ConfirmAddressRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
	}

	result, err := h.wizard.ConfirmAddress(c.Request.Context(), actor, req.correction())
	h.respondStep(c, result, err)
}

// BranchToManual godoc
// @ID           branchAgencyToManual
// @Summary      Enter company details manually
// @Description  Leaves the lookup path for manual entry, keeping the answers so far
// @Tags         onboarding
// @Produce      json
// @Security     BearerAuth
// @Param        step path string true "Lookup step" Enums(siret-search, confirm-address)
// @Success      200 {object} APIResponse[StepResponse]
// @Failure      422 {object} ErrorResponse
// @Router       /onboarding/agency/{step}/manual [post]
func (h *AgencyHandler) BranchToManual(from domain.StepID) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := h.actor(c)
		if !ok {
			return
		}
		result, err := h.wizard.BranchToManual(c.Request.Context(), actor, from)
		h.respondStep(c, result, err)
	}
}

// ManualInfo godoc
// @ID           submitAgencyManualInfo
// @Summary      Submit company information
// @Description  Stores the manually entered company information and moves to the address step
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ManualInfoRequest true "Company information"
// @Success      200 {object} APIResponse[StepResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /onboarding/agency/manual-info [post]
func (h *AgencyHandler) ManualInfo(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req ManualInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.wizard.SubmitManualInfo(c.Request.Context(), actor, domain.ManualInfoInput{
		LegalName:        req.LegalName,
		LegalForms:       req.LegalForms,
		SiretSirenNumber: req.SiretSirenNumber,
		RegistrationDate: req.RegistrationDate,
	})
	h.respondStep(c, result, err)
}

// UploadProof godoc
// @ID           uploadAgencyProof
// @Summary      Upload proof of registration
// @Description  Stores one image or PDF (max 4 MiB) and records its URL. The wizard stays on the current step.
// @Tags         onboarding
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        file formData file true "Proof of registration"
// @Success      200 {object} APIResponse[UploadResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      413 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /onboarding/agency/manual-info/proof [post]
func (h *AgencyHandler) UploadProof(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		h.BadRequest(c, "Expected a multipart form with a file")
		return
	}
	files := form.File["file"]
	if len(files) != 1 {
		c.JSON(http.StatusBadRequest, dto.NewFieldErrorResponse(dto.ErrCodeValidation,
			"Please upload exactly one file.", getRequestID(c), domain.FieldProofOfRegistrationURL))
		return
	}

	header := files[0]
	file, err := header.Open()
	if err != nil {
		h.BadRequest(c, "Unable to read the uploaded file")
		return
	}
	defer file.Close()

	result, err := h.wizard.UploadProof(c.Request.Context(), actor, domain.Document{
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, UploadResponse{URL: result.URL, Wizard: toWizardResponse(result.Wizard)})
}

// ManualAddress godoc
// @ID           submitAgencyManualAddress
// @Summary      Submit company address
// @Description  Stores the manually entered address and moves to the final step
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AddressRequest true "Address"
// @Success      200 {object} APIResponse[StepResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /onboarding/agency/manual-address [post]
func (h *AgencyHandler) ManualAddress(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.wizard.SubmitManualAddress(c.Request.Context(), actor, req.input())
	h.respondStep(c, result, err)
}

// FinishingSetup godoc
// @ID           submitAgencyFinishingSetup
// @Summary      Finish agency setup
// @Description  Stores the software preferences, completes onboarding and sends the agency to its dashboard
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body FinishingSetupRequest true "Preferences"
// @Success      200 {object} APIResponse[StepResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /onboarding/agency/finishing-setup [post]
func (h *AgencyHandler) FinishingSetup(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req FinishingSetupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.wizard.FinishSetup(c.Request.Context(), actor, domain.FinishingSetupInput{
		RentalSoftware:      req.RentalSoftware,
		OtherRentalSoftware: req.OtherRentalSoftware,
		UnitsManaged:        req.UnitsManaged,
	})
	h.respondStep(c, result, err)
}

// Back godoc
// @ID           agencyStepBack
// @Summary      Previous step
// @Description  Moves one step back; stays on the first step of a flow
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body BackRequest true "Current step"
// @Success      200 {object} APIResponse[StepResponse]
// @Failure      400 {object} ErrorResponse
// @Router       /onboarding/agency/back [post]
func (h *AgencyHandler) Back(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	var req BackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.wizard.Back(c.Request.Context(), actor, domain.StepID(req.From))
	h.respondStep(c, result, err)
}

func (h *AgencyHandler) respondStep(c *gin.Context, result *onboarding.StepResult, err error) {
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toStepResponse(result))
}
