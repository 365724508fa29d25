package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	domain "github.com/rentflow/backend/internal/domain/onboarding"
)

// CompanyLookup resolves SIREN/SIRET identifiers
type CompanyLookup interface {
	LookupCompany(ctx context.Context, identifier string) (*domain.Company, error)
}

// RegistryHandler exposes the company registry lookup, used by the lookup
// step to retry a search without submitting it
type RegistryHandler struct {
	BaseHandler
	lookup CompanyLookup
}

// NewRegistryHandler creates a new RegistryHandler
func NewRegistryHandler(lookup CompanyLookup) *RegistryHandler {
	return &RegistryHandler{lookup: lookup}
}

// GetCompany godoc
// @ID           getRegistryCompany
// @Summary      Look up a company
// @Description  Resolves a 9-digit SIREN or 14-digit SIRET in the company registry
// @Tags         registry
// @Produce      json
// @Security     BearerAuth
// @Param        identifier path string true "SIREN or SIRET"
// @Success      200 {object} APIResponse[CompanyResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /registry/companies/{identifier} [get]
func (h *RegistryHandler) GetCompany(c *gin.Context) {
	company, err := h.lookup.LookupCompany(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCompanyResponse(company))
}
