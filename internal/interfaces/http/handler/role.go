package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/rentflow/backend/internal/application/onboarding"
	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/infrastructure/auth"
	"github.com/rentflow/backend/internal/interfaces/http/middleware"
)

// RoleSelector assigns the platform role of a user
type RoleSelector interface {
	SelectRole(ctx context.Context, claims *auth.SessionClaims, input onboarding.SelectRoleInput) (*onboarding.RoleSelectionResult, error)
}

// SelectRoleRequest is the role selection form
// @Description Role choice
type SelectRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=tenant landlord agency" example:"agency"`
}

// RoleSelectionResponse is returned once a role is chosen
// @Description Chosen role and the page to continue on
type RoleSelectionResponse struct {
	Role     string `json:"role" example:"agency"`
	Redirect string `json:"redirect" example:"/onboarding/agency/siret-search"`
}

// RolePageResponse describes the role selection page
// @Description Role selection page state
type RolePageResponse struct {
	Roles       []string `json:"roles" example:"tenant,landlord,agency"`
	CurrentRole string   `json:"currentRole,omitempty" example:"tenant"`
}

// RoleHandler handles the role selection page
type RoleHandler struct {
	BaseHandler
	roles  RoleSelector
	cookie *SessionCookie
}

// NewRoleHandler creates a new RoleHandler
func NewRoleHandler(roles RoleSelector, cookie *SessionCookie) *RoleHandler {
	return &RoleHandler{roles: roles, cookie: cookie}
}

// RolePage godoc
// @ID           getRolePage
// @Summary      Role selection page
// @Description  Lists the selectable roles and the role already held, if any
// @Tags         onboarding
// @Produce      json
// @Success      200 {object} APIResponse[RolePageResponse]
// @Router       /onboarding/role [get]
func (h *RoleHandler) RolePage(c *gin.Context) {
	page := RolePageResponse{
		Roles: []string{identity.RoleTenant.String(), identity.RoleLandlord.String(), identity.RoleAgency.String()},
	}
	if id := middleware.GetIdentity(c); id != nil {
		page.CurrentRole = id.Role.String()
	}
	h.Success(c, page)
}

// SelectRole godoc
// @ID           selectRole
// @Summary      Choose a role
// @Description  Assigns the role, seeds the role's profile and re-issues the session cookie with the role
// @Tags         onboarding
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body SelectRoleRequest true "Role"
// @Success      200 {object} APIResponse[RoleSelectionResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /onboarding/role [post]
func (h *RoleHandler) SelectRole(c *gin.Context) {
	claims, ok := h.sessionClaims(c)
	if !ok {
		return
	}

	var req SelectRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.roles.SelectRole(c.Request.Context(), claims, onboarding.SelectRoleInput{Role: req.Role})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if result.Session != nil {
		h.cookie.Set(c, result.Session)
	}
	h.Success(c, RoleSelectionResponse{Role: result.Role.String(), Redirect: result.Redirect})
}
