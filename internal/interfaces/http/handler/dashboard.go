package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rentflow/backend/internal/application/onboarding"
	"github.com/rentflow/backend/internal/domain/identity"
)

// ProfileReader returns the profile of the caller's role
type ProfileReader interface {
	GetProfile(ctx context.Context, id *identity.Identity) (*onboarding.ProfileView, error)
}

// ProfileResponse is the profile shown on a dashboard
// @Description Profile record of the caller's role
type ProfileResponse struct {
	Role      string         `json:"role" example:"agency"`
	Dashboard string         `json:"dashboard" example:"/agency/dashboard"`
	Profile   map[string]any `json:"profile"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// DashboardHandler serves the role dashboards
type DashboardHandler struct {
	BaseHandler
	profiles ProfileReader
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(profiles ProfileReader) *DashboardHandler {
	return &DashboardHandler{profiles: profiles}
}

// GetDashboard godoc
// @ID           getDashboard
// @Summary      Dashboard
// @Description  Returns the caller's profile for their role. Served on /dashboard and on each role dashboard.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[ProfileResponse]
// @Failure      404 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /dashboard [get]
// @Router       /tenant/dashboard [get]
// @Router       /landlord/dashboard [get]
// @Router       /agency/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	id, ok := h.caller(c)
	if !ok {
		return
	}

	view, err := h.profiles.GetProfile(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	fields := map[string]any(view.Fields)
	if fields == nil {
		fields = map[string]any{}
	}
	h.Success(c, ProfileResponse{
		Role:      view.Role.String(),
		Dashboard: view.Dashboard,
		Profile:   fields,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	})
}
