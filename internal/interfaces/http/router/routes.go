package router

import (
	domain "github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/interfaces/http/handler"
)

// Handlers bundles the page handlers mounted by Routes
type Handlers struct {
	Auth      *handler.AuthHandler
	Role      *handler.RoleHandler
	Agency    *handler.AgencyHandler
	Registry  *handler.RegistryHandler
	Dashboard *handler.DashboardHandler
	System    *handler.SystemHandler
}

// Routes returns the route groups of the platform. Authorization is applied
// globally by the gate middleware, so groups carry no auth middleware.
func Routes(h Handlers) []RouteRegistrar {
	auth := NewDomainGroup("auth", "")
	auth.GET("/sign-up", h.Auth.SignUpPage).
		POST("/sign-up", h.Auth.SignUp).
		GET("/sign-in", h.Auth.SignInPage).
		POST("/sign-in", h.Auth.SignIn).
		POST("/sign-out", h.Auth.SignOut)

	onboarding := NewDomainGroup("onboarding", "/onboarding")
	onboarding.GET("/role", h.Role.RolePage).
		POST("/role", h.Role.SelectRole)

	agency := onboarding.Group("agency", "/agency")
	agency.GET("/:step", h.Agency.GetStep).
		POST("/siret-search", h.Agency.SiretSearch).
		POST("/siret-search/manual", h.Agency.BranchToManual(domain.StepSiretSearch)).
		POST("/confirm-address", h.Agency.ConfirmAddress).
		POST("/confirm-address/manual", h.Agency.BranchToManual(domain.StepConfirmAddress)).
		POST("/manual-info", h.Agency.ManualInfo).
		POST("/manual-info/proof", h.Agency.UploadProof).
		POST("/manual-address", h.Agency.ManualAddress).
		POST("/finishing-setup", h.Agency.FinishingSetup).
		POST("/back", h.Agency.Back)

	registry := NewDomainGroup("registry", "/registry")
	registry.GET("/companies/:identifier", h.Registry.GetCompany)

	dashboards := NewDomainGroup("dashboard", "")
	dashboards.GET(domain.DefaultDashboard, h.Dashboard.GetDashboard).
		GET(domain.TenantDashboardPath, h.Dashboard.GetDashboard).
		GET(domain.LandlordDashboardPath, h.Dashboard.GetDashboard).
		GET(domain.AgencyDashboardPath, h.Dashboard.GetDashboard)

	system := NewDomainGroup("system", "")
	system.GET("/health", h.System.Health).
		GET("/system/info", h.System.GetSystemInfo)

	return []RouteRegistrar{auth, onboarding, registry, dashboards, system}
}
