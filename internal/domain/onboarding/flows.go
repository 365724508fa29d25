package onboarding

import (
	"github.com/rentflow/backend/internal/domain/identity"
)

// Agency onboarding steps
const (
	StepSiretSearch    StepID = "/onboarding/agency/siret-search"
	StepConfirmAddress StepID = "/onboarding/agency/confirm-address"
	StepManualInfo     StepID = "/onboarding/agency/manual-info"
	StepManualAddress  StepID = "/onboarding/agency/manual-address"
	StepFinishingSetup StepID = "/onboarding/agency/finishing-setup"
)

// Flow names
const (
	FlowAgency       = "agency"
	FlowAgencyManual = "agency-manual"
)

// Routes outside the wizard
const (
	RoleSelectionPath     = "/onboarding/role"
	TenantDashboardPath   = "/tenant/dashboard"
	LandlordDashboardPath = "/landlord/dashboard"
	AgencyDashboardPath   = "/agency/dashboard"
	DefaultDashboard      = "/dashboard"
)

var (
	// AgencyFlow is the registry-lookup path of agency onboarding
	AgencyFlow = MustFlow(FlowAgency, StepSiretSearch, StepConfirmAddress, StepFinishingSetup)
	// AgencyManualFlow is the manual-entry path reached by branching
	AgencyManualFlow = MustFlow(FlowAgencyManual, StepManualInfo, StepManualAddress, StepFinishingSetup)
)

// FlowRegistry resolves flows by name and by step
type FlowRegistry struct {
	flows []*Flow
}

// NewFlowRegistry creates a registry. Order matters for FlowForStep: the
// first flow containing a step wins.
func NewFlowRegistry(flows ...*Flow) *FlowRegistry {
	return &FlowRegistry{flows: flows}
}

// DefaultFlows returns the registry of agency onboarding flows
func DefaultFlows() *FlowRegistry {
	return NewFlowRegistry(AgencyFlow, AgencyManualFlow)
}

// ByName returns the flow registered under name
func (r *FlowRegistry) ByName(name string) (*Flow, bool) {
	for _, f := range r.flows {
		if f.Name() == name {
			return f, true
		}
	}
	return nil, false
}

// FlowForStep returns the first flow that contains step
func (r *FlowRegistry) FlowForStep(step StepID) (*Flow, bool) {
	for _, f := range r.flows {
		if f.Contains(step) {
			return f, true
		}
	}
	return nil, false
}

// Entry returns the flow new sessions start on
func (r *FlowRegistry) Entry() *Flow {
	return r.flows[0]
}

// DestinationForRole returns where a user lands once their role is chosen
func DestinationForRole(role identity.Role) string {
	switch role {
	case identity.RoleTenant:
		return TenantDashboardPath
	case identity.RoleLandlord:
		return LandlordDashboardPath
	case identity.RoleAgency:
		return string(StepSiretSearch)
	default:
		return DefaultDashboard
	}
}

// DashboardForRole returns the dashboard route of role
func DashboardForRole(role identity.Role) string {
	switch role {
	case identity.RoleTenant:
		return TenantDashboardPath
	case identity.RoleLandlord:
		return LandlordDashboardPath
	case identity.RoleAgency:
		return AgencyDashboardPath
	default:
		return DefaultDashboard
	}
}
