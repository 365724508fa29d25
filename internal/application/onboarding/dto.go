package onboarding

import (
	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/infrastructure/auth"
)

// SelectRoleInput contains the role chosen on the role selection page
type SelectRoleInput struct {
	Role string
}

// RoleSelectionResult contains the outcome of a role selection
type RoleSelectionResult struct {
	Role     identity.Role
	Redirect string
	// Session is the re-issued session token carrying the role
	Session *auth.SessionToken
}

// Actor is the client a wizard call acts for. Sessions are keyed by
// SessionID and profile writes by UserID.
type Actor struct {
	UserID    string
	SessionID string
}

// ActorOf returns the wizard actor of an authenticated identity
func ActorOf(id *identity.Identity) Actor {
	return Actor{UserID: id.UserID, SessionID: id.SessionID}
}

// WizardView is the state of the wizard as shown on a step page
type WizardView struct {
	Flow     string
	Step     onboarding.StepID
	Index    int
	Total    int
	Previous onboarding.StepID
	Next     onboarding.StepID
	Draft    onboarding.Draft
}

// StepResult is returned by every wizard transition
type StepResult struct {
	Redirect  string
	Completed bool
	Wizard    *WizardView
}

// UploadResult is returned after a proof of registration upload
type UploadResult struct {
	URL    string
	Wizard *WizardView
}

func viewOf(s onboarding.Session) *WizardView {
	prev, _ := s.PreviousStep()
	next, _ := s.NextStep()
	return &WizardView{
		Flow:     s.Flow.Name(),
		Step:     s.CurrentStep(),
		Index:    s.CurrentIndex,
		Total:    s.Flow.Len(),
		Previous: prev,
		Next:     next,
		Draft:    s.Draft.Clone(),
	}
}
