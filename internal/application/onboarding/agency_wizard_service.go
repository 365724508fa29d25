package onboarding

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/rentflow/backend/internal/domain/identity"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/logger"
	"github.com/rentflow/backend/internal/infrastructure/telemetry"
)

const wizardServiceName = "AgencyWizardService"

// AgencyWizardDeps groups the collaborators of the agency wizard
type AgencyWizardDeps struct {
	Flows     *onboarding.FlowRegistry
	Sessions  onboarding.SessionStore
	Profiles  onboarding.ProfileRepository
	Registry  onboarding.CompanyRegistry
	Documents onboarding.DocumentStorage
	Upload    onboarding.UploadPolicy
	Metrics   *telemetry.OnboardingMetrics
}

// AgencyWizardService runs the agency onboarding wizard. Every submission
// is validated, persisted to the agency profile and only then advances the
// client's wizard session.
type AgencyWizardService struct {
	flows     *onboarding.FlowRegistry
	sessions  onboarding.SessionStore
	profiles  onboarding.ProfileRepository
	registry  onboarding.CompanyRegistry
	documents onboarding.DocumentStorage
	upload    onboarding.UploadPolicy
	metrics   *telemetry.OnboardingMetrics
	logger    *zap.Logger
}

// NewAgencyWizardService creates a new AgencyWizardService
func NewAgencyWizardService(deps AgencyWizardDeps, logger *zap.Logger) *AgencyWizardService {
	flows := deps.Flows
	if flows == nil {
		flows = onboarding.DefaultFlows()
	}
	return &AgencyWizardService{
		flows:     flows,
		sessions:  deps.Sessions,
		profiles:  deps.Profiles,
		registry:  deps.Registry,
		documents: deps.Documents,
		upload:    deps.Upload,
		metrics:   deps.Metrics,
		logger:    logger,
	}
}

// View returns the wizard as seen on step. Nothing is stored.
func (s *AgencyWizardService) View(ctx context.Context, actor Actor, step onboarding.StepID) (*WizardView, error) {
	session, err := s.sessionAt(ctx, actor, step)
	if err != nil {
		return nil, err
	}
	return viewOf(session), nil
}

// SubmitSiretSearch looks the identifier up in the company registry and
// prefills the draft with the result. Malformed identifiers are rejected
// before any network call; lookup failures leave the session untouched.
func (s *AgencyWizardService) SubmitSiretSearch(ctx context.Context, actor Actor, siret string) (result *StepResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, wizardServiceName, "SubmitSiretSearch")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	id, err := onboarding.ParseCompanyIdentifier(siret)
	if err != nil {
		s.metrics.RecordStep(ctx, onboarding.FlowAgency, string(onboarding.StepSiretSearch), err)
		return nil, err
	}

	company, err := s.lookup(ctx, id)
	if err != nil {
		s.metrics.RecordStep(ctx, onboarding.FlowAgency, string(onboarding.StepSiretSearch), err)
		return nil, err
	}

	return s.submit(ctx, actor, onboarding.StepSiretSearch, company.Draft(id))
}

// LookupCompany resolves an identifier without touching the wizard
func (s *AgencyWizardService) LookupCompany(ctx context.Context, identifier string) (*onboarding.Company, error) {
	id, err := onboarding.ParseCompanyIdentifier(identifier)
	if err != nil {
		return nil, err
	}
	return s.lookup(ctx, id)
}

// ConfirmAddress accepts the looked-up address, or a corrected one when
// correction is non-nil.
func (s *AgencyWizardService) ConfirmAddress(ctx context.Context, actor Actor, correction *onboarding.AddressInput) (result *StepResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, wizardServiceName, "ConfirmAddress")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if correction != nil {
		if err = correction.Validate(); err != nil {
			s.metrics.RecordStep(ctx, onboarding.FlowAgency, string(onboarding.StepConfirmAddress), err)
			return nil, err
		}
		return s.submit(ctx, actor, onboarding.StepConfirmAddress, correction.Draft())
	}

	session, err := s.sessionAt(ctx, actor, onboarding.StepConfirmAddress)
	if err != nil {
		return nil, err
	}
	confirmed := addressOf(session.Draft)
	if confirmed.String(onboarding.FieldAddress) == "" {
		err = shared.NewFieldError(shared.CodeInvalidState, onboarding.FieldAddress,
			"No address to confirm, please search your company first.")
		s.metrics.RecordStep(ctx, onboarding.FlowAgency, string(onboarding.StepConfirmAddress), err)
		return nil, err
	}
	return s.submit(ctx, actor, onboarding.StepConfirmAddress, confirmed)
}

// BranchToManual moves the client from a lookup step to the manual entry
// flow, keeping what was entered so far.
func (s *AgencyWizardService) BranchToManual(ctx context.Context, actor Actor, from onboarding.StepID) (*StepResult, error) {
	if !onboarding.AgencyFlow.Contains(from) || from == onboarding.StepFinishingSetup {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Manual entry is only available from the company lookup steps")
	}
	manual, ok := s.flows.ByName(onboarding.FlowAgencyManual)
	if !ok {
		return nil, shared.NewDomainError(shared.CodeInvalidState, "Manual entry is not available")
	}

	session, err := s.sessionAt(ctx, actor, from)
	if err != nil {
		return nil, err
	}
	next := session.Branch(manual)
	s.save(ctx, actor, next)

	logger.With(ctx, s.logger).Info("Switched to manual entry",
		zap.String("from", string(from)),
		zap.String("flow", manual.Name()),
	)
	return &StepResult{Redirect: string(next.CurrentStep()), Wizard: viewOf(next)}, nil
}

// SubmitManualInfo stores the manually entered company information
func (s *AgencyWizardService) SubmitManualInfo(ctx context.Context, actor Actor, input onboarding.ManualInfoInput) (result *StepResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, wizardServiceName, "SubmitManualInfo")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err = input.Validate(); err != nil {
		s.metrics.RecordStep(ctx, onboarding.FlowAgencyManual, string(onboarding.StepManualInfo), err)
		return nil, err
	}
	return s.submit(ctx, actor, onboarding.StepManualInfo, input.Draft())
}

// UploadProof stores a proof of registration and records its URL on the
// profile. The wizard position does not change. The stored object is
// removed again when the URL cannot be persisted.
func (s *AgencyWizardService) UploadProof(ctx context.Context, actor Actor, doc onboarding.Document) (result *UploadResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, wizardServiceName, "UploadProof",
		attribute.String("content_type", doc.ContentType),
		attribute.Int64("size", doc.Size),
	)
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
		s.metrics.RecordUpload(ctx, err)
	}()
	log := logger.With(ctx, s.logger)

	if err = s.upload.Check(doc); err != nil {
		return nil, err
	}
	if s.documents == nil {
		return nil, shared.NewFieldError(shared.CodeUploadFailed, onboarding.FieldProofOfRegistrationURL, "File uploads are not available.")
	}

	session, err := s.sessionAt(ctx, actor, onboarding.StepManualInfo)
	if err != nil {
		return nil, err
	}

	doc.OwnerID = actor.UserID
	stored, err := s.documents.Store(ctx, doc)
	if err != nil {
		log.Error("Failed to store proof of registration", zap.Error(err))
		return nil, &shared.DomainError{
			Code:    shared.CodeUploadFailed,
			Message: "File upload failed, please try again.",
			Field:   onboarding.FieldProofOfRegistrationURL,
			Err:     err,
		}
	}

	partial := onboarding.Draft{onboarding.FieldProofOfRegistrationURL: stored.URL}
	if err = s.persist(ctx, actor, partial); err != nil {
		if derr := s.documents.Delete(context.WithoutCancel(ctx), stored.Key); derr != nil {
			log.Warn("Failed to remove orphaned upload", zap.String("key", stored.Key), zap.Error(derr))
		}
		return nil, err
	}

	merged := session.MergeDraft(partial)
	s.save(ctx, actor, merged)

	log.Info("Proof of registration uploaded", zap.String("key", stored.Key))
	return &UploadResult{URL: stored.URL, Wizard: viewOf(merged)}, nil
}

// SubmitManualAddress stores the manually entered address
func (s *AgencyWizardService) SubmitManualAddress(ctx context.Context, actor Actor, input onboarding.AddressInput) (result *StepResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, wizardServiceName, "SubmitManualAddress")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	if err = input.Validate(); err != nil {
		s.metrics.RecordStep(ctx, onboarding.FlowAgencyManual, string(onboarding.StepManualAddress), err)
		return nil, err
	}
	return s.submit(ctx, actor, onboarding.StepManualAddress, input.Draft())
}

// FinishSetup stores the software preferences and completes the wizard
func (s *AgencyWizardService) FinishSetup(ctx context.Context, actor Actor, input onboarding.FinishingSetupInput) (result *StepResult, err error) {
	ctx, span := telemetry.StartServiceSpan(ctx, wizardServiceName, "FinishSetup")
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	// Both agency flows end here, so the flow comes from the session
	session, err := s.sessionAt(ctx, actor, onboarding.StepFinishingSetup)
	if err != nil {
		return nil, err
	}
	if err = input.Validate(); err != nil {
		s.metrics.RecordStep(ctx, session.Flow.Name(), string(onboarding.StepFinishingSetup), err)
		return nil, err
	}
	return s.submitAt(ctx, actor, session, onboarding.StepFinishingSetup, input.Draft())
}

// Back moves the client one step back. On the first step of a flow it
// stays put.
func (s *AgencyWizardService) Back(ctx context.Context, actor Actor, from onboarding.StepID) (*StepResult, error) {
	session, err := s.sessionAt(ctx, actor, from)
	if err != nil {
		return nil, err
	}
	prev := session.Retreat()
	s.save(ctx, actor, prev)
	return &StepResult{Redirect: string(prev.CurrentStep()), Wizard: viewOf(prev)}, nil
}

// submit persists the fields of one step and advances past it. Nothing is
// stored in the session unless the profile write succeeded. Submitting the
// last step discards the session and leaves the wizard.
func (s *AgencyWizardService) submit(ctx context.Context, actor Actor, step onboarding.StepID, partial onboarding.Draft) (*StepResult, error) {
	session, err := s.sessionAt(ctx, actor, step)
	if err != nil {
		return nil, err
	}
	return s.submitAt(ctx, actor, session, step, partial)
}

func (s *AgencyWizardService) submitAt(ctx context.Context, actor Actor, session onboarding.Session, step onboarding.StepID, partial onboarding.Draft) (*StepResult, error) {
	log := logger.With(ctx, s.logger).With(zap.String("step", string(step)))
	flow := session.Flow.Name()

	if err := s.persist(ctx, actor, partial); err != nil {
		s.metrics.RecordStep(ctx, flow, string(step), err)
		return nil, err
	}
	s.metrics.RecordStep(ctx, flow, string(step), nil)

	merged := session.MergeDraft(partial)
	if merged.IsLast() {
		if err := s.sessions.Delete(ctx, actor.SessionID); err != nil {
			log.Warn("Failed to discard wizard session", zap.Error(err))
		}
		s.metrics.RecordCompleted(ctx, flow)
		log.Info("Agency onboarding completed", zap.String("flow", flow))
		return &StepResult{
			Redirect:  onboarding.DashboardForRole(identity.RoleAgency),
			Completed: true,
		}, nil
	}

	next := merged.Advance()
	s.save(ctx, actor, next)

	log.Debug("Step submitted", zap.String("next", string(next.CurrentStep())))
	return &StepResult{Redirect: string(next.CurrentStep()), Wizard: viewOf(next)}, nil
}

// sessionAt loads the client's session positioned on step. A step outside
// the session's flow switches to the flow containing it, keeping the draft.
// Unknown steps fall back to the first step of the current flow.
func (s *AgencyWizardService) sessionAt(ctx context.Context, actor Actor, step onboarding.StepID) (onboarding.Session, error) {
	var draft onboarding.Draft
	var flow *onboarding.Flow

	stored, err := s.sessions.Load(ctx, actor.SessionID)
	switch {
	case err == nil:
		draft, flow = stored.Draft, stored.Flow
	case errors.Is(err, shared.ErrNotFound):
		draft = onboarding.Draft{}
	default:
		logger.With(ctx, s.logger).Error("Failed to load wizard session", zap.Error(err))
		return onboarding.Session{}, shared.WrapDomainError(shared.CodePersistence, "Failed to load onboarding progress", err)
	}

	if flow == nil || !flow.Contains(step) {
		if f, ok := s.flows.FlowForStep(step); ok {
			flow = f
		} else {
			if flow == nil {
				flow = s.flows.Entry()
			}
			logger.With(ctx, s.logger).Warn("Unknown onboarding step, falling back to first step",
				zap.String("step", string(step)),
				zap.String("flow", flow.Name()),
			)
		}
	}

	return onboarding.Session{
		Flow:         flow,
		CurrentIndex: onboarding.ResolveStep(flow, string(step)),
		Draft:        draft,
	}, nil
}

func (s *AgencyWizardService) persist(ctx context.Context, actor Actor, partial onboarding.Draft) error {
	if err := s.profiles.Upsert(ctx, identity.RoleAgency, actor.UserID, partial); err != nil {
		logger.With(ctx, s.logger).Error("Failed to persist agency profile", zap.Error(err))
		return shared.WrapDomainError(shared.CodePersistence, shared.ErrPersistence.Message, err)
	}
	return nil
}

// save stores the session. The profile already holds the submitted data and
// the position is recovered from the route, so a failure is only logged.
func (s *AgencyWizardService) save(ctx context.Context, actor Actor, session onboarding.Session) {
	if err := s.sessions.Save(ctx, actor.SessionID, session); err != nil {
		logger.With(ctx, s.logger).Warn("Failed to save wizard session", zap.Error(err))
	}
}

func (s *AgencyWizardService) lookup(ctx context.Context, id onboarding.CompanyIdentifier) (*onboarding.Company, error) {
	kind := "siren"
	if id.IsSIRET() {
		kind = "siret"
	}
	start := time.Now()
	company, err := s.registry.LookupByIdentifier(ctx, id)
	s.metrics.RecordLookup(ctx, kind, time.Since(start), err)
	if err != nil {
		logger.With(ctx, s.logger).Warn("Company lookup failed", zap.String("kind", kind), zap.Error(err))
		var de *shared.DomainError
		if errors.As(err, &de) && de.Field != "" {
			return nil, err
		}
		return nil, &shared.DomainError{
			Code:    shared.CodeUpstreamLookup,
			Message: shared.ErrUpstreamLookup.Message,
			Field:   onboarding.FieldSiretNumber,
			Err:     err,
		}
	}
	return company, nil
}

func addressOf(d onboarding.Draft) onboarding.Draft {
	out := onboarding.Draft{}
	for _, key := range []string{
		onboarding.FieldAddress,
		onboarding.FieldAdditionalAddressDetails,
		onboarding.FieldZipCode,
		onboarding.FieldCity,
	} {
		if v, ok := d[key]; ok {
			out[key] = v
		}
	}
	return out
}
