package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rentflow/backend/internal/application/onboarding"
	"github.com/rentflow/backend/internal/domain/identity"
	domain "github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/interfaces/http/dto"
)

// MockAgencyWizard is a mock implementation of AgencyWizard
type MockAgencyWizard struct {
	mock.Mock
}

func stepResult(args mock.Arguments) (*onboarding.StepResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboarding.StepResult), args.Error(1)
}

func (m *MockAgencyWizard) View(ctx context.Context, actor onboarding.Actor, step domain.StepID) (*onboarding.WizardView, error) {
	args := m.Called(ctx, actor, step)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboarding.WizardView), args.Error(1)
}

func (m *MockAgencyWizard) SubmitSiretSearch(ctx context.Context, actor onboarding.Actor, siret string) (*onboarding.StepResult, error) {
	return stepResult(m.Called(ctx, actor, siret))
}

func (m *MockAgencyWizard) ConfirmAddress(ctx context.Context, actor onboarding.Actor, correction *domain.AddressInput) (*onboarding.StepResult, error) {
	return stepResult(m.Called(ctx, actor, correction))
}

func (m *MockAgencyWizard) BranchToManual(ctx context.Context, actor onboarding.Actor, from domain.StepID) (*onboarding.StepResult, error) {
	return stepResult(m.Called(ctx, actor, from))
}

func (m *MockAgencyWizard) SubmitManualInfo(ctx context.Context, actor onboarding.Actor, input domain.ManualInfoInput) (*onboarding.StepResult, error) {
	return stepResult(m.Called(ctx, actor, input))
}

func (m *MockAgencyWizard) UploadProof(ctx context.Context, actor onboarding.Actor, doc domain.Document) (*onboarding.UploadResult, error) {
	args := m.Called(ctx, actor, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*onboarding.UploadResult), args.Error(1)
}

func (m *MockAgencyWizard) SubmitManualAddress(ctx context.Context, actor onboarding.Actor, input domain.AddressInput) (*onboarding.StepResult, error) {
	return stepResult(m.Called(ctx, actor, input))
}

func (m *MockAgencyWizard) FinishSetup(ctx context.Context, actor onboarding.Actor, input domain.FinishingSetupInput) (*onboarding.StepResult, error) {
	return stepResult(m.Called(ctx, actor, input))
}

func (m *MockAgencyWizard) Back(ctx context.Context, actor onboarding.Actor, from domain.StepID) (*onboarding.StepResult, error) {
	return stepResult(m.Called(ctx, actor, from))
}

var testActor = onboarding.Actor{UserID: testUserID, SessionID: "session-1"}

func setupAgencyRouter(wizard AgencyWizard, mw ...gin.HandlerFunc) *gin.Engine {
	h := NewAgencyHandler(wizard)
	r := newRouter(mw...)
	g := r.Group("/onboarding/agency")
	g.POST("/siret-search", h.SiretSearch)
	g.POST("/siret-search/manual", h.BranchToManual(domain.StepSiretSearch))
	g.POST("/confirm-address", h.ConfirmAddress)
	g.POST("/confirm-address/manual", h.BranchToManual(domain.StepConfirmAddress))
	g.POST("/manual-info", h.ManualInfo)
	g.POST("/manual-info/proof", h.UploadProof)
	g.POST("/manual-address", h.ManualAddress)
	g.POST("/finishing-setup", h.FinishingSetup)
	g.POST("/back", h.Back)
	g.GET("/:step", h.GetStep)
	return r
}

func TestAgencyHandler_GetStep(t *testing.T) {
	wizard := new(MockAgencyWizard)
	wizard.On("View", mock.Anything, testActor, domain.StepConfirmAddress).Return(&onboarding.WizardView{
		Flow:     domain.FlowAgency,
		Step:     domain.StepConfirmAddress,
		Index:    1,
		Total:    3,
		Previous: domain.StepSiretSearch,
		Next:     domain.StepFinishingSetup,
		Draft:    domain.Draft{domain.FieldSiretNumber: "73282932000074"},
	}, nil)

	r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
	w := doJSON(r, http.MethodGet, "/onboarding/agency/confirm-address", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var data WizardResponse
	decode(t, w, &data)
	assert.Equal(t, "agency", data.Flow)
	assert.Equal(t, string(domain.StepConfirmAddress), data.Step)
	assert.Equal(t, 1, data.Index)
	assert.Equal(t, 3, data.Total)
	assert.Equal(t, string(domain.StepSiretSearch), data.Previous)
	assert.Equal(t, "73282932000074", data.Draft[domain.FieldSiretNumber])
}

func TestAgencyHandler_SiretSearch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		wizard.On("SubmitSiretSearch", mock.Anything, testActor, "73282932000074").
			Return(&onboarding.StepResult{Redirect: string(domain.StepConfirmAddress)}, nil)

		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := doJSON(r, http.MethodPost, "/onboarding/agency/siret-search", SiretSearchRequest{SiretNumber: "73282932000074"})

		require.Equal(t, http.StatusOK, w.Code)
		var data StepResponse
		decode(t, w, &data)
		assert.Equal(t, string(domain.StepConfirmAddress), data.Redirect)
		assert.False(t, data.Completed)
		wizard.AssertExpectations(t)
	})

	t.Run("malformed identifier", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))

		w := doJSON(r, http.MethodPost, "/onboarding/agency/siret-search", SiretSearchRequest{SiretNumber: "12345"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w, nil)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "siretNumber", resp.Error.Details[0].Field)
		wizard.AssertNotCalled(t, "SubmitSiretSearch", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("lookup failure stays on the step", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		wizard.On("SubmitSiretSearch", mock.Anything, testActor, "732829320").
			Return(nil, shared.NewFieldError(shared.CodeUpstreamLookup, domain.FieldSiretNumber, "We could not find this company"))

		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := doJSON(r, http.MethodPost, "/onboarding/agency/siret-search", SiretSearchRequest{SiretNumber: "732829320"})

		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decode(t, w, nil)
		assert.Equal(t, dto.ErrCodeUpstreamLookup, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, domain.FieldSiretNumber, resp.Error.Details[0].Field)
	})

	t.Run("anonymous", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		r := setupAgencyRouter(wizard)

		w := doJSON(r, http.MethodPost, "/onboarding/agency/siret-search", SiretSearchRequest{SiretNumber: "732829320"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAgencyHandler_ConfirmAddress(t *testing.T) {
	next := &onboarding.StepResult{Redirect: string(domain.StepFinishingSetup)}

	t.Run("confirm as is without a body", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		wizard.On("ConfirmAddress", mock.Anything, testActor, (*domain.AddressInput)(nil)).Return(next, nil)

		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := doJSON(r, http.MethodPost, "/onboarding/agency/confirm-address", nil)

		require.Equal(t, http.StatusOK, w.Code)
		wizard.AssertExpectations(t)
	})

	t.Run("empty fields confirm as is", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		wizard.On("ConfirmAddress", mock.Anything, testActor, (*domain.AddressInput)(nil)).Return(next, nil)

		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := doJSON(r, http.MethodPost, "/onboarding/agency/confirm-address", ConfirmAddressRequest{})

		require.Equal(t, http.StatusOK, w.Code)
		wizard.AssertExpectations(t)
	})

	t.Run("correction", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		wizard.On("ConfirmAddress", mock.Anything, testActor, &domain.AddressInput{
			Address: "12 rue de Rivoli", ZipCode: "75004", City: "Paris",
		}).Return(next, nil)

		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := doJSON(r, http.MethodPost, "/onboarding/agency/confirm-address", ConfirmAddressRequest{
			Address: "12 rue de Rivoli", ZipCode: "75004", City: "Paris",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var data StepResponse
		decode(t, w, &data)
		assert.Equal(t, string(domain.StepFinishingSetup), data.Redirect)
		wizard.AssertExpectations(t)
	})
}

func TestAgencyHandler_BranchToManual(t *testing.T) {
	for _, from := range []domain.StepID{domain.StepSiretSearch, domain.StepConfirmAddress} {
		t.Run(string(from), func(t *testing.T) {
			wizard := new(MockAgencyWizard)
			wizard.On("BranchToManual", mock.Anything, testActor, from).
				Return(&onboarding.StepResult{Redirect: string(domain.StepManualInfo)}, nil)

			r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
			w := doJSON(r, http.MethodPost, string(from)+"/manual", nil)

			require.Equal(t, http.StatusOK, w.Code)
			var data StepResponse
			decode(t, w, &data)
			assert.Equal(t, string(domain.StepManualInfo), data.Redirect)
			wizard.AssertExpectations(t)
		})
	}
}

func TestAgencyHandler_ManualInfo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		wizard.On("SubmitManualInfo", mock.Anything, testActor, domain.ManualInfoInput{
			LegalName:        "Agence Dupont",
			LegalForms:       []string{"sas"},
			SiretSirenNumber: "732829320",
			RegistrationDate: "15/03/2019",
		}).Return(&onboarding.StepResult{Redirect: string(domain.StepManualAddress)}, nil)

		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := doJSON(r, http.MethodPost, "/onboarding/agency/manual-info", ManualInfoRequest{
			LegalName:        "Agence Dupont",
			LegalForms:       []string{"sas"},
			SiretSirenNumber: "732829320",
			RegistrationDate: "15/03/2019",
		})

		require.Equal(t, http.StatusOK, w.Code)
		wizard.AssertExpectations(t)
	})

	t.Run("invalid fields", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))

		w := doJSON(r, http.MethodPost, "/onboarding/agency/manual-info", ManualInfoRequest{
			LegalName:        "Agence Dupont",
			LegalForms:       []string{"sa"},
			SiretSirenNumber: "732829320",
			RegistrationDate: "2019-03-15",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w, nil)
		fields := map[string]bool{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = true
		}
		assert.True(t, fields["registrationDate"])
		assert.False(t, fields["legalName"])
		wizard.AssertNotCalled(t, "SubmitManualInfo", mock.Anything, mock.Anything, mock.Anything)
	})
}

func multipartRequest(t *testing.T, path string, files map[string][]byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, content := range files {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
		header.Set("Content-Type", "application/pdf")
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestAgencyHandler_UploadProof(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		wizard.On("UploadProof", mock.Anything, testActor, mock.MatchedBy(func(d domain.Document) bool {
			body, _ := io.ReadAll(d.Body)
			return d.FileName == "kbis.pdf" && d.ContentType == "application/pdf" && d.Size == 8 && string(body) == "%PDF-1.7"
		})).Return(&onboarding.UploadResult{
			URL: "https://storage.example.com/proofs/kbis.pdf",
			Wizard: &onboarding.WizardView{
				Flow:  domain.FlowAgencyManual,
				Step:  domain.StepManualInfo,
				Total: 3,
				Draft: domain.Draft{domain.FieldProofOfRegistrationURL: "https://storage.example.com/proofs/kbis.pdf"},
			},
		}, nil)

		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartRequest(t, "/onboarding/agency/manual-info/proof", map[string][]byte{"kbis.pdf": []byte("%PDF-1.7")}))

		require.Equal(t, http.StatusOK, w.Code)
		var data UploadResponse
		decode(t, w, &data)
		assert.Equal(t, "https://storage.example.com/proofs/kbis.pdf", data.URL)
		require.NotNil(t, data.Wizard)
		assert.Equal(t, string(domain.StepManualInfo), data.Wizard.Step)
		wizard.AssertExpectations(t)
	})

	t.Run("two files", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartRequest(t, "/onboarding/agency/manual-info/proof", map[string][]byte{
			"a.pdf": []byte("a"),
			"b.pdf": []byte("b"),
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w, nil)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, domain.FieldProofOfRegistrationURL, resp.Error.Details[0].Field)
		wizard.AssertNotCalled(t, "UploadProof", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not multipart", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))

		w := doJSON(r, http.MethodPost, "/onboarding/agency/manual-info/proof", map[string]string{"file": "x"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage failure", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		wizard.On("UploadProof", mock.Anything, testActor, mock.Anything).Return(nil, shared.ErrUploadFailed)

		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, multipartRequest(t, "/onboarding/agency/manual-info/proof", map[string][]byte{"kbis.pdf": []byte("%PDF")}))

		assert.Equal(t, http.StatusBadGateway, w.Code)
		resp := decode(t, w, nil)
		assert.Equal(t, dto.ErrCodeUploadFailed, resp.Error.Code)
	})
}

func TestAgencyHandler_ManualAddress(t *testing.T) {
	wizard := new(MockAgencyWizard)
	wizard.On("SubmitManualAddress", mock.Anything, testActor, domain.AddressInput{
		Address: "10 rue de la Paix", AdditionalAddressDetails: "Bâtiment B", ZipCode: "75002", City: "Paris",
	}).Return(&onboarding.StepResult{Redirect: string(domain.StepFinishingSetup)}, nil)

	r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
	w := doJSON(r, http.MethodPost, "/onboarding/agency/manual-address", AddressRequest{
		Address: "10 rue de la Paix", AdditionalAddressDetails: "Bâtiment B", ZipCode: "75002", City: "Paris",
	})

	require.Equal(t, http.StatusOK, w.Code)
	wizard.AssertExpectations(t)

	w = doJSON(r, http.MethodPost, "/onboarding/agency/manual-address", AddressRequest{Address: "10 rue", ZipCode: "750", City: "P"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAgencyHandler_FinishingSetup(t *testing.T) {
	t.Run("completes onboarding", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		wizard.On("FinishSetup", mock.Anything, testActor, domain.FinishingSetupInput{
			RentalSoftware: "hecktor", UnitsManaged: "100-300",
		}).Return(&onboarding.StepResult{Redirect: "/agency/dashboard", Completed: true}, nil)

		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
		w := doJSON(r, http.MethodPost, "/onboarding/agency/finishing-setup", FinishingSetupRequest{
			RentalSoftware: "hecktor", UnitsManaged: "100-300",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var data StepResponse
		decode(t, w, &data)
		assert.Equal(t, "/agency/dashboard", data.Redirect)
		assert.True(t, data.Completed)
	})

	t.Run("other software needs a name", func(t *testing.T) {
		wizard := new(MockAgencyWizard)
		r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))

		w := doJSON(r, http.MethodPost, "/onboarding/agency/finishing-setup", FinishingSetupRequest{
			RentalSoftware: "other", UnitsManaged: "300+",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decode(t, w, nil)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "otherRentalSoftware", resp.Error.Details[0].Field)
	})
}

func TestAgencyHandler_Back(t *testing.T) {
	wizard := new(MockAgencyWizard)
	wizard.On("Back", mock.Anything, testActor, domain.StepConfirmAddress).
		Return(&onboarding.StepResult{Redirect: string(domain.StepSiretSearch)}, nil)

	r := setupAgencyRouter(wizard, withSession(identity.RoleAgency))
	w := doJSON(r, http.MethodPost, "/onboarding/agency/back", BackRequest{From: string(domain.StepConfirmAddress)})

	require.Equal(t, http.StatusOK, w.Code)
	var data StepResponse
	decode(t, w, &data)
	assert.Equal(t, string(domain.StepSiretSearch), data.Redirect)
}
