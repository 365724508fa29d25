package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentflow/backend/internal/interfaces/http/dto"
)

type manualInfoRequest struct {
	LegalName        string   `json:"legalName" binding:"required,min=2"`
	LegalForms       []string `json:"legalForms" binding:"required,min=1,dive,oneof=sas sarl sasu"`
	SiretSirenNumber string   `json:"siretSirenNumber" binding:"required,siret"`
	RegistrationDate string   `json:"registrationDate" binding:"required,frdate"`
	ZipCode          string   `json:"zipCode" binding:"omitempty,zipcode"`
}

func TestSetupValidator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	require.NoError(t, SetupValidator())

	r := gin.New()
	r.POST("/onboarding/agency/manual-info", func(c *gin.Context) {
		var req manualInfoRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string) (*httptest.ResponseRecorder, dto.Response) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/onboarding/agency/manual-info", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		var resp dto.Response
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		return w, resp
	}

	t.Run("valid", func(t *testing.T) {
		w, _ := post(`{"legalName":"Agence Dupont","legalForms":["sas"],"siretSirenNumber":"73282932000074","registrationDate":"29/02/2024","zipCode":"75001"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("field details use json names", func(t *testing.T) {
		w, resp := post(`{"legalName":"A","legalForms":["sas"],"siretSirenNumber":"1234","registrationDate":"31/02/2024"}`)
		require.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

		fields := map[string]string{}
		for _, d := range resp.Error.Details {
			fields[d.Field] = d.Message
		}
		assert.Equal(t, "Must be at least 2 characters", fields["legalName"])
		assert.Equal(t, "Please enter a valid 9-digit SIREN or 14-digit SIRET number.", fields["siretSirenNumber"])
		assert.Equal(t, "Date must be in DD/MM/YYYY format", fields["registrationDate"])
	})

	t.Run("malformed json", func(t *testing.T) {
		w, resp := post(`{"legalName":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
	})
}
