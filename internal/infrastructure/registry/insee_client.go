// Package registry resolves French company identifiers against the INSEE
// SIRENE API.
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/domain/shared"
	"github.com/rentflow/backend/internal/infrastructure/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// maxResponseSize limits the response body read from INSEE
const maxResponseSize = 2 * 1024 * 1024

// Lookup failure messages shown next to the identifier input
const (
	msgMissingAPIKey  = "INSEE API Key is not configured."
	msgConnectFailure = "Failed to connect to INSEE API."
	msgNotFound       = "No company found for this number."
)

var errMissingAPIKey = errors.New("registry: api key not configured")

// abbreviated street types used by SIRENE
var streetTypes = map[string]string{
	"AV":  "Avenue",
	"BD":  "Boulevard",
	"CHE": "Chemin",
	"CRS": "Cours",
	"IMP": "Impasse",
	"PL":  "Place",
	"QUA": "Quai",
	"RTE": "Route",
	"ALL": "Allée",
	"SQ":  "Square",
}

// INSEEClient implements onboarding.CompanyRegistry over HTTP
type INSEEClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
}

// Option configures an INSEEClient
type Option func(*INSEEClient)

// WithHTTPClient replaces the default HTTP client
func WithHTTPClient(c *http.Client) Option {
	return func(ic *INSEEClient) {
		ic.httpClient = c
	}
}

// NewINSEEClient creates a client from the registry configuration. A
// missing API key is reported on each lookup rather than here so that the
// manual onboarding path keeps working.
func NewINSEEClient(cfg config.RegistryConfig, opts ...Option) *INSEEClient {
	c := &INSEEClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		tracer:     otel.Tracer("rentflow/registry"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// etablissement mirrors the fields of a SIRENE establishment we read
type etablissement struct {
	Siren      string `json:"siren"`
	Nic        string `json:"nic"`
	Siret      string `json:"siret"`
	UniteLegal struct {
		Denomination string `json:"denominationUniteLegale"`
		Nom          string `json:"nomUniteLegale"`
		Prenom       string `json:"prenom1UniteLegale"`
	} `json:"uniteLegale"`
	Adresse struct {
		NumeroVoie   string `json:"numeroVoieEtablissement"`
		TypeVoie     string `json:"typeVoieEtablissement"`
		LibelleVoie  string `json:"libelleVoieEtablissement"`
		CodePostal   string `json:"codePostalEtablissement"`
		LibelleCommu string `json:"libelleCommuneEtablissement"`
	} `json:"adresseEtablissement"`
}

type siretResponse struct {
	Etablissement *etablissement `json:"etablissement"`
}

type searchResponse struct {
	Etablissements []etablissement `json:"etablissements"`
}

type errorResponse struct {
	Message string `json:"message"`
	Header  struct {
		Message string `json:"message"`
	} `json:"header"`
	Fault struct {
		Message string `json:"message"`
	} `json:"fault"`
}

func (e errorResponse) text() string {
	for _, m := range []string{e.Message, e.Header.Message, e.Fault.Message} {
		if m != "" {
			return m
		}
	}
	return ""
}

// LookupByIdentifier resolves a SIRET to its establishment, or a SIREN to
// the company's head office.
func (c *INSEEClient) LookupByIdentifier(ctx context.Context, id onboarding.CompanyIdentifier) (*onboarding.Company, error) {
	ctx, span := c.tracer.Start(ctx, "registry.LookupByIdentifier",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Bool("registry.siret", id.IsSIRET())),
	)
	defer span.End()

	company, err := c.lookup(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return company, nil
}

func (c *INSEEClient) lookup(ctx context.Context, id onboarding.CompanyIdentifier) (*onboarding.Company, error) {
	if c.apiKey == "" {
		return nil, lookupError(msgMissingAPIKey, errMissingAPIKey)
	}

	if id.IsSIRET() {
		var resp siretResponse
		if err := c.get(ctx, "/siret/"+url.PathEscape(id.String()), nil, &resp); err != nil {
			return nil, err
		}
		if resp.Etablissement == nil {
			return nil, lookupError(msgNotFound, shared.ErrNotFound)
		}
		return c.toCompany(resp.Etablissement), nil
	}

	query := url.Values{
		"q":      {fmt.Sprintf("siren:%s AND etablissementSiege:true", id.SIREN())},
		"nombre": {"1"},
	}
	var resp searchResponse
	if err := c.get(ctx, "/siret", query, &resp); err != nil {
		return nil, err
	}
	if len(resp.Etablissements) == 0 {
		return nil, lookupError(msgNotFound, shared.ErrNotFound)
	}
	return c.toCompany(&resp.Etablissements[0]), nil
}

// get performs an authenticated GET and decodes a successful JSON body
func (c *INSEEClient) get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return lookupError(msgConnectFailure, fmt.Errorf("registry: failed to create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return lookupError(msgConnectFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return lookupError(msgConnectFailure, fmt.Errorf("registry: failed to read response: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr errorResponse
		msg := ""
		if json.Unmarshal(body, &apiErr) == nil {
			msg = apiErr.text()
		}
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return lookupError("INSEE API Error: "+msg, fmt.Errorf("registry: HTTP %d", resp.StatusCode))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return lookupError(msgConnectFailure, fmt.Errorf("registry: failed to decode response: %w", err))
	}
	return nil
}

// toCompany maps a SIRENE establishment, title-casing the upper-case
// registry text. Casers are stateful so one is built per call.
func (c *INSEEClient) toCompany(e *etablissement) *onboarding.Company {
	title := cases.Title(language.French)
	name := e.UniteLegal.Denomination
	if name == "" {
		name = strings.TrimSpace(e.UniteLegal.Prenom + " " + e.UniteLegal.Nom)
	}

	street := e.Adresse.TypeVoie
	if long, ok := streetTypes[strings.ToUpper(street)]; ok {
		street = long
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{e.Adresse.NumeroVoie, street, e.Adresse.LibelleVoie} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}

	siret := e.Siret
	if siret == "" {
		siret = e.Siren + e.Nic
	}

	return &onboarding.Company{
		SIREN:     e.Siren,
		NIC:       e.Nic,
		SIRET:     siret,
		LegalName: title.String(name),
		Address:   title.String(strings.Join(parts, " ")),
		ZipCode:   e.Adresse.CodePostal,
		City:      title.String(e.Adresse.LibelleCommu),
	}
}

func lookupError(msg string, cause error) error {
	return &shared.DomainError{
		Code:    shared.CodeUpstreamLookup,
		Message: msg,
		Field:   onboarding.FieldSiretNumber,
		Err:     cause,
	}
}
