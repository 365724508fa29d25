package handler

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	appidentity "github.com/rentflow/backend/internal/application/identity"
	"github.com/rentflow/backend/internal/domain/access"
	"github.com/rentflow/backend/internal/domain/onboarding"
	"github.com/rentflow/backend/internal/infrastructure/auth"
	"github.com/rentflow/backend/internal/interfaces/http/middleware"
)

// AuthService is the identity provider as seen by the auth pages
type AuthService interface {
	SignUp(ctx context.Context, input appidentity.SignUpInput) (*appidentity.SessionResult, error)
	SignIn(ctx context.Context, input appidentity.SignInInput) (*appidentity.SessionResult, error)
	SignOut(ctx context.Context, claims *auth.SessionClaims) error
}

// AuthHandler handles the sign-up, sign-in and sign-out pages
type AuthHandler struct {
	BaseHandler
	authService AuthService
	cookie      *SessionCookie
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService AuthService, cookie *SessionCookie) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookie:      cookie,
	}
}

// SignUpPage godoc
// @ID           getSignUpPage
// @Summary      Sign-up page
// @Description  Returns the state of the sign-up page
// @Tags         auth
// @Produce      json
// @Param        redirect_url query string false "Page to return to after sign-up"
// @Success      200 {object} APIResponse[AuthPageResponse]
// @Router       /sign-up [get]
func (h *AuthHandler) SignUpPage(c *gin.Context) {
	h.Success(c, AuthPageResponse{Page: "sign-up", RedirectURL: safeRedirect(c.Query(access.ReturnParam))})
}

// SignInPage godoc
// @ID           getSignInPage
// @Summary      Sign-in page
// @Description  Returns the state of the sign-in page, including the page to return to
// @Tags         auth
// @Produce      json
// @Param        redirect_url query string false "Page to return to after sign-in"
// @Success      200 {object} APIResponse[AuthPageResponse]
// @Router       /sign-in [get]
func (h *AuthHandler) SignInPage(c *gin.Context) {
	h.Success(c, AuthPageResponse{Page: "sign-in", RedirectURL: safeRedirect(c.Query(access.ReturnParam))})
}

// SignUp godoc
// @ID           signUp
// @Summary      Create an account
// @Description  Creates an account, sets the session cookie and sends the user to role selection
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body SignUpRequest true "Account details"
// @Success      201 {object} APIResponse[AuthResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /sign-up [post]
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.SignUp(c.Request.Context(), appidentity.SignUpInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.cookie.Set(c, result.Session)
	h.Created(c, toAuthResponse(result, access.RoleSelectionPath))
}

// SignIn godoc
// @ID           signIn
// @Summary      Sign in
// @Description  Authenticates the user and sets the session cookie. The redirect honors redirect_url when it is a local path.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        redirect_url query string false "Page to return to"
// @Param        request body SignInRequest true "Credentials"
// @Success      200 {object} APIResponse[AuthResponse]
// @Failure      400 {object} ErrorResponse
// @Failure      401 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /sign-in [post]
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	result, err := h.authService.SignIn(c.Request.Context(), appidentity.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	redirect := safeRedirect(c.Query(access.ReturnParam))
	if redirect == "" {
		redirect = access.RoleSelectionPath
		if result.User.Role.IsSet() {
			redirect = onboarding.DashboardForRole(result.User.Role)
		}
	}

	h.cookie.Set(c, result.Session)
	h.Success(c, toAuthResponse(result, redirect))
}

// SignOut godoc
// @ID           signOut
// @Summary      Sign out
// @Description  Revokes the current session and clears the session cookie
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} APIResponse[RedirectData]
// @Failure      503 {object} ErrorResponse
// @Router       /sign-out [post]
func (h *AuthHandler) SignOut(c *gin.Context) {
	claims, ok := h.sessionClaims(c)
	if !ok {
		return
	}
	if err := h.authService.SignOut(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}

	h.cookie.Clear(c)
	h.Success(c, RedirectData{Redirect: access.SignInPath})
}

func toAuthResponse(result *appidentity.SessionResult, redirect string) AuthResponse {
	return AuthResponse{
		Redirect: redirect,
		Session: SessionResponse{
			Token:     result.Session.Token,
			ExpiresAt: result.Session.ExpiresAt,
		},
		User: AuthUserResponse{
			ID:        result.User.ID,
			Email:     result.User.Email,
			FirstName: result.User.FirstName,
			LastName:  result.User.LastName,
			Role:      result.User.Role.String(),
		},
	}
}

// safeRedirect keeps only local absolute paths, so redirect_url cannot send
// the user to another site.
func safeRedirect(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.Contains(target, "\\") {
		return ""
	}
	return target
}
