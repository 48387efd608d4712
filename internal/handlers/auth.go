package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/miniactivity/server/internal/apperrors"
	"github.com/miniactivity/server/internal/middleware"
	"github.com/miniactivity/server/internal/services"
	"github.com/miniactivity/server/internal/validation"
)

type AuthHandler struct {
	authService   *services.AuthService
	githubService *services.GitHubService
}

func NewAuthHandler(authService *services.AuthService, githubService *services.GitHubService) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		githubService: githubService,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	body := middleware.Body[validation.RegisterRequest](c)

	user, err := h.authService.Register(c.Request.Context(), body.Name, body.Email, body.Password)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles email/password login
func (h *AuthHandler) Login(c *gin.Context) {
	body := middleware.Body[validation.LoginRequest](c)

	user, token, err := h.authService.Login(c.Request.Context(), body.Email, body.Password)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// GitHubLogin initiates the GitHub OAuth flow
func (h *AuthHandler) GitHubLogin(c *gin.Context) {
	c.Redirect(http.StatusTemporaryRedirect, h.githubService.GetAuthURL())
}

// GitHubCallback handles the GitHub OAuth callback and issues a token
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		middleware.Abort(c, apperrors.NewValidationError("Invalid input",
			apperrors.Issue{Field: "code", Message: "Code is required"}))
		return
	}

	ctx := c.Request.Context()

	oauthToken, err := h.githubService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		middleware.Abort(c, apperrors.NewUnauthorizedError("Invalid credentials"))
		return
	}

	profile, err := h.githubService.GetUserInfo(ctx, oauthToken)
	if err != nil {
		middleware.Abort(c, apperrors.NewUnauthorizedError("Invalid credentials"))
		return
	}

	user, token, err := h.authService.LoginWithGitHub(ctx, profile)
	if err != nil {
		middleware.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}
