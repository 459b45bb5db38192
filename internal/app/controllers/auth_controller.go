// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/app/services"
	"github.com/yigit/tutordesk/internal/middleware"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
)

// AuthController handles registration, login and logout
type AuthController struct {
	authService services.AuthService
	sessions    *middleware.SessionMiddleware
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessions *middleware.SessionMiddleware, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Home sends visitors to the login page
// GET /
func (c *AuthController) Home(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, middleware.LoginPath)
}

// RegisterPage describes the registration form
// GET /register
func (c *AuthController) RegisterPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewPageResponse(dto.FormPage{
		Action: "/register",
		Fields: []string{"username", "email", "password", middleware.PhotoField},
	}, middleware.PopFlash(ctx)))
}

// Register creates a tutor account and sends the client to the login page
// POST /register
func (c *AuthController) Register(ctx *gin.Context) {
	var form dto.RegisterForm
	if !middleware.BindForm(ctx, &form) {
		c.logger.Warn().Msg("Invalid registration form")
		return
	}
	req := form.Request()

	photo, err := middleware.OptionalPhoto(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(middleware.PhotoField, "Invalid photo upload"))
		return
	}

	if err := c.authService.Register(ctx.Request.Context(), req, photo); err != nil {
		c.logger.Warn().Err(err).Str("username", req.Username).Msg("Registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.SetFlash(ctx, middleware.FlashSuccess, "Registration successful! Please login.")
	ctx.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// LoginPage describes the login form
// GET /login
func (c *AuthController) LoginPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewPageResponse(dto.FormPage{
		Action: middleware.LoginPath,
		Fields: []string{"username", "password"},
	}, middleware.PopFlash(ctx)))
}

// Login checks the credentials and starts a session
// POST /login
func (c *AuthController) Login(ctx *gin.Context) {
	var form dto.LoginForm
	if !middleware.BindForm(ctx, &form) {
		return
	}
	req := form.Request()

	tutor, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		c.logger.Warn().Str("username", req.Username).Msg("Failed login attempt")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.sessions.Establish(ctx, tutor.Username); err != nil {
		c.logger.Error().Err(err).Str("username", tutor.Username).Msg("Failed to start session")
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.SetFlash(ctx, middleware.FlashSuccess, "Login successful!")
	ctx.Redirect(http.StatusSeeOther, DashboardPath)
}

// Logout ends the session
// GET /logout
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.sessions.Destroy(ctx); err != nil {
		c.logger.Error().Err(err).Msg("Failed to destroy session")
	}

	middleware.SetFlash(ctx, middleware.FlashSecondary, "Logged out successfully.")
	ctx.Redirect(http.StatusFound, middleware.LoginPath)
}
