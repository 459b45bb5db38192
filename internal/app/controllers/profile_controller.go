package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/app/services"
	"github.com/yigit/tutordesk/internal/middleware"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
	"github.com/yigit/tutordesk/internal/pkg/filestorage"
)

// ProfileController handles the profile of the logged-in tutor
type ProfileController struct {
	tutorService services.TutorService
	sessions     *middleware.SessionMiddleware
	storage      filestorage.FileStorage
	logger       zerolog.Logger
}

// NewProfileController creates a new ProfileController
func NewProfileController(
	tutorService services.TutorService,
	sessions *middleware.SessionMiddleware,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *ProfileController {
	return &ProfileController{
		tutorService: tutorService,
		sessions:     sessions,
		storage:      storage,
		logger:       logger,
	}
}

// Profile returns the logged-in tutor
// GET /profile
func (c *ProfileController) Profile(ctx *gin.Context) {
	tutor, err := c.tutorService.GetProfile(ctx.Request.Context(), middleware.Identity(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPageResponse(dto.ProfilePageResponse{
		Tutor: dto.NewTutorResponse(tutor, c.storage.URL),
		Form:  dto.FormPage{Action: "/profile", Fields: []string{"username", "email", "password", middleware.PhotoField}},
	}, middleware.PopFlash(ctx)))
}

// UpdateProfile updates the tutor; a new username is carried over to its students and the session
// POST /profile
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	var form dto.ProfileForm
	if !middleware.BindForm(ctx, &form) {
		return
	}
	req := form.Request()

	photo, err := middleware.OptionalPhoto(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(middleware.PhotoField, "Invalid photo upload"))
		return
	}

	username := middleware.Identity(ctx)
	newUsername, err := c.tutorService.UpdateProfile(ctx.Request.Context(), username, req, photo)
	if err != nil {
		c.logger.Warn().Err(err).Str("username", username).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	if newUsername != username {
		if err := c.sessions.Rebind(ctx, newUsername); err != nil {
			c.logger.Error().Err(err).Str("username", newUsername).Msg("Failed to move session to the new username")
			middleware.HandleAPIError(ctx, err)
			return
		}
	}

	middleware.SetFlash(ctx, middleware.FlashSuccess, "Profile updated successfully!")
	ctx.Redirect(http.StatusSeeOther, DashboardPath)
}
