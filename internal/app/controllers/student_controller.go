package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/app/services"
	"github.com/yigit/tutordesk/internal/middleware"
	"github.com/yigit/tutordesk/internal/pkg/apperrors"
	"github.com/yigit/tutordesk/internal/pkg/filestorage"
)

// DashboardPath is the landing page of a logged-in tutor
const DashboardPath = "/dashboard"

var studentFormFields = []string{"name", "rollno", "year", "cgpa", "details", middleware.PhotoField}

// StudentController handles the student pages of the logged-in tutor
type StudentController struct {
	studentService services.StudentService
	tutorService   services.TutorService
	storage        filestorage.FileStorage
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(
	studentService services.StudentService,
	tutorService services.TutorService,
	storage filestorage.FileStorage,
	logger zerolog.Logger,
) *StudentController {
	return &StudentController{
		studentService: studentService,
		tutorService:   tutorService,
		storage:        storage,
		logger:         logger,
	}
}

// Dashboard lists the students of the logged-in tutor
// GET /dashboard
func (c *StudentController) Dashboard(ctx *gin.Context) {
	tutor, students, err := c.studentService.Dashboard(ctx.Request.Context(), middleware.Identity(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPageResponse(dto.DashboardResponse{
		Tutor:    dto.NewTutorResponse(tutor, c.storage.URL),
		Students: dto.NewStudentListResponse(students, c.storage.URL),
	}, middleware.PopFlash(ctx)))
}

// AddStudentPage describes the add student form
// GET /add_student
func (c *StudentController) AddStudentPage(ctx *gin.Context) {
	tutor, err := c.tutorService.GetProfile(ctx.Request.Context(), middleware.Identity(ctx))
	if err != nil && !errors.Is(err, apperrors.ErrTutorNotFound) {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPageResponse(dto.AddStudentPageResponse{
		Tutor: dto.NewTutorResponse(tutor, c.storage.URL),
		Form:  dto.FormPage{Action: "/add_student", Fields: studentFormFields},
	}, middleware.PopFlash(ctx)))
}

// AddStudent creates a student owned by the logged-in tutor
// POST /add_student
func (c *StudentController) AddStudent(ctx *gin.Context) {
	var form dto.StudentForm
	if !middleware.BindForm(ctx, &form) {
		return
	}
	req := form.Request()

	photo, err := middleware.OptionalPhoto(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(middleware.PhotoField, "Invalid photo upload"))
		return
	}

	if _, err := c.studentService.AddStudent(ctx.Request.Context(), middleware.Identity(ctx), req, photo); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.SetFlash(ctx, middleware.FlashSuccess, "Student added successfully!")
	ctx.Redirect(http.StatusSeeOther, DashboardPath)
}

// UpdateStudentPage returns a student for editing
// GET /update_student/:id
func (c *StudentController) UpdateStudentPage(ctx *gin.Context) {
	id := ctx.Param("id")

	student, err := c.studentService.GetStudent(ctx.Request.Context(), middleware.Identity(ctx), id)
	if errors.Is(err, apperrors.ErrStudentNotFound) {
		c.studentNotFound(ctx, http.StatusFound)
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewPageResponse(dto.UpdateStudentPageResponse{
		Student: dto.NewStudentResponse(student, c.storage.URL),
		Form:    dto.FormPage{Action: "/update_student/" + id, Fields: studentFormFields},
	}, middleware.PopFlash(ctx)))
}

// UpdateStudent replaces the fields of a student
// POST /update_student/:id
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id := ctx.Param("id")

	var form dto.StudentForm
	if !middleware.BindForm(ctx, &form) {
		return
	}
	req := form.Request()

	photo, err := middleware.OptionalPhoto(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, apperrors.NewValidationError(middleware.PhotoField, "Invalid photo upload"))
		return
	}

	err = c.studentService.UpdateStudent(ctx.Request.Context(), middleware.Identity(ctx), id, req, photo)
	if errors.Is(err, apperrors.ErrStudentNotFound) {
		c.studentNotFound(ctx, http.StatusSeeOther)
		return
	}
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.SetFlash(ctx, middleware.FlashInfo, "Student details updated!")
	ctx.Redirect(http.StatusSeeOther, DashboardPath)
}

// DeleteStudent removes a student
// GET /delete_student/:id
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), middleware.Identity(ctx), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	middleware.SetFlash(ctx, middleware.FlashDanger, "Student deleted successfully!")
	ctx.Redirect(http.StatusFound, DashboardPath)
}

// studentNotFound sends the client back to the dashboard with a warning
func (c *StudentController) studentNotFound(ctx *gin.Context, status int) {
	c.logger.Warn().Str("studentID", ctx.Param("id")).Str("tutor", middleware.Identity(ctx)).Msg("Student not found")
	middleware.SetFlash(ctx, middleware.FlashDanger, "Student not found!")
	ctx.Redirect(status, DashboardPath)
}
