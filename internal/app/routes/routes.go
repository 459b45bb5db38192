package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/tutordesk/internal/app/controllers"
	"github.com/yigit/tutordesk/internal/app/models/dto"
	"github.com/yigit/tutordesk/internal/middleware"
)

// Controllers groups the controllers the router dispatches to
type Controllers struct {
	Auth    *controllers.AuthController
	Student *controllers.StudentController
	Profile *controllers.ProfileController
}

// SetupRouter configures all application routes. LoadSession runs on every
// request; everything except the home, registration and login pages requires a session.
func SetupRouter(router *gin.Engine, ctrl Controllers, sessions *middleware.SessionMiddleware, uploadsURL, uploadsDir string) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}, ""))
	})
	router.Static(uploadsURL, uploadsDir)

	app := router.Group("")
	app.Use(sessions.LoadSession())

	// --- Public routes ---
	app.GET("/", ctrl.Auth.Home)
	app.GET("/register", ctrl.Auth.RegisterPage)
	app.POST("/register", ctrl.Auth.Register)
	app.GET("/login", ctrl.Auth.LoginPage)
	app.POST("/login", ctrl.Auth.Login)

	// --- Authenticated routes ---
	authenticated := app.Group("")
	authenticated.Use(sessions.RequireSession())
	{
		authenticated.GET("/dashboard", ctrl.Student.Dashboard)
		authenticated.GET("/add_student", ctrl.Student.AddStudentPage)
		authenticated.POST("/add_student", ctrl.Student.AddStudent)
		authenticated.GET("/update_student/:id", ctrl.Student.UpdateStudentPage)
		authenticated.POST("/update_student/:id", ctrl.Student.UpdateStudent)
		authenticated.GET("/delete_student/:id", ctrl.Student.DeleteStudent)

		authenticated.GET("/profile", ctrl.Profile.Profile)
		authenticated.POST("/profile", ctrl.Profile.UpdateProfile)

		authenticated.GET("/logout", ctrl.Auth.Logout)
	}
}
