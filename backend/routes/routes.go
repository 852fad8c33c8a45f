package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mentorpath/backend/config"
	"mentorpath/backend/controllers"
	"mentorpath/backend/middleware"
	"mentorpath/backend/services"
	"mentorpath/backend/store"
)

// Deps is everything the route table needs wired in.
type Deps struct {
	DB    *gorm.DB // auth only; nil in handler tests
	Store store.Store
	Cache services.SearchCache // nil disables the search cache
	Cfg   *config.Config
}

func SetupRoutes(app *fiber.App, deps Deps) {
	// Auth routes
	authController := controllers.NewAuthController(deps.DB, deps.Cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)

	authMiddleware := middleware.AuthMiddleware(deps.Cfg)
	app.Get("/api/user/profile", authMiddleware, authController.GetProfile)

	// Progress routes
	progressService := services.NewProgress(deps.Store, deps.Cfg)
	progressController := controllers.NewProgressController(progressService)
	progress := app.Group("/api/progress", authMiddleware)
	progress.Post("/visits", progressController.RecordVisit)
	progress.Get("/dashboard", progressController.GetDashboard)

	// Courses routes
	matcher := services.NewMatcher(deps.Store, deps.Cache)
	bookmarks := services.NewBookmarks(deps.Store)
	coursesController := controllers.NewCoursesController(matcher, bookmarks)
	courses := app.Group("/api/courses", authMiddleware)
	courses.Get("/", coursesController.GetCatalog)
	courses.Post("/search", coursesController.SearchCourses)
	courses.Get("/saved", coursesController.GetSavedCourses)
	courses.Get("/completed", coursesController.GetCompletedCourses)
	courses.Post("/:id/save", coursesController.SaveCourse)
	courses.Post("/:id/complete", coursesController.UpdateCourseProgress)
}
