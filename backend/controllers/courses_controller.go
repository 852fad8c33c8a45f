package controllers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"mentorpath/backend/models"
	"mentorpath/backend/services"
	"mentorpath/backend/utils"
)

type CoursesController struct {
	Matcher   *services.Matcher
	Bookmarks *services.Bookmarks

	validate *validator.Validate
}

func NewCoursesController(matcher *services.Matcher, bookmarks *services.Bookmarks) *CoursesController {
	return &CoursesController{
		Matcher:   matcher,
		Bookmarks: bookmarks,
		validate:  validator.New(),
	}
}

// SearchCourses godoc
// @Summary Search the course catalog
// @Description Filters and ranks the catalog against user preferences.
// @Description An empty result list is a valid outcome, not an error.
// @Tags courses
// @Accept json
// @Produce json
// @Success 200 {array} models.Course
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses/search [post]
func (cc *CoursesController) SearchCourses(c *fiber.Ctx) error {
	var prefs models.UserPreferences
	if err := c.BodyParser(&prefs); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if err := cc.validate.Struct(prefs); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}

	courses, err := cc.Matcher.SearchCourses(c.UserContext(), prefs)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, courses)
}

// GetCatalog returns the full course catalog.
func (cc *CoursesController) GetCatalog(c *fiber.Ctx) error {
	courses, err := cc.Matcher.Catalog.ListCourses(c.UserContext())
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, courses)
}

type saveCourseRequest struct {
	UserID string `json:"user_id"`
	Save   bool   `json:"save"`
}

// SaveCourse toggles a course in the user's saved set. Idempotent in both
// directions.
func (cc *CoursesController) SaveCourse(c *fiber.Ctx) error {
	var req saveCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	err := cc.Bookmarks.SaveCourse(c.UserContext(), req.UserID, c.Params("id"), req.Save)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

type completeCourseRequest struct {
	UserID    string `json:"user_id"`
	Completed bool   `json:"completed"`
}

// UpdateCourseProgress toggles a course in the user's completed set.
func (cc *CoursesController) UpdateCourseProgress(c *fiber.Ctx) error {
	var req completeCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	err := cc.Bookmarks.UpdateCourseProgress(c.UserContext(), req.UserID, c.Params("id"), req.Completed)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

// GetSavedCourses returns the user's bookmarks as full catalog entries, in
// the order they were saved.
func (cc *CoursesController) GetSavedCourses(c *fiber.Ctx) error {
	courses, err := cc.Bookmarks.SavedCourses(c.UserContext(), c.Query("userId"))
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, courses)
}

// GetCompletedCourses returns the ids of courses the user marked finished.
func (cc *CoursesController) GetCompletedCourses(c *fiber.Ctx) error {
	ids, err := cc.Bookmarks.CompletedCourses(c.UserContext(), c.Query("userId"))
	if err != nil {
		return serviceError(c, err)
	}
	if ids == nil {
		ids = []string{}
	}
	return utils.Success(c, fiber.StatusOK, ids)
}

// validationDetails flattens validator errors into a field->message map.
func validationDetails(err error) map[string]string {
	details := make(map[string]string)
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, ferr := range verrs {
			details[ferr.Field()] = "failed on '" + ferr.Tag() + "' validation"
		}
		return details
	}
	details["request"] = err.Error()
	return details
}
