package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mentorpath/backend/services"
	"mentorpath/backend/store"
	"mentorpath/backend/utils"
)

type ProgressController struct {
	Progress *services.Progress
}

func NewProgressController(progress *services.Progress) *ProgressController {
	return &ProgressController{Progress: progress}
}

type recordVisitRequest struct {
	UserID           string `json:"user_id"`
	Username         string `json:"username"`
	TasksCompleted   int    `json:"tasks_completed"`
	CoursesCompleted int    `json:"courses_completed"`
}

// RecordVisit godoc
// @Summary Record a visit event
// @Description Appends a visit with task/course completion deltas
// @Tags progress
// @Accept json
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/visits [post]
func (pc *ProgressController) RecordVisit(c *fiber.Ctx) error {
	var req recordVisitRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	err := pc.Progress.RecordVisit(c.UserContext(), req.UserID, req.Username, req.TasksCompleted, req.CoursesCompleted)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.NoContent(c)
}

// GetDashboard godoc
// @Summary Get dashboard snapshot
// @Description Returns greeting, totals, weekly progress and the 7-day chart.
// @Description Reading the dashboard records a zero-delta visit.
// @Tags progress
// @Produce json
// @Success 200 {object} models.DashboardSnapshot
// @Failure 400 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/dashboard [get]
func (pc *ProgressController) GetDashboard(c *fiber.Ctx) error {
	userID := c.Query("userId")
	username := c.Query("username")

	snapshot, err := pc.Progress.Dashboard(c.UserContext(), userID, username)
	if err != nil {
		return serviceError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, snapshot)
}

// serviceError maps service failures onto the response envelope.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrValidation):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		return utils.ServiceUnavailable(c, "Storage unavailable, retry later")
	default:
		return utils.InternalServerError(c, err.Error())
	}
}
