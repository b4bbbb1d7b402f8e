package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/middleware"
	pkgErrors "workpulse/pkg/errors"
	"workpulse/pkg/response"
)

type bootstrapResp struct {
	AlreadySeeded  bool     `json:"already_seeded"`
	TasksCreated   []string `json:"tasks_created,omitempty"`
	NotificationID string   `json:"notification_id,omitempty"`
	HabitDate      string   `json:"habit_date,omitempty"`
}

// Bootstrap godoc
// @Summary     Seed demo data
// @Description Populates a fresh account with sample tasks, a notification and a habit rollup. No-op when the user already has tasks.
// @Tags        Bootstrap
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner user ID"
// @Success     200 {object} bootstrapResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/bootstrap [POST]
func (h *handler) Bootstrap(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.seeder.Seed(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "seeder.Seed: %v", err)
		response.Error(c, pkgErrors.NewHTTPError(500, "internal server error"), nil)
		return
	}

	resp := bootstrapResp{AlreadySeeded: output.AlreadySeeded}
	if !output.AlreadySeeded {
		for _, t := range output.Tasks {
			resp.TasksCreated = append(resp.TasksCreated, t.Title)
		}
		resp.NotificationID = output.Notification.ID
		resp.HabitDate = output.Habit.AnalysisDate
	}
	response.OK(c, resp)
}
