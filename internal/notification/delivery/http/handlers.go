package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workpulse/internal/middleware"
	"workpulse/internal/model"
	"workpulse/internal/notification"
	pkgErrors "workpulse/pkg/errors"
	"workpulse/pkg/response"
)

type scheduleReq struct {
	TaskID           string     `json:"task_id"`
	NotificationType string     `json:"notification_type"`
	Title            string     `json:"title" binding:"required,min=1,max=255"`
	Message          string     `json:"message" binding:"max=2000"`
	Priority         string     `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	ScheduledFor     *time.Time `json:"scheduled_for"`
	ActionURL        string     `json:"action_url"`
}

func (r scheduleReq) toInput() notification.ScheduleInput {
	return notification.ScheduleInput{
		TaskID:           r.TaskID,
		NotificationType: r.NotificationType,
		Title:            r.Title,
		Message:          r.Message,
		Priority:         r.Priority,
		ScheduledFor:     r.ScheduledFor,
		ActionURL:        r.ActionURL,
	}
}

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
}

type notificationResp struct {
	ID               string             `json:"id"`
	TaskID           string             `json:"task_id,omitempty"`
	NotificationType string             `json:"notification_type,omitempty"`
	Title            string             `json:"title"`
	Message          string             `json:"message"`
	Priority         string             `json:"priority"`
	Status           string             `json:"status"`
	ScheduledFor     *response.DateTime `json:"scheduled_for,omitempty"`
	ActionURL        string             `json:"action_url,omitempty"`
	CreatedAt        response.DateTime  `json:"created_at"`
	DismissedAt      *response.DateTime `json:"dismissed_at,omitempty"`
}

func toDateTime(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	dt := response.DateTime(*t)
	return &dt
}

func newNotificationResp(n model.Notification) notificationResp {
	return notificationResp{
		ID:               n.ID,
		TaskID:           n.TaskID,
		NotificationType: n.NotificationType,
		Title:            n.Title,
		Message:          n.Message,
		Priority:         n.Priority,
		Status:           string(n.Status),
		ScheduledFor:     toDateTime(n.ScheduledFor),
		ActionURL:        n.ActionURL,
		CreatedAt:        response.DateTime(n.CreatedAt),
		DismissedAt:      toDateTime(n.DismissedAt),
	}
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
	Total         int                `json:"total"`
}

// Schedule godoc
// @Summary     Schedule a notification
// @Description Creates a dashboard popup, shown immediately or at the scheduled time.
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Owner user ID"
// @Param       body      body   scheduleReq true "Notification data"
// @Success     200 {object} notificationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Schedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newNotificationResp(output.Notification))
}

// List godoc
// @Summary     List notifications
// @Description Returns the user's notification feed, newest first.
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Owner user ID"
// @Param       status    query  string false "Filter by status (pending/shown/dismissed/scheduled)"
// @Param       limit     query  int    false "Page size (default: 50)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	limit := req.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	output, err := h.uc.List(ctx, sc, notification.ListInput{Status: req.Status, Limit: limit})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	notifications := make([]notificationResp, len(output.Notifications))
	for i, n := range output.Notifications {
		notifications[i] = newNotificationResp(n)
	}
	response.OK(c, listResp{Notifications: notifications, Total: output.Total})
}

// Dismiss godoc
// @Summary     Dismiss a notification
// @Description Marks a notification dismissed so it is no longer shown.
// @Tags        Notifications
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner user ID"
// @Param       id        path   string true "Notification ID"
// @Success     200 {object} notificationResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/notifications/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Dismiss(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Dismiss: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newNotificationResp(output.Notification))
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case notification.ErrTitleRequired:
		return pkgErrors.NewHTTPError(400, "notification title is required")
	case notification.ErrNotificationNotFound:
		return pkgErrors.NewHTTPError(404, "notification not found")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
