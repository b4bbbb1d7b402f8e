package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/activity"
	"workpulse/internal/middleware"
	pkgErrors "workpulse/pkg/errors"
	"workpulse/pkg/response"
)

// Log godoc
// @Summary     Record activities
// @Description Appends a batch of activity observations to the user's log.
// @Tags        Activities
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner user ID"
// @Param       body      body   logReq true "Activity batch"
// @Success     200 {object} logResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/activities [POST]
func (h *handler) Log(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req logReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Log(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Log: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newLogResp(output))
}

// List godoc
// @Summary     List activities
// @Description Returns activities in the user's log, optionally filtered by type and day.
// @Tags        Activities
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Owner user ID"
// @Param       type      query  string false "Filter by activity type"
// @Param       date      query  string false "Filter to one day (YYYY-MM-DD)"
// @Param       limit     query  int    false "Page size (default: 100)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/activities [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case activity.ErrTypeRequired:
		return pkgErrors.NewHTTPError(400, "activity type is required")
	case activity.ErrEmptyBatch:
		return pkgErrors.NewHTTPError(400, "activity batch is empty")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
