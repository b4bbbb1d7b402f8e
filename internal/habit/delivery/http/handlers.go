package http

import (
	"github.com/gin-gonic/gin"

	"workpulse/internal/habit"
	"workpulse/internal/middleware"
	pkgErrors "workpulse/pkg/errors"
	"workpulse/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a day's work habits
// @Description Rolls up one calendar day of tasks and activities into a productivity score, overload indicator and insights. Re-analyzing a day overwrites the previous result.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string     true  "Owner user ID"
// @Param       body      body   analyzeReq false "Day to analyze (defaults to today)"
// @Success     200 {object} analyzeResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req analyzeReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err, nil)
			return
		}
	}

	output, err := h.uc.Analyze(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// Latest godoc
// @Summary     Get the latest habit rollup
// @Description Returns the most recent daily rollup for the user, if any.
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner user ID"
// @Success     200 {object} latestResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits/latest [GET]
func (h *handler) Latest(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	output, err := h.uc.Latest(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Latest: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newLatestResp(output))
}

// History godoc
// @Summary     List habit rollups
// @Description Returns past daily rollups, newest first.
// @Tags        Habits
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Owner user ID"
// @Param       limit     query  int    false "Max days to return (default: 30)"
// @Success     200 {object} historyResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/habits [GET]
func (h *handler) History(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req historyReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.History(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newHistoryResp(output))
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case habit.ErrInvalidDate:
		return pkgErrors.NewHTTPError(400, "analysis date must be YYYY-MM-DD")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
