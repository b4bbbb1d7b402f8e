package http

import (
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "workpulse/pkg/errors"
)

// processScoreReq binds the optional single-task scoring request body.
// An empty body means "score every open task".
func (h *handler) processScoreReq(c *gin.Context) (scoreReq, error) {
	var req scoreReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processInferReq binds and validates the activity batch request body.
func (h *handler) processInferReq(c *gin.Context) (inferReq, error) {
	var req inferReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processCreateReq binds the manual task request body and resolves its
// deadline, which may be absolute or relative ("tomorrow", "in 3 days").
func (h *handler) processCreateReq(c *gin.Context) (createReq, time.Time, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, time.Time{}, err
	}

	deadline, err := h.dateMath.ParseDeadline(req.Deadline, time.Now())
	if err != nil {
		return req, time.Time{}, pkgErrors.NewHTTPError(400, "invalid deadline format")
	}
	return req, deadline, nil
}

// processListReq binds the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
