package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workpulse/internal/middleware"
	"workpulse/pkg/response"
)

// Score godoc
// @Summary     Recompute task priority scores
// @Description Recomputes priority scores and urgency levels for all open tasks, or a single task when task_id is provided. Records an explanation per task.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true  "Owner user ID"
// @Param       body      body   scoreReq false "Optional single-task filter"
// @Success     200 {object} scoreResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/score [POST]
func (h *handler) Score(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processScoreReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Score(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Score: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newScoreResp(output))
}

// Infer godoc
// @Summary     Infer tasks from activities
// @Description Derives new tasks from a batch of observed activities. Activity types without an inference rule are skipped.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string   true "Owner user ID"
// @Param       body      body   inferReq true "Activity batch"
// @Success     200 {object} inferResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/infer [POST]
func (h *handler) Infer(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processInferReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.InferFromActivities(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.InferFromActivities: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newInferResp(output))
}

// Create godoc
// @Summary     Create a task
// @Description Creates a manually entered task. The priority score and urgency are derived from keywords in the title and description plus deadline pressure.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string    true "Owner user ID"
// @Param       body      body   createReq true "Task data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, deadline, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput(deadline))
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns a paginated list of the user's tasks with optional status filter and sort order.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true  "Owner user ID"
// @Param       status    query  string false "Filter by status (pending/in_progress/completed/cancelled)"
// @Param       sort      query  string false "Sort order (priority/deadline/complexity/created)"
// @Param       limit     query  int    false "Page size (default: 20)"
// @Param       offset    query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	req, err := h.processListReq(c)
	if err != nil {
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

// Complete godoc
// @Summary     Complete a task
// @Description Marks a task completed with a 100% completion percentage.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner user ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} completeResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Complete(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Complete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCompleteResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Permanently removes a task by ID.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string true "Owner user ID"
// @Param       id        path   string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
