package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"workpulse/internal/chat"
	"workpulse/internal/middleware"
	pkgErrors "workpulse/pkg/errors"
	"workpulse/pkg/response"
)

type chatReq struct {
	Message string `json:"message" binding:"required"`
	Context string `json:"context"`
}

func (r chatReq) toInput() chat.RespondInput {
	return chat.RespondInput{Message: r.Message, Context: r.Context}
}

type chatResp struct {
	Response  string    `json:"response"`
	Intent    string    `json:"intent"`
	Timestamp time.Time `json:"timestamp"`
}

// Chat godoc
// @Summary     Ask the productivity assistant
// @Description Answers a user message about tasks, productivity, deadlines or work patterns. Stateless: no conversation history is kept.
// @Tags        AI
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Owner user ID"
// @Param       body      body   chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/ai/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	sc := middleware.GetScope(c)

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Respond(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Respond: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, chatResp{
		Response:  output.Response,
		Intent:    output.Intent,
		Timestamp: output.Timestamp,
	})
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrMessageRequired:
		return pkgErrors.NewHTTPError(400, "message is required")
	default:
		return pkgErrors.NewHTTPError(500, "internal server error")
	}
}
