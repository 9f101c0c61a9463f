package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-tracker/pkg/response"
)

// Classify godoc
// @Summary     Classify a task description
// @Description Returns the priority the tracker would assign, without storing anything.
// @Tags        Priority
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Task input"
// @Success     200  {object} ResultResp
// @Failure     400  {object} response.Resp "Bad Request - empty task text"
// @Router      /api/v1/priority/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.ClassifyRaw(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ClassifyRaw: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, NewResultResp(result))
}
