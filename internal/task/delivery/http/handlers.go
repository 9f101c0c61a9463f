package http

import (
	"github.com/gin-gonic/gin"

	"smart-task-tracker/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Description Tasks sorted from critical to low, newest first within a priority. Counts cover every task.
// @Tags        Tasks
// @Produce     json
// @Param       filter query string false "all, active, completed, critical, high, medium or low"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request - unknown filter"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	o, err := h.uc.List(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(o))
}

// Create godoc
// @Summary     Create a task
// @Description Classifies the task and stores it.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task input"
// @Success     201 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request - empty task text"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, h.newTaskResp(o.Task))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(o.Task))
}

// Update godoc
// @Summary     Update a task
// @Description Partial update. Changing text, keywords, effort or urgency reclassifies the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	o, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTaskResp(o.Task))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Param       id path string true "Task ID"
// @Success     204
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.NoContent(c)
}
