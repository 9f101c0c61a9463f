package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smart-task-tracker/internal/task"
	pkgErrors "smart-task-tracker/pkg/errors"
)

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processCreateReq: %v", err)
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (task.ListInput, error) {
	f, err := task.ParseFilter(c.Query("filter"))
	if err != nil {
		return task.ListInput{}, err
	}
	return task.ListInput{Filter: f}, nil
}

func (h *handler) processUpdateReq(c *gin.Context) (task.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "task.delivery.http.processUpdateReq: %v", err)
		return task.UpdateInput{}, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	return req.toInput(c.Param("id")), nil
}
