package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "smart-task-tracker/pkg/errors"
)

// processClassifyReq binds the classify request body.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, error) {
	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(c.Request.Context(), "priority.delivery.http.processClassifyReq: %v", err)
		return req, pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid JSON body")
	}
	return req, nil
}
