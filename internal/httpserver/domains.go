package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	priorityHTTP "smart-task-tracker/internal/priority/delivery/http"
	taskHTTP "smart-task-tracker/internal/task/delivery/http"
)

// setupPriorityDomain registers /api/v1/priority.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv HTTPServer) setupPriorityDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := priorityHTTP.New(srv.l, srv.priorityUC)
	priorityHTTP.RegisterRoutes(api.Group("/priority"), h)

	srv.l.Infof(ctx, "Priority domain registered")
	return nil
}

// setupTaskDomain registers /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api.Group("/tasks"), h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
