package httpserver

import (
	"context"

	taskHTTP "smart-task-parser/internal/task/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupTaskDomain registers /api/v1/tasks. The use case arrives fully wired
// from main, so only the delivery layer is built here.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h, srv.middleware)

	srv.l.Infof(ctx, "Task domain registered at /api/v1/tasks")
	return nil
}
