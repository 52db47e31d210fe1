package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	taskHTTP "task-api/internal/task/delivery/http"
	"task-api/internal/task/repository"
	taskMemory "task-api/internal/task/repository/memory"
	taskPostgre "task-api/internal/task/repository/postgre"
	taskUC "task-api/internal/task/usecase"
)

// setupTaskDomain wires repository, usecase and HTTP handler for tasks and registers their routes.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	var repo repository.Repository
	if srv.postgresDB != nil {
		repo = taskPostgre.New(srv.postgresDB, srv.l)
		srv.l.Infof(ctx, "Task repository: postgres")
	} else {
		repo = taskMemory.New()
		srv.l.Warnf(ctx, "Task repository: memory (data is lost on restart)")
	}

	// 2. UseCase
	uc := taskUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered under %s", srv.apiPrefix)
	return nil
}
