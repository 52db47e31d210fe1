package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-api/docs"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(
		gin.Recovery(),
		srv.mw.RequestID(),
		srv.mw.AccessLog(),
		srv.mw.Metrics(),
		srv.mw.RateLimit(),
	)

	ctx := context.Background()
	if srv.environment.IsProduction() {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// documented paths are relative to the API prefix
	docs.SwaggerInfo.BasePath = srv.apiPrefix
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	if srv.metrics != nil {
		srv.gin.GET(srv.metricsPath, gin.WrapH(srv.metrics.Handler()))
	}
}

// registerDomainRoutes registers all domain routes under the API prefix.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group(srv.apiPrefix)

	if err := srv.setupTaskDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
