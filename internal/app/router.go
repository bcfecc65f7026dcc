package app

import (
	"github.com/gin-gonic/gin"

	internalhttp "github.com/creativahub/creativahub-backend/internal/http"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, tracingEnabled bool) *gin.Engine {
	return internalhttp.NewRouter(internalhttp.RouterConfig{
		Log:            log,
		AuthMiddleware: middleware.Auth,
		CORSOrigins:    cfg.CORSOrigins,
		MediaDir:       cfg.MediaDir,
		TracingEnabled: tracingEnabled,
		ServiceName:    cfg.ServiceName,

		HealthHandler:     handlers.Health,
		AuthHandler:       handlers.Auth,
		UserHandler:       handlers.User,
		CourseHandler:     handlers.Course,
		MaterialHandler:   handlers.Material,
		AssignmentHandler: handlers.Assignment,
		SubmissionHandler: handlers.Submission,
		PortfolioHandler:  handlers.Portfolio,
		DashboardHandler:  handlers.Dashboard,
	})
}
