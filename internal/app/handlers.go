package app

import (
	httpH "github.com/creativahub/creativahub-backend/internal/http/handlers"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Auth       *httpH.AuthHandler
	User       *httpH.UserHandler
	Course     *httpH.CourseHandler
	Material   *httpH.MaterialHandler
	Assignment *httpH.AssignmentHandler
	Submission *httpH.SubmissionHandler
	Portfolio  *httpH.PortfolioHandler
	Dashboard  *httpH.DashboardHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Auth:       httpH.NewAuthHandler(services.Auth, services.User),
		User:       httpH.NewUserHandler(services.User),
		Course:     httpH.NewCourseHandler(services.Course, services.User),
		Material:   httpH.NewMaterialHandler(services.Material),
		Assignment: httpH.NewAssignmentHandler(services.Assignment),
		Submission: httpH.NewSubmissionHandler(services.Submission),
		Portfolio:  httpH.NewPortfolioHandler(services.Portfolio),
		Dashboard:  httpH.NewDashboardHandler(services.Dashboard),
	}
}
