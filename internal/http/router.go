package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/creativahub/creativahub-backend/internal/http/handlers"
	httpMW "github.com/creativahub/creativahub-backend/internal/http/middleware"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *httpMW.AuthMiddleware
	CORSOrigins    []string
	MediaDir       string
	TracingEnabled bool
	ServiceName    string

	HealthHandler     *httpH.HealthHandler
	AuthHandler       *httpH.AuthHandler
	UserHandler       *httpH.UserHandler
	CourseHandler     *httpH.CourseHandler
	MaterialHandler   *httpH.MaterialHandler
	AssignmentHandler *httpH.AssignmentHandler
	SubmissionHandler *httpH.SubmissionHandler
	PortfolioHandler  *httpH.PortfolioHandler
	DashboardHandler  *httpH.DashboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if cfg.MediaDir != "" {
		r.Static("/media", cfg.MediaDir)
	}

	api := r.Group("/api")
	{
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.UserHandler != nil {
			protected.GET("/users", cfg.UserHandler.ListUsers)
			protected.GET("/users/:id", cfg.UserHandler.GetUser)
			protected.PATCH("/users/:id", cfg.UserHandler.UpdateUser)
		}

		if cfg.CourseHandler != nil {
			protected.POST("/courses", cfg.CourseHandler.CreateCourse)
			protected.GET("/courses", cfg.CourseHandler.ListPublishedCourses)
			protected.GET("/courses/:id", cfg.CourseHandler.GetCourse)
			protected.PATCH("/courses/:id", cfg.CourseHandler.UpdateCourse)
			protected.GET("/users/:id/courses", cfg.CourseHandler.ListUserCourses)
			protected.POST("/courses/:id/enroll", cfg.CourseHandler.Enroll)
		}

		if cfg.MaterialHandler != nil {
			protected.POST("/courses/:id/materials", cfg.MaterialHandler.CreateMaterial)
			protected.GET("/courses/:id/materials", cfg.MaterialHandler.ListCourseMaterials)
		}

		if cfg.AssignmentHandler != nil {
			protected.POST("/courses/:id/assignments", cfg.AssignmentHandler.CreateAssignment)
			protected.GET("/courses/:id/assignments", cfg.AssignmentHandler.ListCourseAssignments)
		}

		if cfg.SubmissionHandler != nil {
			protected.POST("/assignments/:id/submissions", cfg.SubmissionHandler.CreateSubmission)
			protected.GET("/assignments/:id/submissions", cfg.SubmissionHandler.ListAssignmentSubmissions)
			protected.POST("/submissions/:id/grade", cfg.SubmissionHandler.GradeSubmission)
			protected.GET("/students/:id/submissions", cfg.SubmissionHandler.ListStudentSubmissions)
		}

		if cfg.PortfolioHandler != nil {
			protected.POST("/portfolio", cfg.PortfolioHandler.CreateProject)
			protected.GET("/portfolio/public", cfg.PortfolioHandler.ListPublicProjects)
			protected.GET("/students/:id/portfolio", cfg.PortfolioHandler.ListStudentPortfolio)
		}

		if cfg.DashboardHandler != nil {
			protected.GET("/dashboard", cfg.DashboardHandler.GetDashboard)
		}
	}

	return r
}
