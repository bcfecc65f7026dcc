package app

import (
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/platform/logger"
	"github.com/creativahub/creativahub-backend/internal/services"
)

type Services struct {
	Avatar     services.AvatarService
	Auth       services.AuthService
	User       services.UserService
	Course     services.CourseService
	Material   services.MaterialService
	Assignment services.AssignmentService
	Submission services.SubmissionService
	Portfolio  services.PortfolioService
	Dashboard  services.DashboardService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos) Services {
	log.Info("Wiring services...")

	// Avatar generation needs a font on disk. Without one the rest of the
	// app still works, users just get no generated avatar.
	var avatarService services.AvatarService
	if cfg.AvatarFont != "" {
		svc, err := services.NewAvatarService(log, cfg.MediaDir, cfg.AvatarFont)
		if err != nil {
			log.Warn("Avatar service disabled", "error", err)
		} else {
			avatarService = svc
		}
	} else {
		log.Info("AVATAR_FONT not set, avatar generation disabled")
	}

	return Services{
		Avatar:     avatarService,
		Auth:       services.NewAuthService(db, log, repos.User, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		User:       services.NewUserService(db, log, repos.User, avatarService),
		Course:     services.NewCourseService(db, log, repos.User, repos.Course, repos.Enrollment),
		Material:   services.NewMaterialService(db, log, repos.Course, repos.Material),
		Assignment: services.NewAssignmentService(db, log, repos.Course, repos.Assignment),
		Submission: services.NewSubmissionService(db, log, repos.Assignment, repos.Enrollment, repos.Submission),
		Portfolio:  services.NewPortfolioService(db, log, repos.User, repos.Project),
		Dashboard:  services.NewDashboardService(db, log, repos.Dashboard),
	}
}
