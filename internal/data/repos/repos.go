package repos

import (
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos/courses"
	"github.com/creativahub/creativahub-backend/internal/data/repos/dashboard"
	"github.com/creativahub/creativahub-backend/internal/data/repos/portfolio"
	"github.com/creativahub/creativahub-backend/internal/data/repos/user"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo

type CourseRepo = courses.CourseRepo
type EnrollmentRepo = courses.EnrollmentRepo
type MaterialRepo = courses.MaterialRepo
type AssignmentRepo = courses.AssignmentRepo
type SubmissionRepo = courses.SubmissionRepo

type PortfolioProjectRepo = portfolio.ProjectRepo

type DashboardRepo = dashboard.DashboardRepo

func NewUserRepo(db *gorm.DB, log *logger.Logger) UserRepo { return user.NewUserRepo(db, log) }

func NewCourseRepo(db *gorm.DB, log *logger.Logger) CourseRepo {
	return courses.NewCourseRepo(db, log)
}

func NewEnrollmentRepo(db *gorm.DB, log *logger.Logger) EnrollmentRepo {
	return courses.NewEnrollmentRepo(db, log)
}

func NewMaterialRepo(db *gorm.DB, log *logger.Logger) MaterialRepo {
	return courses.NewMaterialRepo(db, log)
}

func NewAssignmentRepo(db *gorm.DB, log *logger.Logger) AssignmentRepo {
	return courses.NewAssignmentRepo(db, log)
}

func NewSubmissionRepo(db *gorm.DB, log *logger.Logger) SubmissionRepo {
	return courses.NewSubmissionRepo(db, log)
}

func NewPortfolioProjectRepo(db *gorm.DB, log *logger.Logger) PortfolioProjectRepo {
	return portfolio.NewProjectRepo(db, log)
}

func NewDashboardRepo(db *gorm.DB, log *logger.Logger) DashboardRepo {
	return dashboard.NewDashboardRepo(db, log)
}
