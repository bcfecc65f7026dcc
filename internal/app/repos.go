package app

import (
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type Repos struct {
	User       repos.UserRepo
	Course     repos.CourseRepo
	Enrollment repos.EnrollmentRepo
	Material   repos.MaterialRepo
	Assignment repos.AssignmentRepo
	Submission repos.SubmissionRepo
	Project    repos.PortfolioProjectRepo
	Dashboard  repos.DashboardRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       repos.NewUserRepo(db, log),
		Course:     repos.NewCourseRepo(db, log),
		Enrollment: repos.NewEnrollmentRepo(db, log),
		Material:   repos.NewMaterialRepo(db, log),
		Assignment: repos.NewAssignmentRepo(db, log),
		Submission: repos.NewSubmissionRepo(db, log),
		Project:    repos.NewPortfolioProjectRepo(db, log),
		Dashboard:  repos.NewDashboardRepo(db, log),
	}
}
