package services

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos"
	types "github.com/creativahub/creativahub-backend/internal/domain"
	"github.com/creativahub/creativahub-backend/internal/platform/logger"
)

type DashboardService interface {
	GetDashboardData(ctx context.Context, userID uuid.UUID, role types.Role) (map[string]int64, error)
}

type dashboardService struct {
	db            *gorm.DB
	log           *logger.Logger
	dashboardRepo repos.DashboardRepo
}

func NewDashboardService(db *gorm.DB, log *logger.Logger, dashboardRepo repos.DashboardRepo) DashboardService {
	serviceLog := log.With("service", "DashboardService")
	return &dashboardService{
		db:            db,
		log:           serviceLog,
		dashboardRepo: dashboardRepo,
	}
}

// GetDashboardData recomputes the role-keyed counts on every call. Roles
// outside the known set get an empty object rather than an error.
func (ds *dashboardService) GetDashboardData(ctx context.Context, userID uuid.UUID, role types.Role) (map[string]int64, error) {
	switch role {
	case types.RoleAdmin:
		return ds.adminData(ctx)
	case types.RoleTeacher:
		return ds.teacherData(ctx, userID)
	case types.RoleStudent:
		return ds.studentData(ctx, userID)
	default:
		ds.log.Warn("dashboard requested for unknown role", "role", role, "user_id", userID)
		return map[string]int64{}, nil
	}
}

func (ds *dashboardService) adminData(ctx context.Context) (map[string]int64, error) {
	var totalUsers, totalCourses, totalStudents, totalTeachers int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		totalUsers, err = ds.dashboardRepo.CountUsers(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		totalCourses, err = ds.dashboardRepo.CountCourses(gctx, nil)
		return err
	})
	g.Go(func() (err error) {
		totalStudents, err = ds.dashboardRepo.CountUsersByRole(gctx, nil, types.RoleStudent)
		return err
	})
	g.Go(func() (err error) {
		totalTeachers, err = ds.dashboardRepo.CountUsersByRole(gctx, nil, types.RoleTeacher)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[string]int64{
		"totalUsers":    totalUsers,
		"totalCourses":  totalCourses,
		"totalStudents": totalStudents,
		"totalTeachers": totalTeachers,
	}, nil
}

func (ds *dashboardService) teacherData(ctx context.Context, teacherID uuid.UUID) (map[string]int64, error) {
	var myCourses, myAssignments, pendingSubmissions int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		myCourses, err = ds.dashboardRepo.CountCoursesByTeacher(gctx, nil, teacherID)
		return err
	})
	g.Go(func() (err error) {
		myAssignments, err = ds.dashboardRepo.CountAssignmentsByTeacher(gctx, nil, teacherID)
		return err
	})
	g.Go(func() (err error) {
		pendingSubmissions, err = ds.dashboardRepo.CountSubmissionsByTeacherAndStatus(gctx, nil, teacherID, types.SubmissionSubmitted)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[string]int64{
		"myCourses":          myCourses,
		"myAssignments":      myAssignments,
		"pendingSubmissions": pendingSubmissions,
	}, nil
}

func (ds *dashboardService) studentData(ctx context.Context, studentID uuid.UUID) (map[string]int64, error) {
	var enrolledCourses, availableAssignments, gradedSubmissions, portfolioProjects int64

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		enrolledCourses, err = ds.dashboardRepo.CountEnrollmentsByStudent(gctx, nil, studentID)
		return err
	})
	g.Go(func() (err error) {
		availableAssignments, err = ds.dashboardRepo.CountPublishedAssignmentsForStudent(gctx, nil, studentID)
		return err
	})
	g.Go(func() (err error) {
		gradedSubmissions, err = ds.dashboardRepo.CountSubmissionsByStudentAndStatus(gctx, nil, studentID, types.SubmissionGraded)
		return err
	})
	g.Go(func() (err error) {
		portfolioProjects, err = ds.dashboardRepo.CountProjectsByStudent(gctx, nil, studentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return map[string]int64{
		"enrolledCourses":      enrolledCourses,
		"availableAssignments": availableAssignments,
		"gradedSubmissions":    gradedSubmissions,
		"portfolioProjects":    portfolioProjects,
	}, nil
}
