package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos"
	"github.com/creativahub/creativahub-backend/internal/data/repos/testutil"
	types "github.com/creativahub/creativahub-backend/internal/domain"
)

// The dashboard fans counts out over errgroup, so its tests run against
// the shared committed database instead of a per-test transaction and
// remove their rows afterwards.
func newDashboardService(t *testing.T, gdb *gorm.DB) DashboardService {
	t.Helper()
	log := testutil.Logger(t)
	return NewDashboardService(gdb, log, repos.NewDashboardRepo(gdb, log))
}

func seedCommitted[T any](t *testing.T, gdb *gorm.DB, row *T, id uuid.UUID) *T {
	t.Helper()
	if err := gdb.Create(row).Error; err != nil {
		t.Fatalf("seed row: %v", err)
	}
	t.Cleanup(func() {
		_ = gdb.Where("id = ?", id).Delete(row).Error
	})
	return row
}

func committedUser(t *testing.T, gdb *gorm.DB, email string, role types.Role) *types.User {
	t.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Email:    email,
		Password: "pw",
		FullName: "Dash User",
		Role:     role,
		IsActive: true,
	}
	return seedCommitted(t, gdb, u, u.ID)
}

func TestDashboardServiceAdmin(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	svc := newDashboardService(t, gdb)

	admin := committedUser(t, gdb, "da.admin@example.com", types.RoleAdmin)

	data, err := svc.GetDashboardData(ctx, admin.ID, types.RoleAdmin)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	want := map[string]int64{
		"totalUsers":    1,
		"totalCourses":  0,
		"totalStudents": 0,
		"totalTeachers": 0,
	}
	for key, value := range want {
		if data[key] != value {
			t.Fatalf("expected %s=%d, got %d", key, value, data[key])
		}
	}
	if len(data) != len(want) {
		t.Fatalf("unexpected keys in payload: %v", data)
	}
}

func TestDashboardServiceTeacher(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	svc := newDashboardService(t, gdb)

	teacher := committedUser(t, gdb, "dt.teacher@example.com", types.RoleTeacher)
	student := committedUser(t, gdb, "dt.student@example.com", types.RoleStudent)

	course := &types.Course{ID: uuid.New(), Title: "c", TeacherID: teacher.ID, Status: types.CoursePublished}
	seedCommitted(t, gdb, course, course.ID)

	assignment := &types.Assignment{ID: uuid.New(), CourseID: course.ID, Title: "a", MaxScore: 100, Status: types.AssignmentPublished}
	seedCommitted(t, gdb, assignment, assignment.ID)

	submission := &types.AssignmentSubmission{ID: uuid.New(), AssignmentID: assignment.ID, StudentID: student.ID, Status: types.SubmissionSubmitted}
	seedCommitted(t, gdb, submission, submission.ID)

	data, err := svc.GetDashboardData(ctx, teacher.ID, types.RoleTeacher)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if data["myCourses"] != 1 {
		t.Fatalf("expected myCourses=1, got %d", data["myCourses"])
	}
	if data["myAssignments"] != 1 {
		t.Fatalf("expected myAssignments=1, got %d", data["myAssignments"])
	}
	if data["pendingSubmissions"] != 1 {
		t.Fatalf("expected pendingSubmissions=1, got %d", data["pendingSubmissions"])
	}
}

func TestDashboardServiceStudent(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	svc := newDashboardService(t, gdb)

	teacher := committedUser(t, gdb, "ds.teacher@example.com", types.RoleTeacher)
	student := committedUser(t, gdb, "ds.student@example.com", types.RoleStudent)

	course := &types.Course{ID: uuid.New(), Title: "c", TeacherID: teacher.ID, Status: types.CoursePublished}
	seedCommitted(t, gdb, course, course.ID)

	enrollment := &types.CourseEnrollment{ID: uuid.New(), CourseID: course.ID, StudentID: student.ID}
	seedCommitted(t, gdb, enrollment, enrollment.ID)

	published := &types.Assignment{ID: uuid.New(), CourseID: course.ID, Title: "a1", MaxScore: 100, Status: types.AssignmentPublished}
	seedCommitted(t, gdb, published, published.ID)
	draft := &types.Assignment{ID: uuid.New(), CourseID: course.ID, Title: "a2", MaxScore: 100, Status: types.AssignmentDraft}
	seedCommitted(t, gdb, draft, draft.ID)

	graded := &types.AssignmentSubmission{ID: uuid.New(), AssignmentID: published.ID, StudentID: student.ID, Status: types.SubmissionGraded}
	seedCommitted(t, gdb, graded, graded.ID)

	project := &types.PortfolioProject{ID: uuid.New(), StudentID: student.ID, Title: "p"}
	seedCommitted(t, gdb, project, project.ID)

	data, err := svc.GetDashboardData(ctx, student.ID, types.RoleStudent)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	want := map[string]int64{
		"enrolledCourses":      1,
		"availableAssignments": 1,
		"gradedSubmissions":    1,
		"portfolioProjects":    1,
	}
	for key, value := range want {
		if data[key] != value {
			t.Fatalf("expected %s=%d, got %d", key, value, data[key])
		}
	}
}

func TestDashboardServiceUnknownRole(t *testing.T) {
	ctx := context.Background()
	gdb := testutil.DB(t)
	svc := newDashboardService(t, gdb)

	data, err := svc.GetDashboardData(ctx, uuid.New(), types.Role("wizard"))
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected empty payload for unknown role, got %v", data)
	}
}
