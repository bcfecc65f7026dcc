package dashboard

import (
	"context"
	"testing"

	"github.com/creativahub/creativahub-backend/internal/data/repos/testutil"
	types "github.com/creativahub/creativahub-backend/internal/domain"
)

func TestDashboardRepoUserCounts(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewDashboardRepo(tx, testutil.Logger(t))

	testutil.SeedUser(t, ctx, tx, "count.admin@example.com", types.RoleAdmin)
	testutil.SeedUser(t, ctx, tx, "count.t1@example.com", types.RoleTeacher)
	testutil.SeedUser(t, ctx, tx, "count.s1@example.com", types.RoleStudent)
	testutil.SeedUser(t, ctx, tx, "count.s2@example.com", types.RoleStudent)

	total, err := repo.CountUsers(ctx, tx)
	if err != nil {
		t.Fatalf("count users: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected 4 users, got %d", total)
	}

	students, err := repo.CountUsersByRole(ctx, tx, types.RoleStudent)
	if err != nil {
		t.Fatalf("count students: %v", err)
	}
	if students != 2 {
		t.Fatalf("expected 2 students, got %d", students)
	}

	teachers, err := repo.CountUsersByRole(ctx, tx, types.RoleTeacher)
	if err != nil {
		t.Fatalf("count teachers: %v", err)
	}
	if teachers != 1 {
		t.Fatalf("expected 1 teacher, got %d", teachers)
	}
}

func TestDashboardRepoTeacherCounts(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewDashboardRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "dash.teacher@example.com", types.RoleTeacher)
	other := testutil.SeedUser(t, ctx, tx, "dash.other@example.com", types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, tx, "dash.student@example.com", types.RoleStudent)

	mine := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)
	theirs := testutil.SeedCourse(t, ctx, tx, other.ID, types.CoursePublished)

	a1 := testutil.SeedAssignment(t, ctx, tx, mine.ID, types.AssignmentPublished)
	testutil.SeedAssignment(t, ctx, tx, mine.ID, types.AssignmentDraft)
	a3 := testutil.SeedAssignment(t, ctx, tx, theirs.ID, types.AssignmentPublished)

	testutil.SeedSubmission(t, ctx, tx, a1.ID, student.ID, types.SubmissionSubmitted)
	testutil.SeedSubmission(t, ctx, tx, a3.ID, student.ID, types.SubmissionSubmitted)

	courses, err := repo.CountCoursesByTeacher(ctx, tx, teacher.ID)
	if err != nil {
		t.Fatalf("count courses: %v", err)
	}
	if courses != 1 {
		t.Fatalf("expected 1 course, got %d", courses)
	}

	assignments, err := repo.CountAssignmentsByTeacher(ctx, tx, teacher.ID)
	if err != nil {
		t.Fatalf("count assignments: %v", err)
	}
	if assignments != 2 {
		t.Fatalf("expected 2 assignments, got %d", assignments)
	}

	pending, err := repo.CountSubmissionsByTeacherAndStatus(ctx, tx, teacher.ID, types.SubmissionSubmitted)
	if err != nil {
		t.Fatalf("count submissions: %v", err)
	}
	if pending != 1 {
		t.Fatalf("expected 1 pending submission, got %d", pending)
	}
}

func TestDashboardRepoStudentCounts(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewDashboardRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "sd.teacher@example.com", types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, tx, "sd.student@example.com", types.RoleStudent)

	enrolled := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)
	notEnrolled := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)
	testutil.SeedEnrollment(t, ctx, tx, enrolled.ID, student.ID)

	published := testutil.SeedAssignment(t, ctx, tx, enrolled.ID, types.AssignmentPublished)
	testutil.SeedAssignment(t, ctx, tx, enrolled.ID, types.AssignmentDraft)
	testutil.SeedAssignment(t, ctx, tx, notEnrolled.ID, types.AssignmentPublished)

	testutil.SeedSubmission(t, ctx, tx, published.ID, student.ID, types.SubmissionGraded)
	testutil.SeedProject(t, ctx, tx, student.ID, true)
	testutil.SeedProject(t, ctx, tx, student.ID, false)

	enrollments, err := repo.CountEnrollmentsByStudent(ctx, tx, student.ID)
	if err != nil {
		t.Fatalf("count enrollments: %v", err)
	}
	if enrollments != 1 {
		t.Fatalf("expected 1 enrollment, got %d", enrollments)
	}

	available, err := repo.CountPublishedAssignmentsForStudent(ctx, tx, student.ID)
	if err != nil {
		t.Fatalf("count available assignments: %v", err)
	}
	if available != 1 {
		t.Fatalf("expected 1 available assignment, got %d", available)
	}

	graded, err := repo.CountSubmissionsByStudentAndStatus(ctx, tx, student.ID, types.SubmissionGraded)
	if err != nil {
		t.Fatalf("count graded submissions: %v", err)
	}
	if graded != 1 {
		t.Fatalf("expected 1 graded submission, got %d", graded)
	}

	projects, err := repo.CountProjectsByStudent(ctx, tx, student.ID)
	if err != nil {
		t.Fatalf("count projects: %v", err)
	}
	if projects != 2 {
		t.Fatalf("expected 2 projects, got %d", projects)
	}
}
