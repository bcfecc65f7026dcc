package courses

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/creativahub/creativahub-backend/internal/data/repos/testutil"
	types "github.com/creativahub/creativahub-backend/internal/domain"
)

func TestCourseRepoListByStatus(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCourseRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "status.teacher@example.com", types.RoleTeacher)
	published := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)
	testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CourseDraft)

	got, err := repo.ListByStatus(ctx, tx, types.CoursePublished)
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 published course, got %d", len(got))
	}
	if got[0].ID != published.ID {
		t.Fatalf("unexpected course: %s", got[0].ID)
	}
}

func TestCourseRepoListByTeacher(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCourseRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "mine.teacher@example.com", types.RoleTeacher)
	other := testutil.SeedUser(t, ctx, tx, "other.teacher@example.com", types.RoleTeacher)
	mine := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CourseDraft)
	testutil.SeedCourse(t, ctx, tx, other.ID, types.CoursePublished)

	got, err := repo.ListByTeacher(ctx, tx, teacher.ID)
	if err != nil {
		t.Fatalf("list by teacher: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("expected only the teacher's course, got %d", len(got))
	}
}

func TestCourseRepoListEnrolledByStudent(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCourseRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "enr.teacher@example.com", types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, tx, "enr.student@example.com", types.RoleStudent)
	enrolled := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)
	testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)
	testutil.SeedEnrollment(t, ctx, tx, enrolled.ID, student.ID)

	got, err := repo.ListEnrolledByStudent(ctx, tx, student.ID)
	if err != nil {
		t.Fatalf("list enrolled: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 enrolled course, got %d", len(got))
	}
	if got[0].ID != enrolled.ID {
		t.Fatalf("unexpected course: %s", got[0].ID)
	}
}

func TestCourseRepoUpdateFields(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewCourseRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "upd.teacher@example.com", types.RoleTeacher)
	c := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CourseDraft)

	err := repo.UpdateFields(ctx, tx, c.ID, map[string]any{
		"title":  "New Title",
		"status": types.CoursePublished,
	})
	if err != nil {
		t.Fatalf("update fields: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, c.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Title != "New Title" || got.Status != types.CoursePublished {
		t.Fatalf("fields not updated: %+v", got)
	}
}

func TestEnrollmentRepoExists(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewEnrollmentRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "ex.teacher@example.com", types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, tx, "ex.student@example.com", types.RoleStudent)
	c := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)

	exists, err := repo.Exists(ctx, tx, c.ID, student.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("expected no enrollment yet")
	}

	testutil.SeedEnrollment(t, ctx, tx, c.ID, student.ID)

	exists, err = repo.Exists(ctx, tx, c.ID, student.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected enrollment to exist")
	}
}

func TestMaterialRepoListByCourseOrder(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewMaterialRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "mat.teacher@example.com", types.RoleTeacher)
	c := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)

	third := testutil.SeedMaterial(t, ctx, tx, c.ID, 3)
	first := testutil.SeedMaterial(t, ctx, tx, c.ID, 1)
	second := testutil.SeedMaterial(t, ctx, tx, c.ID, 2)

	got, err := repo.ListByCourse(ctx, tx, c.ID)
	if err != nil {
		t.Fatalf("list by course: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 materials, got %d", len(got))
	}
	want := []uuid.UUID{first.ID, second.ID, third.ID}
	for i, m := range got {
		if m.ID != want[i] {
			t.Fatalf("position %d: expected %s, got %s", i, want[i], m.ID)
		}
	}
}

func TestSubmissionRepoExists(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewSubmissionRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "sub.teacher@example.com", types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, tx, "sub.student@example.com", types.RoleStudent)
	c := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)
	a := testutil.SeedAssignment(t, ctx, tx, c.ID, types.AssignmentPublished)

	exists, err := repo.Exists(ctx, tx, a.ID, student.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if exists {
		t.Fatal("expected no submission yet")
	}

	testutil.SeedSubmission(t, ctx, tx, a.ID, student.ID, types.SubmissionSubmitted)

	exists, err = repo.Exists(ctx, tx, a.ID, student.ID)
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Fatal("expected submission to exist")
	}
}

func TestSubmissionRepoListByStudent(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewSubmissionRepo(tx, testutil.Logger(t))

	teacher := testutil.SeedUser(t, ctx, tx, "ls.teacher@example.com", types.RoleTeacher)
	student := testutil.SeedUser(t, ctx, tx, "ls.student@example.com", types.RoleStudent)
	other := testutil.SeedUser(t, ctx, tx, "ls.other@example.com", types.RoleStudent)
	c := testutil.SeedCourse(t, ctx, tx, teacher.ID, types.CoursePublished)
	a := testutil.SeedAssignment(t, ctx, tx, c.ID, types.AssignmentPublished)

	mine := testutil.SeedSubmission(t, ctx, tx, a.ID, student.ID, types.SubmissionSubmitted)
	testutil.SeedSubmission(t, ctx, tx, a.ID, other.ID, types.SubmissionSubmitted)

	got, err := repo.ListByStudent(ctx, tx, student.ID)
	if err != nil {
		t.Fatalf("list by student: %v", err)
	}
	if len(got) != 1 || got[0].ID != mine.ID {
		t.Fatalf("expected only the student's submission, got %d", len(got))
	}
}
