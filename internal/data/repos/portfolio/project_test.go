package portfolio

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos/testutil"
	types "github.com/creativahub/creativahub-backend/internal/domain"
)

func seedProjectAt(t *testing.T, ctx context.Context, tx *gorm.DB, studentID uuid.UUID, isPublic bool, createdAt time.Time) *types.PortfolioProject {
	t.Helper()
	p := &types.PortfolioProject{
		ID:        uuid.New(),
		StudentID: studentID,
		Title:     "project",
		IsPublic:  isPublic,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}
	return p
}

func TestProjectRepoListByStudentNewestFirst(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewProjectRepo(tx, testutil.Logger(t))

	student := testutil.SeedUser(t, ctx, tx, "pf.student@example.com", types.RoleStudent)
	other := testutil.SeedUser(t, ctx, tx, "pf.other@example.com", types.RoleStudent)

	base := time.Now().UTC().Add(-time.Hour)
	old := seedProjectAt(t, ctx, tx, student.ID, false, base)
	recent := seedProjectAt(t, ctx, tx, student.ID, true, base.Add(10*time.Minute))
	seedProjectAt(t, ctx, tx, other.ID, true, base.Add(5*time.Minute))

	got, err := repo.ListByStudent(ctx, tx, student.ID)
	if err != nil {
		t.Fatalf("list by student: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got[0].ID != recent.ID || got[1].ID != old.ID {
		t.Fatalf("expected newest first, got [%s, %s]", got[0].ID, got[1].ID)
	}
}

func TestProjectRepoListPublic(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewProjectRepo(tx, testutil.Logger(t))

	student := testutil.SeedUser(t, ctx, tx, "pub.student@example.com", types.RoleStudent)

	base := time.Now().UTC().Add(-time.Hour)
	pub := seedProjectAt(t, ctx, tx, student.ID, true, base)
	seedProjectAt(t, ctx, tx, student.ID, false, base.Add(time.Minute))

	got, err := repo.ListPublic(ctx, tx)
	if err != nil {
		t.Fatalf("list public: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 public project, got %d", len(got))
	}
	if got[0].ID != pub.ID {
		t.Fatalf("unexpected project: %s", got[0].ID)
	}
}
