package user

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/creativahub/creativahub-backend/internal/data/repos/testutil"
	types "github.com/creativahub/creativahub-backend/internal/domain"
)

func TestUserRepoCreateAndGet(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(tx, testutil.Logger(t))

	u := &types.User{
		ID:       uuid.New(),
		Email:    "repo.create@example.com",
		Password: "hash",
		FullName: "Repo Create",
		Role:     types.RoleStudent,
		IsActive: true,
	}
	if _, err := repo.Create(ctx, tx, []*types.User{u}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got == nil || got.Email != u.Email {
		t.Fatalf("unexpected user: %+v", got)
	}

	byEmail, err := repo.GetByEmail(ctx, tx, u.Email)
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail == nil || byEmail.ID != u.ID {
		t.Fatalf("unexpected user by email: %+v", byEmail)
	}
}

func TestUserRepoGetMissingReturnsNil(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(tx, testutil.Logger(t))

	got, err := repo.GetByID(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing user, got %+v", got)
	}
}

func TestUserRepoEmailExists(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(tx, testutil.Logger(t))

	testutil.SeedUser(t, ctx, tx, "exists@example.com", types.RoleStudent)

	exists, err := repo.EmailExists(ctx, tx, "exists@example.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if !exists {
		t.Fatal("expected email to exist")
	}

	exists, err = repo.EmailExists(ctx, tx, "other@example.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if exists {
		t.Fatal("expected email to not exist")
	}
}

func TestUserRepoUpdateFields(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	repo := NewUserRepo(tx, testutil.Logger(t))

	u := testutil.SeedUser(t, ctx, tx, "update@example.com", types.RoleTeacher)

	fields := map[string]any{
		"full_name": "Renamed",
		"is_active": false,
	}
	if err := repo.UpdateFields(ctx, tx, u.ID, fields); err != nil {
		t.Fatalf("update fields: %v", err)
	}

	got, err := repo.GetByID(ctx, tx, u.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.FullName != "Renamed" {
		t.Fatalf("full_name not updated: %q", got.FullName)
	}
	if got.IsActive {
		t.Fatal("is_active not updated")
	}
	if got.Role != types.RoleTeacher {
		t.Fatalf("role changed unexpectedly: %q", got.Role)
	}
}
