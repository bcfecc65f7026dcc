package services

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/creativahub/creativahub-backend/internal/data/repos"
	"github.com/creativahub/creativahub-backend/internal/data/repos/testutil"
	"github.com/creativahub/creativahub-backend/internal/pkg/ctxutil"
	"github.com/creativahub/creativahub-backend/internal/platform/apierr"
)

func newAuthService(t *testing.T, tx *gorm.DB) AuthService {
	t.Helper()
	log := testutil.Logger(t)
	return NewAuthService(tx, log, repos.NewUserRepo(tx, log), "test-secret", time.Hour)
}

func TestAuthServiceLogin(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	users := newUserService(t, tx)
	auth := newAuthService(t, tx)

	created, err := users.Create(ctx, CreateUserInput{
		Email:    "login@example.com",
		Password: "correct-horse",
		FullName: "Login User",
		Role:     "teacher",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}

	u, token, err := auth.Login(ctx, "Login@Example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("unexpected user: %s", u.ID)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	authedCtx, err := auth.SetContextFromToken(ctx, token)
	if err != nil {
		t.Fatalf("set context from token: %v", err)
	}
	rd := ctxutil.GetRequestData(authedCtx)
	if rd == nil {
		t.Fatal("expected request data in context")
	}
	if rd.UserID != created.ID {
		t.Fatalf("unexpected user id in context: %s", rd.UserID)
	}
	if rd.Role != "teacher" {
		t.Fatalf("unexpected role in context: %q", rd.Role)
	}
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	users := newUserService(t, tx)
	auth := newAuthService(t, tx)

	if _, err := users.Create(ctx, CreateUserInput{
		Email:    "wrongpw@example.com",
		Password: "right",
		FullName: "User",
		Role:     "student",
	}); err != nil {
		t.Fatalf("create user: %v", err)
	}

	_, _, err := auth.Login(ctx, "wrongpw@example.com", "wrong")
	if err == nil {
		t.Fatal("expected error")
	}
	if apierr.Code(err) != "invalid_credentials" || apierr.Status(err) != 401 {
		t.Fatalf("expected 401 invalid_credentials, got %d %q", apierr.Status(err), apierr.Code(err))
	}
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	auth := newAuthService(t, tx)

	_, _, err := auth.Login(ctx, "nobody@example.com", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
	if apierr.Code(err) != "invalid_credentials" || apierr.Status(err) != 401 {
		t.Fatalf("expected 401 invalid_credentials, got %d %q", apierr.Status(err), apierr.Code(err))
	}
}

func TestAuthServiceRejectsTamperedToken(t *testing.T) {
	ctx := context.Background()
	tx := testutil.Tx(t, testutil.DB(t))
	auth := newAuthService(t, tx)

	if _, err := auth.SetContextFromToken(ctx, "not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
