package services

import (
	"testing"

	"github.com/creativahub/creativahub-backend/internal/data/repos/testutil"
)

func TestComputeInitials(t *testing.T) {
	cases := []struct {
		name     string
		fullName string
		want     string
	}{
		{"first and last", "Maria Lopez", "ML"},
		{"middle names skipped", "Ana Sofia Perez Ruiz", "AR"},
		{"single name", "Cher", "C"},
		{"lowercase input", "jo an", "JA"},
		{"empty", "", "?"},
		{"whitespace only", "   ", "?"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := computeInitials(tc.fullName); got != tc.want {
				t.Fatalf("computeInitials(%q) = %q, want %q", tc.fullName, got, tc.want)
			}
		})
	}
}

func TestNewAvatarServiceRequiresFont(t *testing.T) {
	if _, err := NewAvatarService(testutil.Logger(t), t.TempDir(), ""); err == nil {
		t.Fatal("expected error for empty font path")
	}
	if _, err := NewAvatarService(testutil.Logger(t), t.TempDir(), "/nonexistent/font.ttf"); err == nil {
		t.Fatal("expected error for missing font file")
	}
}
