package auth_test

import (
	"testing"
	"time"

	"github.com/carewell-health/cms-api/internal/auth"
	"github.com/carewell-health/cms-api/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	verifier := auth.NewTokenVerifier("test-secret", time.Hour)

	token, err := verifier.Issue(auth.Identity{
		UserID: "user-1",
		Name:   "Default Editor",
		Role:   models.RoleEditor,
	})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	ident, err := verifier.Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if ident.UserID != "user-1" {
		t.Errorf("Expected user-1, got %s", ident.UserID)
	}
	if ident.Role != models.RoleEditor {
		t.Errorf("Expected EDITOR role, got %s", ident.Role)
	}
	if ident.Name != "Default Editor" {
		t.Errorf("Expected name to round-trip, got %q", ident.Name)
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	issuer := auth.NewTokenVerifier("secret-a", time.Hour)
	verifier := auth.NewTokenVerifier("secret-b", time.Hour)

	token, err := issuer.Issue(auth.Identity{UserID: "user-1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Parse(token); err == nil {
		t.Error("Expected error for token signed with different secret")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	verifier := auth.NewTokenVerifier("test-secret", time.Hour)

	for _, token := range []string{"", "  ", "not-a-jwt", "a.b.c"} {
		if _, err := verifier.Parse(token); err == nil {
			t.Errorf("Expected error for token %q", token)
		}
	}
}

func TestParseRejectsUnknownRole(t *testing.T) {
	verifier := auth.NewTokenVerifier("test-secret", time.Hour)

	token, err := verifier.Issue(auth.Identity{UserID: "user-1", Role: "SUPERUSER"})
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := verifier.Parse(token); err == nil {
		t.Error("Expected error for unknown role claim")
	}
}

func TestHasRole(t *testing.T) {
	ident := &auth.Identity{UserID: "user-1", Role: models.RoleEditor}

	if !ident.HasRole(models.RoleAdmin, models.RoleEditor) {
		t.Error("Editor should match the ADMIN/EDITOR set")
	}
	if ident.HasRole(models.RoleAdmin) {
		t.Error("Editor should not match ADMIN alone")
	}

	var nilIdent *auth.Identity
	if nilIdent.HasRole(models.RoleAdmin) {
		t.Error("Nil identity should have no roles")
	}
}
