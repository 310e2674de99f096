package services_test

import (
	"errors"
	"testing"

	"threadline/internal/repos"
	"threadline/internal/services"
)

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	return &services.AuthService{Users: repos.NewUserRepo(newTestDB(t))}
}

func TestLoginBindsSession(t *testing.T) {
	auth := newAuthService(t)

	u, err := auth.Login("sid-1", "jane@threadline.test", "Passw0rd!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.Email != "jane@threadline.test" {
		t.Fatalf("logged in as %q", u.Email)
	}

	cur, err := auth.CurrentUser("sid-1")
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if cur.ID != u.ID {
		t.Fatalf("session bound to %q, want %q", cur.ID, u.ID)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	auth := newAuthService(t)

	if _, err := auth.Login("sid-1", "jane@threadline.test", "wrong-pass"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("wrong password: want ErrBadCreds, got %v", err)
	}
	if _, err := auth.Login("sid-1", "nobody@threadline.test", "Passw0rd!"); !errors.Is(err, services.ErrBadCreds) {
		t.Fatalf("unknown email: want ErrBadCreds, got %v", err)
	}
}

func TestRegisterDerivesNameAndSignsIn(t *testing.T) {
	auth := newAuthService(t)

	u, err := auth.Register("sid-2", "sam@threadline.test", "S0mething!")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if u.Name != "sam" {
		t.Fatalf("name = %q, want email local part %q", u.Name, "sam")
	}
	if u.Role != "USER" {
		t.Fatalf("role = %q, want USER", u.Role)
	}

	cur, err := auth.CurrentUser("sid-2")
	if err != nil || cur.ID != u.ID {
		t.Fatalf("register should sign in: %v (%+v)", err, cur)
	}
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	auth := newAuthService(t)
	if _, err := auth.Register("sid-3", "JANE@threadline.test", "S0mething!"); !errors.Is(err, services.ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken, got %v", err)
	}
}

func TestLogoutUnbindsSession(t *testing.T) {
	auth := newAuthService(t)
	if _, err := auth.Login("sid-4", "dev@threadline.test", "Passw0rd!"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := auth.Logout("sid-4"); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := auth.CurrentUser("sid-4"); err == nil {
		t.Fatal("session should be anonymous after logout")
	}
}
