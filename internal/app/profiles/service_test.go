package profiles_test

import (
	"context"
	"errors"
	"testing"
	"time"

	memclock "github.com/shababna/engagement-api/internal/adapters/memory/clock"
	memprofilerepo "github.com/shababna/engagement-api/internal/adapters/memory/profilerepo"
	"github.com/shababna/engagement-api/internal/app/apperror"
	"github.com/shababna/engagement-api/internal/app/profiles"
	"github.com/shababna/engagement-api/internal/domain"
)

func newFixture(t *testing.T) (*profiles.Service, *memprofilerepo.Repo, *memclock.ManualClock) {
	t.Helper()
	repo := memprofilerepo.NewRepo()
	clk := memclock.NewManualClock(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	return profiles.NewService(repo, clk), repo, clk
}

func wantAppError(t *testing.T, err error, status int, message string) {
	t.Helper()
	var ae *apperror.Error
	if !errors.As(err, &ae) {
		t.Fatalf("got %v, want application error", err)
	}
	if ae.Status != status || ae.Message != message {
		t.Fatalf("got %d %q, want %d %q", ae.Status, ae.Message, status, message)
	}
}

func TestRoleFor_UnprovisionedIsUser(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture(t)

	role, err := svc.RoleFor(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("RoleFor: %v", err)
	}
	if role != domain.RoleUser {
		t.Fatalf("role = %s", role)
	}
}

func TestRoleFor_ReadsStoredRole(t *testing.T) {
	t.Parallel()
	svc, repo, clk := newFixture(t)
	ctx := context.Background()

	now := clk.Now()
	if err := repo.Create(ctx, domain.Profile{ID: "admin-1", FullName: "Amina Yusuf", Role: domain.RoleAdmin, CreatedAt: now, UpdatedAt: now}); err != nil {
		t.Fatalf("seed: %v", err)
	}

	role, err := svc.RoleFor(ctx, "admin-1")
	if err != nil {
		t.Fatalf("RoleFor: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("role = %s", role)
	}
}

func TestUpdateMyProfile_ProvisionsOnFirstWrite(t *testing.T) {
	t.Parallel()
	svc, _, clk := newFixture(t)
	ctx := context.Background()

	p, err := svc.UpdateMyProfile(ctx, "user-1", profiles.UpdateMyProfileInput{
		FullName: profiles.Some("  Amina   Yusuf "),
	})
	if err != nil {
		t.Fatalf("UpdateMyProfile: %v", err)
	}
	if p.FullName != "Amina Yusuf" {
		t.Errorf("full name = %q", p.FullName)
	}
	if p.Role != domain.RoleUser {
		t.Errorf("role = %s", p.Role)
	}
	if !p.CreatedAt.Equal(clk.Now()) {
		t.Errorf("created at = %v", p.CreatedAt)
	}

	got, err := svc.GetProfile(ctx, "user-1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if got.FullName != "Amina Yusuf" {
		t.Errorf("stored full name = %q", got.FullName)
	}
}

func TestUpdateMyProfile_ProvisioningRequiresFullName(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture(t)

	_, err := svc.UpdateMyProfile(context.Background(), "user-1", profiles.UpdateMyProfileInput{})
	wantAppError(t, err, 400, "Full name is required")

	_, err = svc.UpdateMyProfile(context.Background(), "user-1", profiles.UpdateMyProfileInput{
		FullName: profiles.Null[string](),
	})
	wantAppError(t, err, 400, "Full name is required")
}

func TestUpdateMyProfile_AvatarTriState(t *testing.T) {
	t.Parallel()
	svc, _, clk := newFixture(t)
	ctx := context.Background()

	if _, err := svc.UpdateMyProfile(ctx, "user-1", profiles.UpdateMyProfileInput{
		FullName:  profiles.Some("Amina Yusuf"),
		AvatarURL: profiles.Some("https://cdn.example.org/a.png"),
	}); err != nil {
		t.Fatalf("provision: %v", err)
	}

	clk.Advance(time.Hour)

	// Unspecified avatar leaves the stored value alone.
	p, err := svc.UpdateMyProfile(ctx, "user-1", profiles.UpdateMyProfileInput{
		FullName: profiles.Some("Amina Y. Yusuf"),
	})
	if err != nil {
		t.Fatalf("update name: %v", err)
	}
	if p.AvatarURL == nil || *p.AvatarURL != "https://cdn.example.org/a.png" {
		t.Fatalf("avatar after unspecified update: %v", p.AvatarURL)
	}
	if !p.UpdatedAt.Equal(clk.Now()) {
		t.Errorf("updated at = %v", p.UpdatedAt)
	}

	// Null avatar clears it.
	p, err = svc.UpdateMyProfile(ctx, "user-1", profiles.UpdateMyProfileInput{
		AvatarURL: profiles.Null[string](),
	})
	if err != nil {
		t.Fatalf("clear avatar: %v", err)
	}
	if p.AvatarURL != nil {
		t.Fatalf("avatar not cleared: %v", *p.AvatarURL)
	}
}

func TestAdminUpdateProfile_SetsRole(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.UpdateMyProfile(ctx, "user-1", profiles.UpdateMyProfileInput{
		FullName: profiles.Some("Amina Yusuf"),
	}); err != nil {
		t.Fatalf("provision: %v", err)
	}

	p, err := svc.AdminUpdateProfile(ctx, "user-1", profiles.AdminUpdateProfileInput{
		Role: profiles.Some(domain.RoleAdmin),
	})
	if err != nil {
		t.Fatalf("AdminUpdateProfile: %v", err)
	}
	if p.Role != domain.RoleAdmin {
		t.Fatalf("role = %s", p.Role)
	}
}

func TestAdminUpdateProfile_RejectsBadRole(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.UpdateMyProfile(ctx, "user-1", profiles.UpdateMyProfileInput{
		FullName: profiles.Some("Amina Yusuf"),
	}); err != nil {
		t.Fatalf("provision: %v", err)
	}

	_, err := svc.AdminUpdateProfile(ctx, "user-1", profiles.AdminUpdateProfileInput{
		Role: profiles.Some(domain.Role("owner")),
	})
	wantAppError(t, err, 400, "Role must be one of: admin, user")

	_, err = svc.AdminUpdateProfile(ctx, "user-1", profiles.AdminUpdateProfileInput{
		Role: profiles.Null[domain.Role](),
	})
	wantAppError(t, err, 400, "Role must be one of: admin, user")
}

func TestAdminUpdateProfile_MissingProfile(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture(t)

	_, err := svc.AdminUpdateProfile(context.Background(), "ghost", profiles.AdminUpdateProfileInput{})
	wantAppError(t, err, 404, "Profile not found")
}

func TestDeleteProfile_SelfDeletionRejected(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.UpdateMyProfile(ctx, "admin-1", profiles.UpdateMyProfileInput{
		FullName: profiles.Some("Amina Yusuf"),
	}); err != nil {
		t.Fatalf("provision: %v", err)
	}

	err := svc.DeleteProfile(ctx, "admin-1", "admin-1")
	wantAppError(t, err, 400, "You cannot delete your own profile")

	// The profile must still exist.
	if _, err := svc.GetProfile(ctx, "admin-1"); err != nil {
		t.Fatalf("profile gone after rejected delete: %v", err)
	}
}

func TestDeleteProfile_OtherProfile(t *testing.T) {
	t.Parallel()
	svc, _, _ := newFixture(t)
	ctx := context.Background()

	if _, err := svc.UpdateMyProfile(ctx, "user-2", profiles.UpdateMyProfileInput{
		FullName: profiles.Some("Bilal Demir"),
	}); err != nil {
		t.Fatalf("provision: %v", err)
	}

	if err := svc.DeleteProfile(ctx, "admin-1", "user-2"); err != nil {
		t.Fatalf("DeleteProfile: %v", err)
	}
	_, err := svc.GetProfile(ctx, "user-2")
	wantAppError(t, err, 404, "Profile not found")

	err = svc.DeleteProfile(ctx, "admin-1", "user-2")
	wantAppError(t, err, 404, "Profile not found")
}
