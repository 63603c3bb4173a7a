package httpapi_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/shababna/engagement-api/internal/adapters/httpapi"
	memclock "github.com/shababna/engagement-api/internal/adapters/memory/clock"
	memeventrepo "github.com/shababna/engagement-api/internal/adapters/memory/eventrepo"
	memmessagerepo "github.com/shababna/engagement-api/internal/adapters/memory/messagerepo"
	memprofilerepo "github.com/shababna/engagement-api/internal/adapters/memory/profilerepo"
	memprogramrepo "github.com/shababna/engagement-api/internal/adapters/memory/programrepo"
	memprojectrepo "github.com/shababna/engagement-api/internal/adapters/memory/projectrepo"
	memregistrationrepo "github.com/shababna/engagement-api/internal/adapters/memory/registrationrepo"
	memvolunteerrepo "github.com/shababna/engagement-api/internal/adapters/memory/volunteerrepo"
	"github.com/shababna/engagement-api/internal/app/catalog"
	"github.com/shababna/engagement-api/internal/app/events"
	"github.com/shababna/engagement-api/internal/app/messages"
	"github.com/shababna/engagement-api/internal/app/profiles"
	"github.com/shababna/engagement-api/internal/app/volunteers"
	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/platform/auth/identityclient"
	profilerepoport "github.com/shababna/engagement-api/internal/ports/out/profilerepo"
)

var errStoreDown = errors.New("profile store unavailable")

// failingProfileRepo errors on every call, standing in for a lost
// database connection.
type failingProfileRepo struct{}

func (failingProfileRepo) Create(context.Context, domain.Profile) error { return errStoreDown }
func (failingProfileRepo) Save(context.Context, domain.Profile) error   { return errStoreDown }
func (failingProfileRepo) GetByID(context.Context, domain.ProfileID) (domain.Profile, error) {
	return domain.Profile{}, errStoreDown
}
func (failingProfileRepo) List(context.Context) ([]domain.Profile, error) {
	return nil, errStoreDown
}
func (failingProfileRepo) Delete(context.Context, domain.ProfileID) error { return errStoreDown }

type errorResolver struct {
	err error
}

func (e errorResolver) Resolve(context.Context, string) (domain.Identity, error) {
	return domain.Identity{}, e.err
}

// newGuardFixture wires the router with a chosen profile repo and
// identity resolver so guard failure modes can be exercised.
func newGuardFixture(t *testing.T, repo profilerepoport.Repository, resolver identityclient.Resolver) *fixture {
	t.Helper()

	clk := memclock.NewManualClock(time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC))
	srv := httpapi.NewServer(httpapi.ServerParams{
		Profiles:   profiles.NewService(repo, clk),
		Messages:   messages.NewService(memmessagerepo.NewRepo(), clk),
		Catalog:    catalog.NewService(memprogramrepo.NewRepo(), memprojectrepo.NewRepo(), clk),
		Events:     events.NewService(memeventrepo.NewRepo(), memregistrationrepo.NewRepo(), clk),
		Volunteers: volunteers.NewService(memvolunteerrepo.NewRepo(), clk),
		Identity:   resolver,
		Clock:      clk,
	})
	return &fixture{handler: srv.Routes(nil), clk: clk}
}

func TestGuards_AdminRoute(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/profiles", "", nil)
	wantErrorBody(t, rec, http.StatusUnauthorized, "Authentication required")

	rec = f.do(t, http.MethodGet, "/api/profiles", "bogus-token", nil)
	wantErrorBody(t, rec, http.StatusUnauthorized, "Authentication required")

	rec = f.do(t, http.MethodGet, "/api/profiles", userToken, nil)
	wantErrorBody(t, rec, http.StatusForbidden, "Admin access required")

	rec = f.do(t, http.MethodGet, "/api/profiles", adminToken, nil)
	wantStatus(t, rec, http.StatusOK)
}

func TestGuards_AuthedRoute(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/event-registrations/me", "", nil)
	wantErrorBody(t, rec, http.StatusUnauthorized, "Authentication required")

	rec = f.do(t, http.MethodGet, "/api/event-registrations/me", userToken, nil)
	wantStatus(t, rec, http.StatusOK)
}

func TestGuards_PublicRoute(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/api/events", "", nil)
	wantStatus(t, rec, http.StatusOK)
}

func TestRequireAuth_RoleLookupFailureIsServerError(t *testing.T) {
	t.Parallel()
	f := newGuardFixture(t, failingProfileRepo{}, stubResolver{identities: map[string]domain.Identity{
		userToken: {ID: "user-1", Email: "amina@example.org"},
	}})

	rec := f.do(t, http.MethodGet, "/api/event-registrations/me", userToken, nil)
	wantErrorBody(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestRequireAuth_IdentityTransportFailureIsServerError(t *testing.T) {
	t.Parallel()
	f := newGuardFixture(t, memprofilerepo.NewRepo(), errorResolver{err: errors.New("identity service returned 502")})

	rec := f.do(t, http.MethodGet, "/api/event-registrations/me", userToken, nil)
	wantErrorBody(t, rec, http.StatusInternalServerError, "Internal server error")
}

func TestRequireAuth_RejectedTokenIsUnauthorized(t *testing.T) {
	t.Parallel()
	f := newGuardFixture(t, memprofilerepo.NewRepo(), errorResolver{err: identityclient.ErrUnauthenticated})

	rec := f.do(t, http.MethodGet, "/api/event-registrations/me", userToken, nil)
	wantErrorBody(t, rec, http.StatusUnauthorized, "Authentication required")
}

func TestGuards_OptionalAuthIgnoresBadToken(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/volunteers", "bogus-token", map[string]any{
		"name":  "Amina Yusuf",
		"email": "amina@example.org",
		"phone": "+31 6 1234 5678",
	})
	wantStatus(t, rec, http.StatusCreated)

	var body struct {
		ProfileID *string `json:"profile_id"`
	}
	decodeInto(t, rec, &body)
	if body.ProfileID != nil {
		t.Fatalf("profile_id = %q, want null", *body.ProfileID)
	}
}
