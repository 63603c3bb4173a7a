package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/eventrepo"
	"github.com/shababna/engagement-api/internal/ports/out/registrationrepo"
)

func intPtr(n int) *int { return &n }

func timePtr(t time.Time) *time.Time { return &t }

// RunEventRepositoryContract verifies an implementation of
// eventrepo.Repository.
func RunEventRepositoryContract(t *testing.T, newRepo func(t *testing.T) eventrepo.Repository) {
	t.Helper()

	seed := func(t *testing.T, repo eventrepo.Repository) {
		t.Helper()
		ctx := context.Background()
		events := []domain.Event{
			{
				ID: "evt-1", Title: "Eid Picnic", Description: "Family picnic", Location: "Riverside Park",
				StartDate: time.Date(2025, time.June, 10, 12, 0, 0, 0, time.UTC),
				Capacity:  intPtr(100),
				CreatedAt: baseTime(), UpdatedAt: baseTime(),
			},
			{
				ID: "evt-2", Title: "Career Night", Description: "Mentorship evening", Location: "Community Center Hall B",
				StartDate: time.Date(2025, time.April, 2, 18, 0, 0, 0, time.UTC),
				EndDate:   timePtr(time.Date(2025, time.April, 2, 21, 0, 0, 0, time.UTC)),
				CreatedAt: baseTime().Add(time.Minute), UpdatedAt: baseTime().Add(time.Minute),
			},
			{
				ID: "evt-3", Title: "Charity Run", Description: "5k fundraiser", Location: "riverside trail",
				StartDate: time.Date(2025, time.September, 20, 8, 0, 0, 0, time.UTC),
				CreatedAt: baseTime().Add(2 * time.Minute), UpdatedAt: baseTime().Add(2 * time.Minute),
			},
		}
		for _, e := range events {
			if err := repo.Create(ctx, e); err != nil {
				t.Fatalf("Create %s: %v", e.ID, err)
			}
		}
	}

	t.Run("create then get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.GetByID(context.Background(), "evt-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Title != "Eid Picnic" || got.Location != "Riverside Park" {
			t.Fatalf("got %+v", got)
		}
		if got.Capacity == nil || *got.Capacity != 100 {
			t.Fatalf("capacity: %v", got.Capacity)
		}
	})

	t.Run("get missing returns not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(context.Background(), "nope")
		if !errors.Is(err, eventrepo.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("list orders by start date ascending", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.List(context.Background(), eventrepo.Filter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].ID != "evt-2" || got[1].ID != "evt-1" || got[2].ID != "evt-3" {
			t.Fatalf("order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("list filters by start window", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		got, err := repo.List(ctx, eventrepo.Filter{StartFrom: &from})
		if err != nil {
			t.Fatalf("List from: %v", err)
		}
		if len(got) != 2 || got[0].ID != "evt-1" {
			t.Fatalf("from filter: %+v", got)
		}

		to := time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC)
		got, err = repo.List(ctx, eventrepo.Filter{StartFrom: &from, StartTo: &to})
		if err != nil {
			t.Fatalf("List window: %v", err)
		}
		if len(got) != 1 || got[0].ID != "evt-1" {
			t.Fatalf("window filter: %+v", got)
		}
	})

	t.Run("list filters by location case-insensitively", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.List(context.Background(), eventrepo.Filter{Location: strPtr("RIVERSIDE")})
		if err != nil {
			t.Fatalf("List by location: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].ID != "evt-1" || got[1].ID != "evt-3" {
			t.Fatalf("order: %s, %s", got[0].ID, got[1].ID)
		}
	})

	t.Run("save updates and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		e, err := repo.GetByID(ctx, "evt-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		e.Capacity = intPtr(150)
		e.UpdatedAt = baseTime().Add(time.Hour)
		if err := repo.Save(ctx, e); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := repo.GetByID(ctx, "evt-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Capacity == nil || *got.Capacity != 150 {
			t.Fatalf("after Save: %v", got.Capacity)
		}

		ghost := domain.Event{ID: "ghost", Title: "x", Description: "x", Location: "x", StartDate: baseTime(), CreatedAt: baseTime(), UpdatedAt: baseTime()}
		if err := repo.Save(ctx, ghost); !errors.Is(err, eventrepo.ErrNotFound) {
			t.Fatalf("Save missing: got %v, want ErrNotFound", err)
		}
	})

	t.Run("delete removes and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		if err := repo.Delete(ctx, "evt-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := repo.Delete(ctx, "evt-1"); !errors.Is(err, eventrepo.ErrNotFound) {
			t.Fatalf("second Delete: got %v, want ErrNotFound", err)
		}
	})
}

// RunRegistrationRepositoryContract verifies an implementation of
// registrationrepo.Repository. Factories must accept the event ids
// evt-1/evt-2 used by the suite. Profile ids need no backing rows:
// profiles are provisioned lazily, so stores must accept registrations
// for identities that have no profile yet.
func RunRegistrationRepositoryContract(t *testing.T, newRepo func(t *testing.T) registrationrepo.Repository) {
	t.Helper()

	seed := func(t *testing.T, repo registrationrepo.Repository) {
		t.Helper()
		ctx := context.Background()
		regs := []domain.Registration{
			{ID: "reg-1", EventID: "evt-1", ProfileID: "user-1", RegisteredAt: baseTime()},
			{ID: "reg-2", EventID: "evt-1", ProfileID: "user-2", RegisteredAt: baseTime().Add(time.Minute)},
			{ID: "reg-3", EventID: "evt-2", ProfileID: "user-1", RegisteredAt: baseTime().Add(2 * time.Minute)},
		}
		for _, r := range regs {
			if err := repo.Create(ctx, r); err != nil {
				t.Fatalf("Create %s: %v", r.ID, err)
			}
		}
	}

	t.Run("create accepts identities without profile rows", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		r := domain.Registration{ID: "reg-new", EventID: "evt-1", ProfileID: "user-unprovisioned", RegisteredAt: baseTime()}
		if err := repo.Create(ctx, r); err != nil {
			t.Fatalf("Create: %v", err)
		}
		got, err := repo.GetByID(ctx, "reg-new")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.ProfileID != "user-unprovisioned" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("create rejects duplicate event and profile pair", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		dup := domain.Registration{ID: "reg-4", EventID: "evt-1", ProfileID: "user-1", RegisteredAt: baseTime().Add(time.Hour)}
		if err := repo.Create(context.Background(), dup); !errors.Is(err, registrationrepo.ErrDuplicate) {
			t.Fatalf("got %v, want ErrDuplicate", err)
		}
	})

	t.Run("get by id and by pair", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		got, err := repo.GetByID(ctx, "reg-2")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.EventID != "evt-1" || got.ProfileID != "user-2" {
			t.Fatalf("got %+v", got)
		}

		got, err = repo.GetByEventAndProfile(ctx, "evt-2", "user-1")
		if err != nil {
			t.Fatalf("GetByEventAndProfile: %v", err)
		}
		if got.ID != "reg-3" {
			t.Fatalf("got %+v", got)
		}

		if _, err := repo.GetByEventAndProfile(ctx, "evt-2", "user-2"); !errors.Is(err, registrationrepo.ErrNotFound) {
			t.Fatalf("missing pair: got %v, want ErrNotFound", err)
		}
	})

	t.Run("list orders newest first and filters by event", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		got, err := repo.List(ctx, registrationrepo.Filter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 || got[0].ID != "reg-3" {
			t.Fatalf("unfiltered: %+v", got)
		}

		evt := domain.EventID("evt-1")
		got, err = repo.List(ctx, registrationrepo.Filter{EventID: &evt})
		if err != nil {
			t.Fatalf("List by event: %v", err)
		}
		if len(got) != 2 || got[0].ID != "reg-2" {
			t.Fatalf("filtered: %+v", got)
		}
	})

	t.Run("list by profile", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.ListByProfile(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("ListByProfile: %v", err)
		}
		if len(got) != 2 || got[0].ID != "reg-3" || got[1].ID != "reg-1" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("count by event", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		n, err := repo.CountByEvent(ctx, "evt-1")
		if err != nil {
			t.Fatalf("CountByEvent: %v", err)
		}
		if n != 2 {
			t.Fatalf("count = %d, want 2", n)
		}

		n, err = repo.CountByEvent(ctx, "evt-none")
		if err != nil {
			t.Fatalf("CountByEvent empty: %v", err)
		}
		if n != 0 {
			t.Fatalf("count = %d, want 0", n)
		}
	})

	t.Run("delete frees the pair for re-registration", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		if err := repo.Delete(ctx, "reg-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := repo.Delete(ctx, "reg-1"); !errors.Is(err, registrationrepo.ErrNotFound) {
			t.Fatalf("second Delete: got %v, want ErrNotFound", err)
		}

		again := domain.Registration{ID: "reg-5", EventID: "evt-1", ProfileID: "user-1", RegisteredAt: baseTime().Add(time.Hour)}
		if err := repo.Create(ctx, again); err != nil {
			t.Fatalf("re-Create after Delete: %v", err)
		}
	})
}
