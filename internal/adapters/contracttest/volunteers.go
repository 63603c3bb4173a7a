package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/volunteerrepo"
)

// RunVolunteerRepositoryContract verifies an implementation of
// volunteerrepo.Repository.
func RunVolunteerRepositoryContract(t *testing.T, newRepo func(t *testing.T) volunteerrepo.Repository) {
	t.Helper()

	seed := func(t *testing.T, repo volunteerrepo.Repository) {
		t.Helper()
		ctx := context.Background()
		apps := []domain.Volunteer{
			{
				ID: "vol-1", ProfileID: profileIDPtr("user-1"),
				Name: "Amina Yusuf", Email: "amina@example.org", Phone: "+31 6 1234 5678",
				Status:    domain.VolunteerStatusPending,
				AppliedAt: baseTime(), UpdatedAt: baseTime(),
			},
			{
				ID:   "vol-2",
				Name: "Bilal Demir", Email: "bilal@example.org", Phone: "+31 6 8765 4321",
				ResumeURL: strPtr("https://cdn.example.org/bilal.pdf"),
				Status:    domain.VolunteerStatusApproved,
				AppliedAt: baseTime().Add(time.Minute), UpdatedAt: baseTime().Add(time.Minute),
			},
		}
		for _, v := range apps {
			if err := repo.Create(ctx, v); err != nil {
				t.Fatalf("Create %s: %v", v.ID, err)
			}
		}
	}

	t.Run("create then get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.GetByID(context.Background(), "vol-2")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Name != "Bilal Demir" || got.Status != domain.VolunteerStatusApproved {
			t.Fatalf("got %+v", got)
		}
		if got.ProfileID != nil {
			t.Fatalf("anonymous application carried profile %v", *got.ProfileID)
		}
		if got.ResumeURL == nil || *got.ResumeURL != "https://cdn.example.org/bilal.pdf" {
			t.Fatalf("resume url: %v", got.ResumeURL)
		}
	})

	t.Run("get missing returns not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(context.Background(), "nope")
		if !errors.Is(err, volunteerrepo.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("list orders newest first and filters by status", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		got, err := repo.List(ctx, volunteerrepo.Filter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 || got[0].ID != "vol-2" {
			t.Fatalf("unfiltered: %+v", got)
		}

		status := domain.VolunteerStatusPending
		got, err = repo.List(ctx, volunteerrepo.Filter{Status: &status})
		if err != nil {
			t.Fatalf("List by status: %v", err)
		}
		if len(got) != 1 || got[0].ID != "vol-1" {
			t.Fatalf("filtered: %+v", got)
		}
	})

	t.Run("list by profile skips anonymous", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.ListByProfile(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("ListByProfile: %v", err)
		}
		if len(got) != 1 || got[0].ID != "vol-1" {
			t.Fatalf("got %+v", got)
		}
	})

	t.Run("save updates status and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		v, err := repo.GetByID(ctx, "vol-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		v.Status = domain.VolunteerStatusRejected
		v.UpdatedAt = baseTime().Add(time.Hour)
		if err := repo.Save(ctx, v); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := repo.GetByID(ctx, "vol-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Status != domain.VolunteerStatusRejected {
			t.Fatalf("after Save: %s", got.Status)
		}

		ghost := domain.Volunteer{ID: "ghost", Name: "x", Email: "x@example.org", Phone: "1", Status: domain.VolunteerStatusPending, AppliedAt: baseTime(), UpdatedAt: baseTime()}
		if err := repo.Save(ctx, ghost); !errors.Is(err, volunteerrepo.ErrNotFound) {
			t.Fatalf("Save missing: got %v, want ErrNotFound", err)
		}
	})

	t.Run("delete removes and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		if err := repo.Delete(ctx, "vol-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := repo.Delete(ctx, "vol-1"); !errors.Is(err, volunteerrepo.ErrNotFound) {
			t.Fatalf("second Delete: got %v, want ErrNotFound", err)
		}
	})
}
