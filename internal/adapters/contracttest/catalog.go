package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/programrepo"
	"github.com/shababna/engagement-api/internal/ports/out/projectrepo"
)

// RunProgramRepositoryContract verifies an implementation of
// programrepo.Repository.
func RunProgramRepositoryContract(t *testing.T, newRepo func(t *testing.T) programrepo.Repository) {
	t.Helper()

	seed := func(t *testing.T, repo programrepo.Repository) {
		t.Helper()
		ctx := context.Background()
		programs := []domain.Program{
			{ID: "prg-1", Title: "Youth Circles", Description: "Weekly study circles", Category: "education", CreatedAt: baseTime(), UpdatedAt: baseTime()},
			{ID: "prg-2", Title: "Food Drive", Description: "Monthly food distribution", Category: "community", ImageURL: strPtr("https://cdn.example.org/food.png"), CreatedAt: baseTime().Add(time.Minute), UpdatedAt: baseTime().Add(time.Minute)},
		}
		for _, p := range programs {
			if err := repo.Create(ctx, p); err != nil {
				t.Fatalf("Create %s: %v", p.ID, err)
			}
		}
	}

	t.Run("create then get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.GetByID(context.Background(), "prg-2")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Title != "Food Drive" || got.Category != "community" {
			t.Fatalf("got %+v", got)
		}
		if got.ImageURL == nil || *got.ImageURL != "https://cdn.example.org/food.png" {
			t.Fatalf("image url: got %v", got.ImageURL)
		}
	})

	t.Run("get missing returns not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(context.Background(), "nope")
		if !errors.Is(err, programrepo.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("list orders newest first and filters by category", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		got, err := repo.List(ctx, programrepo.Filter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 || got[0].ID != "prg-2" {
			t.Fatalf("unfiltered: %+v", got)
		}

		got, err = repo.List(ctx, programrepo.Filter{Category: strPtr("education")})
		if err != nil {
			t.Fatalf("List by category: %v", err)
		}
		if len(got) != 1 || got[0].ID != "prg-1" {
			t.Fatalf("filtered: %+v", got)
		}
	})

	t.Run("save updates and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		p, err := repo.GetByID(ctx, "prg-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		p.Title = "Youth Halaqas"
		p.UpdatedAt = baseTime().Add(time.Hour)
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := repo.GetByID(ctx, "prg-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Title != "Youth Halaqas" {
			t.Fatalf("after Save: %+v", got)
		}

		ghost := domain.Program{ID: "ghost", Title: "x", Description: "x", Category: "x", CreatedAt: baseTime(), UpdatedAt: baseTime()}
		if err := repo.Save(ctx, ghost); !errors.Is(err, programrepo.ErrNotFound) {
			t.Fatalf("Save missing: got %v, want ErrNotFound", err)
		}
	})

	t.Run("delete removes and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		if err := repo.Delete(ctx, "prg-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := repo.Delete(ctx, "prg-1"); !errors.Is(err, programrepo.ErrNotFound) {
			t.Fatalf("second Delete: got %v, want ErrNotFound", err)
		}
	})
}

// RunProjectRepositoryContract verifies an implementation of
// projectrepo.Repository.
func RunProjectRepositoryContract(t *testing.T, newRepo func(t *testing.T) projectrepo.Repository) {
	t.Helper()

	datePtr := func(y int, m time.Month, d int) *time.Time {
		v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		return &v
	}

	seed := func(t *testing.T, repo projectrepo.Repository) {
		t.Helper()
		ctx := context.Background()
		projects := []domain.Project{
			{ID: "prj-1", Title: "Well Construction", Description: "Clean water wells", Status: domain.ProjectStatusActive, StartDate: datePtr(2025, time.January, 15), CreatedAt: baseTime(), UpdatedAt: baseTime()},
			{ID: "prj-2", Title: "School Renovation", Description: "Repainting classrooms", Status: domain.ProjectStatusCompleted, StartDate: datePtr(2024, time.June, 1), EndDate: datePtr(2024, time.September, 30), CreatedAt: baseTime().Add(time.Minute), UpdatedAt: baseTime().Add(time.Minute)},
		}
		for _, p := range projects {
			if err := repo.Create(ctx, p); err != nil {
				t.Fatalf("Create %s: %v", p.ID, err)
			}
		}
	}

	t.Run("create then get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.GetByID(context.Background(), "prj-2")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Status != domain.ProjectStatusCompleted {
			t.Fatalf("status: %s", got.Status)
		}
		if got.StartDate == nil || !got.StartDate.Equal(time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("start date: %v", got.StartDate)
		}
		if got.EndDate == nil || !got.EndDate.Equal(time.Date(2024, time.September, 30, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("end date: %v", got.EndDate)
		}
	})

	t.Run("get missing returns not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(context.Background(), "nope")
		if !errors.Is(err, projectrepo.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("list orders newest first and filters by status", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		got, err := repo.List(ctx, projectrepo.Filter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 2 || got[0].ID != "prj-2" {
			t.Fatalf("unfiltered: %+v", got)
		}

		status := domain.ProjectStatusActive
		got, err = repo.List(ctx, projectrepo.Filter{Status: &status})
		if err != nil {
			t.Fatalf("List by status: %v", err)
		}
		if len(got) != 1 || got[0].ID != "prj-1" {
			t.Fatalf("filtered: %+v", got)
		}
	})

	t.Run("save updates and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		p, err := repo.GetByID(ctx, "prj-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		p.Status = domain.ProjectStatusCompleted
		p.EndDate = datePtr(2025, time.August, 1)
		p.UpdatedAt = baseTime().Add(time.Hour)
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := repo.GetByID(ctx, "prj-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Status != domain.ProjectStatusCompleted || got.EndDate == nil {
			t.Fatalf("after Save: %+v", got)
		}

		ghost := domain.Project{ID: "ghost", Title: "x", Description: "x", Status: domain.ProjectStatusPlanned, CreatedAt: baseTime(), UpdatedAt: baseTime()}
		if err := repo.Save(ctx, ghost); !errors.Is(err, projectrepo.ErrNotFound) {
			t.Fatalf("Save missing: got %v, want ErrNotFound", err)
		}
	})

	t.Run("delete removes and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		if err := repo.Delete(ctx, "prj-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := repo.Delete(ctx, "prj-1"); !errors.Is(err, projectrepo.ErrNotFound) {
			t.Fatalf("second Delete: got %v, want ErrNotFound", err)
		}
	})
}
