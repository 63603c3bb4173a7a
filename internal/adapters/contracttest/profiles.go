// Package contracttest holds behavioral suites shared by every adapter
// implementing the repository ports. Adapter packages call these from
// their own tests with a factory producing a fresh, empty repository.
package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/profilerepo"
)

func baseTime() time.Time {
	return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

// RunProfileRepositoryContract verifies an implementation of
// profilerepo.Repository.
func RunProfileRepositoryContract(t *testing.T, newRepo func(t *testing.T) profilerepo.Repository) {
	t.Helper()

	t.Run("create then get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		want := domain.Profile{
			ID:        "user-1",
			FullName:  "Amina Yusuf",
			AvatarURL: strPtr("https://cdn.example.org/a.png"),
			Role:      domain.RoleUser,
			CreatedAt: baseTime(),
			UpdatedAt: baseTime(),
		}
		if err := repo.Create(ctx, want); err != nil {
			t.Fatalf("Create: %v", err)
		}

		got, err := repo.GetByID(ctx, want.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.FullName != want.FullName || got.Role != want.Role {
			t.Fatalf("got %+v, want %+v", got, want)
		}
		if got.AvatarURL == nil || *got.AvatarURL != *want.AvatarURL {
			t.Fatalf("avatar url: got %v", got.AvatarURL)
		}
	})

	t.Run("create duplicate id fails", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p := domain.Profile{ID: "user-1", FullName: "Amina Yusuf", Role: domain.RoleUser, CreatedAt: baseTime(), UpdatedAt: baseTime()}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := repo.Create(ctx, p); !errors.Is(err, profilerepo.ErrAlreadyExists) {
			t.Fatalf("second Create: got %v, want ErrAlreadyExists", err)
		}
	})

	t.Run("get missing returns not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(context.Background(), "nope")
		if !errors.Is(err, profilerepo.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("save updates and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p := domain.Profile{ID: "user-1", FullName: "Amina Yusuf", Role: domain.RoleUser, CreatedAt: baseTime(), UpdatedAt: baseTime()}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}

		p.FullName = "Amina Y. Yusuf"
		p.Role = domain.RoleAdmin
		p.UpdatedAt = baseTime().Add(time.Hour)
		if err := repo.Save(ctx, p); err != nil {
			t.Fatalf("Save: %v", err)
		}

		got, err := repo.GetByID(ctx, p.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.FullName != "Amina Y. Yusuf" || got.Role != domain.RoleAdmin {
			t.Fatalf("after Save: %+v", got)
		}

		missing := domain.Profile{ID: "ghost", FullName: "Ghost", Role: domain.RoleUser, CreatedAt: baseTime(), UpdatedAt: baseTime()}
		if err := repo.Save(ctx, missing); !errors.Is(err, profilerepo.ErrNotFound) {
			t.Fatalf("Save missing: got %v, want ErrNotFound", err)
		}
	})

	t.Run("list orders newest first", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i, id := range []domain.ProfileID{"user-a", "user-b", "user-c"} {
			p := domain.Profile{
				ID:        id,
				FullName:  "Profile " + string(id),
				Role:      domain.RoleUser,
				CreatedAt: baseTime().Add(time.Duration(i) * time.Minute),
				UpdatedAt: baseTime().Add(time.Duration(i) * time.Minute),
			}
			if err := repo.Create(ctx, p); err != nil {
				t.Fatalf("Create %s: %v", id, err)
			}
		}

		got, err := repo.List(ctx)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].ID != "user-c" || got[2].ID != "user-a" {
			t.Fatalf("order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("delete removes and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		p := domain.Profile{ID: "user-1", FullName: "Amina Yusuf", Role: domain.RoleUser, CreatedAt: baseTime(), UpdatedAt: baseTime()}
		if err := repo.Create(ctx, p); err != nil {
			t.Fatalf("Create: %v", err)
		}
		if err := repo.Delete(ctx, p.ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := repo.GetByID(ctx, p.ID); !errors.Is(err, profilerepo.ErrNotFound) {
			t.Fatalf("after Delete: got %v, want ErrNotFound", err)
		}
		if err := repo.Delete(ctx, p.ID); !errors.Is(err, profilerepo.ErrNotFound) {
			t.Fatalf("second Delete: got %v, want ErrNotFound", err)
		}
	})
}
