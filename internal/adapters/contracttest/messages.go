package contracttest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/messagerepo"
)

func profileIDPtr(id domain.ProfileID) *domain.ProfileID { return &id }

func floatPtr(f float64) *float64 { return &f }

func boolPtr(b bool) *bool { return &b }

// RunMessageRepositoryContract verifies an implementation of
// messagerepo.Repository.
func RunMessageRepositoryContract(t *testing.T, newRepo func(t *testing.T) messagerepo.Repository) {
	t.Helper()

	seed := func(t *testing.T, repo messagerepo.Repository) {
		t.Helper()
		ctx := context.Background()
		msgs := []domain.Message{
			{
				ID:        "msg-1",
				ProfileID: profileIDPtr("user-1"),
				Type:      domain.MessageTypeContact,
				Subject:   "Salaam",
				Content:   "General question",
				CreatedAt: baseTime(),
				UpdatedAt: baseTime(),
			},
			{
				ID:        "msg-2",
				Type:      domain.MessageTypeDonation,
				Subject:   "Zakat",
				Content:   "Donation note",
				Amount:    floatPtr(250),
				CreatedAt: baseTime().Add(time.Minute),
				UpdatedAt: baseTime().Add(time.Minute),
			},
			{
				ID:        "msg-3",
				ProfileID: profileIDPtr("user-1"),
				Type:      domain.MessageTypeVolunteer,
				Subject:   "Helping out",
				Content:   "I want to volunteer",
				IsRead:    true,
				CreatedAt: baseTime().Add(2 * time.Minute),
				UpdatedAt: baseTime().Add(2 * time.Minute),
			},
		}
		for _, m := range msgs {
			if err := repo.Create(ctx, m); err != nil {
				t.Fatalf("Create %s: %v", m.ID, err)
			}
		}
	}

	t.Run("create then get round-trips", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.GetByID(context.Background(), "msg-2")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if got.Type != domain.MessageTypeDonation || got.Subject != "Zakat" {
			t.Fatalf("got %+v", got)
		}
		if got.Amount == nil || *got.Amount != 250 {
			t.Fatalf("amount: got %v", got.Amount)
		}
		if got.ProfileID != nil {
			t.Fatalf("anonymous message carried profile %v", *got.ProfileID)
		}
	})

	t.Run("get missing returns not found", func(t *testing.T) {
		repo := newRepo(t)

		_, err := repo.GetByID(context.Background(), "nope")
		if !errors.Is(err, messagerepo.ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("list orders newest first", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.List(context.Background(), messagerepo.Filter{})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(got) != 3 {
			t.Fatalf("len = %d, want 3", len(got))
		}
		if got[0].ID != "msg-3" || got[2].ID != "msg-1" {
			t.Fatalf("order: %s, %s, %s", got[0].ID, got[1].ID, got[2].ID)
		}
	})

	t.Run("list filters by type and read state", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		typ := domain.MessageTypeDonation
		got, err := repo.List(ctx, messagerepo.Filter{Type: &typ})
		if err != nil {
			t.Fatalf("List by type: %v", err)
		}
		if len(got) != 1 || got[0].ID != "msg-2" {
			t.Fatalf("by type: %+v", got)
		}

		got, err = repo.List(ctx, messagerepo.Filter{IsRead: boolPtr(false)})
		if err != nil {
			t.Fatalf("List unread: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("unread len = %d, want 2", len(got))
		}
	})

	t.Run("list by profile skips anonymous", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)

		got, err := repo.ListByProfile(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("ListByProfile: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("len = %d, want 2", len(got))
		}
		if got[0].ID != "msg-3" || got[1].ID != "msg-1" {
			t.Fatalf("order: %s, %s", got[0].ID, got[1].ID)
		}
	})

	t.Run("save updates read flag", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		m, err := repo.GetByID(ctx, "msg-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		m.IsRead = true
		m.UpdatedAt = baseTime().Add(time.Hour)
		if err := repo.Save(ctx, m); err != nil {
			t.Fatalf("Save: %v", err)
		}
		got, err := repo.GetByID(ctx, "msg-1")
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if !got.IsRead {
			t.Fatal("IsRead not persisted")
		}
	})

	t.Run("delete removes and rejects missing", func(t *testing.T) {
		repo := newRepo(t)
		seed(t, repo)
		ctx := context.Background()

		if err := repo.Delete(ctx, "msg-1"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if err := repo.Delete(ctx, "msg-1"); !errors.Is(err, messagerepo.ErrNotFound) {
			t.Fatalf("second Delete: got %v, want ErrNotFound", err)
		}
	})
}
