// Package testutil provides database fixtures for the Postgres adapter
// tests. Tests are skipped unless TEST_DATABASE_URL points at a
// disposable database.
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/shababna/engagement-api/internal/adapters/postgres"
)

// OpenMigratedPool connects to the database named by TEST_DATABASE_URL
// and applies the schema. The pool is closed when the test finishes.
func OpenMigratedPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping postgres tests")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, url)
	if err != nil {
		t.Fatalf("open pool: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := postgres.Migrate(ctx, pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return pool
}

// ResetTables truncates every table so each test starts empty.
func ResetTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := pool.Exec(ctx, `
		TRUNCATE event_registrations, volunteers, messages, events, projects, programs, profiles CASCADE
	`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

// SeedEvents inserts bare event rows so registrations can reference them.
func SeedEvents(t *testing.T, pool *pgxpool.Pool, ids ...string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for _, id := range ids {
		_, err := pool.Exec(ctx, `
			INSERT INTO events (id, title, description, location, start_date, created_at, updated_at)
			VALUES ($1, $2, 'seed', 'seed hall', $3, $3, $3)
			ON CONFLICT (id) DO NOTHING
		`, id, "Seed "+id, now)
		if err != nil {
			t.Fatalf("seed event %s: %v", id, err)
		}
	}
}
