package registrationrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/shababna/engagement-api/internal/adapters/postgres"
	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/registrationrepo"
)

// Repo is a Postgres implementation of registrationrepo.Repository.
// The event_registrations_event_profile_unique constraint backs the
// one-registration-per-pair rule under concurrent inserts.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const registrationColumns = `id, event_id, profile_id, registered_at`

func (r *Repo) Create(ctx context.Context, reg domain.Registration) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO event_registrations (id, event_id, profile_id, registered_at)
		VALUES ($1, $2, $3, $4)
	`,
		string(reg.ID),
		string(reg.EventID),
		string(reg.ProfileID),
		reg.RegisteredAt.UTC(),
	)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
			if pe.ConstraintName == "event_registrations_event_profile_unique" {
				return registrationrepo.ErrDuplicate
			}
		}
		return err
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.RegistrationID) (domain.Registration, error) {
	if r.pool == nil {
		return domain.Registration{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+registrationColumns+` FROM event_registrations WHERE id = $1`, string(id))
	return scanRegistration(row)
}

func (r *Repo) GetByEventAndProfile(ctx context.Context, eventID domain.EventID, profileID domain.ProfileID) (domain.Registration, error) {
	if r.pool == nil {
		return domain.Registration{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `
		SELECT `+registrationColumns+`
		FROM event_registrations
		WHERE event_id = $1 AND profile_id = $2
	`, string(eventID), string(profileID))
	return scanRegistration(row)
}

func (r *Repo) List(ctx context.Context, f registrationrepo.Filter) ([]domain.Registration, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	where := ""
	args := []any{}
	if f.EventID != nil {
		args = append(args, string(*f.EventID))
		where = fmt.Sprintf(" AND event_id = $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+registrationColumns+`
		FROM event_registrations
		WHERE true`+where+`
		ORDER BY registered_at DESC, id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRegistrations(rows)
}

func (r *Repo) ListByProfile(ctx context.Context, profileID domain.ProfileID) ([]domain.Registration, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+registrationColumns+`
		FROM event_registrations
		WHERE profile_id = $1
		ORDER BY registered_at DESC, id ASC
	`, string(profileID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRegistrations(rows)
}

func (r *Repo) CountByEvent(ctx context.Context, eventID domain.EventID) (int, error) {
	if r.pool == nil {
		return 0, errors.New("nil postgres pool")
	}
	var n int
	err := r.pool.QueryRow(ctx, `
		SELECT count(*) FROM event_registrations WHERE event_id = $1
	`, string(eventID)).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.RegistrationID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM event_registrations WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return registrationrepo.ErrNotFound
	}
	return nil
}

func scanRegistration(row pgx.Row) (domain.Registration, error) {
	var (
		reg       domain.Registration
		id        string
		eventID   string
		profileID string
	)
	err := row.Scan(&id, &eventID, &profileID, &reg.RegisteredAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Registration{}, registrationrepo.ErrNotFound
		}
		return domain.Registration{}, err
	}
	reg.ID = domain.RegistrationID(id)
	reg.EventID = domain.EventID(eventID)
	reg.ProfileID = domain.ProfileID(profileID)
	return reg, nil
}

func collectRegistrations(rows pgx.Rows) ([]domain.Registration, error) {
	out := make([]domain.Registration, 0)
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
