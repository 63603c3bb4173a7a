package volunteerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/volunteerrepo"
)

// Repo is a Postgres implementation of volunteerrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const volunteerColumns = `id, profile_id, name, email, phone, resume_url, status, applied_at, updated_at`

func (r *Repo) Create(ctx context.Context, v domain.Volunteer) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO volunteers (id, profile_id, name, email, phone, resume_url, status, applied_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		string(v.ID),
		profileIDArg(v.ProfileID),
		v.Name,
		v.Email,
		v.Phone,
		v.ResumeURL,
		string(v.Status),
		v.AppliedAt.UTC(),
		v.UpdatedAt.UTC(),
	)
	return err
}

func (r *Repo) Save(ctx context.Context, v domain.Volunteer) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE volunteers
		SET status = $2,
		    updated_at = $3
		WHERE id = $1
	`,
		string(v.ID),
		string(v.Status),
		v.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return volunteerrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.VolunteerID) (domain.Volunteer, error) {
	if r.pool == nil {
		return domain.Volunteer{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+volunteerColumns+` FROM volunteers WHERE id = $1`, string(id))
	return scanVolunteer(row)
}

func (r *Repo) List(ctx context.Context, f volunteerrepo.Filter) ([]domain.Volunteer, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	where := ""
	args := []any{}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		where = " AND status = $1"
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+volunteerColumns+`
		FROM volunteers
		WHERE true`+where+`
		ORDER BY applied_at DESC, id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVolunteers(rows)
}

func (r *Repo) ListByProfile(ctx context.Context, profileID domain.ProfileID) ([]domain.Volunteer, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+volunteerColumns+`
		FROM volunteers
		WHERE profile_id = $1
		ORDER BY applied_at DESC, id ASC
	`, string(profileID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectVolunteers(rows)
}

func (r *Repo) Delete(ctx context.Context, id domain.VolunteerID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM volunteers WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return volunteerrepo.ErrNotFound
	}
	return nil
}

func scanVolunteer(row pgx.Row) (domain.Volunteer, error) {
	var (
		v         domain.Volunteer
		id        string
		profileID *string
		status    string
	)
	err := row.Scan(&id, &profileID, &v.Name, &v.Email, &v.Phone, &v.ResumeURL, &status, &v.AppliedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Volunteer{}, volunteerrepo.ErrNotFound
		}
		return domain.Volunteer{}, err
	}
	v.ID = domain.VolunteerID(id)
	v.Status = domain.VolunteerStatus(status)
	if profileID != nil {
		pid := domain.ProfileID(*profileID)
		v.ProfileID = &pid
	}
	return v, nil
}

func collectVolunteers(rows pgx.Rows) ([]domain.Volunteer, error) {
	out := make([]domain.Volunteer, 0)
	for rows.Next() {
		v, err := scanVolunteer(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func profileIDArg(id *domain.ProfileID) *string {
	if id == nil {
		return nil
	}
	s := string(*id)
	return &s
}
