package projectrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/projectrepo"
)

// Repo is a Postgres implementation of projectrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const projectColumns = `id, title, description, status, start_date, end_date, image_url, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, p domain.Project) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO projects (id, title, description, status, start_date, end_date, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		string(p.ID),
		p.Title,
		p.Description,
		string(p.Status),
		p.StartDate,
		p.EndDate,
		p.ImageURL,
		p.CreatedAt.UTC(),
		p.UpdatedAt.UTC(),
	)
	return err
}

func (r *Repo) Save(ctx context.Context, p domain.Project) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE projects
		SET title = $2,
		    description = $3,
		    status = $4,
		    start_date = $5,
		    end_date = $6,
		    image_url = $7,
		    updated_at = $8
		WHERE id = $1
	`,
		string(p.ID),
		p.Title,
		p.Description,
		string(p.Status),
		p.StartDate,
		p.EndDate,
		p.ImageURL,
		p.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return projectrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ProjectID) (domain.Project, error) {
	if r.pool == nil {
		return domain.Project{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, string(id))
	return scanProject(row)
}

func (r *Repo) List(ctx context.Context, f projectrepo.Filter) ([]domain.Project, error) {
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
		SELECT `+projectColumns+`
		FROM projects
		WHERE true`+where+`
		ORDER BY created_at DESC, id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.ProjectID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return projectrepo.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (domain.Project, error) {
	var (
		p      domain.Project
		id     string
		status string
	)
	err := row.Scan(&id, &p.Title, &p.Description, &status, &p.StartDate, &p.EndDate, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, projectrepo.ErrNotFound
		}
		return domain.Project{}, err
	}
	p.ID = domain.ProjectID(id)
	p.Status = domain.ProjectStatus(status)
	p.StartDate = asUTCDate(p.StartDate)
	p.EndDate = asUTCDate(p.EndDate)
	return p, nil
}

// asUTCDate pins date-only columns to midnight UTC regardless of the
// session time zone pgx scanned them in.
func asUTCDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	v := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &v
}
