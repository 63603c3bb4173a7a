package programrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/programrepo"
)

// Repo is a Postgres implementation of programrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const programColumns = `id, title, description, category, image_url, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, p domain.Program) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO programs (id, title, description, category, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		string(p.ID),
		p.Title,
		p.Description,
		p.Category,
		p.ImageURL,
		p.CreatedAt.UTC(),
		p.UpdatedAt.UTC(),
	)
	return err
}

func (r *Repo) Save(ctx context.Context, p domain.Program) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE programs
		SET title = $2,
		    description = $3,
		    category = $4,
		    image_url = $5,
		    updated_at = $6
		WHERE id = $1
	`,
		string(p.ID),
		p.Title,
		p.Description,
		p.Category,
		p.ImageURL,
		p.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return programrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.ProgramID) (domain.Program, error) {
	if r.pool == nil {
		return domain.Program{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+programColumns+` FROM programs WHERE id = $1`, string(id))
	return scanProgram(row)
}

func (r *Repo) List(ctx context.Context, f programrepo.Filter) ([]domain.Program, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	where := ""
	args := []any{}
	if f.Category != nil {
		args = append(args, *f.Category)
		where = " AND category = $1"
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+programColumns+`
		FROM programs
		WHERE true`+where+`
		ORDER BY created_at DESC, id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Program, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
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

func (r *Repo) Delete(ctx context.Context, id domain.ProgramID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return programrepo.ErrNotFound
	}
	return nil
}

func scanProgram(row pgx.Row) (domain.Program, error) {
	var (
		p  domain.Program
		id string
	)
	err := row.Scan(&id, &p.Title, &p.Description, &p.Category, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Program{}, programrepo.ErrNotFound
		}
		return domain.Program{}, err
	}
	p.ID = domain.ProgramID(id)
	return p, nil
}
