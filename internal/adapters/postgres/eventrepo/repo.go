package eventrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/eventrepo"
)

// Repo is a Postgres implementation of eventrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const eventColumns = `id, title, description, location, image_url, start_date, end_date, capacity, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, e domain.Event) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO events (id, title, description, location, image_url, start_date, end_date, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		string(e.ID),
		e.Title,
		e.Description,
		e.Location,
		e.ImageURL,
		e.StartDate.UTC(),
		e.EndDate,
		e.Capacity,
		e.CreatedAt.UTC(),
		e.UpdatedAt.UTC(),
	)
	return err
}

func (r *Repo) Save(ctx context.Context, e domain.Event) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE events
		SET title = $2,
		    description = $3,
		    location = $4,
		    image_url = $5,
		    start_date = $6,
		    end_date = $7,
		    capacity = $8,
		    updated_at = $9
		WHERE id = $1
	`,
		string(e.ID),
		e.Title,
		e.Description,
		e.Location,
		e.ImageURL,
		e.StartDate.UTC(),
		e.EndDate,
		e.Capacity,
		e.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return eventrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.EventID) (domain.Event, error) {
	if r.pool == nil {
		return domain.Event{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, string(id))
	return scanEvent(row)
}

func (r *Repo) List(ctx context.Context, f eventrepo.Filter) ([]domain.Event, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	where := ""
	args := []any{}
	if f.StartFrom != nil {
		args = append(args, f.StartFrom.UTC())
		where += fmt.Sprintf(" AND start_date >= $%d", len(args))
	}
	if f.StartTo != nil {
		args = append(args, f.StartTo.UTC())
		where += fmt.Sprintf(" AND start_date <= $%d", len(args))
	}
	if f.Location != nil {
		args = append(args, "%"+*f.Location+"%")
		where += fmt.Sprintf(" AND location ILIKE $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE true`+where+`
		ORDER BY start_date ASC, id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.EventID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return eventrepo.ErrNotFound
	}
	return nil
}

func scanEvent(row pgx.Row) (domain.Event, error) {
	var (
		e  domain.Event
		id string
	)
	err := row.Scan(&id, &e.Title, &e.Description, &e.Location, &e.ImageURL, &e.StartDate, &e.EndDate, &e.Capacity, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Event{}, eventrepo.ErrNotFound
		}
		return domain.Event{}, err
	}
	e.ID = domain.EventID(id)
	e.StartDate = e.StartDate.UTC()
	if e.EndDate != nil {
		v := e.EndDate.UTC()
		e.EndDate = &v
	}
	return e, nil
}
