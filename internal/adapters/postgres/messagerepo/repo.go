package messagerepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/messagerepo"
)

// Repo is a Postgres implementation of messagerepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const messageColumns = `id, profile_id, type, subject, content, amount, is_read, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, m domain.Message) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO messages (id, profile_id, type, subject, content, amount, is_read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		string(m.ID),
		profileIDArg(m.ProfileID),
		string(m.Type),
		m.Subject,
		m.Content,
		m.Amount,
		m.IsRead,
		m.CreatedAt.UTC(),
		m.UpdatedAt.UTC(),
	)
	return err
}

func (r *Repo) Save(ctx context.Context, m domain.Message) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE messages
		SET is_read = $2,
		    updated_at = $3
		WHERE id = $1
	`,
		string(m.ID),
		m.IsRead,
		m.UpdatedAt.UTC(),
	)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return messagerepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.MessageID) (domain.Message, error) {
	if r.pool == nil {
		return domain.Message{}, errors.New("nil postgres pool")
	}
	row := r.pool.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, string(id))
	return scanMessage(row)
}

func (r *Repo) List(ctx context.Context, f messagerepo.Filter) ([]domain.Message, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	where := ""
	args := []any{}
	if f.Type != nil {
		args = append(args, string(*f.Type))
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if f.IsRead != nil {
		args = append(args, *f.IsRead)
		where += fmt.Sprintf(" AND is_read = $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE true`+where+`
		ORDER BY created_at DESC, id ASC
	`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *Repo) ListByProfile(ctx context.Context, profileID domain.ProfileID) ([]domain.Message, error) {
	if r.pool == nil {
		return nil, errors.New("nil postgres pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT `+messageColumns+`
		FROM messages
		WHERE profile_id = $1
		ORDER BY created_at DESC, id ASC
	`, string(profileID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMessages(rows)
}

func (r *Repo) Delete(ctx context.Context, id domain.MessageID) error {
	if r.pool == nil {
		return errors.New("nil postgres pool")
	}
	ct, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, string(id))
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return messagerepo.ErrNotFound
	}
	return nil
}

func scanMessage(row pgx.Row) (domain.Message, error) {
	var (
		m         domain.Message
		id        string
		profileID *string
		typ       string
	)
	err := row.Scan(&id, &profileID, &typ, &m.Subject, &m.Content, &m.Amount, &m.IsRead, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Message{}, messagerepo.ErrNotFound
		}
		return domain.Message{}, err
	}
	m.ID = domain.MessageID(id)
	m.Type = domain.MessageType(typ)
	if profileID != nil {
		pid := domain.ProfileID(*profileID)
		m.ProfileID = &pid
	}
	return m, nil
}

func collectMessages(rows pgx.Rows) ([]domain.Message, error) {
	out := make([]domain.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
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
