package messagerepo

import (
	"context"
	"sort"
	"sync"

	"github.com/shababna/engagement-api/internal/domain"
	"github.com/shababna/engagement-api/internal/ports/out/messagerepo"
)

// Repo is an in-memory implementation of messagerepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.MessageID]domain.Message
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.MessageID]domain.Message)}
}

func (r *Repo) Create(ctx context.Context, m domain.Message) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[m.ID]; ok {
		return messagerepo.ErrAlreadyExists
	}
	r.byID[m.ID] = cloneMessage(m)
	return nil
}

func (r *Repo) Save(ctx context.Context, m domain.Message) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[m.ID]; !ok {
		return messagerepo.ErrNotFound
	}
	r.byID[m.ID] = cloneMessage(m)
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.MessageID) (domain.Message, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byID[id]
	if !ok {
		return domain.Message{}, messagerepo.ErrNotFound
	}
	return cloneMessage(m), nil
}

func (r *Repo) List(ctx context.Context, f messagerepo.Filter) ([]domain.Message, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Message, 0)
	for _, m := range r.byID {
		if f.Type != nil && m.Type != *f.Type {
			continue
		}
		if f.IsRead != nil && m.IsRead != *f.IsRead {
			continue
		}
		out = append(out, cloneMessage(m))
	}
	sortMessagesNewestFirst(out)
	return out, nil
}

func (r *Repo) ListByProfile(ctx context.Context, profileID domain.ProfileID) ([]domain.Message, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Message, 0)
	for _, m := range r.byID {
		if m.ProfileID == nil || *m.ProfileID != profileID {
			continue
		}
		out = append(out, cloneMessage(m))
	}
	sortMessagesNewestFirst(out)
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.MessageID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return messagerepo.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func cloneMessage(m domain.Message) domain.Message {
	out := m
	if m.ProfileID != nil {
		v := *m.ProfileID
		out.ProfileID = &v
	}
	if m.Amount != nil {
		v := *m.Amount
		out.Amount = &v
	}
	return out
}

func sortMessagesNewestFirst(ms []domain.Message) {
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].CreatedAt.Equal(ms[j].CreatedAt) {
			return ms[i].ID < ms[j].ID
		}
		return ms[i].CreatedAt.After(ms[j].CreatedAt)
	})
}
