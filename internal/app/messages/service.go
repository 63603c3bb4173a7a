package messages

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/shababna/engagement-api/internal/app/apperror"
	"github.com/shababna/engagement-api/internal/domain"
	clockport "github.com/shababna/engagement-api/internal/ports/out/clock"
	"github.com/shababna/engagement-api/internal/ports/out/messagerepo"
)

type Service struct {
	repo messagerepo.Repository
	clk  clockport.Clock

	newMessageID func() domain.MessageID
}

func NewService(repo messagerepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo: repo,
		clk:  clk,
		newMessageID: func() domain.MessageID {
			return domain.MessageID(uuid.NewString())
		},
	}
}

// SetNewMessageIDForTest overrides message ID generation for deterministic
// tests. It should not be used in production code.
func (s *Service) SetNewMessageIDForTest(fn func() domain.MessageID) {
	if fn != nil {
		s.newMessageID = fn
	}
}

// Create validates and persists a submission. sender is nil for anonymous
// callers.
func (s *Service) Create(ctx context.Context, sender *domain.ProfileID, in CreateMessageInput) (domain.Message, error) {
	if !domain.ValidMessageType(in.Type) {
		return domain.Message{}, apperror.BadRequest("Type must be one of: contact, donation, volunteer")
	}
	subject := strings.TrimSpace(in.Subject)
	if subject == "" {
		return domain.Message{}, apperror.BadRequest("Subject is required")
	}
	content := strings.TrimSpace(in.Content)
	if content == "" {
		return domain.Message{}, apperror.BadRequest("Content is required")
	}
	var amount *float64
	if in.Type == domain.MessageTypeDonation {
		if in.Amount == nil || *in.Amount <= 0 {
			return domain.Message{}, apperror.BadRequest("A positive amount is required for donation messages")
		}
		v := *in.Amount
		amount = &v
	}

	now := s.clk.Now()
	m := domain.Message{
		ID:        s.newMessageID(),
		ProfileID: cloneProfileIDPtr(sender),
		Type:      in.Type,
		Subject:   subject,
		Content:   content,
		Amount:    amount,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return domain.Message{}, err
	}
	return m, nil
}

func (s *Service) ListMessages(ctx context.Context, f messagerepo.Filter) ([]domain.Message, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) MyMessages(ctx context.Context, caller domain.ProfileID) ([]domain.Message, error) {
	return s.repo.ListByProfile(ctx, caller)
}

func (s *Service) GetMessage(ctx context.Context, id domain.MessageID) (domain.Message, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, messagerepo.ErrNotFound) {
			return domain.Message{}, apperror.NotFound("Message not found")
		}
		return domain.Message{}, err
	}
	return m, nil
}

// SetRead flags or unflags a message as read.
func (s *Service) SetRead(ctx context.Context, id domain.MessageID, isRead bool) (domain.Message, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, messagerepo.ErrNotFound) {
			return domain.Message{}, apperror.NotFound("Message not found")
		}
		return domain.Message{}, err
	}
	m.IsRead = isRead
	m.UpdatedAt = s.clk.Now()
	if err := s.repo.Save(ctx, m); err != nil {
		if errors.Is(err, messagerepo.ErrNotFound) {
			return domain.Message{}, apperror.NotFound("Message not found")
		}
		return domain.Message{}, err
	}
	return m, nil
}

func (s *Service) DeleteMessage(ctx context.Context, id domain.MessageID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, messagerepo.ErrNotFound) {
			return apperror.NotFound("Message not found")
		}
		return err
	}
	return nil
}

func cloneProfileIDPtr(p *domain.ProfileID) *domain.ProfileID {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
