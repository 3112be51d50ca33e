package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Add(ctx context.Context, sessionID, message string) (Note, error) {
	if strings.TrimSpace(sessionID) == "" {
		return Note{}, ErrInvalidInput
	}
	if strings.TrimSpace(message) == "" {
		return Note{}, ErrInvalidInput
	}

	n := Note{
		ID:        uuid.NewString(),
		SessionID: sessionID,
		Message:   strings.TrimSpace(message),
		CreatedAt: s.now(),
	}

	if err := s.repo.Append(ctx, n); err != nil {
		return Note{}, err
	}
	return n, nil
}

func (s *Service) ListBySession(ctx context.Context, sessionID string) ([]Note, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListBySession(ctx, sessionID)
}
