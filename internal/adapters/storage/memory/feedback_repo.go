package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-knowledge-base/internal/domain/feedback"
)

// feedbackRepo guarda notas por sesión, solo en memoria.
// El slice por sesión preserva orden de inserción; no hay eliminación:
// la "persistencia" dura lo que dura el proceso.
type feedbackRepo struct {
	mu        sync.RWMutex
	bySession map[string][]feedback.Note
}

func NewFeedbackRepo() feedback.Repository {
	return &feedbackRepo{
		bySession: make(map[string][]feedback.Note),
	}
}

func (r *feedbackRepo) Append(ctx context.Context, n feedback.Note) error {
	if strings.TrimSpace(n.SessionID) == "" {
		return errors.New("session id required")
	}
	if strings.TrimSpace(n.ID) == "" {
		return errors.New("note id required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.bySession[n.SessionID] = append(r.bySession[n.SessionID], n)
	return nil
}

func (r *feedbackRepo) ListBySession(ctx context.Context, sessionID string) ([]feedback.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notes := r.bySession[sessionID]
	out := make([]feedback.Note, len(notes))
	copy(out, notes)
	return out, nil
}
