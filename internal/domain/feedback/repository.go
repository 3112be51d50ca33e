package feedback

import "context"

type Repository interface {
	Append(ctx context.Context, n Note) error
	ListBySession(ctx context.Context, sessionID string) ([]Note, error)
}
