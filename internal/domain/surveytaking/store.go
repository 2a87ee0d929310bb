package surveytaking

import (
	"context"

	"github.com/google/uuid"
)

// SessionStore keeps in-flight sessions. Sessions expire; an expired or
// abandoned session is simply gone, there is no draft to resume.
type SessionStore interface {
	// Get loads a session, returning shared.ErrNotFound when absent or expired
	Get(ctx context.Context, id uuid.UUID) (*Session, error)

	// Put stores the whole session, replacing any previous copy
	Put(ctx context.Context, session *Session) error

	// Delete discards a session
	Delete(ctx context.Context, id uuid.UUID) error
}
