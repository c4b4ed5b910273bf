package domain

import "context"

// SessionRepository defines the interface (port) for persisting sessions
// between interactions. The core never assumes a storage medium; the
// default adapter keys sessions by an opaque token in Redis with a TTL.
type SessionRepository interface {
	// Save stores or replaces the session under the given token.
	Save(ctx context.Context, sessionID string, session *Session) error

	// Get loads a session. It returns a DomainError with
	// CodeSessionNotFound when the token is unknown or expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Delete removes a session. Deleting an unknown token is not an error.
	Delete(ctx context.Context, sessionID string) error
}
