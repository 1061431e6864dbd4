package ports

import "context"

// SessionCookie is one persisted session credential.
type SessionCookie struct {
	Name  string
	Value string
}

// SessionStore persists session cookies between CLI invocations.
type SessionStore interface {
	Load(ctx context.Context) ([]SessionCookie, error)
	Save(ctx context.Context, cookies []SessionCookie) error
	Clear(ctx context.Context) error
}
