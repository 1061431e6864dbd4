package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/kugyai/kugy-cli/internal/domain"
	"github.com/kugyai/kugy-cli/internal/ports"
)

// SessionController owns the current-user/authenticated/credit-balance triple
// for the whole application lifetime. It is the only writer; panels read the
// session and feed credit updates back through ApplyCredits. Every mutation is
// a full-value replace of the session, never a partial patch.
type SessionController struct {
	gateway ports.Gateway

	mu          sync.Mutex
	session     domain.Session
	subscribers []func(domain.Session)
}

func NewSessionController(gateway ports.Gateway) *SessionController {
	return &SessionController{
		gateway: gateway,
		session: domain.Session{
			State:   domain.SessionUnresolved,
			Credits: domain.AnonymousCredits,
		},
	}
}

func (c *SessionController) Session() domain.Session {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session
}

// Subscribe registers an observer called with the full session after every
// mutation.
func (c *SessionController) Subscribe(fn func(domain.Session)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Resolve runs the idempotent "who am I" probe. A failed or empty probe falls
// through to anonymous; an unauthenticated start is not an error condition.
func (c *SessionController) Resolve(ctx context.Context) domain.Session {
	session, err := c.gateway.ResolveSession(ctx)
	if err != nil {
		session = domain.Session{
			State:   domain.SessionAnonymous,
			Credits: domain.AnonymousCredits,
		}
	}

	c.replace(session)
	return session
}

func (c *SessionController) GuestLogin(ctx context.Context) (domain.Session, error) {
	session, err := c.gateway.GuestLogin(ctx)
	if err != nil {
		return domain.Session{}, fmt.Errorf("guest login: %w", err)
	}

	c.replace(session)
	return session, nil
}

func (c *SessionController) GoogleLoginURL() string {
	return c.gateway.GoogleLoginURL()
}

// Logout invalidates the server-side session, then clears local state. The
// local clear is this controller's own responsibility, not implied by the
// call; a transport failure leaves the session untouched.
func (c *SessionController) Logout(ctx context.Context) error {
	if err := c.gateway.Logout(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	c.replace(domain.Session{
		State:   domain.SessionAnonymous,
		Credits: domain.AnonymousCredits,
	})
	return nil
}

// ApplyCredits replaces the displayed balance with the server's last-reported
// value. An empty value means the server omitted the field: the previous
// balance is kept rather than treated as zero.
func (c *SessionController) ApplyCredits(credits string) {
	if credits == "" {
		return
	}

	c.mu.Lock()
	session := c.session
	session.Credits = credits
	c.mu.Unlock()

	c.replace(session)
}

// Reset drops the session back to unresolved. The shell calls this on auth
// loss to force a clean re-resolution, the terminal analogue of a full page
// reload.
func (c *SessionController) Reset() {
	c.replace(domain.Session{
		State:   domain.SessionUnresolved,
		Credits: domain.AnonymousCredits,
	})
}

func (c *SessionController) replace(session domain.Session) {
	c.mu.Lock()
	c.session = session
	subscribers := make([]func(domain.Session), len(c.subscribers))
	copy(subscribers, c.subscribers)
	c.mu.Unlock()

	for _, fn := range subscribers {
		fn(session)
	}
}
