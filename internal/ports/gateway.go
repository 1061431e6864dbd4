package ports

import (
	"context"

	"github.com/kugyai/kugy-cli/internal/domain"
)

// Gateway is the fixed catalogue of backend operations. Each method maps one
// business action to exactly one HTTP call; no business logic lives behind it
// beyond request shaping.
type Gateway interface {
	// ResolveSession is the idempotent "who am I" probe. Safe to call
	// repeatedly; must not mutate server state.
	ResolveSession(ctx context.Context) (domain.Session, error)

	// GuestLogin provisions an ephemeral identity with the guest credit
	// grant.
	GuestLogin(ctx context.Context) (domain.Session, error)

	// GoogleLoginURL is the federated-login address the user opens in a
	// browser. Building it issues no request.
	GoogleLoginURL() string

	// Logout invalidates the server-side session. Local session state is
	// cleared by the caller afterwards, not by this call.
	Logout(ctx context.Context) error

	SendChat(ctx context.Context, query string) (domain.ChatReply, error)
	ChatHistory(ctx context.Context, limit int) (domain.ChatWindow, error)
	SendMultiAgentTask(ctx context.Context, task string) (domain.MultiAgentResult, error)
	GenerateImage(ctx context.Context, prompt string) (domain.GeneratedImage, error)
	CreditBalance(ctx context.Context) (domain.CreditBalance, error)

	SimBalance(ctx context.Context) (domain.SimResult, error)
	SimServices(ctx context.Context, country string) (domain.SimResult, error)
	SimCreateOrder(ctx context.Context, service, operator string) (domain.SimResult, error)
	SimActiveOrders(ctx context.Context) (domain.SimResult, error)

	Health(ctx context.Context) (domain.HealthStatus, error)
}
