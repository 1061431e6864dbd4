package application

import (
	"context"
	"errors"

	"github.com/kugyai/kugy-cli/internal/domain"
	"github.com/kugyai/kugy-cli/internal/ports"
)

var errStubUnconfigured = errors.New("stub gateway: operation not configured")

// stubGateway implements ports.Gateway with overridable function fields.
type stubGateway struct {
	resolveSession func(context.Context) (domain.Session, error)
	guestLogin     func(context.Context) (domain.Session, error)
	googleLoginURL func() string
	logout         func(context.Context) error
	sendChat       func(context.Context, string) (domain.ChatReply, error)
	chatHistory    func(context.Context, int) (domain.ChatWindow, error)
	sendMultiAgent func(context.Context, string) (domain.MultiAgentResult, error)
	generateImage  func(context.Context, string) (domain.GeneratedImage, error)
	creditBalance  func(context.Context) (domain.CreditBalance, error)
}

var _ ports.Gateway = (*stubGateway)(nil)

func (s *stubGateway) ResolveSession(ctx context.Context) (domain.Session, error) {
	if s.resolveSession == nil {
		return domain.Session{}, errStubUnconfigured
	}
	return s.resolveSession(ctx)
}

func (s *stubGateway) GuestLogin(ctx context.Context) (domain.Session, error) {
	if s.guestLogin == nil {
		return domain.Session{}, errStubUnconfigured
	}
	return s.guestLogin(ctx)
}

func (s *stubGateway) GoogleLoginURL() string {
	if s.googleLoginURL == nil {
		return ""
	}
	return s.googleLoginURL()
}

func (s *stubGateway) Logout(ctx context.Context) error {
	if s.logout == nil {
		return errStubUnconfigured
	}
	return s.logout(ctx)
}

func (s *stubGateway) SendChat(ctx context.Context, query string) (domain.ChatReply, error) {
	if s.sendChat == nil {
		return domain.ChatReply{}, errStubUnconfigured
	}
	return s.sendChat(ctx, query)
}

func (s *stubGateway) ChatHistory(ctx context.Context, limit int) (domain.ChatWindow, error) {
	if s.chatHistory == nil {
		return domain.ChatWindow{}, errStubUnconfigured
	}
	return s.chatHistory(ctx, limit)
}

func (s *stubGateway) SendMultiAgentTask(ctx context.Context, task string) (domain.MultiAgentResult, error) {
	if s.sendMultiAgent == nil {
		return domain.MultiAgentResult{}, errStubUnconfigured
	}
	return s.sendMultiAgent(ctx, task)
}

func (s *stubGateway) GenerateImage(ctx context.Context, prompt string) (domain.GeneratedImage, error) {
	if s.generateImage == nil {
		return domain.GeneratedImage{}, errStubUnconfigured
	}
	return s.generateImage(ctx, prompt)
}

func (s *stubGateway) CreditBalance(ctx context.Context) (domain.CreditBalance, error) {
	if s.creditBalance == nil {
		return domain.CreditBalance{}, errStubUnconfigured
	}
	return s.creditBalance(ctx)
}

func (s *stubGateway) SimBalance(context.Context) (domain.SimResult, error) {
	return domain.SimResult{}, errStubUnconfigured
}

func (s *stubGateway) SimServices(context.Context, string) (domain.SimResult, error) {
	return domain.SimResult{}, errStubUnconfigured
}

func (s *stubGateway) SimCreateOrder(context.Context, string, string) (domain.SimResult, error) {
	return domain.SimResult{}, errStubUnconfigured
}

func (s *stubGateway) SimActiveOrders(context.Context) (domain.SimResult, error) {
	return domain.SimResult{}, errStubUnconfigured
}

func (s *stubGateway) Health(context.Context) (domain.HealthStatus, error) {
	return domain.HealthStatus{}, errStubUnconfigured
}
