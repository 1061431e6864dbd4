package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kugyai/kugy-cli/internal/domain"
	"github.com/kugyai/kugy-cli/internal/ports"
)

// Gateway maps each platform operation to exactly one transport call. It holds
// no state beyond the client.
type Gateway struct {
	client *Client
}

var _ ports.Gateway = (*Gateway)(nil)

func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) ResolveSession(ctx context.Context) (domain.Session, error) {
	var resp authStateResponse
	if err := g.client.Do(ctx, http.MethodGet, "/auth/user", nil, &resp); err != nil {
		return domain.Session{}, fmt.Errorf("resolve session: %w", err)
	}

	return sessionFromAuthState(resp), nil
}

func (g *Gateway) GuestLogin(ctx context.Context) (domain.Session, error) {
	var resp authStateResponse
	if err := g.client.Do(ctx, http.MethodPost, "/auth/guest", nil, &resp); err != nil {
		return domain.Session{}, fmt.Errorf("guest login: %w", err)
	}

	return sessionFromAuthState(resp), nil
}

func (g *Gateway) GoogleLoginURL() string {
	return g.client.BaseURL() + "/auth/google"
}

func (g *Gateway) Logout(ctx context.Context) error {
	if err := g.client.Do(ctx, http.MethodPost, "/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

func (g *Gateway) SendChat(ctx context.Context, query string) (domain.ChatReply, error) {
	var resp chatResponse
	if err := g.client.Do(ctx, http.MethodPost, "/chat", chatRequest{Query: query}, &resp); err != nil {
		return domain.ChatReply{}, fmt.Errorf("send chat: %w", err)
	}
	if !resp.Success || resp.Data == nil {
		return domain.ChatReply{}, rejectedError(resp.Message)
	}

	return domain.ChatReply{
		Response:         resp.Data.Response,
		CreditsRemaining: resp.CreditsRemaining,
	}, nil
}

func (g *Gateway) ChatHistory(ctx context.Context, limit int) (domain.ChatWindow, error) {
	path := "/chat/history?limit=" + strconv.Itoa(limit)

	var resp chatHistoryResponse
	if err := g.client.Do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return domain.ChatWindow{}, fmt.Errorf("fetch chat history: %w", err)
	}
	if !resp.Success || resp.Data == nil {
		return domain.ChatWindow{}, rejectedError(resp.Message)
	}

	window := domain.ChatWindow{
		Records: make([]domain.ChatRecord, 0, len(resp.Data.History)),
		Total:   resp.Data.Total,
	}
	for _, record := range resp.Data.History {
		window.Records = append(window.Records, domain.ChatRecord{
			Question:  record.Question,
			Answer:    record.Answer,
			CreatedAt: record.CreatedAt,
		})
	}

	return window, nil
}

func (g *Gateway) SendMultiAgentTask(ctx context.Context, task string) (domain.MultiAgentResult, error) {
	body := multiAgentRequest{Task: task, UseMultiAgent: true}

	var resp multiAgentResponse
	if err := g.client.Do(ctx, http.MethodPost, "/multi-agent", body, &resp); err != nil {
		return domain.MultiAgentResult{}, fmt.Errorf("send multi-agent task: %w", err)
	}
	if !resp.Success || resp.Data == nil {
		return domain.MultiAgentResult{}, rejectedError(resp.Message)
	}

	result := domain.MultiAgentResult{
		FinalAnswer:      resp.Data.FinalAnswer,
		ModelsUsed:       resp.Data.ModelsUsed,
		CreditsRemaining: resp.CreditsRemaining,
	}
	if len(resp.Data.MultiAgentResults) > 0 {
		result.Agents = make(map[string]domain.AgentOutput, len(resp.Data.MultiAgentResults))
		for key, output := range resp.Data.MultiAgentResults {
			result.Agents[key] = domain.AgentOutput{
				AgentName: output.AgentName,
				Role:      output.Role,
				Result:    output.Result,
			}
		}
	}

	return result, nil
}

func (g *Gateway) GenerateImage(ctx context.Context, prompt string) (domain.GeneratedImage, error) {
	var resp imageResponse
	if err := g.client.Do(ctx, http.MethodPost, "/image/generate", imageRequest{Prompt: prompt}, &resp); err != nil {
		return domain.GeneratedImage{}, fmt.Errorf("generate image: %w", err)
	}
	if !resp.Success || resp.Data == nil {
		return domain.GeneratedImage{}, rejectedError(resp.Message)
	}

	return domain.GeneratedImage{
		PNGBase64:        resp.Data.Image,
		Prompt:           resp.Data.Prompt,
		CreditsRemaining: resp.CreditsRemaining,
	}, nil
}

func (g *Gateway) CreditBalance(ctx context.Context) (domain.CreditBalance, error) {
	var resp creditsResponse
	if err := g.client.Do(ctx, http.MethodGet, "/credits", nil, &resp); err != nil {
		return domain.CreditBalance{}, fmt.Errorf("fetch credit balance: %w", err)
	}
	if !resp.Success || resp.Data == nil {
		return domain.CreditBalance{}, rejectedError(resp.Message)
	}

	return domain.CreditBalance{
		Credits: resp.Data.Credits,
		UserID:  resp.Data.UserID,
	}, nil
}

func (g *Gateway) SimBalance(ctx context.Context) (domain.SimResult, error) {
	return g.simPassthrough(ctx, domain.SimBalance, http.MethodGet, "/virtusim/balance", nil)
}

func (g *Gateway) SimServices(ctx context.Context, country string) (domain.SimResult, error) {
	path := "/virtusim/services?country=" + url.QueryEscape(country)
	return g.simPassthrough(ctx, domain.SimServices, http.MethodGet, path, nil)
}

func (g *Gateway) SimCreateOrder(ctx context.Context, service, operator string) (domain.SimResult, error) {
	body := simOrderRequest{Service: service, Operator: operator}
	return g.simPassthrough(ctx, domain.SimOrderCreate, http.MethodPost, "/virtusim/orders/create", body)
}

func (g *Gateway) SimActiveOrders(ctx context.Context) (domain.SimResult, error) {
	return g.simPassthrough(ctx, domain.SimActiveOrders, http.MethodGet, "/virtusim/orders/active", nil)
}

func (g *Gateway) simPassthrough(ctx context.Context, op domain.SimOperation, method, path string, body any) (domain.SimResult, error) {
	var raw json.RawMessage
	if err := g.client.Do(ctx, method, path, body, &raw); err != nil {
		return domain.SimResult{}, fmt.Errorf("virtusim %s: %w", op, err)
	}

	return domain.SimResult{Operation: op, Raw: raw}, nil
}

func (g *Gateway) Health(ctx context.Context) (domain.HealthStatus, error) {
	var raw json.RawMessage
	if err := g.client.Do(ctx, http.MethodGet, "/health", nil, &raw); err != nil {
		return domain.HealthStatus{}, fmt.Errorf("fetch health: %w", err)
	}

	return domain.HealthStatus{Raw: raw}, nil
}

func sessionFromAuthState(resp authStateResponse) domain.Session {
	session := domain.Session{
		State:   domain.SessionAnonymous,
		Credits: domain.AnonymousCredits,
	}
	if !resp.Authenticated || resp.User == nil {
		return session
	}

	session.State = domain.SessionAuthenticated
	session.Identity = &domain.Identity{
		Email: resp.User.Email,
		Name:  resp.User.Name,
	}
	if resp.Credits != "" {
		session.Credits = resp.Credits
	}

	return session
}

// rejectedError covers a 2xx envelope with success=false: the server handled
// the request but declined it, so the panel recovers locally with the
// envelope's message.
func rejectedError(message string) error {
	return &domain.APIError{StatusCode: http.StatusOK, Message: message}
}
