package application

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/kugyai/kugy-cli/internal/domain"
	"github.com/kugyai/kugy-cli/internal/ports"
)

// DefaultHistoryLimit is the size of the chat panel's recently-fetched window.
const DefaultHistoryLimit = 10

// pendingGate serializes submissions for one panel: at most one in-flight
// operation, the flag always released on the way out.
type pendingGate struct {
	mu      sync.Mutex
	pending bool
}

func (g *pendingGate) begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending {
		return domain.ErrBusy
	}
	g.pending = true
	return nil
}

func (g *pendingGate) finish() {
	g.mu.Lock()
	g.pending = false
	g.mu.Unlock()
}

func (g *pendingGate) Pending() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}

func validateInput(input string) error {
	if strings.TrimSpace(input) == "" {
		return domain.ErrEmptyInput
	}
	return nil
}

// ChatPanel drives the single-chat tab: one send at a time, the reply in a
// single result slot, and a read-after-write refresh of the recent-history
// window after every successful send. The refresh replaces the window from the
// server's stored records instead of appending the local turn, so the display
// never diverges from what the server persisted.
type ChatPanel struct {
	pendingGate
	gateway      ports.Gateway
	credits      func(string)
	historyLimit int

	stateMu  sync.Mutex
	response string
	window   domain.ChatWindow
}

func NewChatPanel(gateway ports.Gateway, credits func(string)) *ChatPanel {
	if credits == nil {
		credits = func(string) {}
	}
	return &ChatPanel{
		gateway:      gateway,
		credits:      credits,
		historyLimit: DefaultHistoryLimit,
	}
}

func (p *ChatPanel) Response() string {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	return p.response
}

func (p *ChatPanel) Window() domain.ChatWindow {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	return p.window
}

// Send submits one chat turn. Empty input and a pending send are both no-ops
// at the network level. On failure the error text lands in the response slot;
// on success the caller clears its input draft.
func (p *ChatPanel) Send(ctx context.Context, input string) error {
	if err := validateInput(input); err != nil {
		return err
	}
	if err := p.begin(); err != nil {
		return err
	}
	defer p.finish()

	p.setResponse("")

	reply, err := p.gateway.SendChat(ctx, input)
	if err != nil {
		p.setResponse("Error: " + domain.FailureMessage(err))
		return err
	}

	p.setResponse(reply.Response)
	if reply.CreditsRemaining != "" {
		p.credits(reply.CreditsRemaining)
	}

	// Refresh failures leave the previous window in place; the send itself
	// already succeeded.
	_ = p.RefreshHistory(ctx)
	return nil
}

// RefreshHistory reloads the most-recent-N window, replacing it wholesale.
func (p *ChatPanel) RefreshHistory(ctx context.Context) error {
	window, err := p.gateway.ChatHistory(ctx, p.historyLimit)
	if err != nil {
		return fmt.Errorf("refresh chat history: %w", err)
	}

	p.stateMu.Lock()
	p.window = window
	p.stateMu.Unlock()
	return nil
}

func (p *ChatPanel) setResponse(response string) {
	p.stateMu.Lock()
	p.response = response
	p.stateMu.Unlock()
}

// AgentPanel drives the multi-agent tab. The result slot is transient and
// overwritten by each submission; failures store the error-shaped variant.
type AgentPanel struct {
	pendingGate
	gateway ports.Gateway
	credits func(string)

	stateMu sync.Mutex
	result  *domain.MultiAgentResult
}

func NewAgentPanel(gateway ports.Gateway, credits func(string)) *AgentPanel {
	if credits == nil {
		credits = func(string) {}
	}
	return &AgentPanel{gateway: gateway, credits: credits}
}

func (p *AgentPanel) Result() *domain.MultiAgentResult {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	return p.result
}

func (p *AgentPanel) Submit(ctx context.Context, task string) error {
	if err := validateInput(task); err != nil {
		return err
	}
	if err := p.begin(); err != nil {
		return err
	}
	defer p.finish()

	p.setResult(nil)

	result, err := p.gateway.SendMultiAgentTask(ctx, task)
	if err != nil {
		p.setResult(&domain.MultiAgentResult{
			Failed:  true,
			Message: domain.FailureMessage(err),
		})
		return err
	}

	p.setResult(&result)
	if result.CreditsRemaining != "" {
		p.credits(result.CreditsRemaining)
	}
	return nil
}

func (p *AgentPanel) setResult(result *domain.MultiAgentResult) {
	p.stateMu.Lock()
	p.result = result
	p.stateMu.Unlock()
}

// ImagePanel drives the image tab. Only the most recent generation is kept.
// Failures clear the slot and surface through the returned error so the shell
// can raise a blocking notice.
type ImagePanel struct {
	pendingGate
	gateway ports.Gateway
	credits func(string)

	stateMu sync.Mutex
	image   *domain.GeneratedImage
}

func NewImagePanel(gateway ports.Gateway, credits func(string)) *ImagePanel {
	if credits == nil {
		credits = func(string) {}
	}
	return &ImagePanel{gateway: gateway, credits: credits}
}

func (p *ImagePanel) Image() *domain.GeneratedImage {
	p.stateMu.Lock()
	defer p.stateMu.Unlock()
	return p.image
}

func (p *ImagePanel) Generate(ctx context.Context, prompt string) error {
	if err := validateInput(prompt); err != nil {
		return err
	}
	if err := p.begin(); err != nil {
		return err
	}
	defer p.finish()

	p.setImage(nil)

	image, err := p.gateway.GenerateImage(ctx, prompt)
	if err != nil {
		return err
	}

	p.setImage(&image)
	if image.CreditsRemaining != "" {
		p.credits(image.CreditsRemaining)
	}
	return nil
}

func (p *ImagePanel) setImage(image *domain.GeneratedImage) {
	p.stateMu.Lock()
	p.image = image
	p.stateMu.Unlock()
}
