package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/kugyai/kugy-cli/internal/adapters/api"
	statestore "github.com/kugyai/kugy-cli/internal/adapters/state/toml"
	"github.com/kugyai/kugy-cli/internal/application"
	"github.com/kugyai/kugy-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	controller *application.SessionController
	chat       *application.ChatPanel
	agents     *application.AgentPanel
	image      *application.ImagePanel
	gateway    ports.Gateway
	client     *api.Client
	store      ports.SessionStore

	// authLost is swappable so the dashboard shell can layer its own
	// reaction on top of the default stored-session clear.
	authLost func()
}

func wireApp() (*app, error) {
	store, err := statestore.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	a := &app{store: store}

	client, err := api.NewClient(
		envOrDefault("KUGY_API_URL", api.DefaultBaseURL),
		api.WithHooks(api.Hooks{AuthLost: func() {
			if a.authLost != nil {
				a.authLost()
			}
		}}),
	)
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	gateway := api.NewGateway(client)

	a.client = client
	a.gateway = gateway
	a.controller = application.NewSessionController(gateway)
	a.chat = application.NewChatPanel(gateway, a.controller.ApplyCredits)
	a.agents = application.NewAgentPanel(gateway, a.controller.ApplyCredits)
	a.image = application.NewImagePanel(gateway, a.controller.ApplyCredits)
	a.authLost = func() {
		client.ClearCookies()
		_ = store.Clear(context.Background())
	}

	return a, nil
}

func (a *app) restoreSession(ctx context.Context) error {
	stored, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load stored session: %w", err)
	}

	cookies := make([]*http.Cookie, 0, len(stored))
	for _, cookie := range stored {
		cookies = append(cookies, &http.Cookie{Name: cookie.Name, Value: cookie.Value})
	}
	a.client.SetCookies(cookies)
	return nil
}

func (a *app) persistSession(ctx context.Context) error {
	cookies := a.client.Cookies()
	if len(cookies) == 0 {
		return nil
	}

	stored := make([]ports.SessionCookie, 0, len(cookies))
	for _, cookie := range cookies {
		stored = append(stored, ports.SessionCookie{Name: cookie.Name, Value: cookie.Value})
	}

	if err := a.store.Save(ctx, stored); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
