package domain

import "encoding/json"

type SimOperation string

const (
	SimBalance      SimOperation = "balance"
	SimServices     SimOperation = "services"
	SimOrderCreate  SimOperation = "order_create"
	SimActiveOrders SimOperation = "active_orders"
)

// SimResult wraps a provider-shaped VirtuSim payload. The provider contract is
// opaque to this client; Raw is forwarded for display, never interpreted.
type SimResult struct {
	Operation SimOperation
	Raw       json.RawMessage
}

// CreditBalance is the read-only /credits snapshot.
type CreditBalance struct {
	Credits string
	UserID  string
}

// HealthStatus carries the backend health payload verbatim.
type HealthStatus struct {
	Raw json.RawMessage
}
