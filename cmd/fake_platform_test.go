package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
)

// fakePlatform is an in-memory stand-in for the Kugy AI backend, close enough
// to the real contract for CLI tests: cookie sessions, string-encoded
// credits, success envelopes and the 401/402 taxonomy.
type fakePlatform struct {
	mu         sync.Mutex
	guestGrant int
	nextToken  int
	sessions   map[string]*fakeSession

	// logoutKeepsCookie models a backend that invalidates the session
	// server-side but sends no deletion Set-Cookie with the response.
	logoutKeepsCookie bool
}

type fakeSession struct {
	name    string
	email   string
	credits int
	history []fakeTurn
}

type fakeTurn struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
}

func newFakePlatform(guestGrant int) *fakePlatform {
	return &fakePlatform{
		guestGrant: guestGrant,
		sessions:   map[string]*fakeSession{},
	}
}

func (p *fakePlatform) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/guest", p.handleGuestLogin)
	mux.HandleFunc("GET /auth/user", p.handleResolve)
	mux.HandleFunc("POST /auth/logout", p.handleLogout)
	mux.HandleFunc("POST /chat", p.handleChat)
	mux.HandleFunc("GET /chat/history", p.handleHistory)
	mux.HandleFunc("POST /multi-agent", p.handleMultiAgent)
	mux.HandleFunc("POST /image/generate", p.handleImage)
	mux.HandleFunc("GET /credits", p.handleCredits)
	mux.HandleFunc("GET /virtusim/balance", p.handleSim)
	mux.HandleFunc("GET /virtusim/services", p.handleSim)
	mux.HandleFunc("POST /virtusim/orders/create", p.handleSim)
	mux.HandleFunc("GET /virtusim/orders/active", p.handleSim)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"status": "ok"})
	})
	return mux
}

func (p *fakePlatform) session(r *http.Request) *fakeSession {
	cookie, err := r.Cookie("kugy_session")
	if err != nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessions[cookie.Value]
}

func (p *fakePlatform) handleGuestLogin(w http.ResponseWriter, _ *http.Request) {
	p.mu.Lock()
	p.nextToken++
	token := fmt.Sprintf("tok-%d", p.nextToken)
	session := &fakeSession{
		name:    fmt.Sprintf("Guest %d", p.nextToken),
		email:   fmt.Sprintf("guest-%d@kugy.ai", p.nextToken),
		credits: p.guestGrant,
	}
	p.sessions[token] = session
	p.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: "kugy_session", Value: token, Path: "/"})
	writeJSON(w, map[string]any{
		"user":          map[string]any{"email": session.email, "name": session.name, "authenticated": true},
		"authenticated": true,
		"credits":       strconv.Itoa(session.credits),
	})
}

func (p *fakePlatform) handleResolve(w http.ResponseWriter, r *http.Request) {
	session := p.session(r)
	if session == nil {
		writeJSON(w, map[string]any{"user": nil, "authenticated": false, "credits": ""})
		return
	}

	writeJSON(w, map[string]any{
		"user":          map[string]any{"email": session.email, "name": session.name, "authenticated": true},
		"authenticated": true,
		"credits":       strconv.Itoa(session.credits),
	})
}

func (p *fakePlatform) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("kugy_session"); err == nil {
		p.mu.Lock()
		delete(p.sessions, cookie.Value)
		p.mu.Unlock()
	}

	if !p.logoutKeepsCookie {
		http.SetCookie(w, &http.Cookie{Name: "kugy_session", Value: "", Path: "/", MaxAge: -1})
	}
	w.WriteHeader(http.StatusOK)
}

func (p *fakePlatform) charge(w http.ResponseWriter, r *http.Request, cost int) (*fakeSession, bool) {
	session := p.session(r)
	if session == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if session.credits < cost {
		w.WriteHeader(http.StatusPaymentRequired)
		writeJSON(w, map[string]any{"success": false, "message": "insufficient credits"})
		return nil, false
	}
	session.credits -= cost
	return session, true
}

func (p *fakePlatform) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Query string `json:"query"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	session, ok := p.charge(w, r, 1)
	if !ok {
		return
	}

	answer := "Echo: " + req.Query
	p.mu.Lock()
	session.history = append(session.history, fakeTurn{
		Question:  req.Query,
		Answer:    answer,
		CreatedAt: "2026-08-31T12:00:00Z",
	})
	credits := session.credits
	p.mu.Unlock()

	writeJSON(w, map[string]any{
		"success":           true,
		"message":           "ok",
		"data":              map[string]any{"response": answer},
		"credits_remaining": strconv.Itoa(credits),
	})
}

func (p *fakePlatform) handleHistory(w http.ResponseWriter, r *http.Request) {
	session := p.session(r)
	if session == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	limit := len(session.history)
	if parsed, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && parsed < limit {
		limit = parsed
	}

	p.mu.Lock()
	recent := make([]fakeTurn, 0, limit)
	for i := len(session.history) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, session.history[i])
	}
	total := len(session.history)
	p.mu.Unlock()

	writeJSON(w, map[string]any{
		"success": true,
		"data":    map[string]any{"history": recent, "total": total},
	})
}

func (p *fakePlatform) handleMultiAgent(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Task string `json:"task"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	session, ok := p.charge(w, r, 5)
	if !ok {
		return
	}

	p.mu.Lock()
	credits := session.credits
	p.mu.Unlock()

	writeJSON(w, map[string]any{
		"success": true,
		"data": map[string]any{
			"final_answer": "Verdict on: " + req.Task,
			"multi_agent_results": map[string]any{
				"researcher": map[string]any{"agent": "Researcher", "role": "research", "result": "findings"},
			},
			"models_used": []string{"model-a", "model-b"},
		},
		"credits_remaining": strconv.Itoa(credits),
	})
}

func (p *fakePlatform) handleImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	session, ok := p.charge(w, r, 3)
	if !ok {
		return
	}

	p.mu.Lock()
	credits := session.credits
	p.mu.Unlock()

	writeJSON(w, map[string]any{
		"success":           true,
		"data":              map[string]any{"image": "aGVsbG8=", "prompt": req.Prompt},
		"credits_remaining": strconv.Itoa(credits),
	})
}

func (p *fakePlatform) handleCredits(w http.ResponseWriter, r *http.Request) {
	session := p.session(r)
	if session == nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	p.mu.Lock()
	credits := session.credits
	p.mu.Unlock()

	writeJSON(w, map[string]any{
		"success": true,
		"data":    map[string]any{"credits": strconv.Itoa(credits), "user_id": "user-1"},
	})
}

func (p *fakePlatform) handleSim(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]any{
		"status": true,
		"data":   []map[string]any{{"id": "1", "name": "WhatsApp"}},
	})
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
