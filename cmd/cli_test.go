package cmd

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginGuestShowsStartingCredits(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	stdout, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Signed in as Guest 1 with 25 credits.")

	_, statErr := os.Stat(filepath.Join(home, ".kugy", "session.toml"))
	require.NoError(t, statErr, "guest login should persist the session cookie")
}

func TestWhoamiWithoutSession(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	stdout, _, err := executeCLI(t, home, server.URL, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not signed in.")
	assert.Contains(t, stdout, "kugy login guest")
}

func TestSessionPersistsAcrossInvocations(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	_, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Guest 1")
	assert.Contains(t, stdout, "25")
}

func TestChatPrintsReplyAndBalance(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	_, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "chat", "Hello", "there")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Echo: Hello there")
	assert.Contains(t, stdout, "Credits remaining: 24")
}

func TestHistoryListsRecentTurns(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	_, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, server.URL, "chat", "First")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, server.URL, "chat", "Second")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "history", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Second")
	assert.NotContains(t, stdout, "First")
}

func TestAgentPrintsVerdictAndContributions(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	_, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "agent", "compare plans")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Verdict on: compare plans")
	assert.Contains(t, stdout, "Researcher")
	assert.Contains(t, stdout, "Models used: model-a, model-b")
	assert.Contains(t, stdout, "Credits remaining: 20")
}

func TestImageWritesDecodedFile(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	_, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "cat.png")
	stdout, _, err := executeCLI(t, home, server.URL, "image", "a cat", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, out)
	assert.Contains(t, stdout, "Credits remaining: 22")

	data, readErr := os.ReadFile(out)
	require.NoError(t, readErr)
	assert.Equal(t, "hello", string(data))
}

func TestImageRejectedWhenBalanceTooLow(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(2))

	_, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server.URL, "image", "a cat")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insufficient credits")

	stdout, _, err := executeCLI(t, home, server.URL, "credits")
	require.NoError(t, err)
	assert.Contains(t, stdout, "2")
}

func TestLoginGooglePrintsURLWithoutCallingServer(t *testing.T) {
	home := t.TempDir()
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(server.Close)

	stdout, _, err := executeCLI(t, home, server.URL, "login", "google")
	require.NoError(t, err)
	assert.Contains(t, stdout, server.URL+"/auth/google")
	assert.Contains(t, stdout, "kugy whoami")
	assert.Zero(t, hits.Load())
}

func TestLogoutForgetsSession(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	_, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "logout")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Logged out.")

	stdout, _, err = executeCLI(t, home, server.URL, "whoami")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Not signed in.")
}

func TestLogoutForgetsCookieWithoutServerExpiry(t *testing.T) {
	home := t.TempDir()
	platform := newFakePlatform(25)
	platform.logoutKeepsCookie = true
	server := newPlatformServer(t, platform)

	_, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, server.URL, "logout")
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(home, ".kugy", "session.toml"))
	assert.True(t, os.IsNotExist(statErr), "the invalidated cookie must not be written back")
}

func TestSimServicesPrintsProviderPayload(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	_, _, err := executeCLI(t, home, server.URL, "login", "guest")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, server.URL, "sim", "services")
	require.NoError(t, err)
	assert.Contains(t, stdout, "WhatsApp")
}

func TestHealthReportsBackendStatus(t *testing.T) {
	home := t.TempDir()
	server := newPlatformServer(t, newFakePlatform(25))

	stdout, _, err := executeCLI(t, home, server.URL, "health")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ok")
}

func newPlatformServer(t *testing.T, platform *fakePlatform) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(platform.handler())
	t.Cleanup(server.Close)
	return server
}

func executeCLI(t *testing.T, home, apiURL string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("KUGY_API_URL", apiURL)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
