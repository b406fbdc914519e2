package auth

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/soundtrack-app/soundtrack/subsonic"
)

// Manager owns the credentials and the one live session. A session is only
// retained after a successful connectivity check; the raw password is handed
// to the protocol client for token derivation and never stored here.
type Manager struct {
	clientID   string
	apiVersion string
	timeout    time.Duration

	mu       sync.RWMutex
	baseURL  string
	username string
	client   *subsonic.Client
}

// NewManager builds a Manager that stamps sessions with the given protocol
// identifiers.
func NewManager(clientID, apiVersion string, timeout time.Duration) *Manager {
	return &Manager{
		clientID:   clientID,
		apiVersion: apiVersion,
		timeout:    timeout,
	}
}

// IsConfigured reports whether an authenticated session is held.
func (m *Manager) IsConfigured() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client != nil
}

// Login derives fresh session material, verifies it against the server with a
// ping, and on success replaces any prior session. On failure nothing is
// retained and the caller stays unauthenticated.
func (m *Manager) Login(ctx context.Context, baseURL, username, password string) error {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	username = strings.TrimSpace(username)
	if baseURL == "" || username == "" || password == "" {
		return errors.New("server URL, username and password are required")
	}

	client := subsonic.Init(baseURL, username, password, m.clientID, m.apiVersion, m.timeout)
	if _, err := client.Ping(ctx); err != nil {
		client.Close()
		return errors.Wrap(err, "could not connect")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client != nil {
		m.client.Close()
	}
	m.client = client
	m.baseURL = baseURL
	m.username = username
	return nil
}

// Logout releases the session. The cached server URL and username stay
// readable for display.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.client != nil {
		m.client.Close()
		m.client = nil
	}
}

// Client returns the live session's protocol client, nil when logged out.
func (m *Manager) Client() *subsonic.Client {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.client
}

// BaseURL returns the last successfully used server URL.
func (m *Manager) BaseURL() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.baseURL
}

// Username returns the last successfully used account name.
func (m *Manager) Username() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.username
}
