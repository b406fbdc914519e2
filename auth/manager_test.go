package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const okPing = `{"subsonic-response":{"status":"ok","version":"1.16.1","type":"navidrome"}}`
const badCreds = `{"subsonic-response":{"status":"failed","version":"1.16.1","error":{"code":40,"message":"Wrong username or password"}}}`

func newTestManager() *Manager {
	return NewManager("soundtrack", "1.16.1", 2*time.Second)
}

func TestLoginSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(okPing))
	}))
	defer srv.Close()

	m := newTestManager()
	if m.IsConfigured() {
		t.Fatal("fresh manager must not be configured")
	}
	if err := m.Login(context.Background(), srv.URL+"/", "alice", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !m.IsConfigured() || m.Client() == nil {
		t.Error("session not retained after successful login")
	}
	if m.BaseURL() != srv.URL {
		t.Errorf("trailing slash not stripped: %q", m.BaseURL())
	}
	if m.Username() != "alice" {
		t.Errorf("username = %q", m.Username())
	}
}

func TestLoginRejectedLeavesNoSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(badCreds))
	}))
	defer srv.Close()

	m := newTestManager()
	err := m.Login(context.Background(), srv.URL, "alice", "wrong")
	if err == nil {
		t.Fatal("expected error for rejected credentials")
	}
	if m.IsConfigured() || m.Client() != nil {
		t.Error("no session may be retained after failed login")
	}
}

func TestLoginUnreachableServer(t *testing.T) {
	m := newTestManager()
	err := m.Login(context.Background(), "http://127.0.0.1:1", "alice", "pw")
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
	if m.IsConfigured() {
		t.Error("unreachable server must leave the manager unauthenticated")
	}
}

func TestLoginValidatesBlankFields(t *testing.T) {
	m := newTestManager()
	for _, tc := range []struct{ url, user, pass string }{
		{"", "alice", "pw"},
		{"http://srv", "", "pw"},
		{"http://srv", "alice", ""},
	} {
		if err := m.Login(context.Background(), tc.url, tc.user, tc.pass); err == nil {
			t.Errorf("blank field accepted: %+v", tc)
		}
	}
}

func TestLogoutKeepsDisplayFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(okPing))
	}))
	defer srv.Close()

	m := newTestManager()
	if err := m.Login(context.Background(), srv.URL, "alice", "pw"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	m.Logout()
	if m.IsConfigured() || m.Client() != nil {
		t.Error("logout must release the session")
	}
	if m.BaseURL() != srv.URL || m.Username() != "alice" {
		t.Error("logout must keep cached URL and username for display")
	}
	m.Logout() // second call is a no-op
}

func TestReloginReplacesSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(okPing))
	}))
	defer srv.Close()

	m := newTestManager()
	if err := m.Login(context.Background(), srv.URL, "alice", "pw"); err != nil {
		t.Fatalf("first login: %v", err)
	}
	first := m.Client()
	if err := m.Login(context.Background(), srv.URL, "bob", "pw2"); err != nil {
		t.Fatalf("second login: %v", err)
	}
	if m.Client() == first {
		t.Error("second login must construct a fresh session")
	}
	if m.Username() != "bob" {
		t.Errorf("username = %q, want bob", m.Username())
	}
}
