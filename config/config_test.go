package config

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Client.ID == "" || cfg.Client.APIVersion == "" {
		t.Error("defaults must identify the protocol client")
	}
	if cfg.Player.GetHTTPTimeout() != 30*time.Second {
		t.Errorf("timeout = %v, want 30s", cfg.Player.GetHTTPTimeout())
	}
	if cfg.UI.CoverArtSize != 300 {
		t.Errorf("cover art size = %d, want 300", cfg.UI.CoverArtSize)
	}
	if cfg.Server.HasCredentials() {
		t.Error("defaults must not carry credentials")
	}
}

func TestHasCredentials(t *testing.T) {
	cases := []struct {
		url, user, pass string
		want            bool
	}{
		{"http://srv:4533", "alice", "pw", true},
		{"", "alice", "pw", false},
		{"http://srv:4533", "  ", "pw", false},
		{"http://srv:4533", "alice", "", false},
	}
	for _, tc := range cases {
		s := ServerConfig{URL: tc.url, Username: tc.user, Password: tc.pass}
		if got := s.HasCredentials(); got != tc.want {
			t.Errorf("HasCredentials(%q,%q,%q) = %v, want %v", tc.url, tc.user, tc.pass, got, tc.want)
		}
	}
}
