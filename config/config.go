package config

import (
	"strings"
	"time"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	UI     UIConfig     `mapstructure:"ui"`
	Player PlayerConfig `mapstructure:"player"`
	Client ClientConfig `mapstructure:"client"`
}

// ServerConfig contains Navidrome server connection settings. All fields are
// optional; when present they pre-fill the login screen and trigger an
// automatic login attempt at startup.
type ServerConfig struct {
	URL      string `mapstructure:"url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

// UIConfig contains user interface settings
type UIConfig struct {
	PageSize         int `mapstructure:"page_size"`
	ProgressBarWidth int `mapstructure:"progress_bar_width"`
	CoverArtSize     int `mapstructure:"cover_art_size"`
}

// PlayerConfig contains playback and HTTP client settings
type PlayerConfig struct {
	HTTPTimeout int `mapstructure:"http_timeout"` // in seconds
}

// ClientConfig contains Subsonic API client settings
type ClientConfig struct {
	ID         string `mapstructure:"id"`
	APIVersion string `mapstructure:"api_version"`
}

// GetHTTPTimeout returns the HTTP timeout as a time.Duration
func (p *PlayerConfig) GetHTTPTimeout() time.Duration {
	return time.Duration(p.HTTPTimeout) * time.Second
}

// HasCredentials reports whether the config carries a complete server login.
func (s *ServerConfig) HasCredentials() bool {
	return strings.TrimSpace(s.URL) != "" &&
		strings.TrimSpace(s.Username) != "" &&
		s.Password != ""
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			PageSize:         20,
			ProgressBarWidth: 30,
			CoverArtSize:     300,
		},
		Player: PlayerConfig{
			HTTPTimeout: 30,
		},
		Client: ClientConfig{
			ID:         "soundtrack",
			APIVersion: "1.16.1",
		},
	}
}
