package config

import (
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Load reads the configuration from config.toml and returns a Config struct.
// A missing file is not an error: the app falls back to defaults and asks for
// credentials on the login screen.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.AddConfigPath("$HOME/.config/soundtrack/")
	viper.AddConfigPath(".")

	defaults := DefaultConfig()
	viper.SetDefault("ui.page_size", defaults.UI.PageSize)
	viper.SetDefault("ui.progress_bar_width", defaults.UI.ProgressBarWidth)
	viper.SetDefault("ui.cover_art_size", defaults.UI.CoverArtSize)
	viper.SetDefault("player.http_timeout", defaults.Player.HTTPTimeout)
	viper.SetDefault("client.id", defaults.Client.ID)
	viper.SetDefault("client.api_version", defaults.Client.APIVersion)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}
