package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	Title           string        `mapstructure:"title"`
	SessionTTL      time.Duration `mapstructure:"session_ttl"`
	SessionsCleanup string        `mapstructure:"sessions_cleanup"`
	RefreshSeconds  int           `mapstructure:"refresh_seconds"`
}

func (config ServerConfig) validate() error {
	var errs []error

	if config.Address == "" {
		errs = append(errs, fmt.Errorf("missing variable: address"))
	}
	if config.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("session_ttl must be positive"))
	}
	if config.SessionsCleanup == "" {
		errs = append(errs, fmt.Errorf("missing variable: sessions_cleanup"))
	}

	return errors.Join(errs...)
}

func (config ServerConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"server.address":          "SERVER_ADDRESS",
		"server.session_ttl":      "SESSION_TTL",
		"server.sessions_cleanup": "SESSIONS_CLEANUP",
	})
}
