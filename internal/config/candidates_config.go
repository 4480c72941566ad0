package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type CircuitBreakerConfig struct {
	Enabled             bool          `mapstructure:"enabled"`
	MaxRequests         uint32        `mapstructure:"max_requests"`
	Interval            time.Duration `mapstructure:"interval"`
	Timeout             time.Duration `mapstructure:"timeout"`
	ConsecutiveFailures uint32        `mapstructure:"consecutive_failures"`
}

type CandidatesConfig struct {
	BaseURL              string               `mapstructure:"base_url" validate:"required,url"`
	Page                 int                  `mapstructure:"page" validate:"gte=1"`
	Limit                int                  `mapstructure:"limit" validate:"gte=1"`
	Timeout              time.Duration        `mapstructure:"timeout" validate:"gte=0"`
	MaxRequestsPerSecond float32              `mapstructure:"max_requests_per_second" validate:"gte=0"`
	CircuitBreaker       CircuitBreakerConfig `mapstructure:"circuit_breaker"`
}

func (config CandidatesConfig) validate() error {
	if err := validator.New().Struct(config); err != nil {
		return err
	}
	if config.CircuitBreaker.Enabled && config.CircuitBreaker.ConsecutiveFailures == 0 {
		return fmt.Errorf("circuit_breaker.consecutive_failures must be positive when the breaker is enabled")
	}
	return nil
}

func (config CandidatesConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"candidates.base_url":                "CANDIDATES_BASE_URL",
		"candidates.timeout":                 "CANDIDATES_TIMEOUT",
		"candidates.max_requests_per_second": "CANDIDATES_MAX_REQUESTS_PER_SECOND",
		"candidates.circuit_breaker.enabled": "CANDIDATES_CIRCUIT_BREAKER_ENABLED",
	})
}
