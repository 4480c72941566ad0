package config

import (
	"time"

	"github.com/spf13/viper"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("logger.log_level", string(LevelInfo))
	v.SetDefault("logger.app_name", "team-ui")
	v.SetDefault("logger.output_file", "./logs/errors.log")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.title", "Team UI")
	v.SetDefault("server.session_ttl", 30*time.Minute)
	v.SetDefault("server.sessions_cleanup", "@every 10m")
	v.SetDefault("server.refresh_seconds", 1)

	v.SetDefault("candidates.base_url", "http://localhost:3000/candidates")
	v.SetDefault("candidates.page", 1)
	v.SetDefault("candidates.limit", 10)
	v.SetDefault("candidates.timeout", 0)
	v.SetDefault("candidates.max_requests_per_second", 0)
	v.SetDefault("candidates.circuit_breaker.enabled", false)
	v.SetDefault("candidates.circuit_breaker.max_requests", 1)
	v.SetDefault("candidates.circuit_breaker.interval", time.Minute)
	v.SetDefault("candidates.circuit_breaker.timeout", 30*time.Second)
	v.SetDefault("candidates.circuit_breaker.consecutive_failures", 5)
}
