package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const repoConfig = "../../configs/config.yaml"

func Test_Config_WhenRepoFile_ShouldLoadDefaults(t *testing.T) {

	cfg, err := loadConfig(repoConfig)
	require.NoError(t, err)

	assert.Equal(t, LevelInfo, cfg.Logger.LogLevel)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, "http://localhost:3000/candidates", cfg.Candidates.BaseURL)
	assert.Equal(t, 1, cfg.Candidates.Page)
	assert.Equal(t, 10, cfg.Candidates.Limit)
	assert.Equal(t, time.Duration(0), cfg.Candidates.Timeout)
	assert.False(t, cfg.Candidates.CircuitBreaker.Enabled)
	assert.False(t, cfg.Bot.Enabled())
}

func Test_Config_EnvironmentOverrideWorksCorrect(t *testing.T) {

	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("SESSION_TTL", "45m")
	t.Setenv("CANDIDATES_BASE_URL", "http://candidates.internal/api/candidates")
	t.Setenv("CANDIDATES_TIMEOUT", "5s")
	t.Setenv("CANDIDATES_MAX_REQUESTS_PER_SECOND", "2.5")
	t.Setenv("TG_TOKEN", "overrideToken")

	cfg, err := loadConfig(repoConfig)
	require.NoError(t, err)

	assert.Equal(t, LevelDebug, cfg.Logger.LogLevel)
	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 45*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, "http://candidates.internal/api/candidates", cfg.Candidates.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Candidates.Timeout)
	assert.Equal(t, float32(2.5), cfg.Candidates.MaxRequestsPerSecond)
	assert.Equal(t, "overrideToken", cfg.Bot.Token)
	assert.True(t, cfg.Bot.Enabled())
}

func Test_Config_WhenInvalidValues_ShouldFail(t *testing.T) {

	file := filepath.Join(t.TempDir(), "config.yaml")
	content := `
logger:
  log_level: LOUD
  output_file: ./logs/errors.log
candidates:
  base_url: "not a url"
  page: 0
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	_, err := loadConfig(file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LoggerConfig")
	assert.Contains(t, err.Error(), "CandidatesConfig")
}

func Test_Config_WhenBreakerEnabledWithoutThreshold_ShouldFail(t *testing.T) {

	cfg := CandidatesConfig{
		BaseURL:        "http://localhost:3000/candidates",
		Page:           1,
		Limit:          10,
		CircuitBreaker: CircuitBreakerConfig{Enabled: true},
	}

	assert.Error(t, cfg.validate())
}

func Test_Config_WhenFileMissing_ShouldFail(t *testing.T) {

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
