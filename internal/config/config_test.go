package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultGlobalConfig(t *testing.T) {
	cfg := NewDefaultGlobalConfig()

	assert.Equal(t, "https://github.com/signup", cfg.CheckerConfig.SignupURL)
	assert.Equal(t, 2.0, cfg.CheckerConfig.BaseDelaySecs)
	assert.True(t, cfg.BrowserConfig.Headless)
	assert.Equal(t, 1280, cfg.BrowserConfig.WindowWidth)
	assert.Equal(t, "results", cfg.ReporterConfig.OutputDir)
	assert.Equal(t, "info", cfg.LogConfig.LogLevel)
	assert.Equal(t, DefaultBotMaxVisibleResults, cfg.BotConfig.MaxVisibleResults)
}

func TestCheckerConfig_DurationAccessors(t *testing.T) {
	cfg := NewDefaultCheckerConfig()

	assert.Equal(t, 30*time.Second, cfg.NavigationTimeout())
	assert.Equal(t, 2*time.Second, cfg.NavigationSettle())
	assert.Equal(t, 10*time.Second, cfg.InputVisibleTimeout())
	assert.Equal(t, 50*time.Millisecond, cfg.TypeDelay())
	assert.Equal(t, time.Second, cfg.TypeSettle())
	assert.Equal(t, 3*time.Second, cfg.BlurSettle())
	assert.Equal(t, 2*time.Second, cfg.BaseDelay())
}

func TestLoadGlobalConfig_NoFileUsesDefaults(t *testing.T) {
	cfg, err := LoadGlobalConfig("")

	require.NoError(t, err)
	assert.Equal(t, DefaultSignupURL, cfg.CheckerConfig.SignupURL)
}

func TestLoadGlobalConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadGlobalConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadGlobalConfig_YAMLOverridesDefaults(t *testing.T) {
	content := `
checker_config:
  base_delay_secs: 5.5
  signup_url: "https://example.com/signup"
browser_config:
  headless: false
bot_config:
  commands_per_minute: 30
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 5.5, cfg.CheckerConfig.BaseDelaySecs)
	assert.Equal(t, "https://example.com/signup", cfg.CheckerConfig.SignupURL)
	assert.False(t, cfg.BrowserConfig.Headless)
	assert.Equal(t, 30, cfg.BotConfig.CommandsPerMinute)
	// Untouched sections keep their defaults.
	assert.Equal(t, DefaultNavigationTimeoutSecs, cfg.CheckerConfig.NavigationTimeoutSecs)
	assert.Equal(t, DefaultReporterOutputDir, cfg.ReporterConfig.OutputDir)
}

func TestLoadGlobalConfig_JSON(t *testing.T) {
	content := `{"checker_config": {"base_delay_secs": 1.5}}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadGlobalConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.CheckerConfig.BaseDelaySecs)
}

func TestLoadGlobalConfig_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checker_config: ["), 0644))

	_, err := LoadGlobalConfig(path)
	assert.Error(t, err)
}

func TestValidateConfig_Defaults(t *testing.T) {
	assert.NoError(t, ValidateConfig(NewDefaultGlobalConfig()))
}

func TestValidateConfig_BadLogLevel(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogLevel = "verbose"

	err := ValidateConfig(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loglevel")
}

func TestValidateConfig_BadLogFormat(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.LogConfig.LogFormat = "xml"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_BadSignupURL(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.CheckerConfig.SignupURL = "not a url"

	assert.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_NegativeTimeout(t *testing.T) {
	cfg := NewDefaultGlobalConfig()
	cfg.CheckerConfig.NavigationTimeoutSecs = -1

	assert.Error(t, ValidateConfig(cfg))
}

func TestBotConfig_ResolveToken(t *testing.T) {
	cfg := BotConfig{Token: "from-file"}
	t.Setenv("DISCORD_BOT_TOKEN", "")
	assert.Equal(t, "from-file", cfg.ResolveToken())

	t.Setenv("DISCORD_BOT_TOKEN", "from-env")
	assert.Equal(t, "from-env", cfg.ResolveToken())
}
