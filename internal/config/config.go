package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	UI          UIConfig
	Diagnostics DiagConfig
	Scenario    ScenarioConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Width  int
	Height int
	Mouse  bool
}

// DiagConfig holds diagnostic output settings.
type DiagConfig struct {
	Verbose bool
}

// ScenarioConfig points at the dialog scenario to load. Empty means the
// built-in scenario.
type ScenarioConfig struct {
	Path string
}

// Load reads configuration from file and env. Env var overrides use prefix CLOSEDBY_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.width", 100)
	v.SetDefault("ui.height", 32)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("diagnostics.verbose", false)
	v.SetDefault("scenario.path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CLOSEDBY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "closedby"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLOSEDBY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		return Config{}, fmt.Errorf("invalid ui size %dx%d", c.UI.Width, c.UI.Height)
	}
	return c, nil
}
