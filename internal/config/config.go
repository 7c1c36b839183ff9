package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// SWINGPLAN_LOG_LEVEL.
const EnvPrefix = "SWINGPLAN"

// Log formats understood by the logger.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// SkillLevels lists the accepted skill_level values.
var SkillLevels = []string{"beginner", "intermediate", "advanced", "expert", "pro"}

// Config holds the CLI settings. Zero-valued paths mean "not configured".
type Config struct {
	// DBPath overrides the default database location.
	DBPath    string `mapstructure:"db_path"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// Catalog files used when plan is run without --drills / --challenges.
	DrillsPath     string `mapstructure:"drills_path"`
	ChallengesPath string `mapstructure:"challenges_path"`

	DefaultDays int    `mapstructure:"default_days"`
	SkillLevel  string `mapstructure:"skill_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		LogLevel:    "warn",
		LogFormat:   FormatText,
		DefaultDays: 3,
		SkillLevel:  "intermediate",
	}
}

// Load reads settings from the YAML file at path, falling back to
// swingplan.yaml in the user config dir or the working directory when path is
// empty. A missing search-path file is not an error; a missing explicit file
// is. SWINGPLAN_* environment variables override file values.
func Load(path string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("db_path", def.DBPath)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("log_format", def.LogFormat)
	v.SetDefault("drills_path", def.DrillsPath)
	v.SetDefault("challenges_path", def.ChallengesPath)
	v.SetDefault("default_days", def.DefaultDays)
	v.SetDefault("skill_level", def.SkillLevel)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("swingplan")
		v.SetConfigType("yaml")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.SkillLevel = strings.ToLower(strings.TrimSpace(cfg.SkillLevel))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.DefaultDays < 1 {
		return fmt.Errorf("default_days must be at least 1, got %d", c.DefaultDays)
	}
	if !slices.Contains(SkillLevels, c.SkillLevel) {
		return fmt.Errorf("unknown skill_level %q", c.SkillLevel)
	}
	switch c.LogFormat {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	return nil
}

// configDir returns $XDG_CONFIG_HOME/swingplan or ~/.config/swingplan.
func configDir() string {
	if d := os.Getenv("XDG_CONFIG_HOME"); d != "" {
		return filepath.Join(d, "swingplan")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "swingplan")
}
