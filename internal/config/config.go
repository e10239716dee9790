package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ReminderConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	DefaultTime string `mapstructure:"default_time"` // "19:30", used until enough history exists
	Timezone    string `mapstructure:"timezone"`     // e.g. "Europe/Zurich" (optional)
}

type StreakConfig struct {
	// CountRecovery lets a recovery day preserve the streak alongside
	// mobility and grace.
	CountRecovery bool `mapstructure:"count_recovery"`
}

type ProgressConfig struct {
	// BonusItems are the exercises counted in the bonus tally.
	BonusItems []string `mapstructure:"bonus_items"`
}

type Config struct {
	Theme    string         `mapstructure:"theme"`
	Reminder ReminderConfig `mapstructure:"reminder"`
	Streak   StreakConfig   `mapstructure:"streak"`
	Progress ProgressConfig `mapstructure:"progress"`
}

func Default() Config {
	return Config{
		Theme: "default",
		Reminder: ReminderConfig{
			Enabled:     true,
			DefaultTime: "19:30",
			Timezone:    "",
		},
		Streak: StreakConfig{
			CountRecovery: false,
		},
		Progress: ProgressConfig{
			BonusItems: []string{"arc", "pe", "support", "shoulder"},
		},
	}
}

func xdgConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".config", "crux")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Load() (Config, error) {
	cfg := Default()

	path, err := xdgConfigPath()
	if err != nil {
		return cfg, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigFile(path)

	// defaults
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("reminder.enabled", cfg.Reminder.Enabled)
	v.SetDefault("reminder.default_time", cfg.Reminder.DefaultTime)
	v.SetDefault("reminder.timezone", cfg.Reminder.Timezone)
	v.SetDefault("streak.count_recovery", cfg.Streak.CountRecovery)
	v.SetDefault("progress.bonus_items", cfg.Progress.BonusItems)

	_ = v.ReadInConfig() // ok if missing
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("config unmarshal: %w", err)
	}
	return cfg, nil
}

func (c Config) Location() *time.Location {
	if tz := strings.TrimSpace(c.Reminder.Timezone); tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

// DefaultReminderMinutes parses reminder.default_time as minutes since
// midnight, falling back to 19:30 when malformed.
func (c Config) DefaultReminderMinutes() int {
	if t, err := time.Parse("15:04", strings.TrimSpace(c.Reminder.DefaultTime)); err == nil {
		return t.Hour()*60 + t.Minute()
	}
	return 19*60 + 30
}
