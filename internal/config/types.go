// Package config loads the TerraFusion showcase settings from YAML. Every
// field has a default, so a missing file or a partial document is valid.
package config

import "time"

// Config is the full settings document.
type Config struct {
	Theme         ThemeConfig        `yaml:"theme"`
	Table         TableConfig        `yaml:"table"`
	Notifications NotificationConfig `yaml:"notifications"`
	Widgets       WidgetConfig       `yaml:"widgets"`
	Log           LogConfig          `yaml:"log"`
}

// ThemeConfig selects the initial appearance.
type ThemeConfig struct {
	Variant string `yaml:"variant" validate:"required,theme_variant"`
	Mode    string `yaml:"mode" validate:"required,theme_mode"`
}

// TableConfig tunes the team table on the advanced page.
type TableConfig struct {
	PageSize int `yaml:"page_size" validate:"min=1,max=100"`
}

// NotificationConfig tunes the toast stack.
type NotificationConfig struct {
	// DefaultLifetimeMS applies to notifications without an explicit
	// lifetime. Zero dismisses them on the next tick.
	DefaultLifetimeMS int `yaml:"default_lifetime_ms" validate:"min=0,max=600000"`
	// MaxVisible caps the toasts drawn at once. Zero draws all of them.
	MaxVisible int `yaml:"max_visible" validate:"min=0,max=20"`
}

// WidgetConfig sets the auto-refresh interval of each dashboard widget.
// Zero disables auto-refresh for that widget.
type WidgetConfig struct {
	UptimeIntervalMS int `yaml:"uptime_interval_ms" validate:"min=0"`
	UsersIntervalMS  int `yaml:"users_interval_ms" validate:"min=0"`
	CPUIntervalMS    int `yaml:"cpu_interval_ms" validate:"min=0"`
	// Seed makes the simulated readings reproducible when non-zero.
	Seed int64 `yaml:"seed"`
}

// LogConfig controls the diagnostic log. The interactive showcase only logs
// when File is set.
type LogConfig struct {
	Level string `yaml:"level" validate:"log_level"`
	File  string `yaml:"file"`
	Human bool   `yaml:"human"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Theme: ThemeConfig{Variant: "standard", Mode: "dark"},
		Table: TableConfig{PageSize: 5},
		Notifications: NotificationConfig{
			DefaultLifetimeMS: 5000,
			MaxVisible:        5,
		},
		Widgets: WidgetConfig{
			UptimeIntervalMS: 30000,
			UsersIntervalMS:  15000,
			CPUIntervalMS:    10000,
		},
		Log: LogConfig{Level: "info"},
	}
}

// NotificationLifetime returns the default notification lifetime.
func (c *Config) NotificationLifetime() time.Duration {
	return millis(c.Notifications.DefaultLifetimeMS)
}

// UptimeInterval returns the uptime widget refresh interval.
func (w WidgetConfig) UptimeInterval() time.Duration {
	return millis(w.UptimeIntervalMS)
}

// UsersInterval returns the active users widget refresh interval.
func (w WidgetConfig) UsersInterval() time.Duration {
	return millis(w.UsersIntervalMS)
}

// CPUInterval returns the CPU widget refresh interval.
func (w WidgetConfig) CPUInterval() time.Duration {
	return millis(w.CPUIntervalMS)
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
