package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lunawell/nudge/pkg/domain"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Database struct {
		DSN          string `yaml:"dsn" json:"dsn" jsonschema:"default=file:nudge.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=4,description=Maximum number of open connections"`
		MaxIdleConns int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=2,description=Maximum number of idle connections"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Scheduler struct {
		StartupDelay time.Duration `yaml:"startup_delay" json:"startup_delay" jsonschema:"default=15s,description=Delay before the first tick after activation"`
		Interval     time.Duration `yaml:"interval" json:"interval" jsonschema:"default=5m,description=Recurring tick interval"`
	} `yaml:"scheduler" json:"scheduler" jsonschema:"description=Scheduler configuration"`

	Defaults DefaultsConfig `yaml:"defaults" json:"defaults" jsonschema:"description=Initial notification preferences seeded on first run"`
}

// DefaultsConfig holds the preferences seeded into the store on first run,
// the user changes them later through settings
type DefaultsConfig struct {
	Tone            string `yaml:"tone" json:"tone" jsonschema:"default=cute-soft,description=Initial tone mode"`
	MaxPerDay       int    `yaml:"max_per_day" json:"max_per_day" jsonschema:"default=3,minimum=1,maximum=5,description=Initial daily notification cap"`
	QuietHoursStart int    `yaml:"quiet_hours_start" json:"quiet_hours_start" jsonschema:"default=22,minimum=0,maximum=23,description=Quiet hours start hour"`
	QuietHoursEnd   int    `yaml:"quiet_hours_end" json:"quiet_hours_end" jsonschema:"default=7,minimum=0,maximum=23,description=Quiet hours end hour"`
}

// Preferences converts the configured defaults into domain preferences
func (d DefaultsConfig) Preferences() domain.Preferences {
	return domain.Preferences{
		Tone:       domain.ToneMode(d.Tone),
		MaxPerDay:  d.MaxPerDay,
		QuietStart: d.QuietHoursStart,
		QuietEnd:   d.QuietHoursEnd,
	}.Normalize()
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	// set defaults for database
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = "file:nudge.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 4
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 2
	}

	// set defaults for scheduler
	if cfg.Scheduler.StartupDelay == 0 {
		cfg.Scheduler.StartupDelay = 15 * time.Second
	}
	if cfg.Scheduler.Interval == 0 {
		cfg.Scheduler.Interval = 5 * time.Minute
	}

	// set defaults for seeded preferences
	if cfg.Defaults.Tone == "" {
		cfg.Defaults.Tone = string(domain.ToneCuteSoft)
	}
	if cfg.Defaults.MaxPerDay == 0 {
		cfg.Defaults.MaxPerDay = 3
	}
	// hour 0 is a legal value, so only apply the default window when both
	// bounds are left unset
	if cfg.Defaults.QuietHoursStart == 0 && cfg.Defaults.QuietHoursEnd == 0 {
		cfg.Defaults.QuietHoursStart = 22
		cfg.Defaults.QuietHoursEnd = 7
	}

	// validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Scheduler.Interval < time.Second {
		return fmt.Errorf("scheduler.interval must be at least 1 second")
	}
	if cfg.Scheduler.StartupDelay < 0 {
		return fmt.Errorf("scheduler.startup_delay must be non-negative")
	}

	if !domain.ToneMode(cfg.Defaults.Tone).Valid() {
		return fmt.Errorf("defaults.tone %q is not a known tone mode", cfg.Defaults.Tone)
	}
	if cfg.Defaults.MaxPerDay < 1 || cfg.Defaults.MaxPerDay > 5 {
		return fmt.Errorf("defaults.max_per_day must be between 1 and 5")
	}
	if cfg.Defaults.QuietHoursStart < 0 || cfg.Defaults.QuietHoursStart > 23 {
		return fmt.Errorf("defaults.quiet_hours_start must be between 0 and 23")
	}
	if cfg.Defaults.QuietHoursEnd < 0 || cfg.Defaults.QuietHoursEnd > 23 {
		return fmt.Errorf("defaults.quiet_hours_end must be between 0 and 23")
	}

	return nil
}
