package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Limits.validate(),
		c.Log.validate(),
		c.Telemetry.validate(),
	)
}

func (l *LimitsConfig) validate() error {
	var errs []error

	if l.MaxProjects < 1 {
		errs = append(errs, fmt.Errorf("limits.max_projects must be >= 1, got %d", l.MaxProjects))
	}
	if l.MaxTasks < 1 {
		errs = append(errs, fmt.Errorf("limits.max_tasks must be >= 1, got %d", l.MaxTasks))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	if t.ServiceName == "" {
		return errors.New("telemetry.service_name must not be empty when telemetry is enabled")
	}
	return nil
}
