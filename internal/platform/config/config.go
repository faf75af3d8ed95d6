// Package config provides configuration loading and validation for the
// tracker. Configuration is loaded using a layered system: code defaults ->
// optional YAML file -> environment variables. The environment surface
// keeps the classic variable names (MAX_NUMBER_OF_PROJECT,
// MAX_NUMBER_OF_TASK) so existing deployments keep working.
package config

// Config holds all configuration for the application.
type Config struct {
	Limits    LimitsConfig    `koanf:"limits"`
	Log       LogConfig       `koanf:"log"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LimitsConfig holds the two cardinality limits enforced by the service.
type LimitsConfig struct {
	MaxProjects int `koanf:"max_projects"`
	MaxTasks    int `koanf:"max_tasks"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	ServiceName string `koanf:"service_name"`
}
