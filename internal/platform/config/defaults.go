package config

const (
	defaultMaxProjects = 10
	defaultMaxTasks    = 100
)

// defaults returns the default configuration values. These are loaded first
// and can be overridden by the YAML file and env vars.
func defaults() map[string]any {
	return map[string]any{
		"limits.max_projects": defaultMaxProjects,
		"limits.max_tasks":    defaultMaxTasks,

		// Interactive sessions share stderr with prompts, so only warnings
		// and errors are logged by default.
		"log.level":  "warn",
		"log.format": "text",

		"telemetry.enabled":      false,
		"telemetry.service_name": "todolist",
	}
}
