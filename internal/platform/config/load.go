package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const defaultConfigFile = "todolist.yaml"

// envKeys maps the recognized environment variable names to koanf keys.
// Variables outside this set are ignored rather than slurped into the
// config tree. MAX_NUMBER_OF_PROJECT and MAX_NUMBER_OF_TASK are the
// historical names for the two limits.
var envKeys = map[string]string{
	"MAX_NUMBER_OF_PROJECT": "limits.max_projects",
	"MAX_NUMBER_OF_TASK":    "limits.max_tasks",
	"LOG_LEVEL":             "log.level",
	"LOG_FORMAT":            "log.format",
	"TELEMETRY_ENABLED":     "telemetry.enabled",
}

// Option configures the Load function.
type Option func(*loadOptions)

type loadOptions struct {
	configFile string
}

// WithConfigFile sets the path of the optional YAML config file.
// Defaults to "todolist.yaml" relative to the working directory.
func WithConfigFile(path string) Option {
	return func(o *loadOptions) {
		o.configFile = path
	}
}

// Load reads configuration using a 3-layer hierarchy (highest precedence
// last):
//
//  1. Code defaults
//  2. Optional YAML file (missing file is not an error)
//  3. Environment variables (explicit allow-list, see envKeys)
func Load(opts ...Option) (*Config, error) {
	o := &loadOptions{configFile: defaultConfigFile}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")

	// Layer 1: defaults.
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	// Layer 2: optional YAML file.
	if err := k.Load(file.Provider(o.configFile), yaml.Parser()); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading config file %s: %w", o.configFile, err)
		}
	}

	// Layer 3: recognized environment variables. The transform consults the
	// allow-list and skips everything else by returning an empty key.
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			if koanfKey, ok := envKeys[key]; ok {
				return koanfKey, value
			}
			return "", nil
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env vars: %w", err)
	}

	// Unmarshal into Config struct.
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	// Validate.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}
