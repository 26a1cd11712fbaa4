package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"
)

// Option adjusts where and how Load reads files.
type Option func(*loadOptions)

type loadOptions struct {
	configDir     string
	optionalFiles bool
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.configDir = dir }
}

// WithOptionalFiles treats a missing base.yaml or profile file as empty, so
// the terminal client starts from any directory on defaults alone.
func WithOptionalFiles() Option {
	return func(o *loadOptions) { o.optionalFiles = true }
}

// Load builds the configuration for profile. Each layer overrides the one
// before it: built-in defaults, base.yaml, <profile>.yaml, then APP_
// environment variables such as APP_CLIENT_RETRY_MAX_ATTEMPTS for
// client.retry.max_attempts. The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := loadOptions{configDir: defaultConfigDir}
	for _, opt := range opts {
		opt(&o)
	}

	k := koanf.New(".")
	layers := []struct {
		name string
		load func(*koanf.Koanf) error
	}{
		{"defaults", setDefaults},
		{"base config", fileLayer(filepath.Join(o.configDir, "base.yaml"), o.optionalFiles)},
		{"profile config", fileLayer(filepath.Join(o.configDir, profile+".yaml"), o.optionalFiles)},
		{"environment", envLayer},
	}
	for _, l := range layers {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(k *koanf.Koanf) error {
	for key, value := range defaults() {
		if err := k.Set(key, value); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}

func fileLayer(path string, optional bool) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		err := k.Load(file.Provider(path), yaml.Parser())
		if err == nil || (optional && errors.Is(err, fs.ErrNotExist)) {
			return nil
		}
		return fmt.Errorf("%s: %w", path, err)
	}
}

// envLayer applies APP_ variables. Names are matched against the keys
// already loaded, so APP_SESSION_IDLE_TIMEOUT lands on session.idle_timeout
// rather than session.idle.timeout. Unknown names fall back to replacing
// every underscore with a dot.
func envLayer(k *koanf.Koanf) error {
	known := make(map[string]string)
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
}

// validateProfile rejects names that could escape the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a plain name", profile)
	}
	return nil
}
