package config

import (
	"github.com/spf13/viper"

	"github.com/kochabx/formkit/core/validator"
	"github.com/kochabx/formkit/log"
)

// DefaultEnvPrefix prefixes environment overrides, e.g. FORMKIT_API_BASE_URL.
const DefaultEnvPrefix = "FORMKIT"

type options struct {
	viper     *viper.Viper
	validate  validator.Validator
	loader    Loader
	logger    *log.Logger
	name      string
	paths     []string
	envPrefix string
}

// Option is a function that configures a Config
type Option func(*options)

// WithViper sets a custom viper instance
func WithViper(v *viper.Viper) Option {
	return func(o *options) {
		o.viper = v
	}
}

// WithValidator sets a custom validator, nil disables validation
func WithValidator(v validator.Validator) Option {
	return func(o *options) {
		o.validate = v
	}
}

// WithLoader sets the configuration loader
func WithLoader(loader Loader) Option {
	return func(o *options) {
		o.loader = loader
	}
}

// WithFile sets the config file name and the directories searched for it
func WithFile(name string, paths ...string) Option {
	return func(o *options) {
		o.name = name
		if len(paths) > 0 {
			o.paths = paths
		}
	}
}

// WithEnvPrefix sets the environment variable prefix, "" reads unprefixed keys
func WithEnvPrefix(prefix string) Option {
	return func(o *options) {
		o.envPrefix = prefix
	}
}

// WithLogger sets the logger used for reload events
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
