// Package config loads typed configuration from a file, the environment and
// registered defaults, and keeps it current while the file changes.
package config

import (
	"slices"
	"sync"

	"github.com/spf13/viper"

	"github.com/kochabx/formkit/core/validator"
	"github.com/kochabx/formkit/log"
)

// Config manages one configuration value of type T
type Config[T any] struct {
	mu       sync.RWMutex // protects current and handlers
	viper    *viper.Viper
	loader   Loader
	logger   *log.Logger
	current  T
	handlers []func(T)
}

// New creates a new Config. If no loader is provided a FileLoader is created
// with:
//   - filename: "config.yaml"
//   - paths: ["."]
//   - env prefix: FORMKIT
func New[T any](opts ...Option) *Config[T] {
	o := options{
		validate:  validator.Validate,
		logger:    log.G.Component("config"),
		name:      "config.yaml",
		paths:     []string{"."},
		envPrefix: DefaultEnvPrefix,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.viper == nil {
		o.viper = viper.New()
	}

	c := &Config[T]{
		viper:  o.viper,
		loader: o.loader,
		logger: o.logger,
	}
	if c.loader == nil {
		c.loader = NewFileLoader(o.name, o.paths, o.viper, o.validate, o.envPrefix)
	}
	return c
}

// Load reads the configuration. The current value is replaced only when the
// new one decodes and validates.
func (c *Config[T]) Load() error {
	_, err := c.load()
	return err
}

// Reload loads the configuration again and notifies OnChange handlers.
func (c *Config[T]) Reload() error {
	handlers, err := c.load()
	if err != nil {
		return err
	}

	current := c.Get()
	for _, fn := range handlers {
		fn(current)
	}
	return nil
}

func (c *Config[T]) load() ([]func(T), error) {
	var next T
	if err := c.loader.Load(&next); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = next
	return slices.Clone(c.handlers), nil
}

// Get returns the current configuration
func (c *Config[T]) Get() T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.current
}

// OnChange registers fn to run after every successful reload
func (c *Config[T]) OnChange(fn func(T)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, fn)
}

// Watch reloads the configuration whenever the file changes. A failed reload
// keeps the previous value.
func (c *Config[T]) Watch() error {
	return c.loader.Watch(func() {
		c.logger.Info().Msg("config change detected")

		if err := c.Reload(); err != nil {
			c.logger.Error().Err(err).Msg("failed to reload config after change")
			return
		}

		c.logger.Info().Msg("config reloaded successfully")
	})
}

// GetViper returns the underlying viper instance
func (c *Config[T]) GetViper() *viper.Viper {
	return c.viper
}
