package config

import (
	"path"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/kochabx/formkit/core/validator"
	"github.com/kochabx/formkit/errors"
)

// FileLoader loads configuration from a file, environment variables and the
// defaults registered by the target.
type FileLoader struct {
	viper    *viper.Viper
	validate validator.Validator
	name     string
	paths    []string
}

// NewFileLoader creates a new file loader. Environment variables named
// PREFIX_SECTION_KEY override file values when envPrefix is set.
func NewFileLoader(name string, paths []string, v *viper.Viper, validate validator.Validator, envPrefix string) *FileLoader {
	// Determine config type from file extension
	configType := strings.TrimPrefix(path.Ext(name), ".")

	for _, configPath := range paths {
		v.AddConfigPath(configPath)
	}

	v.SetConfigName(name)
	v.SetConfigType(configType)

	if envPrefix != "" {
		v.SetEnvPrefix(envPrefix)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &FileLoader{
		viper:    v,
		paths:    paths,
		name:     name,
		validate: validate,
	}
}

// Load implements Loader interface. A missing file is not an error.
func (l *FileLoader) Load(target any) error {
	// Defaults go on viper BEFORE reading so env overrides apply to every key
	if d, ok := target.(Defaulter); ok {
		d.Defaults(l.viper)
	}

	if err := l.viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return errors.Wrap(err, 500, "config read error")
		}
	}

	if err := l.viper.Unmarshal(target); err != nil {
		return errors.Wrap(err, 500, "config parse error")
	}

	if l.validate != nil {
		if err := l.validate.Struct(target); err != nil {
			return errors.Wrap(err, 400, "config validation failed")
		}
	}

	return nil
}

// Watch implements Loader interface
func (l *FileLoader) Watch(callback func()) error {
	if l.viper.ConfigFileUsed() == "" {
		return errors.NotFound("config file %s not found, nothing to watch", l.name)
	}

	l.viper.OnConfigChange(func(e fsnotify.Event) {
		if callback != nil && (e.Has(fsnotify.Write) || e.Has(fsnotify.Create)) {
			callback()
		}
	})

	l.viper.WatchConfig()
	return nil
}
