package config

import (
	"time"

	"github.com/kochabx/formkit/client"
	"github.com/kochabx/formkit/core/apierror"
	"github.com/kochabx/formkit/core/listing"
	khttp "github.com/kochabx/formkit/core/net/http"
	"github.com/kochabx/formkit/log"
	"github.com/kochabx/formkit/notify"
)

// SettingsFile is the file LoadSettings looks for.
const SettingsFile = "formkit.yaml"

// Log outputs
const (
	OutputConsole = "console"
	OutputFile    = "file"
	OutputBoth    = "both"
)

// Settings is the kit configuration.
type Settings struct {
	API      API               `mapstructure:"api"`
	Listing  Listing           `mapstructure:"listing"`
	Messages apierror.Messages `mapstructure:"messages"`
	Log      Log               `mapstructure:"log"`
}

// API locates the backend.
type API struct {
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type Listing struct {
	PageSize int `mapstructure:"page_size" validate:"gte=1,lte=200"`
}

type Log struct {
	Level  string         `mapstructure:"level" validate:"omitempty,oneof=trace debug info warn error disabled"`
	Output string         `mapstructure:"output" validate:"oneof=console file both"`
	File   log.FileConfig `mapstructure:"file"`
}

// Defaults registers every key so that env overrides reach it.
func (Settings) Defaults(v Registry) {
	v.SetDefault("api.base_url", "http://localhost:8080")
	v.SetDefault("api.timeout", "10s")

	v.SetDefault("listing.page_size", listing.DefaultPageSize)

	m := apierror.DefaultMessages()
	v.SetDefault("messages.unexpected", m.Unexpected)
	v.SetDefault("messages.not_found", m.NotFound)
	v.SetDefault("messages.system", m.System)
	v.SetDefault("messages.invalid_request", m.InvalidRequest)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.output", OutputConsole)
	v.SetDefault("log.file.filepath", "log")
	v.SetDefault("log.file.filename", "formkit")
	v.SetDefault("log.file.rotate_mode", "size")
}

// LoadSettings loads Settings from formkit.yaml in the working directory,
// FORMKIT_* variables and the defaults.
func LoadSettings(opts ...Option) (*Config[Settings], error) {
	c := New[Settings](append([]Option{WithFile(SettingsFile, ".")}, opts...)...)
	if err := c.Load(); err != nil {
		return nil, err
	}
	return c, nil
}

// Logger builds the logger described by Log.
func (s Settings) Logger(opts ...log.Option) (*log.Logger, error) {
	opts = append([]log.Option{log.WithLevelName(s.Log.Level)}, opts...)
	switch s.Log.Output {
	case OutputFile:
		return log.NewFile(s.Log.File, opts...)
	case OutputBoth:
		return log.NewMulti(s.Log.File, opts...)
	default:
		return log.New(opts...), nil
	}
}

// HTTPClient returns a transport bounded by API.Timeout.
func (s Settings) HTTPClient(opts ...khttp.Option) *khttp.Client {
	return khttp.New(append([]khttp.Option{khttp.WithTimeout(s.API.Timeout)}, opts...)...)
}

// Client returns a REST client for API.BaseURL.
func (s Settings) Client(opts ...client.Option) (*client.Client, error) {
	return client.New(s.API.BaseURL, append([]client.Option{client.WithHTTPClient(s.HTTPClient())}, opts...)...)
}

// Controller returns a listing controller with the configured page size.
func (s Settings) Controller(opts ...listing.Option) *listing.Controller {
	return listing.NewController(s.Listing.PageSize, opts...)
}

// Reconciler returns a reconciler using the configured fallback messages.
func (s Settings) Reconciler(n notify.Notifier, opts ...apierror.Option) *apierror.Reconciler {
	return apierror.New(n, append([]apierror.Option{apierror.WithMessages(s.Messages)}, opts...)...)
}
