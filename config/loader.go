package config

// Loader defines the interface for configuration loaders
type Loader interface {
	// Load decodes the configuration into target, a pointer to a struct
	Load(target any) error

	// Watch starts watching for configuration changes
	// The callback is invoked when configuration changes are detected
	Watch(callback func()) error
}

// Defaulter is implemented by configuration structs that register their
// default values on the viper instance before decoding.
type Defaulter interface {
	Defaults(v Registry)
}

// Registry is the part of viper a Defaulter needs.
type Registry interface {
	SetDefault(key string, value any)
}
