package form

import (
	"maps"
	"slices"
)

// BackendKey is the error key reserved for messages that came from the server.
const BackendKey = "backend"

// Errors is the error set of a single control, keyed by error kind.
// A nil set means the control is valid.
type Errors map[string]any

// Has reports whether the set contains key.
func (e Errors) Has(key string) bool {
	_, ok := e[key]
	return ok
}

// With returns a copy of the set with key set to value.
func (e Errors) With(key string, value any) Errors {
	out := make(Errors, len(e)+1)
	maps.Copy(out, e)
	out[key] = value
	return out
}

// Without returns a copy of the set without key, or nil if nothing remains.
func (e Errors) Without(key string) Errors {
	if len(e) == 0 {
		return nil
	}
	out := maps.Clone(e)
	delete(out, key)
	if len(out) == 0 {
		return nil
	}
	return out
}

// Keys returns the error kinds in sorted order.
func (e Errors) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}

func normalize(e Errors) Errors {
	if len(e) == 0 {
		return nil
	}
	return maps.Clone(e)
}
