package form

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/kochabx/formkit/core/validator"
)

// Required fails on nil, blank strings and empty collections.
func Required(c Control) Errors {
	if isEmpty(c.Value()) {
		return Errors{"required": true}
	}
	return nil
}

// Min fails when the numeric value is below n. Empty values pass.
func Min(n float64) ValidatorFn {
	return func(c Control) Errors {
		v, ok := toFloat(c.Value())
		if !ok || v >= n {
			return nil
		}
		return Errors{"min": map[string]any{"min": n, "actual": v}}
	}
}

// NotZero fails when the numeric value is exactly zero. Empty values pass.
func NotZero(c Control) Errors {
	if v, ok := toFloat(c.Value()); ok && v == 0 {
		return Errors{"noZero": true}
	}
	return nil
}

// Tag runs a go-playground validation tag against the value. Each failing
// tag becomes one key holding the translated message.
func Tag(v validator.Validator, tag string) ValidatorFn {
	return func(c Control) Errors {
		err := v.Var(c.Value(), tag)
		if err == nil {
			return nil
		}
		ve, ok := validator.AsValidationErrors(err)
		if !ok {
			return Errors{tag: err.Error()}
		}
		out := make(Errors, len(ve.Errors()))
		for _, fe := range ve.Errors() {
			out[fe.Tag()] = fe.Message()
		}
		return out
	}
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s) == ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return toFloat(rv.Elem().Interface())
	}
	return 0, false
}
