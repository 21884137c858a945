package apierror

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldErrors maps field paths to their messages and remembers the order in
// which paths first appeared.
type FieldErrors struct {
	paths    []string
	messages map[string][]string
}

func newFieldErrors() *FieldErrors {
	return &FieldErrors{messages: make(map[string][]string)}
}

func (f *FieldErrors) touch(path string) {
	if _, ok := f.messages[path]; !ok {
		f.paths = append(f.paths, path)
	}
}

func (f *FieldErrors) add(path, msg string) {
	f.touch(path)
	f.messages[path] = append(f.messages[path], msg)
}

func (f *FieldErrors) set(path string, msgs []string) {
	f.touch(path)
	f.messages[path] = msgs
}

// Paths returns the field paths in first-seen order.
func (f *FieldErrors) Paths() []string {
	return append([]string(nil), f.paths...)
}

// Messages returns the messages recorded for path.
func (f *FieldErrors) Messages(path string) []string {
	return append([]string(nil), f.messages[path]...)
}

func (f *FieldErrors) Len() int { return len(f.paths) }

// errorsMember splits the payload's "errors" member into its array or object
// form. At most one of the results is non-nil.
func errorsMember(p payload) ([]json.RawMessage, map[string]json.RawMessage) {
	raw, ok := p.member("errors")
	if !ok {
		return nil, nil
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	switch raw[0] {
	case '[':
		var entries []json.RawMessage
		if json.Unmarshal(raw, &entries) == nil {
			return entries, nil
		}
	case '{':
		var obj map[string]json.RawMessage
		if json.Unmarshal(raw, &obj) == nil {
			return nil, obj
		}
	}
	return nil, nil
}

// orderedKeys lists the member names of a JSON object in document order.
func orderedKeys(raw json.RawMessage) []string {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}

	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return keys
		}
		key, ok := tok.(string)
		if !ok {
			return keys
		}
		keys = append(keys, key)

		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return keys
		}
	}
	return keys
}

func asObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func asString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// extractFieldErrors builds the field error map from the payload's "errors"
// member.
func extractFieldErrors(p payload) *FieldErrors {
	out := newFieldErrors()

	raw, ok := p.member("errors")
	if !ok {
		return out
	}
	entries, obj := errorsMember(p)

	for _, entry := range entries {
		if o, ok := asObject(entry); ok {
			field := normalizeFieldName(firstPresent(o, "field", "campo"))
			msg, ok := normalizeMessage(firstPresent(o, "message", "defaultMessage", "mensaje"))
			if field != "" && ok {
				out.add(field, msg)
			}
			continue
		}
		if msg, ok := asString(entry); ok {
			if msg = strings.TrimSpace(msg); msg != "" {
				out.add("", msg)
			}
		}
	}

	if obj != nil {
		for _, key := range orderedKeys(raw) {
			value, ok := obj[key]
			if !ok {
				continue
			}
			field := strings.TrimSpace(key)
			msgs := normalizeMessages(value)
			if field != "" && len(msgs) > 0 {
				out.set(field, msgs)
			}
		}
	}

	return out
}

// normalizeMessages accepts a scalar or an array of scalars.
func normalizeMessages(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	items := []json.RawMessage{raw}
	if len(raw) > 0 && raw[0] == '[' {
		items = nil
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
	}

	var out []string
	for _, item := range items {
		if msg, ok := normalizeMessage(item); ok {
			out = append(out, msg)
		}
	}
	return out
}

// extractGeneralMessages collects messages of "errors" entries without a
// "field" key, followed by the top-level message.
func extractGeneralMessages(p payload) []string {
	var out []string

	entries, _ := errorsMember(p)
	for _, entry := range entries {
		o, ok := asObject(entry)
		if !ok {
			continue
		}
		if _, hasField := o["field"]; hasField {
			continue
		}
		if msg, ok := normalizeMessage(firstPresent(o, "message", "mensaje")); ok {
			out = append(out, msg)
		}
	}

	if msg, ok := topLevelMessage(p); ok {
		out = append(out, msg)
	}
	return out
}

// topLevelMessage is the first non-empty of message, mensaje and error.
func topLevelMessage(p payload) (string, bool) {
	for _, key := range []string{"message", "mensaje", "error"} {
		raw, ok := p.member(key)
		if !ok {
			continue
		}
		if msg, ok := normalizeMessage(raw); ok {
			return msg, true
		}
	}
	return "", false
}

// resolveMessage picks the single message to show for a failed request.
func resolveMessage(p payload) (string, bool) {
	if msg, ok := topLevelMessage(p); ok {
		return msg, true
	}
	if p.hasText && strings.TrimSpace(p.text) != "" {
		return p.text, true
	}
	return "", false
}
