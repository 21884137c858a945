package apierror

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

type payloadKind int

const (
	payloadNone payloadKind = iota
	payloadObject
	payloadOther
)

// payload is a decoded error body. Object members stay raw until read.
type payload struct {
	kind   payloadKind
	object map[string]json.RawMessage
	// text is the body when it arrived as text rather than structured JSON.
	text    string
	hasText bool
}

func decodePayload(body []byte) payload {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return payload{kind: payloadNone}
	}
	if !json.Valid(trimmed) {
		return parseText(string(body))
	}

	switch trimmed[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return payload{kind: payloadOther}
		}
		return payload{kind: payloadObject, object: obj}
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return payload{kind: payloadOther}
		}
		return parseText(s)
	}
	return payload{kind: payloadOther}
}

// parseText gives text one more chance to be JSON; otherwise it becomes the
// payload's message.
func parseText(text string) payload {
	p := payload{text: text, hasText: true}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		raw, _ := json.Marshal(text)
		p.kind = payloadObject
		p.object = map[string]json.RawMessage{"message": raw}
		return p
	}

	if trimmed[0] == '{' {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal([]byte(trimmed), &obj); err == nil {
			p.kind = payloadObject
			p.object = obj
			return p
		}
	}
	p.kind = payloadOther
	return p
}

// member returns the raw value of key when the payload is an object.
func (p payload) member(key string) (json.RawMessage, bool) {
	if p.kind != payloadObject {
		return nil, false
	}
	raw, ok := p.object[key]
	return raw, ok
}

// present reports whether raw holds a value other than null.
func present(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// firstPresent returns the first non-null member of obj among keys.
func firstPresent(obj map[string]json.RawMessage, keys ...string) json.RawMessage {
	for _, k := range keys {
		if raw, ok := obj[k]; ok && present(raw) {
			return raw
		}
	}
	return nil
}

// normalizeMessage turns a scalar JSON value into a message. Strings are
// trimmed; numbers and booleans use their JSON text. Null, blank strings and
// composite values yield false.
func normalizeMessage(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if !present(raw) {
		return "", false
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	case '{', '[':
		return "", false
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return "", false
		}
		return strconv.FormatBool(b), true
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", false
	}
	return n.String(), true
}

// normalizeFieldName accepts only JSON strings, trimmed.
func normalizeFieldName(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '"' {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
