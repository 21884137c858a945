// Package notify delivers user-facing messages. Notifiers are fire-and-forget.
package notify

import (
	"sync"

	"github.com/kochabx/formkit/log"
)

// Level is the severity of a notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notifier shows a message to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Notification is one delivered message.
type Notification struct {
	Level   Level
	Message string
}

// Func adapts a function to Notifier.
type Func func(level Level, msg string)

func (f Func) Success(msg string) { f(LevelSuccess, msg) }

func (f Func) Error(msg string) { f(LevelError, msg) }

type logger struct {
	l *log.Logger
}

// NewLogger writes notifications to l: success at info, errors at error level.
func NewLogger(l *log.Logger) Notifier {
	if l == nil {
		l = log.G
	}
	return &logger{l: l}
}

func (n *logger) Success(msg string) {
	n.l.Info().Str("notification", string(LevelSuccess)).Msg(msg)
}

func (n *logger) Error(msg string) {
	n.l.Error().Str("notification", string(LevelError)).Msg(msg)
}

// Recorder keeps every notification in memory. It is safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Success(msg string) { r.add(LevelSuccess, msg) }

func (r *Recorder) Error(msg string) { r.add(LevelError, msg) }

func (r *Recorder) add(level Level, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, Notification{Level: level, Message: msg})
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Errors returns the messages recorded at error level.
func (r *Recorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	for _, n := range r.items {
		if n.Level == LevelError {
			out = append(out, n.Message)
		}
	}
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

type multi []Notifier

// Multi fans every notification out to ns, skipping nil entries.
func Multi(ns ...Notifier) Notifier {
	out := make(multi, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (m multi) Success(msg string) {
	for _, n := range m {
		n.Success(msg)
	}
}

func (m multi) Error(msg string) {
	for _, n := range m {
		n.Error(msg)
	}
}
