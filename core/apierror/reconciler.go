// Package apierror turns failed API calls into user feedback: validation
// errors land on the matching form controls, everything else becomes a single
// notification.
package apierror

import (
	"strings"

	"github.com/kochabx/formkit/errors"
	"github.com/kochabx/formkit/form"
	"github.com/kochabx/formkit/log"
	"github.com/kochabx/formkit/metrics"
	"github.com/kochabx/formkit/notify"
)

// BackendKey is the error key holding server-side messages on a control.
const BackendKey = form.BackendKey

// Messages are the fallback texts shown when the response carries none.
type Messages struct {
	Unexpected     string `json:"unexpected" mapstructure:"unexpected"`
	NotFound       string `json:"not_found" mapstructure:"not_found"`
	System         string `json:"system" mapstructure:"system"`
	InvalidRequest string `json:"invalid_request" mapstructure:"invalid_request"`
}

// DefaultMessages returns the built-in Spanish texts.
func DefaultMessages() Messages {
	return Messages{
		Unexpected:     "Ocurrió un error inesperado.",
		NotFound:       "El recurso solicitado no existe.",
		System:         "Se produjo un error en el sistema.",
		InvalidRequest: "Solicitud inválida.",
	}
}

func (m Messages) withDefaults() Messages {
	d := DefaultMessages()
	if m.Unexpected == "" {
		m.Unexpected = d.Unexpected
	}
	if m.NotFound == "" {
		m.NotFound = d.NotFound
	}
	if m.System == "" {
		m.System = d.System
	}
	if m.InvalidRequest == "" {
		m.InvalidRequest = d.InvalidRequest
	}
	return m
}

// Outcome tells how a failure was surfaced.
type Outcome int

const (
	// OutcomeNotified means exactly one error notification was sent.
	OutcomeNotified Outcome = iota
	// OutcomeFormUpdated means messages were attached to the form instead.
	OutcomeFormUpdated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotified:
		return "notified"
	case OutcomeFormUpdated:
		return "form_updated"
	default:
		return "unknown"
	}
}

// Reconciler maps failed requests onto forms and notifications. A Reconciler
// holds no per-call state; the forms it is handed are not safe for
// concurrent use.
type Reconciler struct {
	notifier notify.Notifier
	messages Messages
	logger   *log.Logger
	metrics  *metrics.Reconcile
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithMessages overrides the fallback texts; empty fields keep their defaults.
func WithMessages(m Messages) Option {
	return func(r *Reconciler) {
		r.messages = m.withDefaults()
	}
}

func WithLogger(l *log.Logger) Option {
	return func(r *Reconciler) {
		if l != nil {
			r.logger = l
		}
	}
}

func WithMetrics(m *metrics.Reconcile) Option {
	return func(r *Reconciler) {
		r.metrics = m
	}
}

// New creates a Reconciler that reports through notifier.
func New(notifier notify.Notifier, opts ...Option) *Reconciler {
	r := &Reconciler{
		notifier: notifier,
		messages: DefaultMessages(),
		logger:   log.G.Component("apierror"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.notifier == nil {
		r.notifier = notify.NewLogger(r.logger)
	}
	return r
}

type handleOptions struct {
	form    form.Control
	context string
}

// HandleOption configures a single Handle call.
type HandleOption func(*handleOptions)

// WithForm names the form whose controls should receive field errors.
func WithForm(root form.Control) HandleOption {
	return func(o *handleOptions) {
		o.form = root
	}
}

// WithContextMessage sets the text used when nothing better is available.
func WithContextMessage(msg string) HandleOption {
	return func(o *handleOptions) {
		o.context = msg
	}
}

// Handle surfaces err. Non-HTTP failures and most statuses produce one error
// notification. A 400 whose messages could be placed on the form produces
// none. Only the backend key of the form's controls is ever touched.
func (r *Reconciler) Handle(err error, opts ...HandleOption) Outcome {
	var o handleOptions
	for _, opt := range opts {
		opt(&o)
	}

	httpErr, ok := errors.AsHTTP(err)
	if !ok {
		r.logger.Warn().Err(err).Msg("request failed without a response")
		return r.notify(0, firstNonEmpty(o.context, r.messages.Unexpected))
	}

	if o.form != nil {
		ClearFormErrors(o.form)
	}

	status := httpErr.GetCode()
	p := decodePayload(httpErr.GetBody())
	resolved, _ := resolveMessage(p)

	switch {
	case status == 400:
		return r.badRequest(p, resolved, o)
	case status == 404:
		return r.notify(status, firstNonEmpty(resolved, r.messages.NotFound))
	case status >= 500:
		return r.notify(status, firstNonEmpty(resolved, r.messages.System))
	default:
		return r.notify(status, firstNonEmpty(resolved, o.context, r.messages.Unexpected))
	}
}

func (r *Reconciler) badRequest(p payload, resolved string, o handleOptions) Outcome {
	fields := extractFieldErrors(p)
	general := extractGeneralMessages(p)

	if o.form != nil {
		applied := applyFieldErrors(o.form, fields)
		if len(general) > 0 {
			o.form.SetErrors(o.form.Errors().With(BackendKey, strings.Join(general, " ")))
		}
		if applied > 0 || len(general) > 0 {
			r.logger.Debug().
				Int("fields", applied).
				Int("general", len(general)).
				Msg("validation errors applied to form")
			r.metrics.Observe(400, OutcomeFormUpdated.String())
			return OutcomeFormUpdated
		}
	}

	return r.notify(400, firstNonEmpty(resolved, o.context, r.messages.InvalidRequest))
}

// applyFieldErrors sets the backend key on every control whose path
// resolves and returns how many did.
func applyFieldErrors(root form.Control, fields *FieldErrors) int {
	applied := 0
	for _, path := range fields.Paths() {
		c, ok := FindControl(root, path)
		if !ok {
			continue
		}
		c.SetErrors(c.Errors().With(BackendKey, strings.Join(fields.Messages(path), " ")))
		c.MarkAsTouched()
		c.UpdateValueAndValidity(form.OnlySelf())
		applied++
	}
	return applied
}

func (r *Reconciler) notify(status int, msg string) Outcome {
	r.logger.Debug().Int("status", status).Str("message", msg).Msg("error notified")
	r.notifier.Error(msg)
	r.metrics.Observe(status, OutcomeNotified.String())
	return OutcomeNotified
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Details is the decoded content of an error body.
type Details struct {
	Fields  *FieldErrors
	General []string
	// Message is the single resolved message, empty when there is none.
	Message string
}

// Inspect decodes body the same way Handle does for a 400 response.
func Inspect(body []byte) Details {
	p := decodePayload(body)
	msg, _ := resolveMessage(p)
	return Details{
		Fields:  extractFieldErrors(p),
		General: extractGeneralMessages(p),
		Message: msg,
	}
}
