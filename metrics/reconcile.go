package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kochabx/formkit/errors"
)

// Reconcile counts how failed requests were surfaced to the user.
type Reconcile struct {
	total *prometheus.CounterVec
}

// NewReconcile registers formkit_reconcile_total on reg.
func NewReconcile(reg prometheus.Registerer) (*Reconcile, error) {
	r := &Reconcile{
		total: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reconcile_total",
			Help:      "Failed requests handled by the error reconciler, by status class and outcome.",
		}, []string{"status_class", "outcome"}),
	}
	if err := reg.Register(r.total); err != nil {
		return nil, err
	}
	return r, nil
}

// Observe records one handled failure. Status 0 is a non-HTTP failure.
func (r *Reconcile) Observe(status int, outcome string) {
	if r == nil {
		return
	}
	r.total.WithLabelValues(errors.Class(status), outcome).Inc()
}
