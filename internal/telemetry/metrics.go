package telemetry

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	once sync.Once

	Transitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_transitions_total",
		Help: "Status transition attempts by entity kind, action, and outcome",
	}, []string{"entity", "action", "outcome"}) // outcome: allowed, denied, not_found

	AuditWriteFailures = prometheus.NewCounter(prometheus.CounterOpts{Name: "backoffice_audit_write_failures_total", Help: "Audit entries dropped after retry"})
	NotifyFailures     = prometheus.NewCounter(prometheus.CounterOpts{Name: "backoffice_notify_failures_total", Help: "Status-change notifications that could not be delivered"})
)

// Handler exposes /metrics with a singleton registration.
func Handler() http.Handler {
	once.Do(func() {
		prometheus.MustRegister(
			Transitions,
			AuditWriteFailures,
			NotifyFailures,
		)
	})
	return promhttp.Handler()
}
