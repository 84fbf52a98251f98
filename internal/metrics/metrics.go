package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	LoginAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_login_attempts_total",
			Help: "Login attempts by outcome (success, invalid_credentials, locked_out).",
		},
		[]string{"outcome"},
	)

	TokenRefreshes = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_token_refreshes_total",
			Help: "Successful access token refreshes.",
		},
	)

	AuditEventsWritten = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_audit_events_written_total",
			Help: "Audit events persisted by the background workers.",
		},
	)

	AuditEventsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "auth_audit_events_dropped_total",
			Help: "Audit events dropped because the dispatch queue was full.",
		},
	)
)

func init() {
	prometheus.MustRegister(LoginAttempts, TokenRefreshes, AuditEventsWritten, AuditEventsDropped)
}
