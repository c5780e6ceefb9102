// file: metrics/metrics.go
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	TeamRegistrations = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hatch_team_registrations_total", Help: "Total teams registered"},
	)
	EmailsSent = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hatch_emails_sent_total", Help: "Total notification emails delivered"},
	)
	EmailsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hatch_emails_failed_total", Help: "Total notification emails given up on"},
	)
	CertificatesSent = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hatch_certificates_sent_total", Help: "Total certificate emails delivered"},
	)
	CertificatesFailed = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hatch_certificates_failed_total", Help: "Total certificate emails that failed"},
	)
	VersionConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "hatch_document_version_conflicts_total", Help: "Total hackathon document write conflicts retried"},
	)
)

func Register() {
	prometheus.MustRegister(TeamRegistrations, EmailsSent, EmailsFailed, CertificatesSent, CertificatesFailed, VersionConflicts)
}
