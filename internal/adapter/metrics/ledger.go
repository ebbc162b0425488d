package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"saathi-bazaar/internal/core/domain"
)

const namespace = "saathi_bazaar"

// Ledger implements port.LedgerMetrics with Prometheus counters.
type Ledger struct {
	contributions *prometheus.CounterVec
	cancellations prometheus.Counter
	transitions   *prometheus.CounterVec
	conflicts     prometheus.Counter
}

// NewLedger registers the ledger counters on reg.
func NewLedger(reg prometheus.Registerer) *Ledger {
	f := promauto.With(reg)
	return &Ledger{
		contributions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "contributions_total",
			Help:      "Contribution requests by outcome.",
		}, []string{"outcome"}),
		cancellations: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "cancellations_total",
			Help:      "Accepted contribution cancellations.",
		}),
		transitions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "campaign_transitions_total",
			Help:      "Campaigns moved to a terminal status.",
		}, []string{"status"}),
		conflicts: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ledger",
			Name:      "cas_conflicts_total",
			Help:      "Compare-and-swap writes lost to a concurrent writer and retried.",
		}),
	}
}

func (l *Ledger) ContributionAccepted() {
	l.contributions.WithLabelValues("accepted").Inc()
}

// ContributionRejected counts a rejection under its error kind.
func (l *Ledger) ContributionRejected(reason string) {
	l.contributions.WithLabelValues(reason).Inc()
}

func (l *Ledger) ContributionCancelled() {
	l.cancellations.Inc()
}

func (l *Ledger) CampaignTransitioned(status domain.CampaignStatus) {
	l.transitions.WithLabelValues(string(status)).Inc()
}

func (l *Ledger) ConflictRetried() {
	l.conflicts.Inc()
}
