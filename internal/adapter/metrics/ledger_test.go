package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"saathi-bazaar/internal/core/domain"
)

func TestLedgerCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLedger(reg)

	m.ContributionAccepted()
	m.ContributionAccepted()
	m.ContributionRejected("expired")
	m.ContributionCancelled()
	m.CampaignTransitioned(domain.StatusFulfilled)
	m.ConflictRetried()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.contributions.WithLabelValues("accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.contributions.WithLabelValues("expired")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.cancellations))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.transitions.WithLabelValues("fulfilled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.conflicts))
	assert.Equal(t, 5, testutil.CollectAndCount(reg))
	assert.Equal(t, 2, testutil.CollectAndCount(reg, "saathi_bazaar_ledger_contributions_total"))
}
