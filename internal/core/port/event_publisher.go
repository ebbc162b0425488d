package port

import (
	"context"

	"saathi-bazaar/internal/core/domain"
)

// EventPublisher delivers campaign lifecycle events to downstream
// collaborators such as notification and order services.
type EventPublisher interface {
	Publish(ctx context.Context, ev domain.CampaignEvent) error
}

// LedgerMetrics receives counters from the ledger. Implementations must be
// safe for concurrent use.
type LedgerMetrics interface {
	ContributionAccepted()
	ContributionRejected(reason string)
	ContributionCancelled()
	CampaignTransitioned(status domain.CampaignStatus)
	ConflictRetried()
}
