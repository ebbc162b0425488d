package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"saathi-bazaar/internal/core/domain"
)

// Mutation describes the contribution rows changed by a Save call. The
// campaign scalar fields are always written from the campaign itself.
type Mutation struct {
	Added   []domain.Contribution
	Removed []uuid.UUID
}

// CampaignRepository is the persistence port for bulk campaigns.
// AddContribution is a single conditional increment and never conflicts.
// Save is a compare-and-swap on Campaign.Version: it must apply the scalar
// update and the contribution changes atomically, or return
// domain.ErrConflict when the stored version differs from expectedVersion.
type CampaignRepository interface {
	// Create stores a new campaign together with its initial contributions.
	Create(ctx context.Context, c *domain.Campaign) error
	// Get returns the campaign with its contributions or domain.ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)
	// ListByStatus returns campaigns with the given status ordered by
	// deadline ascending. Contributions are loaded.
	ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error)
	// ListOverdue returns open campaigns whose deadline is not after now.
	ListOverdue(ctx context.Context, now time.Time) ([]domain.Campaign, error)
	// AddContribution atomically records ct on an open campaign whose
	// deadline is after ct.ContributedAt, raises current_qty by its quantity
	// and moves the campaign to fulfilled when the target is reached. It
	// returns the campaign as committed and whether this call fulfilled it.
	// A campaign that is not open yields domain.ErrInvalidState; an open one
	// past its deadline yields domain.ErrExpired and is left unchanged.
	AddContribution(ctx context.Context, id uuid.UUID, ct domain.Contribution) (*domain.Campaign, bool, error)
	// Save persists c when the stored version equals expectedVersion. On
	// success c.Version is advanced.
	Save(ctx context.Context, c *domain.Campaign, expectedVersion int64, m Mutation) error
}
