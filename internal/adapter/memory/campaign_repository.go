package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"saathi-bazaar/internal/core/domain"
	"saathi-bazaar/internal/core/port"
)

// CampaignRepository implements port.CampaignRepository in process memory.
// It honours the same compare-and-swap contract as the Postgres adapter
// and is used by tests and by the service when no database is configured.
type CampaignRepository struct {
	mu        sync.RWMutex
	campaigns map[uuid.UUID]*domain.Campaign
}

// NewCampaignRepository returns an empty repository.
func NewCampaignRepository() *CampaignRepository {
	return &CampaignRepository{campaigns: make(map[uuid.UUID]*domain.Campaign)}
}

func (r *CampaignRepository) Create(_ context.Context, c *domain.Campaign) error {
	if err := c.Validate(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.campaigns[c.ID]; ok {
		return fmt.Errorf("campaign %s already exists", c.ID)
	}
	c.Version = 1
	r.campaigns[c.ID] = c.Clone()
	return nil
}

func (r *CampaignRepository) Get(_ context.Context, id uuid.UUID) (*domain.Campaign, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	return c.Clone(), nil
}

func (r *CampaignRepository) ListByStatus(_ context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	return r.list(func(c *domain.Campaign) bool { return c.Status == status }), nil
}

func (r *CampaignRepository) ListOverdue(_ context.Context, now time.Time) ([]domain.Campaign, error) {
	return r.list(func(c *domain.Campaign) bool { return c.Overdue(now) }), nil
}

// AddContribution applies ct to the stored campaign under the write lock,
// so concurrent calls serialise instead of conflicting.
func (r *CampaignRepository) AddContribution(_ context.Context, id uuid.UUID, ct domain.Contribution) (*domain.Campaign, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.campaigns[id]
	if !ok {
		return nil, false, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	c := stored.Clone()
	fulfilled, err := c.Apply(ct)
	if err != nil {
		return nil, false, err
	}
	c.Version++
	r.campaigns[id] = c
	return c.Clone(), fulfilled, nil
}

// Save replaces the stored campaign when its version still equals
// expectedVersion. Mutation is not needed here because the whole aggregate
// is stored by value.
func (r *CampaignRepository) Save(_ context.Context, c *domain.Campaign, expectedVersion int64, _ port.Mutation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.campaigns[c.ID]
	if !ok {
		return fmt.Errorf("campaign %s: %w", c.ID, domain.ErrNotFound)
	}
	if stored.Version != expectedVersion {
		return fmt.Errorf("campaign %s at version %d, expected %d: %w", c.ID, stored.Version, expectedVersion, domain.ErrConflict)
	}
	if stored.Status.Terminal() {
		return fmt.Errorf("campaign %s is %s: %w", c.ID, stored.Status, domain.ErrInvalidState)
	}
	c.Version = expectedVersion + 1
	r.campaigns[c.ID] = c.Clone()
	return nil
}

func (r *CampaignRepository) list(keep func(*domain.Campaign) bool) []domain.Campaign {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Campaign, 0, len(r.campaigns))
	for _, c := range r.campaigns {
		if keep(c) {
			out = append(out, *c.Clone())
		}
	}
	slices.SortFunc(out, func(a, b domain.Campaign) int {
		if d := a.Deadline.Compare(b.Deadline); d != 0 {
			return d
		}
		return slices.Compare(a.ID[:], b.ID[:])
	})
	return out
}
