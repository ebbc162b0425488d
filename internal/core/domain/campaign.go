package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus is the lifecycle state of a bulk campaign. The only legal
// transitions are open -> fulfilled and open -> failed.
type CampaignStatus string

const (
	StatusOpen      CampaignStatus = "open"
	StatusFulfilled CampaignStatus = "fulfilled"
	StatusFailed    CampaignStatus = "failed"
)

// Terminal reports whether no further transition is possible.
func (s CampaignStatus) Terminal() bool {
	return s == StatusFulfilled || s == StatusFailed
}

// SeedVendorID marks the opening contribution that carries a campaign's
// initial quantity when it is created with a non-zero current quantity.
const SeedVendorID = "seed"

// Campaign represents one pooled purchase of a single item in a cluster.
// CurrentQty always equals the sum of Contributions. Version is bumped by
// every persisted mutation and is used for compare-and-swap updates.
type Campaign struct {
	ID              uuid.UUID
	ItemName        string
	Unit            string
	ClusterLocation string
	TargetQty       decimal.Decimal
	CurrentQty      decimal.Decimal
	IndividualPrice decimal.Decimal
	BulkPrice       decimal.Decimal
	Deadline        time.Time
	Status          CampaignStatus
	FulfilledAt     *time.Time
	Contributions   []Contribution
	Version         int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewCampaign builds an open campaign. A positive initialQty is recorded as
// an opening contribution from SeedVendorID.
func NewCampaign(item, unit, cluster string, target, initialQty, individualPrice, bulkPrice decimal.Decimal, deadline, now time.Time) (*Campaign, error) {
	c := &Campaign{
		ID:              uuid.New(),
		ItemName:        strings.TrimSpace(item),
		Unit:            strings.TrimSpace(unit),
		ClusterLocation: strings.TrimSpace(cluster),
		TargetQty:       target,
		CurrentQty:      decimal.Zero,
		IndividualPrice: individualPrice,
		BulkPrice:       bulkPrice,
		Deadline:        deadline.UTC(),
		Status:          StatusOpen,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}
	if initialQty.IsNegative() {
		return nil, fmt.Errorf("%w: initial quantity must not be negative", ErrInvalidCampaign)
	}
	if initialQty.IsPositive() {
		c.Contributions = append(c.Contributions, Contribution{
			ID:            uuid.New(),
			VendorID:      SeedVendorID,
			Quantity:      initialQty,
			ContributedAt: now.UTC(),
		})
		c.CurrentQty = initialQty
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.CurrentQty.GreaterThanOrEqual(c.TargetQty) {
		return nil, fmt.Errorf("%w: initial quantity already meets the target", ErrInvalidCampaign)
	}
	return c, nil
}

// Validate checks the preconditions a campaign must satisfy to be stored.
func (c *Campaign) Validate() error {
	switch {
	case c.ItemName == "":
		return fmt.Errorf("%w: item name is required", ErrInvalidCampaign)
	case c.Unit == "":
		return fmt.Errorf("%w: unit is required", ErrInvalidCampaign)
	case c.ClusterLocation == "":
		return fmt.Errorf("%w: cluster location is required", ErrInvalidCampaign)
	case !c.TargetQty.IsPositive():
		return fmt.Errorf("%w: target quantity must be positive", ErrInvalidCampaign)
	case c.CurrentQty.IsNegative():
		return fmt.Errorf("%w: current quantity must not be negative", ErrInvalidCampaign)
	case c.IndividualPrice.IsNegative() || c.BulkPrice.IsNegative():
		return fmt.Errorf("%w: prices must not be negative", ErrInvalidCampaign)
	case !c.BulkPrice.IsZero() && !c.BulkPrice.LessThan(c.IndividualPrice):
		return fmt.Errorf("%w: bulk price must be lower than individual price", ErrInvalidCampaign)
	case c.Deadline.IsZero():
		return fmt.Errorf("%w: deadline is required", ErrInvalidCampaign)
	case !c.CurrentQty.Equal(c.Sum()):
		return fmt.Errorf("%w: current quantity %s does not match contributions %s", ErrInvalidCampaign, c.CurrentQty, c.Sum())
	}
	return nil
}

// Sum returns the total of all recorded contribution quantities.
func (c *Campaign) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, ct := range c.Contributions {
		total = total.Add(ct.Quantity)
	}
	return total
}

// Remaining is the quantity still needed to reach the target, never negative.
func (c *Campaign) Remaining() decimal.Decimal {
	r := c.TargetQty.Sub(c.CurrentQty)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// Overdue reports whether an open campaign has passed its deadline at now.
func (c *Campaign) Overdue(now time.Time) bool {
	return c.Status == StatusOpen && !now.Before(c.Deadline)
}

// Expire moves an overdue open campaign to failed. It returns true when the
// transition happened.
func (c *Campaign) Expire(now time.Time) bool {
	if !c.Overdue(now) {
		return false
	}
	c.Status = StatusFailed
	c.UpdatedAt = now.UTC()
	return true
}

// Contribute records a pledge and flips the campaign to fulfilled once the
// target is reached. The campaign is left untouched on error.
func (c *Campaign) Contribute(vendorID, vendorName string, qty decimal.Decimal, now time.Time) (Contribution, bool, error) {
	ct, err := NewContribution(vendorID, vendorName, qty, now)
	if err != nil {
		return Contribution{}, false, err
	}
	fulfilled, err := c.Apply(ct)
	if err != nil {
		return Contribution{}, false, err
	}
	return ct, fulfilled, nil
}

// Apply adds an already built contribution, using its ContributedAt as the
// current time for the deadline check. It reports whether this contribution
// fulfilled the campaign.
func (c *Campaign) Apply(ct Contribution) (bool, error) {
	if c.Status != StatusOpen {
		return false, fmt.Errorf("%w: campaign is %s", ErrInvalidState, c.Status)
	}
	if c.Overdue(ct.ContributedAt) {
		return false, ErrExpired
	}

	c.Contributions = append(c.Contributions, ct)
	c.CurrentQty = c.CurrentQty.Add(ct.Quantity)
	c.UpdatedAt = ct.ContributedAt

	if c.CurrentQty.GreaterThanOrEqual(c.TargetQty) {
		at := ct.ContributedAt
		c.Status = StatusFulfilled
		c.FulfilledAt = &at
		return true, nil
	}
	return false, nil
}

// CancelContributions removes every contribution made by vendorID and
// returns the removed records. Only open, not yet overdue campaigns accept
// cancellations.
func (c *Campaign) CancelContributions(vendorID string, now time.Time) ([]Contribution, error) {
	if strings.TrimSpace(vendorID) == "" || vendorID == SeedVendorID {
		return nil, fmt.Errorf("%w: vendor id is required", ErrInvalidArgument)
	}
	if c.Status != StatusOpen {
		return nil, fmt.Errorf("%w: campaign is %s", ErrInvalidState, c.Status)
	}
	if c.Overdue(now) {
		return nil, ErrExpired
	}

	var removed []Contribution
	kept := c.Contributions[:0:0]
	for _, ct := range c.Contributions {
		if ct.VendorID == vendorID {
			removed = append(removed, ct)
			continue
		}
		kept = append(kept, ct)
	}
	if len(removed) == 0 {
		return nil, fmt.Errorf("%w: no contribution from vendor %s", ErrNotFound, vendorID)
	}

	total := decimal.Zero
	for _, ct := range removed {
		total = total.Add(ct.Quantity)
	}
	current := c.CurrentQty.Sub(total)
	if current.IsNegative() {
		current = decimal.Zero
	}
	c.Contributions = kept
	c.CurrentQty = current
	c.UpdatedAt = now.UTC()
	return removed, nil
}

// Clone returns a deep copy so callers can mutate without sharing slices.
func (c *Campaign) Clone() *Campaign {
	cp := *c
	cp.Contributions = append([]Contribution(nil), c.Contributions...)
	if c.FulfilledAt != nil {
		at := *c.FulfilledAt
		cp.FulfilledAt = &at
	}
	return &cp
}
