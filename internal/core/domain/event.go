package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EventType names a campaign lifecycle transition.
type EventType string

const (
	EventCampaignFulfilled EventType = "campaign.fulfilled"
	EventCampaignFailed    EventType = "campaign.failed"
)

// CampaignEvent is emitted after a campaign reaches a terminal state. For
// fulfilled campaigns BulkPrice is the locked-in price for every contributor.
type CampaignEvent struct {
	Type            EventType         `json:"type"`
	CampaignID      uuid.UUID         `json:"campaign_id"`
	ItemName        string            `json:"item_name"`
	Unit            string            `json:"unit"`
	ClusterLocation string            `json:"cluster_location"`
	FinalQty        decimal.Decimal   `json:"final_qty"`
	TargetQty       decimal.Decimal   `json:"target_qty"`
	BulkPrice       decimal.Decimal   `json:"bulk_price"`
	Contributors    []ContributorLine `json:"contributors"`
	OccurredAt      time.Time         `json:"occurred_at"`
}

// ContributorLine aggregates one vendor's pledges for downstream ordering.
type ContributorLine struct {
	VendorID string          `json:"vendor_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// NewCampaignEvent snapshots c into an event of type t.
func NewCampaignEvent(t EventType, c *Campaign, at time.Time) CampaignEvent {
	order := make([]string, 0, len(c.Contributions))
	totals := make(map[string]decimal.Decimal, len(c.Contributions))
	for _, ct := range c.Contributions {
		if _, ok := totals[ct.VendorID]; !ok {
			order = append(order, ct.VendorID)
		}
		totals[ct.VendorID] = totals[ct.VendorID].Add(ct.Quantity)
	}
	lines := make([]ContributorLine, 0, len(order))
	for _, id := range order {
		lines = append(lines, ContributorLine{VendorID: id, Quantity: totals[id]})
	}
	return CampaignEvent{
		Type:            t,
		CampaignID:      c.ID,
		ItemName:        c.ItemName,
		Unit:            c.Unit,
		ClusterLocation: c.ClusterLocation,
		FinalQty:        c.CurrentQty,
		TargetQty:       c.TargetQty,
		BulkPrice:       c.BulkPrice,
		Contributors:    lines,
		OccurredAt:      at.UTC(),
	}
}
