package port

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"saathi-bazaar/internal/core/domain"
)

// LedgerUseCase defines the bulk order operations exposed to inbound
// adapters. Vendor identity is supplied by the caller and is never
// authenticated here.
type LedgerUseCase interface {
	// Contribute pledges qty toward the campaign on behalf of the vendor. The
	// returned result reflects the committed state. Failures leave the
	// campaign unchanged.
	Contribute(ctx context.Context, req ContributeReq) (*ContributeResult, error)

	// CancelContribution removes all of the vendor's pledges from an open
	// campaign and lowers the running total by the exact removed amount.
	CancelContribution(ctx context.Context, campaignID uuid.UUID, vendorID string) (*CancelResult, error)

	// ListOpenCampaigns returns open campaigns whose deadline has not passed,
	// ordered by deadline ascending. It never writes.
	ListOpenCampaigns(ctx context.Context, filter ListFilter) ([]domain.Campaign, error)

	// GetCampaign returns one campaign. An open campaign found past its
	// deadline is marked failed before it is returned.
	GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error)

	// CreateCampaign stores a new open campaign.
	CreateCampaign(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)

	// ExpireOverdue marks every open campaign past its deadline as failed
	// and returns how many were transitioned.
	ExpireOverdue(ctx context.Context) (int, error)
}

// ContributeReq carries one pledge. VendorID and VendorName come from the
// authenticated caller, never from the request body.
type ContributeReq struct {
	CampaignID uuid.UUID
	VendorID   string
	VendorName string
	Quantity   decimal.Decimal
}

// ContributeResult is returned by Contribute. Fulfilled is true only for
// the contribution that moved the campaign to fulfilled.
type ContributeResult struct {
	Campaign     domain.Campaign
	Contribution domain.Contribution
	Fulfilled    bool
}

// CancelResult is returned by CancelContribution. Removed lists every
// withdrawn pledge and Quantity is their total.
type CancelResult struct {
	Campaign domain.Campaign
	Removed  []domain.Contribution
	Quantity decimal.Decimal
}

// ListFilter narrows ListOpenCampaigns. An empty Cluster matches all
// clusters; otherwise the match is case-insensitive.
type ListFilter struct {
	Cluster string
}

// CreateCampaignReq describes a new campaign. A positive CurrentQty is
// recorded as the opening contribution and must stay below TargetQty.
type CreateCampaignReq struct {
	ItemName        string
	Unit            string
	ClusterLocation string
	TargetQty       decimal.Decimal
	CurrentQty      decimal.Decimal
	IndividualPrice decimal.Decimal
	BulkPrice       decimal.Decimal
	Deadline        time.Time
}
