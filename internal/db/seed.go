package db

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"saathi-bazaar/internal/core/port"
)

type seedCampaign struct {
	item, unit, cluster string
	current, target     int64
	individual, bulk    int64
	deadlineIn          time.Duration
}

var demoCampaigns = []seedCampaign{
	{item: "Tomato", unit: "kg", cluster: "Sealdah_North", current: 25, target: 50, individual: 45, bulk: 30, deadlineIn: 48 * time.Hour},
	{item: "Onion", unit: "kg", cluster: "NewTown_Central", current: 10, target: 40, individual: 28, bulk: 22, deadlineIn: 24 * time.Hour},
	{item: "Potato", unit: "bags", cluster: "Howrah_Market", current: 0, target: 10, individual: 200, bulk: 150, deadlineIn: 72 * time.Hour},
}

// Seed creates the demo bulk campaigns when no open campaign exists yet.
// Deadlines are relative to now so the campaigns start open.
func Seed(ctx context.Context, ledger port.LedgerUseCase, now time.Time) (int, error) {
	open, err := ledger.ListOpenCampaigns(ctx, port.ListFilter{})
	if err != nil {
		return 0, err
	}
	if len(open) > 0 {
		return 0, nil
	}
	for i, sc := range demoCampaigns {
		_, err = ledger.CreateCampaign(ctx, port.CreateCampaignReq{
			ItemName:        sc.item,
			Unit:            sc.unit,
			ClusterLocation: sc.cluster,
			TargetQty:       decimal.NewFromInt(sc.target),
			CurrentQty:      decimal.NewFromInt(sc.current),
			IndividualPrice: decimal.NewFromInt(sc.individual),
			BulkPrice:       decimal.NewFromInt(sc.bulk),
			Deadline:        now.Add(sc.deadlineIn),
		})
		if err != nil {
			return i, fmt.Errorf("seed %s: %w", sc.item, err)
		}
	}
	return len(demoCampaigns), nil
}
