package notify

import (
	"context"
	"log/slog"

	"saathi-bazaar/internal/core/domain"
)

// LogPublisher writes campaign events to the structured log. It is the
// sink used when no broker is configured.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher returns a sink that logs every event at info level.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs ev. It never fails.
func (p *LogPublisher) Publish(ctx context.Context, ev domain.CampaignEvent) error {
	p.logger.InfoContext(ctx, "campaign event",
		slog.String("type", string(ev.Type)),
		slog.String("campaign_id", ev.CampaignID.String()),
		slog.String("item", ev.ItemName),
		slog.String("final_qty", ev.FinalQty.String()),
		slog.String("bulk_price", ev.BulkPrice.String()),
		slog.Int("contributors", len(ev.Contributors)),
	)
	return nil
}
