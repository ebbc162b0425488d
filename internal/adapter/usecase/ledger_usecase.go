package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"saathi-bazaar/internal/core/domain"
	"saathi-bazaar/internal/core/port"
)

const (
	defaultMaxAttempts    = 5
	defaultInitialBackoff = 10 * time.Millisecond
)

// LedgerUseCase implements port.LedgerUseCase. Every mutation is a
// load-mutate-compare-and-swap cycle against the repository, retried with
// exponential backoff when another writer wins the race.
type LedgerUseCase struct {
	repo      port.CampaignRepository
	publisher port.EventPublisher
	metrics   port.LedgerMetrics
	logger    *slog.Logger

	now            func() time.Time
	maxAttempts    int
	initialBackoff time.Duration
}

// Option customises a LedgerUseCase.
type Option func(*LedgerUseCase)

// WithClock overrides the time source used for deadlines and timestamps.
func WithClock(now func() time.Time) Option {
	return func(u *LedgerUseCase) { u.now = now }
}

// WithRetry sets how many compare-and-swap attempts a mutation makes before
// surfacing domain.ErrConflict, and the first backoff interval.
func WithRetry(maxAttempts int, initial time.Duration) Option {
	return func(u *LedgerUseCase) {
		if maxAttempts > 0 {
			u.maxAttempts = maxAttempts
		}
		if initial > 0 {
			u.initialBackoff = initial
		}
	}
}

// WithMetrics reports contribution outcomes, cancellations, terminal
// transitions and retried conflicts to m. A nil m keeps the no-op sink.
func WithMetrics(m port.LedgerMetrics) Option {
	return func(u *LedgerUseCase) {
		if m != nil {
			u.metrics = m
		}
	}
}

// NewLedgerUseCase creates a ledger over repo. Terminal transitions are
// published through publisher, which may be nil.
func NewLedgerUseCase(repo port.CampaignRepository, publisher port.EventPublisher, logger *slog.Logger, opts ...Option) *LedgerUseCase {
	u := &LedgerUseCase{
		repo:           repo,
		publisher:      publisher,
		metrics:        nopMetrics{},
		logger:         logger,
		now:            time.Now,
		maxAttempts:    defaultMaxAttempts,
		initialBackoff: defaultInitialBackoff,
	}
	for _, opt := range opts {
		opt(u)
	}
	if u.logger == nil {
		u.logger = slog.Default()
	}
	return u
}

// Contribute pledges a quantity toward an open campaign. The contribution
// and the running total are committed by one conditional update in the
// repository, and the fulfillment check runs against the committed total,
// so concurrent contributions never conflict or overwrite each other. A
// campaign found past its deadline is marked failed and domain.ErrExpired is
// returned.
func (u *LedgerUseCase) Contribute(ctx context.Context, req port.ContributeReq) (*port.ContributeResult, error) {
	if req.VendorID == domain.SeedVendorID {
		u.metrics.ContributionRejected(reason(domain.ErrInvalidArgument))
		return nil, fmt.Errorf("%w: vendor id is reserved", domain.ErrInvalidArgument)
	}
	ct, err := domain.NewContribution(req.VendorID, req.VendorName, req.Quantity, u.now())
	if err != nil {
		u.metrics.ContributionRejected(reason(err))
		return nil, err
	}

	c, fulfilled, err := u.repo.AddContribution(ctx, req.CampaignID, ct)
	if errors.Is(err, domain.ErrExpired) {
		if _, xerr := u.expireByID(ctx, req.CampaignID); xerr != nil {
			u.logger.Error("expire campaign",
				slog.String("campaign_id", req.CampaignID.String()),
				slog.Any("error", xerr),
			)
		}
	}
	if err != nil {
		u.metrics.ContributionRejected(reason(err))
		return nil, err
	}

	res := &port.ContributeResult{Campaign: *c, Contribution: ct, Fulfilled: fulfilled}
	u.metrics.ContributionAccepted()
	u.logger.Debug("contribution recorded",
		slog.String("campaign_id", c.ID.String()),
		slog.String("vendor_id", req.VendorID),
		slog.String("quantity", req.Quantity.String()),
		slog.String("current_qty", c.CurrentQty.String()),
	)
	if fulfilled {
		u.transitioned(ctx, &res.Campaign, domain.EventCampaignFulfilled)
	}
	return res, nil
}

// CancelContribution withdraws every pledge the vendor made to an open
// campaign. It is the inverse of Contribute under the same discipline.
func (u *LedgerUseCase) CancelContribution(ctx context.Context, campaignID uuid.UUID, vendorID string) (*port.CancelResult, error) {
	var (
		res     *port.CancelResult
		expired *domain.Campaign
	)
	err := u.retry(ctx, func() error {
		c, err := u.repo.Get(ctx, campaignID)
		if err != nil {
			return backoff.Permanent(err)
		}
		now := u.now()
		if c.Overdue(now) {
			if err = u.expire(ctx, c, now); err != nil {
				return u.retryable(err)
			}
			expired = c
			return backoff.Permanent(domain.ErrExpired)
		}

		expected := c.Version
		removed, err := c.CancelContributions(vendorID, now)
		if err != nil {
			return backoff.Permanent(err)
		}
		ids := make([]uuid.UUID, 0, len(removed))
		total := decimal.Zero
		for _, ct := range removed {
			ids = append(ids, ct.ID)
			total = total.Add(ct.Quantity)
		}
		if err = u.repo.Save(ctx, c, expected, port.Mutation{Removed: ids}); err != nil {
			return u.retryable(err)
		}
		res = &port.CancelResult{Campaign: *c, Removed: removed, Quantity: total}
		return nil
	})
	if expired != nil {
		u.transitioned(ctx, expired, domain.EventCampaignFailed)
	}
	if err != nil {
		return nil, err
	}
	u.metrics.ContributionCancelled()
	return res, nil
}

// ListOpenCampaigns returns campaigns still accepting contributions,
// optionally restricted to one cluster, ordered by deadline ascending.
func (u *LedgerUseCase) ListOpenCampaigns(ctx context.Context, filter port.ListFilter) ([]domain.Campaign, error) {
	all, err := u.repo.ListByStatus(ctx, domain.StatusOpen)
	if err != nil {
		return nil, err
	}
	now := u.now()
	cluster := strings.TrimSpace(filter.Cluster)
	open := make([]domain.Campaign, 0, len(all))
	for _, c := range all {
		if c.Overdue(now) {
			continue
		}
		if cluster != "" && !strings.EqualFold(c.ClusterLocation, cluster) {
			continue
		}
		open = append(open, c)
	}
	slices.SortStableFunc(open, func(a, b domain.Campaign) int {
		if d := a.Deadline.Compare(b.Deadline); d != 0 {
			return d
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	return open, nil
}

// GetCampaign returns the campaign, marking it failed first if it is open
// past its deadline.
func (u *LedgerUseCase) GetCampaign(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	var (
		out     *domain.Campaign
		expired bool
	)
	err := u.retry(ctx, func() error {
		c, err := u.repo.Get(ctx, id)
		if err != nil {
			return backoff.Permanent(err)
		}
		now := u.now()
		if c.Overdue(now) {
			if err = u.expire(ctx, c, now); err != nil {
				return u.retryable(err)
			}
			expired = true
		}
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	if expired {
		u.transitioned(ctx, out, domain.EventCampaignFailed)
	}
	return out, nil
}

// CreateCampaign validates and stores a new open campaign.
func (u *LedgerUseCase) CreateCampaign(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	now := u.now()
	if !req.Deadline.After(now) {
		return nil, fmt.Errorf("%w: deadline must be in the future", domain.ErrInvalidCampaign)
	}
	c, err := domain.NewCampaign(req.ItemName, req.Unit, req.ClusterLocation, req.TargetQty, req.CurrentQty,
		req.IndividualPrice, req.BulkPrice, req.Deadline, now)
	if err != nil {
		return nil, err
	}
	if err = u.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	u.logger.Info("campaign created",
		slog.String("campaign_id", c.ID.String()),
		slog.String("item", c.ItemName),
		slog.String("cluster", c.ClusterLocation),
	)
	return c, nil
}

// ExpireOverdue fails every open campaign past its deadline. Campaigns that
// another writer moved first are skipped. Errors for individual campaigns
// are joined and returned after the whole batch has been processed.
func (u *LedgerUseCase) ExpireOverdue(ctx context.Context) (int, error) {
	overdue, err := u.repo.ListOverdue(ctx, u.now())
	if err != nil {
		return 0, err
	}
	var (
		count int
		errs  []error
	)
	for _, candidate := range overdue {
		expired, err := u.expireByID(ctx, candidate.ID)
		if err != nil {
			errs = append(errs, fmt.Errorf("expire campaign %s: %w", candidate.ID, err))
			continue
		}
		if expired {
			count++
		}
	}
	return count, errors.Join(errs...)
}

// expireByID fails the campaign if it is still open past its deadline and
// publishes the failure. It reports whether this call made the transition;
// a campaign another writer already closed is left alone.
func (u *LedgerUseCase) expireByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var expired *domain.Campaign
	err := u.retry(ctx, func() error {
		c, err := u.repo.Get(ctx, id)
		if err != nil {
			return backoff.Permanent(err)
		}
		now := u.now()
		if !c.Overdue(now) {
			return nil
		}
		if err = u.expire(ctx, c, now); err != nil {
			return u.retryable(err)
		}
		expired = c
		return nil
	})
	if err != nil {
		return false, err
	}
	if expired == nil {
		return false, nil
	}
	u.transitioned(ctx, expired, domain.EventCampaignFailed)
	return true, nil
}

// expire persists the open -> failed transition for c.
func (u *LedgerUseCase) expire(ctx context.Context, c *domain.Campaign, now time.Time) error {
	expected := c.Version
	if !c.Expire(now) {
		return nil
	}
	return u.repo.Save(ctx, c, expected, port.Mutation{})
}

// transitioned records a terminal transition and hands the event to the
// publisher. Publishing happens after commit, so its failure is logged and
// never undoes the transition.
func (u *LedgerUseCase) transitioned(ctx context.Context, c *domain.Campaign, t domain.EventType) {
	u.metrics.CampaignTransitioned(c.Status)
	u.logger.Info("campaign closed",
		slog.String("campaign_id", c.ID.String()),
		slog.String("status", string(c.Status)),
		slog.String("current_qty", c.CurrentQty.String()),
		slog.String("target_qty", c.TargetQty.String()),
	)
	if u.publisher == nil {
		return
	}
	at := u.now()
	if t == domain.EventCampaignFulfilled && c.FulfilledAt != nil {
		at = *c.FulfilledAt
	}
	if err := u.publisher.Publish(ctx, domain.NewCampaignEvent(t, c, at)); err != nil {
		u.logger.Error("publish campaign event",
			slog.String("campaign_id", c.ID.String()),
			slog.String("type", string(t)),
			slog.Any("error", err),
		)
	}
}

// retry runs op until it succeeds, returns a permanent error, or the
// attempt budget is spent. The last conflict is returned in that case.
// ConflictRetried is counted only when another attempt follows.
func (u *LedgerUseCase) retry(ctx context.Context, op func() error) error {
	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = u.initialBackoff
	eb.MaxInterval = 50 * u.initialBackoff
	b := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(u.maxAttempts-1)), ctx)
	return backoff.RetryNotify(op, b, func(error, time.Duration) {
		u.metrics.ConflictRetried()
	})
}

// retryable keeps conflicts retryable and makes every other error final.
func (u *LedgerUseCase) retryable(err error) error {
	if errors.Is(err, domain.ErrConflict) {
		return err
	}
	return backoff.Permanent(err)
}

func reason(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidState):
		return "invalid_state"
	case errors.Is(err, domain.ErrInvalidArgument):
		return "invalid_argument"
	case errors.Is(err, domain.ErrExpired):
		return "expired"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	default:
		return "internal"
	}
}

type nopMetrics struct{}

func (nopMetrics) ContributionAccepted()                      {}
func (nopMetrics) ContributionRejected(string)                {}
func (nopMetrics) ContributionCancelled()                     {}
func (nopMetrics) CampaignTransitioned(domain.CampaignStatus) {}
func (nopMetrics) ConflictRetried()                           {}
