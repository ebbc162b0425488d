package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"saathi-bazaar/internal/adapter/memory"
	"saathi-bazaar/internal/core/domain"
	"saathi-bazaar/internal/core/port"
	"saathi-bazaar/internal/core/port/mocks"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func dec(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type fixture struct {
	repo  *memory.CampaignRepository
	clock *fakeClock
	svc   *LedgerUseCase
}

func newFixture(t *testing.T, publisher port.EventPublisher, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		repo:  memory.NewCampaignRepository(),
		clock: &fakeClock{t: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)},
	}
	opts = append([]Option{WithClock(f.clock.Now), WithRetry(5, time.Millisecond)}, opts...)
	f.svc = NewLedgerUseCase(f.repo, publisher, discardLogger(), opts...)
	return f
}

func (f *fixture) create(t *testing.T, target, current string, deadline time.Duration) *domain.Campaign {
	t.Helper()
	c, err := f.svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		ItemName:        "Tomato",
		Unit:            "kg",
		ClusterLocation: "Sealdah_North",
		TargetQty:       dec(target),
		CurrentQty:      dec(current),
		IndividualPrice: dec("45"),
		BulkPrice:       dec("30"),
		Deadline:        f.clock.Now().Add(deadline),
	})
	require.NoError(t, err)
	return c
}

func TestContributeReachesTarget(t *testing.T) {
	pub := mocks.NewMockEventPublisher(t)
	f := newFixture(t, pub)
	c := f.create(t, "50", "25", 48*time.Hour)

	pub.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.CampaignEvent) bool {
			return e.Type == domain.EventCampaignFulfilled &&
				e.CampaignID == c.ID &&
				e.FinalQty.Equal(dec("50")) &&
				len(e.Contributors) == 2 &&
				e.Contributors[1].VendorID == "V1"
		})).
		Return(nil).
		Once()

	res, err := f.svc.Contribute(context.Background(), port.ContributeReq{
		CampaignID: c.ID, VendorID: "V1", VendorName: "Ravi", Quantity: dec("25"),
	})
	require.NoError(t, err)
	assert.True(t, res.Fulfilled)
	assert.Equal(t, domain.StatusFulfilled, res.Campaign.Status)
	assert.True(t, res.Campaign.CurrentQty.Equal(dec("50")))
	require.NotNil(t, res.Campaign.FulfilledAt)
	assert.Equal(t, f.clock.Now(), *res.Campaign.FulfilledAt)

	stored, err := f.repo.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFulfilled, stored.Status)
	assert.True(t, stored.CurrentQty.Equal(stored.Sum()))
}

func TestContributeBelowTargetStaysOpen(t *testing.T) {
	f := newFixture(t, nil)
	c := f.create(t, "50", "25", 48*time.Hour)

	res, err := f.svc.Contribute(context.Background(), port.ContributeReq{
		CampaignID: c.ID, VendorID: "V1", Quantity: dec("24.5"),
	})
	require.NoError(t, err)
	assert.False(t, res.Fulfilled)
	assert.Equal(t, domain.StatusOpen, res.Campaign.Status)
	assert.True(t, res.Campaign.Remaining().Equal(dec("0.5")))
}

func TestContributeOverdueFailsCampaign(t *testing.T) {
	pub := mocks.NewMockEventPublisher(t)
	f := newFixture(t, pub)
	c := f.create(t, "50", "10", time.Hour)
	f.clock.Advance(time.Hour)

	pub.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.CampaignEvent) bool {
			return e.Type == domain.EventCampaignFailed && e.CampaignID == c.ID
		})).
		Return(nil).
		Once()

	_, err := f.svc.Contribute(context.Background(), port.ContributeReq{
		CampaignID: c.ID, VendorID: "V1", Quantity: dec("5"),
	})
	require.ErrorIs(t, err, domain.ErrExpired)

	stored, err := f.repo.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, stored.Status)
	assert.True(t, stored.CurrentQty.Equal(dec("10")))
}

func TestContributeRejections(t *testing.T) {
	f := newFixture(t, nil)
	open := f.create(t, "50", "0", 48*time.Hour)
	full := f.create(t, "10", "0", 48*time.Hour)
	_, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: full.ID, VendorID: "V1", Quantity: dec("10")})
	require.NoError(t, err)

	cases := []struct {
		name string
		req  port.ContributeReq
		want error
	}{
		{"negative quantity", port.ContributeReq{CampaignID: open.ID, VendorID: "V1", Quantity: dec("-5")}, domain.ErrInvalidArgument},
		{"zero quantity", port.ContributeReq{CampaignID: open.ID, VendorID: "V1", Quantity: decimal.Zero}, domain.ErrInvalidArgument},
		{"missing vendor", port.ContributeReq{CampaignID: open.ID, Quantity: dec("1")}, domain.ErrInvalidArgument},
		{"seed vendor", port.ContributeReq{CampaignID: open.ID, VendorID: domain.SeedVendorID, Quantity: dec("1")}, domain.ErrInvalidArgument},
		{"unknown campaign", port.ContributeReq{CampaignID: uuid.New(), VendorID: "V1", Quantity: dec("1")}, domain.ErrNotFound},
		{"already fulfilled", port.ContributeReq{CampaignID: full.ID, VendorID: "V2", Quantity: dec("5")}, domain.ErrInvalidState},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Contribute(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	stored, err := f.repo.Get(context.Background(), open.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentQty.IsZero())
	assert.Empty(t, stored.Contributions)
}

func TestConcurrentContributionsAreNotLost(t *testing.T) {
	const workers = 20
	f := newFixture(t, nil)
	c := f.create(t, "1000", "0", 48*time.Hour)

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Contribute(context.Background(), port.ContributeReq{
				CampaignID: c.ID, VendorID: uuid.NewString(), Quantity: dec("2.5"),
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := f.repo.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentQty.Equal(dec("50")), "current_qty = %s", stored.CurrentQty)
	assert.Len(t, stored.Contributions, workers)
}

func TestConcurrentContributionsFulfillOnce(t *testing.T) {
	const workers = 20
	pub := mocks.NewMockEventPublisher(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
	f := newFixture(t, pub)
	c := f.create(t, "10", "0", 48*time.Hour)

	var (
		wg        sync.WaitGroup
		accepted  atomic.Int32
		fulfilled atomic.Int32
		rejected  atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.svc.Contribute(context.Background(), port.ContributeReq{
				CampaignID: c.ID, VendorID: uuid.NewString(), Quantity: dec("1"),
			})
			switch {
			case err == nil:
				accepted.Add(1)
				if res.Fulfilled {
					fulfilled.Add(1)
				}
			case errors.Is(err, domain.ErrInvalidState):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 10, accepted.Load())
	assert.EqualValues(t, 1, fulfilled.Load())
	assert.EqualValues(t, 10, rejected.Load())

	stored, err := f.repo.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFulfilled, stored.Status)
	assert.True(t, stored.CurrentQty.Equal(dec("10")))
}

// slowRepository adds storage latency so that concurrent writers overlap.
type slowRepository struct {
	*memory.CampaignRepository
	delay time.Duration
}

func (r slowRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	time.Sleep(r.delay)
	return r.CampaignRepository.Get(ctx, id)
}

func (r slowRepository) AddContribution(ctx context.Context, id uuid.UUID, ct domain.Contribution) (*domain.Campaign, bool, error) {
	time.Sleep(r.delay)
	c, fulfilled, err := r.CampaignRepository.AddContribution(ctx, id, ct)
	time.Sleep(r.delay)
	return c, fulfilled, err
}

func (r slowRepository) Save(ctx context.Context, c *domain.Campaign, expectedVersion int64, m port.Mutation) error {
	time.Sleep(2 * r.delay)
	return r.CampaignRepository.Save(ctx, c, expectedVersion, m)
}

func TestConcurrentContributionsWithSlowStorage(t *testing.T) {
	const workers = 100
	repo := slowRepository{CampaignRepository: memory.NewCampaignRepository(), delay: time.Millisecond}
	svc := NewLedgerUseCase(repo, nil, discardLogger())

	c, err := svc.CreateCampaign(context.Background(), port.CreateCampaignReq{
		ItemName: "Onion", Unit: "kg", ClusterLocation: "Howrah",
		TargetQty: dec("1000"), IndividualPrice: dec("28"), BulkPrice: dec("22"),
		Deadline: time.Now().Add(time.Hour),
	})
	require.NoError(t, err)

	var (
		wg       sync.WaitGroup
		failures atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Contribute(context.Background(), port.ContributeReq{
				CampaignID: c.ID, VendorID: uuid.NewString(), Quantity: dec("1"),
			})
			if err != nil {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Zero(t, failures.Load())
	stored, err := repo.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentQty.Equal(dec("100")), "current_qty = %s", stored.CurrentQty)
	assert.Len(t, stored.Contributions, workers)
}

func TestConflictRetriesAreBounded(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	c, err := domain.NewCampaign("Onion", "kg", "Howrah", dec("40"), dec("10"), dec("28"), dec("22"), now.Add(time.Hour), now)
	require.NoError(t, err)
	_, _, err = c.Contribute("V1", "", dec("2"), now)
	require.NoError(t, err)
	c.Version = 7

	repo.EXPECT().
		Get(mock.Anything, c.ID).
		RunAndReturn(func(context.Context, uuid.UUID) (*domain.Campaign, error) { return c.Clone(), nil }).
		Times(3)
	repo.EXPECT().
		Save(mock.Anything, mock.Anything, int64(7), mock.MatchedBy(func(m port.Mutation) bool { return len(m.Removed) == 1 })).
		Return(domain.ErrConflict).
		Times(3)

	m := &recordingMetrics{}
	svc := NewLedgerUseCase(repo, nil, discardLogger(),
		WithClock(func() time.Time { return now }),
		WithRetry(3, time.Millisecond),
		WithMetrics(m),
	)
	_, err = svc.CancelContribution(context.Background(), c.ID, "V1")
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, 2, m.conflicts, "only conflicts followed by another attempt are counted")
}

func TestRepositoryErrorIsNotRetried(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	id := uuid.New()
	repo.EXPECT().AddContribution(mock.Anything, id, mock.Anything).Return(nil, false, assert.AnError).Once()

	svc := NewLedgerUseCase(repo, nil, discardLogger(), WithRetry(5, time.Millisecond))
	_, err := svc.Contribute(context.Background(), port.ContributeReq{CampaignID: id, VendorID: "V1", Quantity: dec("1")})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPublishFailureDoesNotUndoFulfillment(t *testing.T) {
	pub := mocks.NewMockEventPublisher(t)
	pub.EXPECT().Publish(mock.Anything, mock.Anything).Return(assert.AnError).Once()
	f := newFixture(t, pub)
	c := f.create(t, "10", "0", time.Hour)

	res, err := f.svc.Contribute(context.Background(), port.ContributeReq{CampaignID: c.ID, VendorID: "V1", Quantity: dec("12")})
	require.NoError(t, err)
	assert.True(t, res.Fulfilled)
}

func TestCancelContribution(t *testing.T) {
	f := newFixture(t, nil)
	c := f.create(t, "50", "10", 48*time.Hour)
	ctx := context.Background()

	for _, q := range []string{"3", "4"} {
		_, err := f.svc.Contribute(ctx, port.ContributeReq{CampaignID: c.ID, VendorID: "V1", Quantity: dec(q)})
		require.NoError(t, err)
	}
	_, err := f.svc.Contribute(ctx, port.ContributeReq{CampaignID: c.ID, VendorID: "V2", Quantity: dec("5")})
	require.NoError(t, err)

	res, err := f.svc.CancelContribution(ctx, c.ID, "V1")
	require.NoError(t, err)
	assert.Len(t, res.Removed, 2)
	assert.True(t, res.Quantity.Equal(dec("7")))
	assert.True(t, res.Campaign.CurrentQty.Equal(dec("15")))
	assert.True(t, res.Campaign.CurrentQty.Equal(res.Campaign.Sum()))

	_, err = f.svc.CancelContribution(ctx, c.ID, "V1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.CancelContribution(ctx, c.ID, domain.SeedVendorID)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestCancelAfterFulfillmentIsRejected(t *testing.T) {
	f := newFixture(t, nil)
	c := f.create(t, "10", "0", 48*time.Hour)
	ctx := context.Background()
	_, err := f.svc.Contribute(ctx, port.ContributeReq{CampaignID: c.ID, VendorID: "V1", Quantity: dec("10")})
	require.NoError(t, err)

	_, err = f.svc.CancelContribution(ctx, c.ID, "V1")
	assert.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestListOpenCampaigns(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()
	later := f.create(t, "50", "25", 48*time.Hour)
	sooner := f.create(t, "40", "10", 24*time.Hour)
	overdue := f.create(t, "10", "0", time.Hour)
	other, err := f.svc.CreateCampaign(ctx, port.CreateCampaignReq{
		ItemName: "Potato", Unit: "bags", ClusterLocation: "Howrah",
		TargetQty: dec("10"), IndividualPrice: dec("200"), BulkPrice: dec("150"),
		Deadline: f.clock.Now().Add(72 * time.Hour),
	})
	require.NoError(t, err)
	full := f.create(t, "10", "0", 48*time.Hour)
	_, err = f.svc.Contribute(ctx, port.ContributeReq{CampaignID: full.ID, VendorID: "V1", Quantity: dec("10")})
	require.NoError(t, err)

	f.clock.Advance(time.Hour)

	got, err := f.svc.ListOpenCampaigns(ctx, port.ListFilter{})
	require.NoError(t, err)
	ids := make([]uuid.UUID, 0, len(got))
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []uuid.UUID{sooner.ID, later.ID, other.ID}, ids)

	again, err := f.svc.ListOpenCampaigns(ctx, port.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, got, again)

	stored, err := f.repo.Get(ctx, overdue.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, stored.Status, "listing must not write")

	howrah, err := f.svc.ListOpenCampaigns(ctx, port.ListFilter{Cluster: "howrah"})
	require.NoError(t, err)
	require.Len(t, howrah, 1)
	assert.Equal(t, other.ID, howrah[0].ID)
}

func TestGetCampaignExpiresLazily(t *testing.T) {
	pub := mocks.NewMockEventPublisher(t)
	pub.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.CampaignEvent) bool { return e.Type == domain.EventCampaignFailed })).
		Return(nil).
		Once()
	f := newFixture(t, pub)
	c := f.create(t, "10", "0", time.Hour)
	f.clock.Advance(2 * time.Hour)

	got, err := f.svc.GetCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, got.Status)

	again, err := f.svc.GetCampaign(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusFailed, again.Status)

	_, err = f.svc.GetCampaign(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateCampaignValidation(t *testing.T) {
	f := newFixture(t, nil)
	base := port.CreateCampaignReq{
		ItemName: "Tomato", Unit: "kg", ClusterLocation: "Sealdah_North",
		TargetQty: dec("50"), IndividualPrice: dec("45"), BulkPrice: dec("30"),
		Deadline: f.clock.Now().Add(time.Hour),
	}

	cases := map[string]func(r *port.CreateCampaignReq){
		"deadline in the past": func(r *port.CreateCampaignReq) { r.Deadline = f.clock.Now().Add(-time.Minute) },
		"zero target":          func(r *port.CreateCampaignReq) { r.TargetQty = decimal.Zero },
		"initial meets target": func(r *port.CreateCampaignReq) { r.CurrentQty = dec("50") },
		"bulk above single":    func(r *port.CreateCampaignReq) { r.BulkPrice = dec("60") },
		"missing item":         func(r *port.CreateCampaignReq) { r.ItemName = " " },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			req := base
			mutate(&req)
			_, err := f.svc.CreateCampaign(context.Background(), req)
			assert.ErrorIs(t, err, domain.ErrInvalidCampaign)
		})
	}
}

func TestExpireOverdue(t *testing.T) {
	pub := mocks.NewMockEventPublisher(t)
	pub.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e domain.CampaignEvent) bool { return e.Type == domain.EventCampaignFailed })).
		Return(nil).
		Times(2)
	f := newFixture(t, pub)
	ctx := context.Background()
	a := f.create(t, "10", "0", time.Hour)
	b := f.create(t, "10", "5", 2*time.Hour)
	keep := f.create(t, "10", "0", 48*time.Hour)
	f.clock.Advance(3 * time.Hour)

	n, err := f.svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, id := range []uuid.UUID{a.ID, b.ID} {
		c, err := f.repo.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusFailed, c.Status)
	}
	c, err := f.repo.Get(ctx, keep.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, c.Status)

	n, err = f.svc.ExpireOverdue(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

type recordingMetrics struct {
	mu          sync.Mutex
	accepted    int
	rejected    []string
	cancelled   int
	transitions []domain.CampaignStatus
	conflicts   int
}

func (m *recordingMetrics) ContributionAccepted() {
	m.mu.Lock()
	m.accepted++
	m.mu.Unlock()
}

func (m *recordingMetrics) ContributionRejected(reason string) {
	m.mu.Lock()
	m.rejected = append(m.rejected, reason)
	m.mu.Unlock()
}

func (m *recordingMetrics) ContributionCancelled() {
	m.mu.Lock()
	m.cancelled++
	m.mu.Unlock()
}

func (m *recordingMetrics) CampaignTransitioned(s domain.CampaignStatus) {
	m.mu.Lock()
	m.transitions = append(m.transitions, s)
	m.mu.Unlock()
}

func (m *recordingMetrics) ConflictRetried() {
	m.mu.Lock()
	m.conflicts++
	m.mu.Unlock()
}

func TestMetricsAreRecorded(t *testing.T) {
	m := &recordingMetrics{}
	f := newFixture(t, nil, WithMetrics(m))
	ctx := context.Background()
	c := f.create(t, "10", "0", time.Hour)

	_, err := f.svc.Contribute(ctx, port.ContributeReq{CampaignID: c.ID, VendorID: "V1", Quantity: dec("4")})
	require.NoError(t, err)
	_, err = f.svc.Contribute(ctx, port.ContributeReq{CampaignID: c.ID, VendorID: "V1", Quantity: dec("-1")})
	require.Error(t, err)
	_, err = f.svc.CancelContribution(ctx, c.ID, "V1")
	require.NoError(t, err)
	_, err = f.svc.Contribute(ctx, port.ContributeReq{CampaignID: c.ID, VendorID: "V2", Quantity: dec("10")})
	require.NoError(t, err)

	assert.Equal(t, 2, m.accepted)
	assert.Equal(t, []string{"invalid_argument"}, m.rejected)
	assert.Equal(t, 1, m.cancelled)
	assert.Equal(t, []domain.CampaignStatus{domain.StatusFulfilled}, m.transitions)
}
