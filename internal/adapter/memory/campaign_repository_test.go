package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saathi-bazaar/internal/core/domain"
	"saathi-bazaar/internal/core/port"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newCampaign(t *testing.T, deadline time.Duration) *domain.Campaign {
	t.Helper()
	c, err := domain.NewCampaign("Onion", "kg", "Howrah",
		decimal.NewFromInt(40), decimal.NewFromInt(10), decimal.NewFromInt(28), decimal.NewFromInt(22),
		now.Add(deadline), now)
	require.NoError(t, err)
	return c
}

func TestCreateAndGet(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	c := newCampaign(t, time.Hour)

	require.NoError(t, repo.Create(ctx, c))
	assert.EqualValues(t, 1, c.Version)
	assert.Error(t, repo.Create(ctx, c))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c, got)

	got.ItemName = "changed"
	again, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Onion", again.ItemName)

	_, err = repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSaveCompareAndSwap(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	c := newCampaign(t, time.Hour)
	require.NoError(t, repo.Create(ctx, c))

	first, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	second, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)

	ct, _, err := first.Contribute("V1", "", decimal.NewFromInt(5), now)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, first, 1, port.Mutation{Added: []domain.Contribution{ct}}))
	assert.EqualValues(t, 2, first.Version)

	ct, _, err = second.Contribute("V2", "", decimal.NewFromInt(7), now)
	require.NoError(t, err)
	err = repo.Save(ctx, second, 1, port.Mutation{Added: []domain.Contribution{ct}})
	assert.ErrorIs(t, err, domain.ErrConflict)

	stored, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentQty.Equal(decimal.NewFromInt(15)))
	assert.EqualValues(t, 2, stored.Version)
}

func TestSaveRejectsTerminal(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	c := newCampaign(t, time.Hour)
	require.NoError(t, repo.Create(ctx, c))

	require.True(t, c.Expire(c.Deadline))
	require.NoError(t, repo.Save(ctx, c, 1, port.Mutation{}))

	err := repo.Save(ctx, c, c.Version, port.Mutation{})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	err = repo.Save(ctx, newCampaign(t, time.Hour), 1, port.Mutation{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListings(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	late := newCampaign(t, 3*time.Hour)
	early := newCampaign(t, time.Hour)
	closed := newCampaign(t, 2*time.Hour)
	for _, c := range []*domain.Campaign{late, early, closed} {
		require.NoError(t, repo.Create(ctx, c))
	}
	closed.Expire(closed.Deadline)
	require.NoError(t, repo.Save(ctx, closed, 1, port.Mutation{}))

	open, err := repo.ListByStatus(ctx, domain.StatusOpen)
	require.NoError(t, err)
	require.Len(t, open, 2)
	assert.Equal(t, early.ID, open[0].ID)
	assert.Equal(t, late.ID, open[1].ID)

	overdue, err := repo.ListOverdue(ctx, now.Add(2*time.Hour))
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, early.ID, overdue[0].ID)
}

func TestAddContribution(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	c := newCampaign(t, time.Hour)
	require.NoError(t, repo.Create(ctx, c))

	const workers = 30
	var wg sync.WaitGroup
	fulfilled := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ct, err := domain.NewContribution(uuid.NewString(), "", decimal.NewFromInt(1), now)
			if !assert.NoError(t, err) {
				return
			}
			_, ok, err := repo.AddContribution(ctx, c.ID, ct)
			assert.NoError(t, err)
			fulfilled <- ok
		}()
	}
	wg.Wait()
	close(fulfilled)
	count := 0
	for ok := range fulfilled {
		if ok {
			count++
		}
	}
	assert.Equal(t, 1, count)

	stored, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, stored.CurrentQty.Equal(decimal.NewFromInt(40)))
	assert.Equal(t, domain.StatusFulfilled, stored.Status)
	assert.EqualValues(t, 1+workers, stored.Version)

	ct, err := domain.NewContribution("late", "", decimal.NewFromInt(1), now)
	require.NoError(t, err)
	_, _, err = repo.AddContribution(ctx, c.ID, ct)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	_, _, err = repo.AddContribution(ctx, uuid.New(), ct)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddContributionPastDeadline(t *testing.T) {
	repo := NewCampaignRepository()
	ctx := context.Background()
	c := newCampaign(t, time.Hour)
	require.NoError(t, repo.Create(ctx, c))

	ct, err := domain.NewContribution("V1", "", decimal.NewFromInt(1), c.Deadline)
	require.NoError(t, err)
	_, _, err = repo.AddContribution(ctx, c.ID, ct)
	assert.ErrorIs(t, err, domain.ErrExpired)

	stored, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, stored.Status)
	assert.EqualValues(t, 1, stored.Version)
}
