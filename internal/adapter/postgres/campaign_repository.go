package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"saathi-bazaar/internal/core/domain"
	"saathi-bazaar/internal/core/port"
)

const campaignColumns = `id, item_name, unit, cluster_location, target_qty, current_qty,
            individual_price, bulk_price, deadline, status, fulfilled_at, version, created_at, updated_at`

// querier is the read side shared by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Contributions live in their own table and are always written
// in the same transaction as the owning campaign row.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Create inserts the campaign and its opening contributions.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) (err error) {
	if err = c.Validate(); err != nil {
		return err
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	c.Version = 1
	_, err = tx.Exec(ctx, `INSERT INTO bulk_campaigns
    (id, item_name, unit, cluster_location, target_qty, current_qty, individual_price, bulk_price,
     deadline, status, fulfilled_at, version, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		c.ID, c.ItemName, c.Unit, c.ClusterLocation, c.TargetQty, c.CurrentQty, c.IndividualPrice, c.BulkPrice,
		c.Deadline, string(c.Status), c.FulfilledAt, c.Version, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert campaign: %w", err)
	}
	return insertContributions(ctx, tx, c.ID, c.Contributions)
}

// Get returns a campaign by id together with its contributions.
func (r *CampaignRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM bulk_campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err = loadContributions(ctx, r.pool, []*domain.Campaign{&c}); err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByStatus returns campaigns in the given status ordered by deadline.
func (r *CampaignRepository) ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM bulk_campaigns
        WHERE status = $1 ORDER BY deadline, id`, string(status))
}

// ListOverdue returns open campaigns whose deadline is not after now.
func (r *CampaignRepository) ListOverdue(ctx context.Context, now time.Time) ([]domain.Campaign, error) {
	return r.list(ctx, `SELECT `+campaignColumns+` FROM bulk_campaigns
        WHERE status = 'open' AND deadline <= $1 ORDER BY deadline, id`, now.UTC())
}

// AddContribution raises current_qty with one conditional UPDATE. Row
// locking serialises concurrent contributors and each re-checks the WHERE
// clause against the committed row, so no increment is lost and only one
// of them can flip the campaign to fulfilled.
func (r *CampaignRepository) AddContribution(ctx context.Context, id uuid.UUID, ct domain.Contribution) (_ *domain.Campaign, _ bool, err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	if err != nil {
		return nil, false, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	row := tx.QueryRow(ctx, `UPDATE bulk_campaigns
        SET current_qty  = current_qty + $2,
            status       = CASE WHEN current_qty + $2 >= target_qty THEN 'fulfilled' ELSE status END,
            fulfilled_at = CASE WHEN current_qty + $2 >= target_qty THEN $3 ELSE fulfilled_at END,
            updated_at   = $3,
            version      = version + 1
        WHERE id = $1 AND status = 'open' AND deadline > $3
        RETURNING `+campaignColumns, id, ct.Quantity, ct.ContributedAt)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		err = contributionFailure(ctx, tx, id, ct.ContributedAt)
		return nil, false, err
	}
	if err != nil {
		return nil, false, fmt.Errorf("increment campaign: %w", err)
	}

	if err = insertContributions(ctx, tx, id, []domain.Contribution{ct}); err != nil {
		return nil, false, err
	}
	if err = checkSum(ctx, tx, id, c.CurrentQty); err != nil {
		return nil, false, err
	}
	if err = loadContributions(ctx, tx, []*domain.Campaign{&c}); err != nil {
		return nil, false, err
	}
	return &c, c.Status == domain.StatusFulfilled, nil
}

// Save applies a compare-and-swap on version. The campaign row update, the
// contribution inserts and deletes and a sum check run in one transaction,
// so either all of them are visible or none.
func (r *CampaignRepository) Save(ctx context.Context, c *domain.Campaign, expectedVersion int64, m port.Mutation) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		err = tx.Commit(ctx)
	}()

	tag, err := tx.Exec(ctx, `UPDATE bulk_campaigns
        SET current_qty = $3, status = $4, fulfilled_at = $5, updated_at = $6, version = version + 1
        WHERE id = $1 AND version = $2 AND status = 'open'`,
		c.ID, expectedVersion, c.CurrentQty, string(c.Status), c.FulfilledAt, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update campaign: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return r.casFailure(ctx, tx, c.ID, expectedVersion)
	}

	if len(m.Removed) > 0 {
		ids := make([]string, 0, len(m.Removed))
		for _, id := range m.Removed {
			ids = append(ids, id.String())
		}
		if _, err = tx.Exec(ctx, `DELETE FROM bulk_contributions
            WHERE campaign_id = $1 AND id = ANY($2::uuid[])`, c.ID, ids); err != nil {
			return fmt.Errorf("delete contributions: %w", err)
		}
	}
	if err = insertContributions(ctx, tx, c.ID, m.Added); err != nil {
		return err
	}

	if err = checkSum(ctx, tx, c.ID, c.CurrentQty); err != nil {
		return err
	}

	c.Version = expectedVersion + 1
	return nil
}

// casFailure explains why the conditional update matched no row.
func (r *CampaignRepository) casFailure(ctx context.Context, tx pgx.Tx, id uuid.UUID, expectedVersion int64) error {
	var (
		version int64
		status  string
	)
	err := tx.QueryRow(ctx, `SELECT version, status FROM bulk_campaigns WHERE id = $1`, id).Scan(&version, &status)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if version != expectedVersion {
		return fmt.Errorf("campaign %s at version %d, expected %d: %w", id, version, expectedVersion, domain.ErrConflict)
	}
	return fmt.Errorf("campaign %s is %s: %w", id, status, domain.ErrInvalidState)
}

// contributionFailure explains why the conditional increment matched no row.
func contributionFailure(ctx context.Context, tx pgx.Tx, id uuid.UUID, at time.Time) error {
	var (
		status   string
		deadline time.Time
	)
	err := tx.QueryRow(ctx, `SELECT status, deadline FROM bulk_campaigns WHERE id = $1`, id).Scan(&status, &deadline)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return err
	}
	if status != string(domain.StatusOpen) {
		return fmt.Errorf("campaign %s is %s: %w", id, status, domain.ErrInvalidState)
	}
	if !at.Before(deadline) {
		return fmt.Errorf("campaign %s: %w", id, domain.ErrExpired)
	}
	return fmt.Errorf("campaign %s: increment matched no row", id)
}

// checkSum fails when current_qty no longer equals the contribution total.
func checkSum(ctx context.Context, tx pgx.Tx, id uuid.UUID, current decimal.Decimal) error {
	var sum decimal.Decimal
	err := tx.QueryRow(ctx, `SELECT COALESCE(sum(quantity), 0) FROM bulk_contributions WHERE campaign_id = $1`, id).Scan(&sum)
	if err != nil {
		return fmt.Errorf("sum contributions: %w", err)
	}
	if !sum.Equal(current) {
		return fmt.Errorf("campaign %s: current quantity %s drifted from contributions %s", id, current, sum)
	}
	return nil
}

func (r *CampaignRepository) list(ctx context.Context, query string, args ...any) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	campaigns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
	if err != nil {
		return nil, err
	}
	refs := make([]*domain.Campaign, 0, len(campaigns))
	for i := range campaigns {
		refs = append(refs, &campaigns[i])
	}
	if err = loadContributions(ctx, r.pool, refs); err != nil {
		return nil, err
	}
	return campaigns, nil
}

// loadContributions fills Contributions for every campaign with one query.
func loadContributions(ctx context.Context, q querier, campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]*domain.Campaign, len(campaigns))
	ids := make([]string, 0, len(campaigns))
	for _, c := range campaigns {
		byID[c.ID] = c
		ids = append(ids, c.ID.String())
	}
	rows, err := q.Query(ctx, `SELECT campaign_id, id, vendor_id, vendor_name, quantity, contributed_at
        FROM bulk_contributions
        WHERE campaign_id = ANY($1::uuid[])
        ORDER BY contributed_at, id`, ids)
	if err != nil {
		return err
	}
	type rawContribution struct {
		CampaignID uuid.UUID
		Ct         domain.Contribution
	}
	raw, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (rawContribution, error) {
		var rc rawContribution
		err := row.Scan(&rc.CampaignID, &rc.Ct.ID, &rc.Ct.VendorID, &rc.Ct.VendorName, &rc.Ct.Quantity, &rc.Ct.ContributedAt)
		return rc, err
	})
	if err != nil {
		return err
	}
	for _, rc := range raw {
		if c, ok := byID[rc.CampaignID]; ok {
			c.Contributions = append(c.Contributions, rc.Ct)
		}
	}
	return nil
}

func insertContributions(ctx context.Context, tx pgx.Tx, campaignID uuid.UUID, cts []domain.Contribution) error {
	for _, ct := range cts {
		_, err := tx.Exec(ctx, `INSERT INTO bulk_contributions
    (id, campaign_id, vendor_id, vendor_name, quantity, contributed_at)
VALUES ($1,$2,$3,$4,$5,$6)`, ct.ID, campaignID, ct.VendorID, ct.VendorName, ct.Quantity, ct.ContributedAt)
		if err != nil {
			return fmt.Errorf("insert contribution: %w", err)
		}
	}
	return nil
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c      domain.Campaign
		status string
	)
	err := row.Scan(
		&c.ID,
		&c.ItemName,
		&c.Unit,
		&c.ClusterLocation,
		&c.TargetQty,
		&c.CurrentQty,
		&c.IndividualPrice,
		&c.BulkPrice,
		&c.Deadline,
		&status,
		&c.FulfilledAt,
		&c.Version,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	c.Status = domain.CampaignStatus(status)
	return c, err
}
