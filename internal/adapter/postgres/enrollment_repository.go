package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"viralink/internal/core/domain"
	"viralink/internal/core/port"
)

const enrollmentColumns = `id, promoter_id, campaign_id, tracking_code,
    tracking_link, status, clicks, earnings, joined_at`

// database is the subset of pgxpool.Pool the repository needs. Tests
// substitute it to drive the transactional paths.
type database interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// EnrollmentRepository implements port.EnrollmentRepository using pgxpool.
// The write methods keep campaign counters consistent inside a single
// transaction.
type EnrollmentRepository struct {
	pool database
}

// NewEnrollmentRepository returns a new repository instance.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

func scanEnrollment(row pgx.Row) (domain.Enrollment, error) {
	var e domain.Enrollment
	err := row.Scan(
		&e.ID,
		&e.PromoterID,
		&e.CampaignID,
		&e.TrackingCode,
		&e.TrackingLink,
		&e.Status,
		&e.Clicks,
		&e.Earnings,
		&e.JoinedAt,
	)
	return e, err
}

// GetByPromoterAndCampaign returns the enrollment for the pair, or nil.
func (r *EnrollmentRepository) GetByPromoterAndCampaign(ctx context.Context, promoterID, campaignID uuid.UUID) (*domain.Enrollment, error) {
	e, err := scanEnrollment(r.pool.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE promoter_id = $1 AND campaign_id = $2`,
		promoterID, campaignID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create inserts the enrollment and increments the campaign's
// promoters_count in one transaction. The unique constraint on
// (promoter_id, campaign_id) resolves concurrent duplicate joins: the
// loser gets ErrDuplicateEnrollment and neither write persists. The
// return is named so the deferred commit's failure reaches the caller.
func (r *EnrollmentRepository) Create(ctx context.Context, e *domain.Enrollment) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx,
		`INSERT INTO enrollments
            (id, promoter_id, campaign_id, tracking_code, tracking_link, status,
             clicks, earnings, joined_at)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		e.ID, e.PromoterID, e.CampaignID, e.TrackingCode, e.TrackingLink,
		e.Status, e.Clicks, e.Earnings, e.JoinedAt)
	if isUniqueViolation(err) {
		err = port.ErrDuplicateEnrollment
		return err
	}
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET promoters_count = promoters_count + 1 WHERE id = $1`,
		e.CampaignID)
	return err
}

// GetByTrackingCode returns the enrollment owning the code, or nil.
func (r *EnrollmentRepository) GetByTrackingCode(ctx context.Context, code string) (*domain.Enrollment, error) {
	e, err := scanEnrollment(r.pool.QueryRow(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE tracking_code = $1`, code))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// RecordClick increments the enrollment's clicks and earnings together
// with the campaign's clicks_count and spent_budget. The campaign row is
// locked so the budget check and the increments cannot interleave with a
// concurrent click. The return is named so the deferred commit's failure
// reaches the caller.
func (r *EnrollmentRepository) RecordClick(ctx context.Context, enrollmentID uuid.UUID, earnings int64) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var campaignID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT campaign_id FROM enrollments WHERE id = $1`, enrollmentID).Scan(&campaignID)
	if err != nil {
		return err
	}

	var budget, spent int64
	err = tx.QueryRow(ctx,
		`SELECT budget, spent_budget FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).
		Scan(&budget, &spent)
	if err != nil {
		return err
	}
	if earnings > 0 && spent+earnings > budget {
		err = port.ErrBudgetExhausted
		return err
	}

	_, err = tx.Exec(ctx,
		`UPDATE enrollments SET clicks = clicks + 1, earnings = earnings + $1 WHERE id = $2`,
		earnings, enrollmentID)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx,
		`UPDATE campaigns SET clicks_count = clicks_count + 1, spent_budget = spent_budget + $1 WHERE id = $2`,
		earnings, campaignID)
	return err
}

// ListByCampaign returns a campaign's enrollments with promoter names,
// newest first.
func (r *EnrollmentRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]port.EnrollmentWithPromoter, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT e.id, e.promoter_id, e.campaign_id, e.tracking_code, e.tracking_link,
               e.status, e.clicks, e.earnings, e.joined_at,
               p.id, p.name
        FROM enrollments e
        JOIN profiles p ON p.id = e.promoter_id
        WHERE e.campaign_id = $1
        ORDER BY e.joined_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.EnrollmentWithPromoter, error) {
		var ep port.EnrollmentWithPromoter
		err := row.Scan(
			&ep.Enrollment.ID,
			&ep.Enrollment.PromoterID,
			&ep.Enrollment.CampaignID,
			&ep.Enrollment.TrackingCode,
			&ep.Enrollment.TrackingLink,
			&ep.Enrollment.Status,
			&ep.Enrollment.Clicks,
			&ep.Enrollment.Earnings,
			&ep.Enrollment.JoinedAt,
			&ep.Promoter.ID,
			&ep.Promoter.Name,
		)
		return ep, err
	})
}

// ListByCampaigns returns all enrollments referencing any of the given
// campaigns.
func (r *EnrollmentRepository) ListByCampaigns(ctx context.Context, campaignIDs []uuid.UUID) ([]domain.Enrollment, error) {
	if len(campaignIDs) == 0 {
		return nil, nil
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+enrollmentColumns+` FROM enrollments WHERE campaign_id = ANY($1)`,
		campaignIDs)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Enrollment, error) {
		return scanEnrollment(row)
	})
}

// ListByPromoter returns the promoter's enrollments with their campaigns,
// newest first.
func (r *EnrollmentRepository) ListByPromoter(ctx context.Context, promoterID uuid.UUID) ([]port.EnrollmentWithCampaign, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT e.id, e.promoter_id, e.campaign_id, e.tracking_code, e.tracking_link,
               e.status, e.clicks, e.earnings, e.joined_at,
               c.id, c.creator_id, c.title, c.description, c.objective, c.budget,
               c.reward_model, c.reward_rate, c.content_link, c.instructions, c.status,
               c.promoters_count, c.clicks_count, c.spent_budget, c.created_at
        FROM enrollments e
        JOIN campaigns c ON c.id = e.campaign_id
        WHERE e.promoter_id = $1
        ORDER BY e.joined_at DESC`, promoterID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.EnrollmentWithCampaign, error) {
		var ec port.EnrollmentWithCampaign
		err := row.Scan(
			&ec.Enrollment.ID,
			&ec.Enrollment.PromoterID,
			&ec.Enrollment.CampaignID,
			&ec.Enrollment.TrackingCode,
			&ec.Enrollment.TrackingLink,
			&ec.Enrollment.Status,
			&ec.Enrollment.Clicks,
			&ec.Enrollment.Earnings,
			&ec.Enrollment.JoinedAt,
			&ec.Campaign.ID,
			&ec.Campaign.CreatorID,
			&ec.Campaign.Title,
			&ec.Campaign.Description,
			&ec.Campaign.Objective,
			&ec.Campaign.Budget,
			&ec.Campaign.RewardModel,
			&ec.Campaign.RewardRate,
			&ec.Campaign.ContentLink,
			&ec.Campaign.Instructions,
			&ec.Campaign.Status,
			&ec.Campaign.PromotersCount,
			&ec.Campaign.ClicksCount,
			&ec.Campaign.SpentBudget,
			&ec.Campaign.CreatedAt,
		)
		return ec, err
	})
}
