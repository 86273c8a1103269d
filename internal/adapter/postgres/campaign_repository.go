package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"viralink/internal/core/domain"
	"viralink/internal/core/port"
)

// campaignColumns is the canonical column list scanned into
// domain.Campaign. Keep in sync with scanCampaign.
const campaignColumns = `id, creator_id, title, description, objective, budget,
    reward_model, reward_rate, content_link, instructions, status,
    promoters_count, clicks_count, spent_budget, created_at`

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.CreatorID,
		&c.Title,
		&c.Description,
		&c.Objective,
		&c.Budget,
		&c.RewardModel,
		&c.RewardRate,
		&c.ContentLink,
		&c.Instructions,
		&c.Status,
		&c.PromotersCount,
		&c.ClicksCount,
		&c.SpentBudget,
		&c.CreatedAt,
	)
	return c, err
}

// Create inserts a campaign row.
func (r *CampaignRepository) Create(ctx context.Context, c *domain.Campaign) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO campaigns
            (id, creator_id, title, description, objective, budget, reward_model,
             reward_rate, content_link, instructions, status, promoters_count,
             clicks_count, spent_budget, created_at)
         VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)`,
		c.ID, c.CreatorID, c.Title, c.Description, c.Objective, c.Budget,
		c.RewardModel, c.RewardRate, c.ContentLink, c.Instructions, c.Status,
		c.PromotersCount, c.ClicksCount, c.SpentBudget, c.CreatedAt)
	return err
}

// GetByID returns a campaign by id, or nil when absent.
func (r *CampaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetOwned returns a campaign only when creatorID owns it, or nil.
func (r *CampaignRepository) GetOwned(ctx context.Context, id, creatorID uuid.UUID) (*domain.Campaign, error) {
	c, err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND creator_id = $2`,
		id, creatorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByCreator returns the creator's campaigns, newest first.
func (r *CampaignRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID, f port.CampaignFilter) ([]domain.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns WHERE creator_id = $1`
	args := []interface{}{creatorID}
	if f.Status != nil {
		args = append(args, *f.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	query, args = paginate(query, args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// ListDiscover returns campaigns not owned by viewerID, newest first,
// each joined with the creator's public name and an enrollment count.
func (r *CampaignRepository) ListDiscover(ctx context.Context, viewerID uuid.UUID, f port.CampaignFilter) ([]port.DiscoverRow, error) {
	query := `
        SELECT c.id, c.creator_id, c.title, c.description, c.objective, c.budget,
               c.reward_model, c.reward_rate, c.content_link, c.instructions, c.status,
               c.promoters_count, c.clicks_count, c.spent_budget, c.created_at,
               p.id, p.name,
               (SELECT count(*) FROM enrollments e WHERE e.campaign_id = c.id)
        FROM campaigns c
        JOIN profiles p ON p.id = c.creator_id
        WHERE c.creator_id <> $1`
	args := []interface{}{viewerID}
	if f.Status != nil {
		args = append(args, *f.Status)
		query += fmt.Sprintf(" AND c.status = $%d", len(args))
	}
	query += " ORDER BY c.created_at DESC"
	query, args = paginate(query, args, f.Limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.DiscoverRow, error) {
		var d port.DiscoverRow
		err := row.Scan(
			&d.Campaign.ID,
			&d.Campaign.CreatorID,
			&d.Campaign.Title,
			&d.Campaign.Description,
			&d.Campaign.Objective,
			&d.Campaign.Budget,
			&d.Campaign.RewardModel,
			&d.Campaign.RewardRate,
			&d.Campaign.ContentLink,
			&d.Campaign.Instructions,
			&d.Campaign.Status,
			&d.Campaign.PromotersCount,
			&d.Campaign.ClicksCount,
			&d.Campaign.SpentBudget,
			&d.Campaign.CreatedAt,
			&d.Creator.ID,
			&d.Creator.Name,
			&d.Enrollments,
		)
		return d, err
	})
}

// UpdateStatus sets the status of a campaign owned by creatorID and
// reports whether a row matched.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id, creatorID uuid.UUID, status domain.CampaignStatus) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1 WHERE id = $2 AND creator_id = $3`,
		status, id, creatorID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// paginate appends LIMIT/OFFSET clauses for positive values.
func paginate(query string, args []interface{}, limit, offset int) (string, []interface{}) {
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset > 0 {
		args = append(args, offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return query, args
}
