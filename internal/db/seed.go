package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"viralink/internal/auth"
	"viralink/internal/tracking"
)

// Seed inserts demo marketplace data: a few creators with campaigns and
// a few promoters enrolled in them, plus some recorded clicks. All demo
// accounts share the password "password123". Intended for local
// development only; every insert is idempotent.
func Seed(ctx context.Context, db *pgxpool.Pool, baseURL string) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	hash, err := auth.HashPassword("password123")
	if err != nil {
		return err
	}

	creators := make([]uuid.UUID, 0, 3)
	for i := 1; i <= 3; i++ {
		id, err := seedUser(ctx, db, fmt.Sprintf("Demo Creator %d", i),
			fmt.Sprintf("creator%d@viralink.dev", i), hash, "creator")
		if err != nil {
			return err
		}
		creators = append(creators, id)
	}

	promoters := make([]uuid.UUID, 0, 5)
	for i := 1; i <= 5; i++ {
		id, err := seedUser(ctx, db, fmt.Sprintf("Demo Promoter %d", i),
			fmt.Sprintf("promoter%d@viralink.dev", i), hash, "promoter")
		if err != nil {
			return err
		}
		promoters = append(promoters, id)
	}

	rewardModels := []string{"ppc", "ppa", "ppe"}
	objectives := []string{"awareness", "traffic", "conversions"}

	for i, creatorID := range creators {
		for j := 1; j <= 2; j++ {
			campaignID := uuid.New()
			title := fmt.Sprintf("Launch Wave %d-%d", i+1, j)
			budget := int64(50000 + r.Intn(10)*10000) // 500.00 and up
			rate := int64(25 + r.Intn(4)*25)          // 0.25 .. 1.00 per click
			model := rewardModels[r.Intn(len(rewardModels))]
			status := "active"
			if j == 2 && i == 2 {
				status = "paused"
			}
			tag, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, creator_id, title, description, objective, budget, reward_model,
     reward_rate, content_link, instructions, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,now())
ON CONFLICT DO NOTHING`,
				campaignID, creatorID, title,
				"Help us spread the word about our latest release.",
				objectives[r.Intn(len(objectives))], budget, model, rate,
				fmt.Sprintf("https://example.com/content/%d-%d", i+1, j),
				"Share the tracking link with your audience.", status)
			if err != nil {
				return err
			}
			if tag.RowsAffected() == 0 {
				continue
			}

			// enroll a couple of promoters and record some clicks
			for _, promoterID := range promoters[:2+r.Intn(3)] {
				code := tracking.NewCode()
				clicks := int64(r.Intn(40))
				var earnings int64
				if model == "ppc" {
					earnings = clicks * rate
				}
				_, err = db.Exec(ctx, `INSERT INTO enrollments
    (id, promoter_id, campaign_id, tracking_code, tracking_link, status,
     clicks, earnings, joined_at)
VALUES ($1,$2,$3,$4,$5,'active',$6,$7,now())
ON CONFLICT DO NOTHING`,
					uuid.New(), promoterID, campaignID, code,
					tracking.Link(baseURL, code), clicks, earnings)
				if err != nil {
					return err
				}
				_, err = db.Exec(ctx, `UPDATE campaigns
SET promoters_count = promoters_count + 1,
    clicks_count    = clicks_count + $2,
    spent_budget    = spent_budget + $3
WHERE id = $1`, campaignID, clicks, earnings)
				if err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func seedUser(ctx context.Context, db *pgxpool.Pool, name, email, hash, role string) (uuid.UUID, error) {
	id := uuid.New()
	err := db.QueryRow(ctx, `INSERT INTO users (id, name, email, password_hash, role, created_at)
VALUES ($1,$2,$3,$4,$5,now())
ON CONFLICT (email) DO UPDATE SET name = excluded.name
RETURNING id`, id, name, email, hash, role).Scan(&id)
	if err != nil {
		return uuid.Nil, err
	}
	_, err = db.Exec(ctx, `INSERT INTO profiles (id, name, email, role, created_at)
VALUES ($1,$2,$3,$4,now()) ON CONFLICT (id) DO NOTHING`, id, name, email, role)
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
