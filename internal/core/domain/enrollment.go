package domain

import (
	"time"

	"github.com/google/uuid"
)

// EnrollmentStatus is the state of a promoter-campaign link.
type EnrollmentStatus string

const (
	EnrollmentJoined EnrollmentStatus = "joined"
	EnrollmentActive EnrollmentStatus = "active"
)

// Enrollment links a promoter to a campaign they joined. At most one
// enrollment exists per (promoter, campaign) pair; the tracking code is
// globally unique and attributes clicks to this promoter. Earnings are in
// integer cents.
type Enrollment struct {
	ID           uuid.UUID        `json:"id"`
	PromoterID   uuid.UUID        `json:"promoterId"`
	CampaignID   uuid.UUID        `json:"campaignId"`
	TrackingCode string           `json:"trackingCode"`
	TrackingLink string           `json:"trackingLink"`
	Status       EnrollmentStatus `json:"status"`
	Clicks       int64            `json:"clicks"`
	Earnings     int64            `json:"earnings"`
	JoinedAt     time.Time        `json:"joinedAt"`
}
