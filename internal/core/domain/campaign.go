package domain

import (
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// CampaignStatus is the lifecycle state of a campaign. Only the
// active<->paused transition is reachable through the API; completed is
// terminal.
type CampaignStatus string

const (
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
)

// ParseCampaignStatus validates a textual status value.
func ParseCampaignStatus(s string) (CampaignStatus, bool) {
	switch CampaignStatus(s) {
	case CampaignActive, CampaignPaused, CampaignCompleted:
		return CampaignStatus(s), true
	}
	return "", false
}

// RewardModel is the pricing basis for promoter payouts: per click (ppc),
// per acquisition (ppa) or per engagement (ppe).
type RewardModel string

const (
	RewardPerClick       RewardModel = "ppc"
	RewardPerAcquisition RewardModel = "ppa"
	RewardPerEngagement  RewardModel = "ppe"
)

// ParseRewardModel validates a textual reward model value.
func ParseRewardModel(s string) (RewardModel, bool) {
	switch RewardModel(s) {
	case RewardPerClick, RewardPerAcquisition, RewardPerEngagement:
		return RewardModel(s), true
	}
	return "", false
}

// Campaign represents a funded promotional offer owned by a creator
// profile. Monetary amounts (Budget, RewardRate, SpentBudget) are stored
// in integer cents. PromotersCount is maintained by the enrollment
// workflow and must equal the number of enrollment rows referencing the
// campaign.
type Campaign struct {
	ID             uuid.UUID      `json:"id"`
	CreatorID      uuid.UUID      `json:"creatorId"`
	Title          string         `json:"title"`
	Description    string         `json:"description"`
	Objective      string         `json:"objective"`
	Budget         int64          `json:"budget"`
	RewardModel    RewardModel    `json:"rewardModel"`
	RewardRate     int64          `json:"rewardRate"`
	ContentLink    string         `json:"contentLink"`
	Instructions   string         `json:"instructions"`
	Status         CampaignStatus `json:"status"`
	PromotersCount int64          `json:"promotersCount"`
	ClicksCount    int64          `json:"clicksCount"`
	SpentBudget    int64          `json:"spentBudget"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// CampaignDraft carries validated input for campaign creation.
type CampaignDraft struct {
	Title        string
	Description  string
	Objective    string
	Budget       int64
	RewardModel  string
	RewardRate   int64
	ContentLink  string
	Instructions string
}

// maxTitleLen mirrors the limit enforced by the web client.
const maxTitleLen = 100

// Validate checks the draft and returns a ValidationError listing every
// offending field, or nil when the draft is acceptable. Invalid values
// are rejected, never coerced.
func (d CampaignDraft) Validate() error {
	var fields []FieldError
	if strings.TrimSpace(d.Title) == "" {
		fields = append(fields, FieldError{Field: "title", Message: "title is required"})
	} else if len(d.Title) > maxTitleLen {
		fields = append(fields, FieldError{Field: "title", Message: "title must be at most 100 characters"})
	}
	if strings.TrimSpace(d.Description) == "" {
		fields = append(fields, FieldError{Field: "description", Message: "description is required"})
	}
	if strings.TrimSpace(d.Objective) == "" {
		fields = append(fields, FieldError{Field: "objective", Message: "objective is required"})
	}
	if d.Budget <= 0 {
		fields = append(fields, FieldError{Field: "budget", Message: "budget must be positive"})
	}
	if _, ok := ParseRewardModel(d.RewardModel); !ok {
		fields = append(fields, FieldError{Field: "rewardModel", Message: "rewardModel must be one of ppc, ppa, ppe"})
	}
	if d.RewardRate <= 0 {
		fields = append(fields, FieldError{Field: "rewardRate", Message: "rewardRate must be positive"})
	}
	if !validHTTPURL(d.ContentLink) {
		fields = append(fields, FieldError{Field: "contentLink", Message: "contentLink must be a valid URL"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
