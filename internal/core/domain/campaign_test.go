package domain

import (
	"errors"
	"strings"
	"testing"
)

func validDraft() CampaignDraft {
	return CampaignDraft{
		Title:       "Spring launch",
		Description: "Promote the new album",
		Objective:   "traffic",
		Budget:      50000,
		RewardModel: "ppc",
		RewardRate:  50,
		ContentLink: "https://example.com/album",
	}
}

func TestDraftValidateAccepts(t *testing.T) {
	if err := validDraft().Validate(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}
}

func TestDraftValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CampaignDraft)
		field  string
	}{
		{"blank title", func(d *CampaignDraft) { d.Title = "  " }, "title"},
		{"long title", func(d *CampaignDraft) { d.Title = strings.Repeat("x", 101) }, "title"},
		{"zero budget", func(d *CampaignDraft) { d.Budget = 0 }, "budget"},
		{"negative rate", func(d *CampaignDraft) { d.RewardRate = -1 }, "rewardRate"},
		{"bad reward model", func(d *CampaignDraft) { d.RewardModel = "cpm" }, "rewardModel"},
		{"relative link", func(d *CampaignDraft) { d.ContentLink = "/video/1" }, "contentLink"},
		{"ftp link", func(d *CampaignDraft) { d.ContentLink = "ftp://example.com/x" }, "contentLink"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)

			err := d.Validate()
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("got %v, want a ValidationError", err)
			}
			if len(verr.Fields) != 1 || verr.Fields[0].Field != tc.field {
				t.Fatalf("got fields %+v, want exactly one on %q", verr.Fields, tc.field)
			}
		})
	}
}

func TestParseCampaignStatus(t *testing.T) {
	if _, ok := ParseCampaignStatus("active"); !ok {
		t.Fatalf("active rejected")
	}
	if _, ok := ParseCampaignStatus("archived"); ok {
		t.Fatalf("archived accepted")
	}
}
