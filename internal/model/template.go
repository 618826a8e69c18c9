package model

import (
	"time"

	"github.com/google/uuid"
)

// Frequency is how often a template is expected to be used.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// Template is a blueprint for a recurring transaction.
type Template struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Amount     int64      `json:"amount"`
	StreamID   string     `json:"streamId"`
	Note       string     `json:"note"`
	Tags       []string   `json:"tags"`
	Frequency  Frequency  `json:"frequency"`
	IsActive   bool       `json:"isActive"`
	UsageCount int        `json:"usageCount"`
	LastUsed   *time.Time `json:"lastUsed,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// NewTemplate returns an active, never-used template.
func NewTemplate(name, streamID string, amount int64, freq Frequency, now time.Time) Template {
	if freq == "" {
		freq = FrequencyMonthly
	}
	return Template{
		ID:        uuid.NewString(),
		Name:      name,
		Amount:    amount,
		StreamID:  streamID,
		Frequency: freq,
		IsActive:  true,
		CreatedAt: now,
	}
}

// TemplatePatch holds the fields an update may change.
type TemplatePatch struct {
	Name       *string
	Amount     *int64
	StreamID   *string
	Note       *string
	Tags       *[]string
	Frequency  *Frequency
	IsActive   *bool
	UsageCount *int
	LastUsed   *time.Time
}

// Apply merges the patch into t.
func (p TemplatePatch) Apply(t Template) Template {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.StreamID != nil {
		t.StreamID = *p.StreamID
	}
	if p.Note != nil {
		t.Note = *p.Note
	}
	if p.Tags != nil {
		t.Tags = cloneStrings(*p.Tags)
	}
	if p.Frequency != nil {
		t.Frequency = *p.Frequency
	}
	if p.IsActive != nil {
		t.IsActive = *p.IsActive
	}
	if p.UsageCount != nil {
		t.UsageCount = *p.UsageCount
	}
	if p.LastUsed != nil {
		lu := *p.LastUsed
		t.LastUsed = &lu
	}
	return t
}
