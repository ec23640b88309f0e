package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LabelLayout is the date layout used in human-readable period labels,
// e.g. "01.11.24 - 11.11.24". ParsePeriodLabel is its exact inverse.
const LabelLayout = "02.01.06"

type PlanPeriod struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	LatestChange time.Time      `gorm:"autoUpdateTime" json:"latest_change"`
	PrepDelete   gorm.DeletedAt `gorm:"index" json:"-"`
	StartDate    time.Time      `gorm:"not null;type:date;index" json:"start"`
	EndDate      time.Time      `gorm:"not null;type:date;index" json:"end"`
	Deadline     time.Time      `gorm:"not null;type:date" json:"deadline"`
	Notes        string         `json:"notes"`
	TeamID       uuid.UUID      `gorm:"type:uuid;not null;index" json:"team_id"`
	Team         *Team          `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

func (pp *PlanPeriod) BeforeCreate(tx *gorm.DB) error {
	if pp.ID == uuid.Nil {
		pp.ID = uuid.New()
	}
	return nil
}

// Label renders the period's display key. Labels are a presentation
// artifact: internal joins key on the period id, and two periods sharing
// start and end dates produce the same label.
func (pp *PlanPeriod) Label() string {
	return pp.StartDate.Format(LabelLayout) + " - " + pp.EndDate.Format(LabelLayout)
}

// Message is the period's notes, or a generated fallback text.
func (pp *PlanPeriod) Message() string {
	if pp.Notes != "" {
		return pp.Notes
	}
	return "Planungsperiode " + pp.Label()
}

// ParsePeriodLabel inverts Label.
func ParsePeriodLabel(label string) (start, end time.Time, err error) {
	parts := strings.Split(label, " - ")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed period label %q", label)
	}
	start, err = time.Parse(LabelLayout, parts[0])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed period label %q: %w", label, err)
	}
	end, err = time.Parse(LabelLayout, parts[1])
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("malformed period label %q: %w", label, err)
	}
	return start, end, nil
}
