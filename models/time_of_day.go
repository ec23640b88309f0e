package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TimeOfDay is a person-defined named time slot. Start is stored as text
// because legacy rows carry either "HH:MM:SS" or "HH:MM"; the scheduling
// layer normalizes it on read.
type TimeOfDay struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	LatestChange time.Time      `gorm:"autoUpdateTime" json:"latest_change"`
	PrepDelete   gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null;size:40;uniqueIndex:idx_tod_person_name" json:"name"`
	Start        string         `gorm:"not null;size:8" json:"start"`
	Delta        time.Duration  `gorm:"not null" json:"delta"`
	Color        string         `gorm:"size:20" json:"color"`
	Notes        string         `json:"notes"`
	PersonID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_tod_person_name" json:"person_id"`
	Person       *Person        `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (t *TimeOfDay) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
