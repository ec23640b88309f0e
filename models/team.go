package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Team struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	LatestChange time.Time      `gorm:"autoUpdateTime" json:"latest_change"`
	PrepDelete   gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"uniqueIndex;not null;size:50" json:"name"`
	DispatcherID uuid.UUID      `gorm:"type:uuid;not null;index" json:"dispatcher_id"`
	Dispatcher   *Person        `gorm:"foreignKey:DispatcherID" json:"dispatcher,omitempty"`
	ProjectID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"project_id"`
	Project      *Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Persons      []Person       `gorm:"foreignKey:TeamID" json:"persons,omitempty"`
	PlanPeriods  []PlanPeriod   `gorm:"foreignKey:TeamID" json:"plan_periods,omitempty"`
}

func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
