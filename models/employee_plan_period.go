package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EmployeePlanPeriod enrolls one person into one plan period and carries
// the person's per-period notes. At most one active enrollment may exist
// per (person, plan period) pair; the resolver enforces this by
// lookup-before-create.
type EmployeePlanPeriod struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	LatestChange time.Time      `gorm:"autoUpdateTime" json:"latest_change"`
	PrepDelete   gorm.DeletedAt `gorm:"index" json:"-"`
	Notes        string         `json:"notes"`
	PlanPeriodID uuid.UUID      `gorm:"type:uuid;not null;index" json:"plan_period_id"`
	PlanPeriod   *PlanPeriod    `gorm:"foreignKey:PlanPeriodID" json:"plan_period,omitempty"`
	PersonID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"person_id"`
	Person       *Person        `gorm:"foreignKey:PersonID" json:"person,omitempty"`
}

func (e *EmployeePlanPeriod) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
