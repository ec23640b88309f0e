package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Availability records that a person selected a time-of-day on one calendar
// date, scoped to one enrollment. At most one active row may exist per
// (enrollment, time-of-day, date) triple.
type Availability struct {
	ID                   uuid.UUID           `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt            time.Time           `json:"created_at"`
	LatestChange         time.Time           `gorm:"autoUpdateTime" json:"latest_change"`
	PrepDelete           gorm.DeletedAt      `gorm:"index" json:"-"`
	Notes                string              `json:"notes"`
	Date                 time.Time           `gorm:"not null;type:date;index" json:"date"`
	TimeOfDayID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"time_of_day_id"`
	TimeOfDay            *TimeOfDay          `gorm:"foreignKey:TimeOfDayID" json:"time_of_day,omitempty"`
	EmployeePlanPeriodID uuid.UUID           `gorm:"type:uuid;not null;index" json:"employee_plan_period_id"`
	EmployeePlanPeriod   *EmployeePlanPeriod `gorm:"foreignKey:EmployeePlanPeriodID" json:"employee_plan_period,omitempty"`
}

func (a *Availability) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
