package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Project struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	LatestChange time.Time      `gorm:"autoUpdateTime" json:"latest_change"`
	PrepDelete   gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"uniqueIndex;not null;size:50" json:"name"`
	Active       bool           `gorm:"default:true" json:"active"`
	AdminID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"admin_id"`
	Admin        *Person        `gorm:"foreignKey:AdminID" json:"admin,omitempty"`
	Teams        []Team         `gorm:"foreignKey:ProjectID" json:"teams,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
