package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Person struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	LatestChange time.Time      `gorm:"autoUpdateTime" json:"latest_change"`
	PrepDelete   gorm.DeletedAt `gorm:"index" json:"-"`
	FirstName    string         `gorm:"not null;size:50" json:"f_name"`
	LastName     string         `gorm:"size:50" json:"l_name"`
	ArtistName   string         `gorm:"size:50" json:"artist_name"`
	Email        string         `gorm:"not null;size:50" json:"email"`
	Username     string         `gorm:"uniqueIndex;not null;size:50" json:"username"`
	PasswordHash string         `gorm:"not null" json:"-"`
	TeamID       *uuid.UUID     `gorm:"type:uuid;index" json:"team_id"`
	Team         *Team          `gorm:"foreignKey:TeamID" json:"team,omitempty"`
	TimeOfDays   []TimeOfDay    `gorm:"foreignKey:PersonID" json:"time_of_days,omitempty"`
}

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *Person) DisplayName() string {
	if p.ArtistName != "" {
		return p.ArtistName
	}
	if p.LastName != "" {
		return p.FirstName + " " + p.LastName
	}
	return p.FirstName
}

// PersonSummary is what the web layer gets to see of a person after login.
type PersonSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
}
