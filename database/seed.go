package database

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dispo/models"
)

// demoTimeSlots are the default per-person time-of-day options.
var demoTimeSlots = []struct {
	name  string
	start string
	delta time.Duration
	color string
}{
	{"Früher Morgen", "06:00", 3 * time.Hour, "yellow-400"},
	{"Vormittag", "09:00", 3 * time.Hour, "amber-500"},
	{"Mittag", "12:00", 2 * time.Hour, "orange-500"},
	{"Nachmittag", "14:00", 3 * time.Hour, "orange-600"},
	{"Abend", "17:00", 3 * time.Hour, "red-500"},
	{"Spätabend", "20:00", 3 * time.Hour, "purple-500"},
}

// SeedDemoData fills an otherwise empty database with a test employee, time
// slots for every person and a run of plan periods, so the calendar has
// something to show during development. A database with more than one
// person is left alone.
func SeedDemoData() error {
	var count int64
	if err := DB.Model(&models.Person{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 1 {
		return nil
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		var admin models.Person
		if err := tx.Where("username = ?", "admin").First(&admin).Error; err != nil {
			return err
		}
		var team models.Team
		if err := tx.First(&team).Error; err != nil {
			return err
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte("test"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		testUser := models.Person{
			FirstName:    "Test",
			LastName:     "User",
			Email:        "test@example.com",
			Username:     "test",
			PasswordHash: string(hashedPassword),
			TeamID:       &team.ID,
		}
		if err := tx.Create(&testUser).Error; err != nil {
			return err
		}

		for _, person := range []*models.Person{&admin, &testUser} {
			for _, slot := range demoTimeSlots {
				tod := models.TimeOfDay{
					Name:     fmt.Sprintf("%s (%s)", slot.name, person.FirstName),
					Start:    slot.start,
					Delta:    slot.delta,
					Color:    slot.color,
					PersonID: person.ID,
				}
				if err := tx.Create(&tod).Error; err != nil {
					return err
				}
			}
		}

		start := time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC)
		for i := 0; i < 15; i++ {
			end := start.AddDate(0, 0, 19)
			period := models.PlanPeriod{
				StartDate: start,
				EndDate:   end,
				Deadline:  end.AddDate(0, 0, -1),
				Notes:     fmt.Sprintf("Planungsperiode %d", i+1),
				TeamID:    team.ID,
			}
			if err := tx.Create(&period).Error; err != nil {
				return err
			}
			start = end.AddDate(0, 0, 1)
		}

		log.Println("Demo data created (username: test, password: test)")
		return nil
	})
}
