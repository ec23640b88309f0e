package database

import (
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"dispo/models"
)

var DB *gorm.DB

// Init opens the database and migrates the schema. Postgres DSNs are
// recognized by their scheme, anything else is treated as a sqlite file
// path (the default deployment).
func Init(dsn string) error {
	var dialector gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dialector = postgres.Open(dsn)
	} else {
		dialector = sqlite.Open(dsn)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	if err := Migrate(DB); err != nil {
		return err
	}

	return seedDefaultAdmin()
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Person{},
		&models.Project{},
		&models.Team{},
		&models.PlanPeriod{},
		&models.TimeOfDay{},
		&models.EmployeePlanPeriod{},
		&models.Availability{},
	)
}

// seedDefaultAdmin creates the admin person with their project and team on
// an empty database.
func seedDefaultAdmin() error {
	var count int64
	DB.Model(&models.Person{}).Where("username = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		admin := models.Person{
			FirstName:    "Admin",
			LastName:     "User",
			Email:        "admin@example.com",
			Username:     "admin",
			PasswordHash: string(hashedPassword),
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		project := models.Project{
			Name:    "Demo-Projekt",
			Active:  true,
			AdminID: admin.ID,
		}
		if err := tx.Create(&project).Error; err != nil {
			return err
		}

		team := models.Team{
			Name:         "Demo-Team",
			DispatcherID: admin.ID,
			ProjectID:    project.ID,
		}
		if err := tx.Create(&team).Error; err != nil {
			return err
		}

		if err := tx.Model(&admin).Update("team_id", team.ID).Error; err != nil {
			return err
		}

		log.Println("Default admin user created (username: admin, password: admin)")
		return nil
	})
}

func GetDB() *gorm.DB {
	return DB
}
