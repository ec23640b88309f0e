package scheduling

import (
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"dispo/database"
	"dispo/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	// A :memory: database exists per connection; pin the pool to one so
	// every session sees the same data.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	return NewService(db, nil)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func createPerson(t *testing.T, s *Service, username string) *models.Person {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	person := &models.Person{
		FirstName:    "Test",
		LastName:     "User",
		Email:        username + "@example.com",
		Username:     username,
		PasswordHash: string(hash),
	}
	if err := s.db.Create(person).Error; err != nil {
		t.Fatalf("create person: %v", err)
	}
	return person
}

func createTeam(t *testing.T, s *Service, dispatcher *models.Person) *models.Team {
	t.Helper()
	project := &models.Project{
		Name:    "Projekt " + dispatcher.Username,
		Active:  true,
		AdminID: dispatcher.ID,
	}
	if err := s.db.Create(project).Error; err != nil {
		t.Fatalf("create project: %v", err)
	}
	team := &models.Team{
		Name:         "Team " + dispatcher.Username,
		DispatcherID: dispatcher.ID,
		ProjectID:    project.ID,
	}
	if err := s.db.Create(team).Error; err != nil {
		t.Fatalf("create team: %v", err)
	}
	return team
}

func createPeriod(t *testing.T, s *Service, team *models.Team, start, end time.Time) *models.PlanPeriod {
	t.Helper()
	period := &models.PlanPeriod{
		StartDate: start,
		EndDate:   end,
		Deadline:  end.AddDate(0, 0, -1),
		TeamID:    team.ID,
	}
	if err := s.db.Create(period).Error; err != nil {
		t.Fatalf("create plan period: %v", err)
	}
	return period
}

func createTimeOfDay(t *testing.T, s *Service, person *models.Person, name, start string) *models.TimeOfDay {
	t.Helper()
	tod := &models.TimeOfDay{
		Name:     name,
		Start:    start,
		Delta:    3 * time.Hour,
		Color:    "yellow-400",
		PersonID: person.ID,
	}
	if err := s.db.Create(tod).Error; err != nil {
		t.Fatalf("create time of day: %v", err)
	}
	return tod
}
