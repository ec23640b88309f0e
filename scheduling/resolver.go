package scheduling

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dispo/models"
)

// dateOnly strips the time component so stored date columns compare cleanly.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ResolvePeriodForDate finds the unique active plan period covering date.
// Zero matches yield ErrNoPlanPeriod, more than one ErrAmbiguous.
func (s *Service) ResolvePeriodForDate(date time.Time) (*models.PlanPeriod, error) {
	return resolvePeriodForDate(s.db, date)
}

func resolvePeriodForDate(tx *gorm.DB, date time.Time) (*models.PlanPeriod, error) {
	day := dateOnly(date)
	var periods []models.PlanPeriod
	if err := tx.Where("start_date <= ? AND end_date >= ?", day, day).
		Order("start_date, id").Find(&periods).Error; err != nil {
		return nil, err
	}
	switch len(periods) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNoPlanPeriod, day.Format("2006-01-02"))
	case 1:
		return &periods[0], nil
	default:
		return nil, fmt.Errorf("%w: %d periods cover %s", ErrAmbiguous, len(periods), day.Format("2006-01-02"))
	}
}

func findEnrollment(tx *gorm.DB, personID, planPeriodID uuid.UUID) (*models.EmployeePlanPeriod, error) {
	var epp models.EmployeePlanPeriod
	err := tx.Where("person_id = ? AND plan_period_id = ?", personID, planPeriodID).First(&epp).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: person %s, period %s", ErrNotEnrolled, personID, planPeriodID)
	}
	if err != nil {
		return nil, err
	}
	return &epp, nil
}

// EnsureEnrollment returns the person's active enrollment for the given
// plan period, creating one with empty notes if none exists. Safe to call
// repeatedly; lookup-before-create under the person lock prevents
// duplicates.
func (s *Service) EnsureEnrollment(personID, planPeriodID uuid.UUID) (*models.EmployeePlanPeriod, error) {
	lock := s.personLock(personID)
	lock.Lock()
	defer lock.Unlock()

	var epp *models.EmployeePlanPeriod
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		epp, err = ensureEnrollment(tx, personID, planPeriodID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return epp, nil
}

func ensureEnrollment(tx *gorm.DB, personID, planPeriodID uuid.UUID) (*models.EmployeePlanPeriod, error) {
	epp, err := findEnrollment(tx, personID, planPeriodID)
	if err == nil {
		return epp, nil
	}
	if !errors.Is(err, ErrNotEnrolled) {
		return nil, err
	}
	epp = &models.EmployeePlanPeriod{
		PersonID:     personID,
		PlanPeriodID: planPeriodID,
	}
	if err := tx.Create(epp).Error; err != nil {
		return nil, err
	}
	return epp, nil
}

// EnsureAllEnrollments enrolls a person into every active plan period, in
// one batch. A person who already has at least one active enrollment is
// left untouched, so repeated calls never create duplicates.
func (s *Service) EnsureAllEnrollments(personID uuid.UUID) error {
	lock := s.personLock(personID)
	lock.Lock()
	defer lock.Unlock()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var person models.Person
		if err := tx.First(&person, "id = ?", personID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: person %s", ErrNotFound, personID)
			}
			return err
		}

		var existing int64
		if err := tx.Model(&models.EmployeePlanPeriod{}).
			Where("person_id = ?", personID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return nil
		}

		var periods []models.PlanPeriod
		if err := tx.Order("start_date, id").Find(&periods).Error; err != nil {
			return err
		}
		if len(periods) == 0 {
			return nil
		}

		epps := make([]models.EmployeePlanPeriod, 0, len(periods))
		for _, pp := range periods {
			epps = append(epps, models.EmployeePlanPeriod{
				PersonID:     personID,
				PlanPeriodID: pp.ID,
			})
		}
		if err := tx.Create(&epps).Error; err != nil {
			return err
		}

		s.log.Info("enrollments auto-created",
			zap.String("person_id", personID.String()),
			zap.Int("count", len(epps)))
		return nil
	})
}
