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

// ToggleAvailability flips the person's availability for one time-of-day on
// one date. An active record is soft-deleted, an absent one is created; the
// returned bool reports whether the slot is active after the call.
//
// The date must fall inside an active plan period and the person must
// already be enrolled in it (callers run EnsureAllEnrollments on login).
// This is a strict toggle: duplicate identical requests flip the state
// back, there is no request deduplication.
func (s *Service) ToggleAvailability(personID uuid.UUID, dateStr string, timeOfDayID uuid.UUID) (bool, error) {
	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return false, fmt.Errorf("%w: date %q", ErrInvalidInput, dateStr)
	}

	lock := s.personLock(personID)
	lock.Lock()
	defer lock.Unlock()

	var active bool
	err = s.db.Transaction(func(tx *gorm.DB) error {
		period, err := resolvePeriodForDate(tx, day)
		if err != nil {
			return err
		}

		epp, err := findEnrollment(tx, personID, period.ID)
		if err != nil {
			return err
		}

		var tod models.TimeOfDay
		err = tx.Where("id = ? AND person_id = ?", timeOfDayID, personID).First(&tod).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: time of day %s", ErrNotFound, timeOfDayID)
		}
		if err != nil {
			return err
		}

		var avails []models.Availability
		if err := tx.Where("employee_plan_period_id = ? AND time_of_day_id = ? AND date = ?",
			epp.ID, tod.ID, dateOnly(day)).Find(&avails).Error; err != nil {
			return err
		}

		switch len(avails) {
		case 0:
			avail := models.Availability{
				Date:                 dateOnly(day),
				TimeOfDayID:          tod.ID,
				EmployeePlanPeriodID: epp.ID,
			}
			if err := tx.Create(&avail).Error; err != nil {
				return err
			}
			active = true
		case 1:
			if err := tx.Delete(&avails[0]).Error; err != nil {
				return err
			}
			active = false
		default:
			return fmt.Errorf("%w: %d active availabilities for (%s, %s, %s)",
				ErrConflict, len(avails), epp.ID, tod.ID, dateStr)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	s.log.Info("availability toggled",
		zap.String("person_id", personID.String()),
		zap.String("date", dateStr),
		zap.String("time_of_day_id", timeOfDayID.String()),
		zap.Bool("active", active))
	return active, nil
}
