package scheduling

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dispo/models"
)

// SaveNote stores free-text notes on the person's enrollment for the plan
// period identified by its display label. The label is parsed back into
// start and end dates (the exact inverse of PlanPeriod.Label) and matched
// against active periods; false is returned when no period matches. The
// enrollment is created on the fly if the person has none for the period.
func (s *Service) SaveNote(personID uuid.UUID, periodLabel, text string) (bool, error) {
	start, end, err := models.ParsePeriodLabel(periodLabel)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	lock := s.personLock(personID)
	lock.Lock()
	defer lock.Unlock()

	saved := false
	err = s.db.Transaction(func(tx *gorm.DB) error {
		var periods []models.PlanPeriod
		if err := tx.Where("start_date = ? AND end_date = ?", dateOnly(start), dateOnly(end)).
			Order("id").Find(&periods).Error; err != nil {
			return err
		}
		if len(periods) == 0 {
			return nil
		}

		epp, err := ensureEnrollment(tx, personID, periods[0].ID)
		if err != nil {
			return err
		}
		if err := tx.Model(epp).Update("notes", text).Error; err != nil {
			return err
		}
		saved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if !saved {
		s.log.Warn("save note: no plan period for label",
			zap.String("person_id", personID.String()),
			zap.String("label", periodLabel))
	}
	return saved, nil
}

// GetNotes returns the person's non-empty enrollment notes keyed by the
// owning period's display label.
func (s *Service) GetNotes(personID uuid.UUID) (map[string]string, error) {
	return getNotes(s.db, personID)
}

func getNotes(tx *gorm.DB, personID uuid.UUID) (map[string]string, error) {
	var epps []models.EmployeePlanPeriod
	err := tx.Preload("PlanPeriod").
		Where("person_id = ? AND notes <> ''", personID).
		Find(&epps).Error
	if err != nil {
		return nil, err
	}
	notes := make(map[string]string, len(epps))
	for i := range epps {
		epp := &epps[i]
		if epp.PlanPeriod == nil {
			// Period was soft-deleted after the enrollment was written.
			continue
		}
		notes[epp.PlanPeriod.Label()] = epp.Notes
	}
	return notes, nil
}
