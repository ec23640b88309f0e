package scheduling

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dispo/models"
)

// periodPalette is cycled through when assigning display colors to plan
// periods, in ascending start-date order.
var periodPalette = []string{"bg-blue-800/40", "bg-emerald-800/40", "bg-violet-800/40"}

const defaultTimeOfDayColor = "gray-500"

// PeriodInfo is the view-layer summary of one active plan period.
type PeriodInfo struct {
	ID       uuid.UUID `json:"id"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
	Deadline time.Time `json:"deadline"`
	Label    string    `json:"label"`
	Message  string    `json:"message"`
}

// TimeOfDayOption is a person's time slot with the start normalized to
// HH:MM:SS text.
type TimeOfDayOption struct {
	ID    uuid.UUID     `json:"id"`
	Name  string        `json:"name"`
	Start string        `json:"start"`
	Delta time.Duration `json:"delta"`
	Color string        `json:"color"`
}

// MonthGroup buckets the days of one calendar month by period label. Month
// numbers repeat across years, so the group carries the year of the first
// day seen for the month.
type MonthGroup struct {
	Year    int                    `json:"year"`
	Periods map[string][]time.Time `json:"periods"`
}

// CalendarView is everything the presentation layer needs to render one
// person's availability calendar. All maps are keyed by the human-readable
// period label except SelectedTimes, which is keyed by YYYY-MM-DD.
type CalendarView struct {
	GroupedDates     map[time.Month]*MonthGroup `json:"grouped_dates"`
	PeriodDeadlines  map[string]time.Time       `json:"period_deadlines"`
	PeriodMessages   map[string]string          `json:"period_messages"`
	PeriodFirstMonth map[string]time.Month      `json:"period_first_month"`
	SortedPeriods    []string                   `json:"sorted_periods"`
	PeriodColors     map[string]string          `json:"period_colors"`
	SelectedTimes    map[string][]uuid.UUID     `json:"selected_times"`
	UserNotes        map[string]string          `json:"user_notes"`
	TimeOfDayOptions []TimeOfDayOption          `json:"time_of_day_options"`
}

// ListActivePlanPeriods returns all active plan periods in ascending
// (start date, id) order.
func (s *Service) ListActivePlanPeriods() ([]PeriodInfo, error) {
	return listActivePlanPeriods(s.db)
}

func listActivePlanPeriods(tx *gorm.DB) ([]PeriodInfo, error) {
	var periods []models.PlanPeriod
	if err := tx.Order("start_date, id").Find(&periods).Error; err != nil {
		return nil, err
	}
	infos := make([]PeriodInfo, 0, len(periods))
	for i := range periods {
		pp := &periods[i]
		infos = append(infos, PeriodInfo{
			ID:       pp.ID,
			Start:    pp.StartDate,
			End:      pp.EndDate,
			Deadline: pp.Deadline,
			Label:    pp.Label(),
			Message:  pp.Message(),
		})
	}
	return infos, nil
}

// ListTimeOfDayOptions returns the person's active time slots. A start
// value that parses as neither HH:MM:SS nor HH:MM is normalized to
// midnight; one bad row never fails the whole read.
func (s *Service) ListTimeOfDayOptions(personID uuid.UUID) ([]TimeOfDayOption, error) {
	return s.listTimeOfDayOptions(s.db, personID)
}

func (s *Service) listTimeOfDayOptions(tx *gorm.DB, personID uuid.UUID) ([]TimeOfDayOption, error) {
	var tods []models.TimeOfDay
	if err := tx.Where("person_id = ?", personID).Order("start, name").Find(&tods).Error; err != nil {
		return nil, err
	}
	options := make([]TimeOfDayOption, 0, len(tods))
	for i := range tods {
		tod := &tods[i]
		color := tod.Color
		if color == "" {
			color = defaultTimeOfDayColor
		}
		options = append(options, TimeOfDayOption{
			ID:    tod.ID,
			Name:  tod.Name,
			Start: s.normalizeStart(tod),
			Delta: tod.Delta,
			Color: color,
		})
	}
	return options, nil
}

func (s *Service) normalizeStart(tod *models.TimeOfDay) string {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, tod.Start); err == nil {
			return t.Format("15:04:05")
		}
	}
	s.log.Warn("unparsable time of day start, defaulting to midnight",
		zap.String("time_of_day_id", tod.ID.String()),
		zap.String("name", tod.Name),
		zap.String("start", tod.Start))
	return "00:00:00"
}

// BuildCalendar aggregates the person's plan periods, availabilities, time
// slots and notes into a calendar-ready view. A person with no enrollments
// gets empty groupings, not an error.
func (s *Service) BuildCalendar(personID uuid.UUID) (*CalendarView, error) {
	view := &CalendarView{
		GroupedDates:     make(map[time.Month]*MonthGroup),
		PeriodDeadlines:  make(map[string]time.Time),
		PeriodMessages:   make(map[string]string),
		PeriodFirstMonth: make(map[string]time.Month),
		SortedPeriods:    []string{},
		PeriodColors:     make(map[string]string),
		SelectedTimes:    make(map[string][]uuid.UUID),
		UserNotes:        make(map[string]string),
		TimeOfDayOptions: []TimeOfDayOption{},
	}

	// One transaction so the view is a consistent snapshot of the person's
	// data even while other persons are being written.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		periods, err := listActivePlanPeriods(tx)
		if err != nil {
			return err
		}

		seen := make(map[string]uuid.UUID, len(periods))
		for _, pp := range periods {
			label := pp.Label
			if prev, dup := seen[label]; dup {
				// Two periods sharing start and end dates collapse into one
				// label; the grouping below merges them. Known hazard.
				s.log.Warn("duplicate plan period label",
					zap.String("label", label),
					zap.String("period_id", pp.ID.String()),
					zap.String("previous_period_id", prev.String()))
			} else {
				seen[label] = pp.ID
				view.SortedPeriods = append(view.SortedPeriods, label)
			}

			view.PeriodDeadlines[label] = pp.Deadline
			view.PeriodMessages[label] = pp.Message
			view.PeriodFirstMonth[label] = pp.Start.Month()
			if _, ok := view.PeriodColors[label]; !ok {
				view.PeriodColors[label] = periodPalette[len(view.PeriodColors)%len(periodPalette)]
			}

			for day := dateOnly(pp.Start); !day.After(pp.End); day = day.AddDate(0, 0, 1) {
				group, ok := view.GroupedDates[day.Month()]
				if !ok {
					group = &MonthGroup{
						Year:    day.Year(),
						Periods: make(map[string][]time.Time),
					}
					view.GroupedDates[day.Month()] = group
				}
				group.Periods[label] = append(group.Periods[label], day)
			}
		}
		sortLabelsByStart(view.SortedPeriods)

		if err := s.collectSelectedTimes(tx, personID, view.SelectedTimes); err != nil {
			return err
		}

		view.TimeOfDayOptions, err = s.listTimeOfDayOptions(tx, personID)
		if err != nil {
			return err
		}

		view.UserNotes, err = getNotes(tx, personID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// sortLabelsByStart orders period labels by the start date parsed back out
// of the label text, whole label as tiebreaker.
func sortLabelsByStart(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		si, _, errI := models.ParsePeriodLabel(labels[i])
		sj, _, errJ := models.ParsePeriodLabel(labels[j])
		if errI != nil || errJ != nil {
			return labels[i] < labels[j]
		}
		if !si.Equal(sj) {
			return si.Before(sj)
		}
		return labels[i] < labels[j]
	})
}

// collectSelectedTimes fills dest with the person's active availabilities,
// keyed by YYYY-MM-DD and deduplicated in insertion order.
func (s *Service) collectSelectedTimes(tx *gorm.DB, personID uuid.UUID, dest map[string][]uuid.UUID) error {
	var avails []models.Availability
	err := tx.
		Joins("JOIN employee_plan_periods epp ON epp.id = availabilities.employee_plan_period_id").
		Where("epp.person_id = ? AND epp.prep_delete IS NULL", personID).
		Order("availabilities.date, availabilities.created_at").
		Find(&avails).Error
	if err != nil {
		return err
	}
	for i := range avails {
		a := &avails[i]
		key := a.Date.Format("2006-01-02")
		ids := dest[key]
		duplicate := false
		for _, id := range ids {
			if id == a.TimeOfDayID {
				duplicate = true
				break
			}
		}
		if !duplicate {
			dest[key] = append(ids, a.TimeOfDayID)
		}
	}
	return nil
}
