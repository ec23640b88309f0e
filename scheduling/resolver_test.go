package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"dispo/models"
)

func TestResolvePeriodForDate(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	period := createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))
	createPeriod(t, s, team, date(2024, time.November, 12), date(2024, time.November, 24))

	got, err := s.ResolvePeriodForDate(date(2024, time.November, 3))
	if err != nil {
		t.Fatalf("ResolvePeriodForDate: %v", err)
	}
	if got.ID != period.ID {
		t.Errorf("resolved period %s, want %s", got.ID, period.ID)
	}

	// Boundary days belong to the period.
	for _, d := range []time.Time{date(2024, time.November, 1), date(2024, time.November, 11)} {
		got, err := s.ResolvePeriodForDate(d)
		if err != nil {
			t.Fatalf("ResolvePeriodForDate(%s): %v", d, err)
		}
		if got.ID != period.ID {
			t.Errorf("ResolvePeriodForDate(%s) = %s, want %s", d, got.ID, period.ID)
		}
	}
}

func TestResolvePeriodForDateNoMatch(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))

	_, err := s.ResolvePeriodForDate(date(2024, time.December, 1))
	if !errors.Is(err, ErrNoPlanPeriod) {
		t.Fatalf("err = %v, want ErrNoPlanPeriod", err)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("ErrNoPlanPeriod should wrap ErrNotFound")
	}
}

func TestResolvePeriodForDateAmbiguous(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))
	createPeriod(t, s, team, date(2024, time.November, 5), date(2024, time.November, 20))

	_, err := s.ResolvePeriodForDate(date(2024, time.November, 7))
	if !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("err = %v, want ErrAmbiguous", err)
	}
}

func TestResolvePeriodForDateIgnoresDeleted(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	period := createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))

	if err := s.db.Delete(period).Error; err != nil {
		t.Fatalf("soft-delete period: %v", err)
	}

	_, err := s.ResolvePeriodForDate(date(2024, time.November, 3))
	if !errors.Is(err, ErrNoPlanPeriod) {
		t.Fatalf("err = %v, want ErrNoPlanPeriod after soft delete", err)
	}
}

func TestEnsureEnrollmentIdempotent(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	person := createPerson(t, s, "employee")
	period := createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))

	first, err := s.EnsureEnrollment(person.ID, period.ID)
	if err != nil {
		t.Fatalf("EnsureEnrollment: %v", err)
	}
	second, err := s.EnsureEnrollment(person.ID, period.ID)
	if err != nil {
		t.Fatalf("EnsureEnrollment (repeat): %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("repeated EnsureEnrollment created a new record: %s vs %s", first.ID, second.ID)
	}

	var count int64
	s.db.Model(&models.EmployeePlanPeriod{}).Where("person_id = ?", person.ID).Count(&count)
	if count != 1 {
		t.Errorf("enrollment count = %d, want 1", count)
	}
}

func TestEnsureAllEnrollments(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	person := createPerson(t, s, "employee")
	for i := 0; i < 3; i++ {
		start := date(2024, time.November, 1).AddDate(0, 0, i*20)
		createPeriod(t, s, team, start, start.AddDate(0, 0, 19))
	}

	for i := 0; i < 3; i++ {
		if err := s.EnsureAllEnrollments(person.ID); err != nil {
			t.Fatalf("EnsureAllEnrollments (call %d): %v", i+1, err)
		}
	}

	var count int64
	s.db.Model(&models.EmployeePlanPeriod{}).Where("person_id = ?", person.ID).Count(&count)
	if count != 3 {
		t.Errorf("enrollment count = %d, want 3", count)
	}
}

func TestEnsureAllEnrollmentsNoOpWithExisting(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	person := createPerson(t, s, "employee")
	period := createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))
	createPeriod(t, s, team, date(2024, time.November, 12), date(2024, time.November, 24))

	if _, err := s.EnsureEnrollment(person.ID, period.ID); err != nil {
		t.Fatalf("EnsureEnrollment: %v", err)
	}
	if err := s.EnsureAllEnrollments(person.ID); err != nil {
		t.Fatalf("EnsureAllEnrollments: %v", err)
	}

	var count int64
	s.db.Model(&models.EmployeePlanPeriod{}).Where("person_id = ?", person.ID).Count(&count)
	if count != 1 {
		t.Errorf("enrollment count = %d, want 1 (existing enrollment means no-op)", count)
	}
}

func TestEnsureAllEnrollmentsUnknownPerson(t *testing.T) {
	s := newTestService(t)

	err := s.EnsureAllEnrollments(uuid.New())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
