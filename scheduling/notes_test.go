package scheduling

import (
	"errors"
	"testing"
	"time"

	"dispo/models"
)

func TestSaveNoteRoundTrip(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	person := createPerson(t, s, "employee")
	createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))

	saved, err := s.SaveNote(person.ID, "01.11.24 - 11.11.24", "Bin nur vormittags da.")
	if err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if !saved {
		t.Fatalf("SaveNote returned false for an existing period")
	}

	notes, err := s.GetNotes(person.ID)
	if err != nil {
		t.Fatalf("GetNotes: %v", err)
	}
	if got := notes["01.11.24 - 11.11.24"]; got != "Bin nur vormittags da." {
		t.Errorf("notes = %v", notes)
	}

	// SaveNote created the enrollment on the fly.
	var count int64
	s.db.Model(&models.EmployeePlanPeriod{}).Where("person_id = ?", person.ID).Count(&count)
	if count != 1 {
		t.Errorf("enrollment count = %d, want 1", count)
	}
}

func TestSaveNoteOverwrites(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	person := createPerson(t, s, "employee")
	createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))

	for _, text := range []string{"erste Fassung", "zweite Fassung"} {
		if _, err := s.SaveNote(person.ID, "01.11.24 - 11.11.24", text); err != nil {
			t.Fatalf("SaveNote(%q): %v", text, err)
		}
	}

	notes, err := s.GetNotes(person.ID)
	if err != nil {
		t.Fatalf("GetNotes: %v", err)
	}
	if got := notes["01.11.24 - 11.11.24"]; got != "zweite Fassung" {
		t.Errorf("note = %q, want the second version", got)
	}

	var count int64
	s.db.Model(&models.EmployeePlanPeriod{}).Where("person_id = ?", person.ID).Count(&count)
	if count != 1 {
		t.Errorf("enrollment count = %d, want 1 (overwrite must not enroll twice)", count)
	}
}

func TestSaveNoteUnknownPeriod(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	person := createPerson(t, s, "employee")
	createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))

	saved, err := s.SaveNote(person.ID, "01.01.30 - 02.01.30", "text")
	if err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if saved {
		t.Errorf("SaveNote returned true for a label matching no period")
	}
}

func TestSaveNoteMalformedLabel(t *testing.T) {
	s := newTestService(t)
	person := createPerson(t, s, "employee")

	saved, err := s.SaveNote(person.ID, "kein Label", "text")
	if saved {
		t.Errorf("SaveNote returned true for a malformed label")
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetNotesSkipsEmptyAndDeleted(t *testing.T) {
	s := newTestService(t)
	dispatcher := createPerson(t, s, "dispatcher")
	team := createTeam(t, s, dispatcher)
	person := createPerson(t, s, "employee")
	kept := createPeriod(t, s, team, date(2024, time.November, 1), date(2024, time.November, 11))
	dropped := createPeriod(t, s, team, date(2024, time.November, 12), date(2024, time.November, 24))

	if _, err := s.SaveNote(person.ID, kept.Label(), "bleibt"); err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if _, err := s.SaveNote(person.ID, dropped.Label(), "verschwindet"); err != nil {
		t.Fatalf("SaveNote: %v", err)
	}
	if err := s.db.Delete(dropped).Error; err != nil {
		t.Fatalf("soft-delete period: %v", err)
	}

	notes, err := s.GetNotes(person.ID)
	if err != nil {
		t.Fatalf("GetNotes: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("notes = %v, want only the note of the surviving period", notes)
	}
	if notes[kept.Label()] != "bleibt" {
		t.Errorf("notes = %v", notes)
	}
}
