package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dispo/middleware"
	"dispo/scheduling"
)

type AvailabilityHandler struct {
	service *scheduling.Service
	log     *zap.Logger
}

func NewAvailabilityHandler(service *scheduling.Service, log *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		service: service,
		log:     log,
	}
}

func (h *AvailabilityHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         true,
			"error_message": "Ungültige Eingabe",
		})
		return
	}

	dateStr := r.FormValue("date")
	todID, err := uuid.Parse(r.FormValue("time_of_day_id"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         true,
			"error_message": "Ungültige Tageszeit",
		})
		return
	}

	active, err := h.service.ToggleAvailability(person.ID, dateStr, todID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"date":           dateStr,
		"time_of_day_id": todID,
		"active":         active,
	})
}

func (h *AvailabilityHandler) SaveNotes(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         true,
			"error_message": "Ungültige Eingabe",
		})
		return
	}

	period := r.FormValue("period")
	notes := r.FormValue("notes")

	saved, err := h.service.SaveNote(person.ID, period, notes)
	if err != nil {
		respondError(w, err)
		return
	}

	status := http.StatusOK
	if !saved {
		status = http.StatusNotFound
	}
	respondJSON(w, status, map[string]interface{}{
		"period":  period,
		"success": saved,
	})
}

// PeriodNotes returns the person's notes plus deadline and message for one
// period label, for the notes dialog.
func (h *AvailabilityHandler) PeriodNotes(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseForm(); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         true,
			"error_message": "Ungültige Eingabe",
		})
		return
	}

	label := r.FormValue("period")
	if label == "" {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         true,
			"error_message": "Keine Periode angegeben",
		})
		return
	}

	periods, err := h.service.ListActivePlanPeriods()
	if err != nil {
		respondError(w, err)
		return
	}

	var found *scheduling.PeriodInfo
	for i := range periods {
		if periods[i].Label == label {
			found = &periods[i]
			break
		}
	}
	if found == nil {
		respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":         true,
			"error_message": "Periode nicht gefunden",
		})
		return
	}

	notes, err := h.service.GetNotes(person.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"period":   label,
		"deadline": found.Deadline,
		"message":  found.Message,
		"notes":    notes[label],
	})
}

// Notes returns all of the person's period notes keyed by period label.
func (h *AvailabilityHandler) Notes(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	notes, err := h.service.GetNotes(person.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notes)
}
