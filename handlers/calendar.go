package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"dispo/middleware"
	"dispo/scheduling"
)

type CalendarHandler struct {
	service *scheduling.Service
	log     *zap.Logger
}

func NewCalendarHandler(service *scheduling.Service, log *zap.Logger) *CalendarHandler {
	return &CalendarHandler{
		service: service,
		log:     log,
	}
}

func (h *CalendarHandler) CalendarData(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	view, err := h.service.BuildCalendar(person.ID)
	if err != nil {
		h.log.Error("build calendar failed", zap.Error(err))
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, view)
}

func (h *CalendarHandler) PlanPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.service.ListActivePlanPeriods()
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, periods)
}

func (h *CalendarHandler) TimeOfDayOptions(w http.ResponseWriter, r *http.Request) {
	person := middleware.GetPersonFromContext(r.Context())
	if person == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	options, err := h.service.ListTimeOfDayOptions(person.ID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, options)
}
