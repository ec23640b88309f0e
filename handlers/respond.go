package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispo/scheduling"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, scheduling.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, scheduling.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, scheduling.ErrAmbiguous), errors.Is(err, scheduling.ErrConflict):
		status = http.StatusConflict
	}
	respondJSON(w, status, map[string]interface{}{
		"error":         true,
		"error_message": err.Error(),
	})
}
