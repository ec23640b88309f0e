package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"dispo/config"
	"dispo/middleware"
	"dispo/scheduling"
)

type AuthHandler struct {
	config  *config.Config
	service *scheduling.Service
	log     *zap.Logger
}

func NewAuthHandler(cfg *config.Config, service *scheduling.Service, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		config:  cfg,
		service: service,
		log:     log,
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":         true,
			"error_message": "Ungültige Eingabe",
		})
		return
	}

	username := r.FormValue("username")
	password := r.FormValue("password")

	summary, err := h.service.ValidateCredentials(username, password)
	if err != nil {
		if errors.Is(err, scheduling.ErrNotFound) {
			respondJSON(w, http.StatusUnauthorized, map[string]interface{}{
				"error":         true,
				"error_message": "Anmeldedaten sind nicht korrekt",
			})
			return
		}
		h.log.Error("validate credentials failed", zap.Error(err))
		respondError(w, err)
		return
	}

	// Retroactively enroll the person into every plan period so the
	// calendar is complete on first login.
	if err := h.service.EnsureAllEnrollments(summary.ID); err != nil {
		h.log.Error("ensure enrollments failed", zap.Error(err))
		respondError(w, err)
		return
	}

	token, err := middleware.GenerateToken(summary, h.config.JWTExpiration)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.config.JWTExpiration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	respondJSON(w, http.StatusOK, summary)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
	w.WriteHeader(http.StatusNoContent)
}
