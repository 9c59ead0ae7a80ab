package reminder

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kndri/selah-journaling/internal/config"
)

type Handler struct {
	service ReminderService
}

func NewHandler(s ReminderService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	setting, err := h.service.GetSettings(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to fetch reminder settings")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, setting)
}

func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateSettingDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	setting, err := h.service.UpdateSettings(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrInvalidTime):
			http.Error(w, "hour must be 0-23 and minute 0-59", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to update reminder settings")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, setting)
}
