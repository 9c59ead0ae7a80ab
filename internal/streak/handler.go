package streak

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/kndri/selah-journaling/internal/auth"
	"github.com/kndri/selah-journaling/internal/config"
)

type Handler struct {
	service StreakService
}

func NewHandler(s StreakService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetStreak(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Malformed user id in token claims")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	s, err := h.service.GetByUser(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch streak")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, s)
}
