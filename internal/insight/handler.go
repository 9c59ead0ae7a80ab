package insight

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kndri/selah-journaling/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// An empty combined transcript is the caller's mistake, not a
	// generation failure.
	if strings.TrimSpace(req.Text) == "" {
		log.Warn("Attempt to generate insights from empty text")
		http.Error(w, "reflection text is required", http.StatusBadRequest)
		return
	}

	summary, err := h.service.GenerateInsights(r.Context(), req.Text)
	if err != nil {
		log.WithError(err).Error("Failed to generate insights")
		http.Error(w, "failed to generate insights", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}
