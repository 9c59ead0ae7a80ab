package reflection

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/kndri/selah-journaling/internal/config"
)

type Handler struct {
	service ReflectionService
}

func NewHandler(s ReflectionService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateEntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	entry, err := h.service.CreateEntryWithInsights(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrEmptyEntry):
			http.Error(w, "transcript is required", http.StatusBadRequest)
		default:
			log.WithError(err).Error("Failed to create reflection")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, entry)
}

func (h *Handler) GetAllEntries(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	entries, err := h.service.GetAllEntriesWithInsights(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to list reflections")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) GetEntry(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	id := chi.URLParam(r, "id")

	entry, err := h.service.GetEntryWithInsights(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid id format", http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "reflection not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to fetch reflection")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, entry)
}

func (h *Handler) GetEntriesByTheme(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	theme := chi.URLParam(r, "theme")

	entries, err := h.service.GetEntriesByTheme(r.Context(), theme)
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to list reflections by theme")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, entries)
}

func (h *Handler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteEntry(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid id format", http.StatusBadRequest)
		case errors.Is(err, ErrNotFound):
			http.Error(w, "reflection not found", http.StatusNotFound)
		default:
			log.WithError(err).Error("Failed to delete reflection")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
