package reminder

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/reminder", h.GetSettings)
	r.Put("/reminder", h.UpdateSettings)
	return r
}
