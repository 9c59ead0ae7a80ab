package reflection

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateEntry)
	r.Get("/", h.GetAllEntries)
	r.Get("/theme/{theme}", h.GetEntriesByTheme)
	r.Get("/{id}", h.GetEntry)
	r.Delete("/{id}", h.DeleteEntry)
	return r
}
