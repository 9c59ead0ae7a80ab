package transcription

import (
	"io"
	"net/http"
	"os"

	"github.com/kndri/selah-journaling/internal/config"
)

// Uploads are voice memos of at most a few minutes.
const maxUploadBytes = 25 << 20

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Transcribe(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart body", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "audio file required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	tmp, err := os.CreateTemp("", "selah-audio-*"+safeExt(header.Filename))
	if err != nil {
		log.WithError(err).Error("Failed to stage audio upload")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		log.WithError(err).Error("Failed to stage audio upload")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	text, err := h.service.TranscribeAudio(r.Context(), tmp.Name())
	if err != nil {
		log.WithError(err).Error("Failed to transcribe audio")
		http.Error(w, "failed to transcribe audio", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"text": text})
}

func safeExt(name string) string {
	for i := len(name) - 1; i >= 0 && name[i] != '/' && name[i] != '\\'; i-- {
		if name[i] == '.' {
			return name[i:]
		}
	}
	return ".m4a"
}
