package transcription

type TranscriptionContainer struct {
	Handler *Handler
	Service Service
}

func NewTranscriptionContainer() *TranscriptionContainer {
	service := NewService()
	handler := NewHandler(service)

	return &TranscriptionContainer{
		Handler: handler,
		Service: service,
	}
}
