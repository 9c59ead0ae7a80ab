package transcription

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/kndri/selah-journaling/internal/config"
	util "github.com/kndri/selah-journaling/internal/utils"
)

const (
	maxAttempts = 3
	retryDelay  = time.Second

	defaultEndpoint = "https://api.openai.com/v1/audio/transcriptions"
)

var ErrNoTranscript = errors.New("no transcription text received from provider")

// Service uploads a recorded audio file to the speech-to-text provider and
// returns the plain transcript. An empty transcript (silence) is a valid
// result; a reply without a text field is not.
type Service interface {
	TranscribeAudio(ctx context.Context, audioPath string) (string, error)
}

type service struct {
	client   *http.Client
	endpoint string
	apiKey   string
	retrier  *util.Retrier
}

func NewService() Service {
	return &service{
		client:   http.DefaultClient,
		endpoint: config.Getenv("TRANSCRIPTION_ENDPOINT", defaultEndpoint),
		apiKey:   os.Getenv("OPENAI_API_KEY"),
		retrier:  util.NewRetrier(maxAttempts, retryDelay),
	}
}

func newServiceWith(client *http.Client, endpoint, apiKey string, retrier *util.Retrier) Service {
	return &service{client: client, endpoint: endpoint, apiKey: apiKey, retrier: retrier}
}

func (s *service) TranscribeAudio(ctx context.Context, audioPath string) (string, error) {
	log := config.WithContext(ctx)
	log.WithField("audio_path", audioPath).Info("Starting transcription")

	var text string
	err := s.retrier.Do(ctx, "transcribe audio", func() error {
		t, err := s.upload(ctx, audioPath)
		if err != nil {
			return err
		}
		text = t
		return nil
	})
	if err != nil {
		return "", err
	}

	log.WithField("text_length", len(text)).Info("Transcription complete")
	return text, nil
}

func (s *service) upload(ctx context.Context, audioPath string) (string, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return "", fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	_ = mw.WriteField("model", "whisper-1")
	_ = mw.WriteField("language", "en")
	_ = mw.WriteField("response_format", "json")
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("transcription failed: %d %s", resp.StatusCode, providerMessage(resp))
	}

	var reply struct {
		Text *string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}
	if reply.Text == nil {
		return "", ErrNoTranscript
	}
	return *reply.Text, nil
}

func providerMessage(resp *http.Response) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return resp.Status
}
