package insight

import (
	"context"
	"errors"
	"fmt"

	"github.com/kndri/selah-journaling/internal/config"
	"google.golang.org/genai"
)

// Provider sends one prompt to the completion model and returns the raw
// reply text. Parsing and validation happen in the service so that a
// malformed reply is handled by the same retry loop as a transport error.
type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (string, error)
}

type geminiProvider struct {
	client *genai.Client
	model  string
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{
		client: client,
		model:  config.Getenv("INSIGHT_MODEL", "gemini-2.0-flash"),
	}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) (string, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Failed to generate model content")
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	raw := result.Text()
	log.Debugf("[INSIGHT] Raw model reply:\n%s", raw)

	if raw == "" {
		return "", errors.New("empty response from model")
	}
	return raw, nil
}
