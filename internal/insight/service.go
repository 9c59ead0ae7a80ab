package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/kndri/selah-journaling/internal/config"
	util "github.com/kndri/selah-journaling/internal/utils"
)

const (
	maxAttempts = 3
	retryDelay  = time.Second
)

// ErrInvalidResponse marks a reply that parsed but violated the nine-field
// contract. It consumes a retry attempt exactly like a transport failure.
var ErrInvalidResponse = errors.New("invalid model response")

type Service interface {
	GenerateInsights(ctx context.Context, text string) (*ReflectionSummary, error)
}

type service struct {
	provider Provider
	retrier  *util.Retrier
}

func NewService(provider Provider) Service {
	return &service{
		provider: provider,
		retrier:  util.NewRetrier(maxAttempts, retryDelay),
	}
}

// newServiceWithRetrier lets tests swap the sleep function.
func newServiceWithRetrier(provider Provider, retrier *util.Retrier) Service {
	return &service{provider: provider, retrier: retrier}
}

func (s *service) GenerateInsights(ctx context.Context, text string) (*ReflectionSummary, error) {
	log := config.WithContext(ctx)
	log.WithField("text_length", len(text)).Info("Generating insights")

	var summary *ReflectionSummary
	err := s.retrier.Do(ctx, "generate insights", func() error {
		raw, err := s.provider.SendPrompt(ctx, systemPrompt, text)
		if err != nil {
			return err
		}
		parsed, err := parseSummary(raw)
		if err != nil {
			log.WithError(err).Warn("Model reply failed validation")
			return err
		}
		summary = parsed
		return nil
	})
	if err != nil {
		return nil, err
	}

	summary.Goal = splitGoal(summary.Goal)
	summary.Color, summary.Shape = MapCategory(ctx, summary.Theme, summary.SubTheme)

	log.WithField("theme", summary.Theme).Info("Insights generated successfully")
	return summary, nil
}

type modelReply struct {
	Title             *string `json:"title"`
	Highlight         *string `json:"highlight"`
	Challenge         *string `json:"challenge"`
	Goal              *Goal   `json:"goal"`
	Scripture         *struct {
		Verse     *string `json:"verse"`
		Reference *string `json:"reference"`
	} `json:"scripture"`
	TranscriptSummary *string `json:"transcript_summary"`
	Theme             *string `json:"theme"`
	SubTheme          *string `json:"sub_theme"`
}

// parseSummary strips markdown fencing, decodes the reply and enforces the
// nine-field contract. Any missing or empty field fails the whole attempt;
// there is no partial success.
func parseSummary(raw string) (*ReflectionSummary, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")

	var reply modelReply
	if err := json.Unmarshal([]byte(clean), &reply); err != nil {
		return nil, fmt.Errorf("%w: malformed JSON: %v", ErrInvalidResponse, err)
	}

	missing := func(name string) error {
		return fmt.Errorf("%w: missing required field %q", ErrInvalidResponse, name)
	}

	switch {
	case reply.Title == nil || *reply.Title == "":
		return nil, missing("title")
	case reply.Highlight == nil || *reply.Highlight == "":
		return nil, missing("highlight")
	case reply.Challenge == nil || *reply.Challenge == "":
		return nil, missing("challenge")
	case reply.Goal == nil || reply.Goal.IsZero():
		return nil, missing("goal")
	case reply.Scripture == nil:
		return nil, missing("scripture")
	case reply.Scripture.Verse == nil || *reply.Scripture.Verse == "":
		return nil, missing("scripture.verse")
	case reply.Scripture.Reference == nil || *reply.Scripture.Reference == "":
		return nil, missing("scripture.reference")
	case reply.TranscriptSummary == nil || *reply.TranscriptSummary == "":
		return nil, missing("transcript_summary")
	case reply.Theme == nil || *reply.Theme == "":
		return nil, missing("theme")
	case reply.SubTheme == nil || *reply.SubTheme == "":
		return nil, missing("sub_theme")
	}

	return &ReflectionSummary{
		Title:             *reply.Title,
		Highlight:         *reply.Highlight,
		Challenge:         *reply.Challenge,
		Goal:              *reply.Goal,
		Scripture:         Scripture{Verse: *reply.Scripture.Verse, Reference: *reply.Scripture.Reference},
		TranscriptSummary: *reply.TranscriptSummary,
		Theme:             *reply.Theme,
		SubTheme:          *reply.SubTheme,
	}, nil
}

var goalSeparator = regexp.MustCompile(`,\s*(?:and\s+)?`)

// splitGoal turns a comma-separated three-step goal string into its
// {first,second,third} form. Anything else passes through untouched.
func splitGoal(g Goal) Goal {
	if g.Parts != nil {
		return g
	}

	var parts []string
	for _, p := range goalSeparator.Split(g.Text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) != 3 {
		return g
	}
	return Goal{Parts: &GoalParts{First: parts[0], Second: parts[1], Third: parts[2]}}
}
