package reflection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/kndri/selah-journaling/internal/auth"
	"github.com/kndri/selah-journaling/internal/config"
	"github.com/kndri/selah-journaling/internal/insight"
	"github.com/kndri/selah-journaling/internal/streak"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

var (
	ErrNotFound     = errors.New("reflection not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidID    = errors.New("invalid id format")
	ErrEmptyEntry   = errors.New("entry transcript is empty")
)

type ReflectionService interface {
	CreateEntryWithInsights(ctx context.Context, dto CreateEntryDTO) (*EntryResponse, error)
	GetAllEntriesWithInsights(ctx context.Context) ([]*EntryResponse, error)
	GetEntryWithInsights(ctx context.Context, id string) (*EntryResponse, error)
	GetEntriesByTheme(ctx context.Context, theme string) ([]*EntryResponse, error)
	DeleteEntry(ctx context.Context, id string) error
}

type reflectionService struct {
	repo    ReflectionRepository
	streaks streak.StreakService
}

func NewService(repo ReflectionRepository, streaks streak.StreakService) ReflectionService {
	return &reflectionService{repo: repo, streaks: streaks}
}

func getUserIDFromContext(ctx context.Context, log logrus.FieldLogger, action string) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warnf("Attempt to %s without authentication", action)
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Malformed user id in token claims")
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

func parseEntryID(log logrus.FieldLogger, id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		log.WithError(err).Warn("Invalid entry ID")
		return uuid.Nil, ErrInvalidID
	}
	return parsed, nil
}

func (s *reflectionService) CreateEntryWithInsights(ctx context.Context, dto CreateEntryDTO) (*EntryResponse, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "create a reflection")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(dto.Transcript) == "" {
		return nil, ErrEmptyEntry
	}

	// Color and shape come from the taxonomy, never from the request.
	color, shape := insight.MapCategory(ctx, dto.Theme, dto.SubTheme)

	encrypted, err := config.Encrypt(dto.Transcript)
	if err != nil {
		log.WithError(err).Error("Failed to encrypt transcript")
		return nil, err
	}

	raw, err := json.Marshal(dto)
	if err != nil {
		return nil, err
	}

	entry := JournalEntry{
		ID:                 uuid.New(),
		UserID:             userID,
		Title:              dto.Title,
		Transcript:         encrypted,
		TranscriptSummary:  dto.TranscriptSummary,
		Highlight:          dto.Highlight,
		Challenge:          dto.Challenge,
		Goal:               dto.Goal,
		ScriptureVerse:     dto.ScriptureVerse,
		ScriptureReference: dto.ScriptureReference,
		Theme:              dto.Theme,
		SubTheme:           dto.SubTheme,
		Color:              color,
		Shape:              shape,
		RawInsight:         datatypes.JSON(raw),
	}

	legacy := make([]*ReflectionInsight, 0, len(dto.Insights))
	for _, in := range dto.Insights {
		legacy = append(legacy, &ReflectionInsight{
			ID:                 uuid.New(),
			Insight:            in.Insight,
			ScriptureVerse:     in.ScriptureVerse,
			ScriptureReference: in.ScriptureReference,
			Explanation:        in.Explanation,
			Theme:              in.Theme,
		})
	}

	if err := s.repo.Create(&entry, legacy); err != nil {
		log.WithError(err).Error("Failed to persist journal entry")
		return nil, fmt.Errorf("failed to create journal entry: %w", err)
	}
	for _, in := range legacy {
		entry.Insights = append(entry.Insights, *in)
	}

	log.WithField("entry_id", entry.ID.String()).Info("Journal entry created")

	if err := s.streaks.UpdateStreak(ctx, userID, entry.CreatedAt); err != nil {
		log.WithError(err).Error("Failed to update streak after create")
		return nil, err
	}

	return s.toResponse(ctx, &entry)
}

func (s *reflectionService) GetAllEntriesWithInsights(ctx context.Context) ([]*EntryResponse, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "list reflections")
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindAllByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list journal entries")
		return nil, err
	}
	return s.toResponses(ctx, entries)
}

func (s *reflectionService) GetEntryWithInsights(ctx context.Context, id string) (*EntryResponse, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "fetch a reflection")
	if err != nil {
		return nil, err
	}
	entryID, err := parseEntryID(log, id)
	if err != nil {
		return nil, err
	}

	entry, err := s.repo.FindByID(entryID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch journal entry")
		return nil, err
	}
	if entry == nil {
		return nil, ErrNotFound
	}
	return s.toResponse(ctx, entry)
}

func (s *reflectionService) GetEntriesByTheme(ctx context.Context, theme string) ([]*EntryResponse, error) {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "list reflections by theme")
	if err != nil {
		return nil, err
	}

	entries, err := s.repo.FindAllByTheme(userID, theme)
	if err != nil {
		log.WithError(err).Error("Failed to list journal entries by theme")
		return nil, err
	}
	return s.toResponses(ctx, entries)
}

// DeleteEntry removes one entry and its legacy insights atomically, then
// compensates the streak. A second delete of the same id fails with
// ErrNotFound rather than silently succeeding.
func (s *reflectionService) DeleteEntry(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	userID, err := getUserIDFromContext(ctx, log, "delete a reflection")
	if err != nil {
		return err
	}
	entryID, err := parseEntryID(log, id)
	if err != nil {
		return err
	}

	entry, err := s.repo.FindByID(entryID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch journal entry for delete")
		return err
	}
	if entry == nil {
		return ErrNotFound
	}

	if err := s.repo.DeleteWithInsights(entryID, userID); err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return ErrNotFound
		}
		log.WithError(err).Error("Failed to delete journal entry")
		return err
	}

	log.WithField("entry_id", id).Info("Journal entry and insights deleted")

	if err := s.streaks.DeleteReflection(ctx, userID, entry.CreatedAt); err != nil {
		log.WithError(err).Error("Failed to compensate streak after delete")
		return err
	}
	return nil
}

func (s *reflectionService) toResponse(ctx context.Context, entry *JournalEntry) (*EntryResponse, error) {
	log := config.WithContext(ctx)

	transcript, err := config.Decrypt(entry.Transcript)
	if err != nil {
		log.WithError(err).WithField("entry_id", entry.ID.String()).
			Error("Failed to decrypt transcript")
		return nil, err
	}

	return &EntryResponse{
		ID:                 entry.ID,
		UserID:             entry.UserID,
		Title:              entry.Title,
		Transcript:         transcript,
		TranscriptSummary:  entry.TranscriptSummary,
		Highlight:          entry.Highlight,
		Challenge:          entry.Challenge,
		Goal:               entry.Goal,
		ScriptureVerse:     entry.ScriptureVerse,
		ScriptureReference: entry.ScriptureReference,
		Theme:              entry.Theme,
		SubTheme:           entry.SubTheme,
		Color:              entry.Color,
		Shape:              entry.Shape,
		CreatedAt:          entry.CreatedAt,
		Insights:           entry.Insights,
	}, nil
}

func (s *reflectionService) toResponses(ctx context.Context, entries []*JournalEntry) ([]*EntryResponse, error) {
	responses := make([]*EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp, err := s.toResponse(ctx, e)
		if err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
