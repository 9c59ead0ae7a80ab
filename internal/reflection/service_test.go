package reflection

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kndri/selah-journaling/internal/auth"
	"github.com/kndri/selah-journaling/internal/config"
	"github.com/kndri/selah-journaling/internal/insight"
	"github.com/kndri/selah-journaling/internal/streak"
)

type fakeReflectionRepo struct {
	entries   map[uuid.UUID]*JournalEntry
	deleteErr error
}

func newFakeRepo() *fakeReflectionRepo {
	return &fakeReflectionRepo{entries: map[uuid.UUID]*JournalEntry{}}
}

func (f *fakeReflectionRepo) Create(entry *JournalEntry, insights []*ReflectionInsight) error {
	entry.CreatedAt = time.Now().UTC()
	for _, in := range insights {
		in.EntryID = entry.ID
		in.UserID = entry.UserID
	}
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeReflectionRepo) FindAllByUser(userID uuid.UUID) ([]*JournalEntry, error) {
	var out []*JournalEntry
	for _, e := range f.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeReflectionRepo) FindByID(id, userID uuid.UUID) (*JournalEntry, error) {
	e, ok := f.entries[id]
	if !ok || e.UserID != userID {
		return nil, nil
	}
	return e, nil
}

func (f *fakeReflectionRepo) FindAllByTheme(userID uuid.UUID, theme string) ([]*JournalEntry, error) {
	var out []*JournalEntry
	for _, e := range f.entries {
		if e.UserID == userID && e.Theme == theme {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeReflectionRepo) DeleteWithInsights(id, userID uuid.UUID) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	e, ok := f.entries[id]
	if !ok || e.UserID != userID {
		return ErrEntryNotFound
	}
	delete(f.entries, id)
	return nil
}

type fakeStreaks struct {
	updated []time.Time
	deleted []time.Time
}

func (f *fakeStreaks) GetByUser(context.Context, uuid.UUID) (*streak.Streak, error) {
	return nil, nil
}

func (f *fakeStreaks) UpdateStreak(_ context.Context, _ uuid.UUID, d time.Time) error {
	f.updated = append(f.updated, d)
	return nil
}

func (f *fakeStreaks) DeleteReflection(_ context.Context, _ uuid.UUID, d time.Time) error {
	f.deleted = append(f.deleted, d)
	return nil
}

func setupCrypto(t *testing.T) {
	t.Helper()
	t.Setenv("CRYPTO_KEY", "0123456789abcdef0123456789abcdef")
	config.InitCrypto()
}

func ctxFor(userID uuid.UUID) context.Context {
	return auth.ContextWithClaims(context.Background(),
		&auth.Claims{UserID: userID.String()})
}

func sampleDTO() CreateEntryDTO {
	return CreateEntryDTO{
		Title:              "Learning to Trust",
		Transcript:         "Today I walked and prayed about the interview.",
		TranscriptSummary:  "A day of wavering but growing trust.",
		Highlight:          "Morning walk",
		Challenge:          "Interview anxiety",
		Goal:               insight.Goal{Text: "Pray each evening"},
		ScriptureVerse:     "Trust in the Lord with all your heart",
		ScriptureReference: "Proverbs 3:5",
		Theme:              "Faith",
		SubTheme:           "Trust",
	}
}

func TestCreateEntryWithInsights(t *testing.T) {
	setupCrypto(t)

	t.Run("PersistsEncryptedAndUpdatesStreak", func(t *testing.T) {
		repo := newFakeRepo()
		streaks := &fakeStreaks{}
		svc := NewService(repo, streaks)
		userID := uuid.New()

		resp, err := svc.CreateEntryWithInsights(ctxFor(userID), sampleDTO())
		if err != nil {
			t.Fatal(err)
		}

		stored := repo.entries[resp.ID]
		if stored == nil {
			t.Fatal("entry not persisted")
		}
		if stored.Transcript == sampleDTO().Transcript {
			t.Error("transcript stored in plaintext")
		}
		if resp.Transcript != sampleDTO().Transcript {
			t.Errorf("response transcript = %q", resp.Transcript)
		}
		if resp.Color != "Purple" || resp.Shape != insight.ShapeCircle {
			t.Errorf("category = %s/%s, want Purple/Circle", resp.Color, resp.Shape)
		}
		if len(stored.RawInsight) == 0 {
			t.Error("raw insight payload not retained")
		}
		if len(streaks.updated) != 1 || !streaks.updated[0].Equal(stored.CreatedAt) {
			t.Errorf("streak updates = %v", streaks.updated)
		}
	})

	t.Run("LegacyInsightsAttached", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &fakeStreaks{})
		userID := uuid.New()

		dto := sampleDTO()
		dto.Insights = []LegacyInsightDTO{
			{Insight: "Rest is not laziness", Explanation: "Sabbath framing"},
			{Insight: "Name the fear", Explanation: "Anxiety loses power when spoken"},
		}

		resp, err := svc.CreateEntryWithInsights(ctxFor(userID), dto)
		if err != nil {
			t.Fatal(err)
		}
		if len(resp.Insights) != 2 {
			t.Fatalf("insights = %d, want 2", len(resp.Insights))
		}
		for _, in := range resp.Insights {
			if in.UserID != userID {
				t.Errorf("insight user = %s, want %s", in.UserID, userID)
			}
		}
	})

	t.Run("EmptyTranscriptRejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeStreaks{})
		dto := sampleDTO()
		dto.Transcript = "   "

		if _, err := svc.CreateEntryWithInsights(ctxFor(uuid.New()), dto); !errors.Is(err, ErrEmptyEntry) {
			t.Errorf("expected ErrEmptyEntry, got %v", err)
		}
	})

	t.Run("UnauthenticatedRejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeStreaks{})

		if _, err := svc.CreateEntryWithInsights(context.Background(), sampleDTO()); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("MalformedClaimsRejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeStreaks{})
		ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{UserID: "not-a-uuid"})

		if _, err := svc.CreateEntryWithInsights(ctx, sampleDTO()); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestGetEntry(t *testing.T) {
	setupCrypto(t)

	t.Run("OwnerSeesDecryptedEntry", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &fakeStreaks{})
		userID := uuid.New()

		created, err := svc.CreateEntryWithInsights(ctxFor(userID), sampleDTO())
		if err != nil {
			t.Fatal(err)
		}

		got, err := svc.GetEntryWithInsights(ctxFor(userID), created.ID.String())
		if err != nil {
			t.Fatal(err)
		}
		if got.Transcript != sampleDTO().Transcript {
			t.Errorf("transcript = %q", got.Transcript)
		}
	})

	t.Run("ForeignEntryLooksAbsent", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(repo, &fakeStreaks{})

		created, err := svc.CreateEntryWithInsights(ctxFor(uuid.New()), sampleDTO())
		if err != nil {
			t.Fatal(err)
		}

		if _, err := svc.GetEntryWithInsights(ctxFor(uuid.New()), created.ID.String()); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("BadIDRejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeStreaks{})

		if _, err := svc.GetEntryWithInsights(ctxFor(uuid.New()), "not-a-uuid"); !errors.Is(err, ErrInvalidID) {
			t.Errorf("expected ErrInvalidID, got %v", err)
		}
	})
}

func TestDeleteEntry(t *testing.T) {
	setupCrypto(t)

	t.Run("DeleteCompensatesStreak", func(t *testing.T) {
		repo := newFakeRepo()
		streaks := &fakeStreaks{}
		svc := NewService(repo, streaks)
		userID := uuid.New()

		created, err := svc.CreateEntryWithInsights(ctxFor(userID), sampleDTO())
		if err != nil {
			t.Fatal(err)
		}

		if err := svc.DeleteEntry(ctxFor(userID), created.ID.String()); err != nil {
			t.Fatal(err)
		}
		if len(repo.entries) != 0 {
			t.Error("entry still present")
		}
		if len(streaks.deleted) != 1 {
			t.Errorf("streak compensations = %d, want 1", len(streaks.deleted))
		}
	})

	t.Run("SecondDeleteFails", func(t *testing.T) {
		repo := newFakeRepo()
		streaks := &fakeStreaks{}
		svc := NewService(repo, streaks)
		userID := uuid.New()

		created, err := svc.CreateEntryWithInsights(ctxFor(userID), sampleDTO())
		if err != nil {
			t.Fatal(err)
		}

		if err := svc.DeleteEntry(ctxFor(userID), created.ID.String()); err != nil {
			t.Fatal(err)
		}
		if err := svc.DeleteEntry(ctxFor(userID), created.ID.String()); !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
		if len(streaks.deleted) != 1 {
			t.Errorf("streak compensations = %d, want 1", len(streaks.deleted))
		}
	})

	t.Run("FailedDeleteSkipsCompensation", func(t *testing.T) {
		repo := newFakeRepo()
		streaks := &fakeStreaks{}
		svc := NewService(repo, streaks)
		userID := uuid.New()

		created, err := svc.CreateEntryWithInsights(ctxFor(userID), sampleDTO())
		if err != nil {
			t.Fatal(err)
		}

		repo.deleteErr = errors.New("deadlock")
		if err := svc.DeleteEntry(ctxFor(userID), created.ID.String()); err == nil {
			t.Fatal("expected error")
		}
		if len(streaks.deleted) != 0 {
			t.Error("streak compensated despite failed delete")
		}
	})
}
