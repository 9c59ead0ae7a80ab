package container

import (
	"context"
	"log"
	"os"

	"github.com/kndri/selah-journaling/internal/auth"
	"github.com/kndri/selah-journaling/internal/config"
	"github.com/kndri/selah-journaling/internal/insight"
	"github.com/kndri/selah-journaling/internal/reflection"
	"github.com/kndri/selah-journaling/internal/reminder"
	"github.com/kndri/selah-journaling/internal/streak"
	"github.com/kndri/selah-journaling/internal/transcription"
	"github.com/kndri/selah-journaling/internal/user"
)

type Container struct {
	UserContainer          *user.UserContainer
	InsightContainer       *insight.InsightContainer
	TranscriptionContainer *transcription.TranscriptionContainer
	ReflectionContainer    *reflection.ReflectionContainer
	StreakContainer        *streak.StreakContainer
	ReminderContainer      *reminder.ReminderContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := config.Migrate(config.DB,
		&user.User{},
		&reflection.JournalEntry{},
		&reflection.ReflectionInsight{},
		&streak.Streak{},
		&reminder.ReminderSetting{},
	); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	insightContainer := insight.NewInsightContainer()
	transcriptionContainer := transcription.NewTranscriptionContainer()
	streakContainer := streak.NewStreakContainer(config.DB)
	reflectionContainer := reflection.NewReflectionContainer(config.DB, streakContainer.Service)
	reminderContainer := reminder.NewReminderContainer(config.DB)

	return &Container{
		UserContainer:          userContainer,
		InsightContainer:       insightContainer,
		TranscriptionContainer: transcriptionContainer,
		ReflectionContainer:    reflectionContainer,
		StreakContainer:        streakContainer,
		ReminderContainer:      reminderContainer,
	}
}
