package streak

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kndri/selah-journaling/internal/config"
)

type StreakService interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*Streak, error)
	UpdateStreak(ctx context.Context, userID uuid.UUID, reflectionDate time.Time) error
	DeleteReflection(ctx context.Context, userID uuid.UUID, reflectionDate time.Time) error
}

type streakService struct {
	repo StreakRepository
	now  func() time.Time
}

func NewService(repo StreakRepository) StreakService {
	return &streakService{repo: repo, now: time.Now}
}

func newServiceWithClock(repo StreakRepository, now func() time.Time) StreakService {
	return &streakService{repo: repo, now: now}
}

func (s *streakService) GetByUser(ctx context.Context, userID uuid.UUID) (*Streak, error) {
	cur, err := s.repo.GetByUser(userID)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		// Lazily created on first entry; readers see zeroes until then.
		return &Streak{UserID: userID}, nil
	}
	return cur, nil
}

func (s *streakService) UpdateStreak(ctx context.Context, userID uuid.UUID, reflectionDate time.Time) error {
	log := config.WithContext(ctx)

	cur, err := s.repo.GetByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load streak")
		return err
	}

	next, changed := ApplyCreate(cur, userID, reflectionDate, s.now())
	if !changed {
		return nil
	}

	if cur == nil {
		if err := s.repo.Create(&next); err != nil {
			log.WithError(err).Error("Failed to create streak")
			return err
		}
		log.WithField("user_id", userID.String()).Info("Streak started")
		return nil
	}

	if err := s.repo.Save(&next); err != nil {
		log.WithError(err).Error("Failed to update streak")
		return err
	}
	log.WithField("user_id", userID.String()).
		WithField("current_streak", next.CurrentStreak).
		Info("Streak updated")
	return nil
}

func (s *streakService) DeleteReflection(ctx context.Context, userID uuid.UUID, reflectionDate time.Time) error {
	log := config.WithContext(ctx)

	cur, err := s.repo.GetByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load streak")
		return err
	}
	if cur == nil {
		return nil
	}

	remaining, err := s.repo.CountEntriesOnDay(userID, reflectionDate)
	if err != nil {
		log.WithError(err).Error("Failed to count same-day entries")
		return err
	}

	next, changed := ApplyDelete(cur, reflectionDate, remaining)
	if !changed {
		return nil
	}

	if err := s.repo.Save(&next); err != nil {
		log.WithError(err).Error("Failed to compensate streak")
		return err
	}
	log.WithField("user_id", userID.String()).
		WithField("current_streak", next.CurrentStreak).
		Info("Streak compensated after delete")
	return nil
}
