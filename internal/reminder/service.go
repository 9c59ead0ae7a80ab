package reminder

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kndri/selah-journaling/internal/auth"
	"github.com/kndri/selah-journaling/internal/config"
	"github.com/sirupsen/logrus"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidTime  = errors.New("reminder time out of range")
)

type ReminderService interface {
	GetSettings(ctx context.Context) (*ReminderSetting, error)
	UpdateSettings(ctx context.Context, dto UpdateSettingDTO) (*ReminderSetting, error)
}

type reminderService struct {
	repo      ReminderRepository
	scheduler *Scheduler
}

func NewService(repo ReminderRepository, scheduler *Scheduler) ReminderService {
	return &reminderService{repo: repo, scheduler: scheduler}
}

func userIDFromContext(ctx context.Context, log logrus.FieldLogger) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		log.WithError(err).Warn("Reminder settings access without authentication")
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Malformed user id in token claims")
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

func (s *reminderService) GetSettings(ctx context.Context) (*ReminderSetting, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx, log)
	if err != nil {
		return nil, err
	}

	setting, err := s.repo.GetByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load reminder settings")
		return nil, err
	}
	if setting == nil {
		// Defaults until the user saves a preference.
		return &ReminderSetting{UserID: userID, ReminderHour: 20}, nil
	}
	return setting, nil
}

// UpdateSettings replaces the user's reminder preference. The previous
// schedule is always cancelled before a new one is registered, so a user
// can never accumulate two live schedules.
func (s *reminderService) UpdateSettings(ctx context.Context, dto UpdateSettingDTO) (*ReminderSetting, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx, log)
	if err != nil {
		return nil, err
	}

	if dto.Hour < 0 || dto.Hour > 23 || dto.Minute < 0 || dto.Minute > 59 {
		return nil, ErrInvalidTime
	}

	setting, err := s.repo.GetByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load reminder settings")
		return nil, err
	}
	if setting == nil {
		setting = &ReminderSetting{UserID: userID}
	}

	if setting.NotificationID != nil {
		s.scheduler.Cancel(*setting.NotificationID)
		setting.NotificationID = nil
	}

	setting.ReminderEnabled = dto.Enabled
	setting.ReminderHour = dto.Hour
	setting.ReminderMinute = dto.Minute

	if dto.Enabled {
		id := s.scheduler.ScheduleDaily(dto.Hour, dto.Minute, func() {
			config.Logger().WithField("user_id", userID.String()).
				Info("Daily reflection reminder due")
		})
		setting.NotificationID = &id
	}

	if err := s.repo.Save(setting); err != nil {
		log.WithError(err).Error("Failed to save reminder settings")
		if setting.NotificationID != nil {
			s.scheduler.Cancel(*setting.NotificationID)
		}
		return nil, err
	}

	log.WithField("user_id", userID.String()).
		WithField("enabled", dto.Enabled).
		Info("Reminder settings updated")
	return setting, nil
}
