package reminder

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/kndri/selah-journaling/internal/auth"
)

type fakeRepo struct {
	setting *ReminderSetting
	saveErr error
}

func (f *fakeRepo) GetByUser(uuid.UUID) (*ReminderSetting, error) {
	if f.setting == nil {
		return nil, nil
	}
	cp := *f.setting
	return &cp, nil
}

func (f *fakeRepo) Save(s *ReminderSetting) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	cp := *s
	f.setting = &cp
	return nil
}

func authedCtx() context.Context {
	return auth.ContextWithClaims(context.Background(),
		&auth.Claims{UserID: uuid.New().String()})
}

func TestReminderService(t *testing.T) {
	t.Run("DefaultsWhenUnset", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, NewScheduler())

		setting, err := svc.GetSettings(authedCtx())
		if err != nil {
			t.Fatal(err)
		}
		if setting.ReminderEnabled || setting.ReminderHour != 20 || setting.ReminderMinute != 0 {
			t.Errorf("unexpected defaults: %+v", setting)
		}
	})

	t.Run("EnableRegistersSchedule", func(t *testing.T) {
		repo := &fakeRepo{}
		scheduler := NewScheduler()
		defer scheduler.CancelAll()
		svc := NewService(repo, scheduler)

		setting, err := svc.UpdateSettings(authedCtx(), UpdateSettingDTO{Enabled: true, Hour: 7, Minute: 30})
		if err != nil {
			t.Fatal(err)
		}
		if setting.NotificationID == nil {
			t.Fatal("expected a notification id")
		}
		if scheduler.Live() != 1 {
			t.Errorf("live = %d, want 1", scheduler.Live())
		}
		if repo.setting == nil || !repo.setting.ReminderEnabled {
			t.Errorf("setting not persisted: %+v", repo.setting)
		}
	})

	t.Run("UpdateCancelsPreviousSchedule", func(t *testing.T) {
		repo := &fakeRepo{}
		scheduler := NewScheduler()
		defer scheduler.CancelAll()
		svc := NewService(repo, scheduler)
		ctx := authedCtx()

		first, err := svc.UpdateSettings(ctx, UpdateSettingDTO{Enabled: true, Hour: 7, Minute: 0})
		if err != nil {
			t.Fatal(err)
		}
		second, err := svc.UpdateSettings(ctx, UpdateSettingDTO{Enabled: true, Hour: 21, Minute: 15})
		if err != nil {
			t.Fatal(err)
		}

		if scheduler.Live() != 1 {
			t.Errorf("live = %d, want 1", scheduler.Live())
		}
		if *first.NotificationID == *second.NotificationID {
			t.Error("expected a fresh notification id")
		}
		if scheduler.Cancel(*first.NotificationID) {
			t.Error("old schedule should already be cancelled")
		}
	})

	t.Run("DisableClearsSchedule", func(t *testing.T) {
		repo := &fakeRepo{}
		scheduler := NewScheduler()
		defer scheduler.CancelAll()
		svc := NewService(repo, scheduler)
		ctx := authedCtx()

		if _, err := svc.UpdateSettings(ctx, UpdateSettingDTO{Enabled: true, Hour: 7, Minute: 0}); err != nil {
			t.Fatal(err)
		}
		setting, err := svc.UpdateSettings(ctx, UpdateSettingDTO{Enabled: false, Hour: 7, Minute: 0})
		if err != nil {
			t.Fatal(err)
		}
		if setting.NotificationID != nil {
			t.Error("expected notification id to be cleared")
		}
		if scheduler.Live() != 0 {
			t.Errorf("live = %d, want 0", scheduler.Live())
		}
	})

	t.Run("RejectsOutOfRangeTime", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, NewScheduler())

		for _, dto := range []UpdateSettingDTO{
			{Enabled: true, Hour: 24, Minute: 0},
			{Enabled: true, Hour: -1, Minute: 0},
			{Enabled: true, Hour: 8, Minute: 60},
		} {
			if _, err := svc.UpdateSettings(authedCtx(), dto); !errors.Is(err, ErrInvalidTime) {
				t.Errorf("dto %+v: expected ErrInvalidTime, got %v", dto, err)
			}
		}
	})

	t.Run("UnauthenticatedRejected", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, NewScheduler())

		if _, err := svc.GetSettings(context.Background()); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
		if _, err := svc.UpdateSettings(context.Background(), UpdateSettingDTO{}); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("MalformedClaimsRejected", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, NewScheduler())
		ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{UserID: "not-a-uuid"})

		if _, err := svc.GetSettings(ctx); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
		if _, err := svc.UpdateSettings(ctx, UpdateSettingDTO{Enabled: true, Hour: 8}); !errors.Is(err, ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})
}
