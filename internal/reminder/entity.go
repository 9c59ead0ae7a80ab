package reminder

import (
	"time"

	"github.com/google/uuid"
)

// ReminderSetting is the per-user daily reminder preference. NotificationID
// holds the identifier of the currently live schedule, nil when disabled;
// there is never more than one live schedule per user.
type ReminderSetting struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	ReminderEnabled bool      `gorm:"not null;default:false" json:"reminder_enabled"`
	ReminderHour    int       `gorm:"not null;default:20" json:"reminder_hour"`
	ReminderMinute  int       `gorm:"not null;default:0" json:"reminder_minute"`
	NotificationID  *string   `gorm:"type:text" json:"notification_id,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ReminderSetting) TableName() string {
	return "user_settings"
}
