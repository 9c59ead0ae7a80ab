package streak

import (
	"time"

	"github.com/google/uuid"
)

// Streak is the one-row-per-user consecutive-day counter derived from
// reflection creation dates. LastReflectionDate only carries day
// granularity; the time of day is never compared.
type Streak struct {
	UserID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CurrentStreak      int       `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak      int       `gorm:"not null;default:0" json:"longest_streak"`
	LastReflectionDate time.Time `gorm:"not null" json:"last_reflection_date"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Streak) TableName() string {
	return "user_streaks"
}
