package streak

import (
	"errors"
	"time"

	"github.com/google/uuid"
	util "github.com/kndri/selah-journaling/internal/utils"
	"gorm.io/gorm"
)

type StreakRepository interface {
	GetByUser(userID uuid.UUID) (*Streak, error)
	Create(s *Streak) error
	Save(s *Streak) error
	CountEntriesOnDay(userID uuid.UUID, day time.Time) (int64, error)
}

type streakRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) StreakRepository {
	return &streakRepository{db: db}
}

func (r *streakRepository) GetByUser(userID uuid.UUID) (*Streak, error) {
	var s Streak
	if err := r.db.First(&s, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *streakRepository) Create(s *Streak) error {
	return r.db.Create(s).Error
}

func (r *streakRepository) Save(s *Streak) error {
	return r.db.Save(s).Error
}

// CountEntriesOnDay counts the user's journal entries created on the given
// calendar day. The query goes straight at the table to keep this package
// independent of the reflection package.
func (r *streakRepository) CountEntriesOnDay(userID uuid.UUID, day time.Time) (int64, error) {
	start := util.DayStart(day)
	end := start.AddDate(0, 0, 1)

	var count int64
	err := r.db.Table("journal_entries").
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Count(&count).Error
	return count, err
}
