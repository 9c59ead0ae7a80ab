package reminder

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReminderRepository interface {
	GetByUser(userID uuid.UUID) (*ReminderSetting, error)
	Save(setting *ReminderSetting) error
}

type reminderRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) GetByUser(userID uuid.UUID) (*ReminderSetting, error) {
	var setting ReminderSetting
	if err := r.db.First(&setting, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

func (r *reminderRepository) Save(setting *ReminderSetting) error {
	return r.db.Save(setting).Error
}
