package reflection

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEntryNotFound = errors.New("journal entry not found")

type ReflectionRepository interface {
	Create(entry *JournalEntry, insights []*ReflectionInsight) error
	FindAllByUser(userID uuid.UUID) ([]*JournalEntry, error)
	FindByID(id, userID uuid.UUID) (*JournalEntry, error)
	FindAllByTheme(userID uuid.UUID, theme string) ([]*JournalEntry, error)
	DeleteWithInsights(id, userID uuid.UUID) error
}

type reflectionRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) ReflectionRepository {
	return &reflectionRepository{db: db}
}

// Create writes the entry and its legacy insight rows in one transaction;
// either everything lands or nothing does.
func (r *reflectionRepository) Create(entry *JournalEntry, insights []*ReflectionInsight) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		for i := range insights {
			insights[i].EntryID = entry.ID
			insights[i].UserID = entry.UserID
		}
		if len(insights) > 0 {
			if err := tx.Create(&insights).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *reflectionRepository) FindAllByUser(userID uuid.UUID) ([]*JournalEntry, error) {
	var entries []*JournalEntry
	if err := r.db.
		Preload("Insights").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindByID filters by owner as well as id: a foreign entry is
// indistinguishable from an absent one.
func (r *reflectionRepository) FindByID(id, userID uuid.UUID) (*JournalEntry, error) {
	var entry JournalEntry
	if err := r.db.
		Preload("Insights").
		First(&entry, "id = ? AND user_id = ?", id, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *reflectionRepository) FindAllByTheme(userID uuid.UUID, theme string) ([]*JournalEntry, error) {
	var entries []*JournalEntry
	if err := r.db.
		Preload("Insights").
		Where("user_id = ? AND theme = ?", userID, theme).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// DeleteWithInsights removes the legacy insight rows and the entry inside
// one transaction, then re-verifies both are gone before committing. A
// still-present row after delete aborts the transaction, so a failure
// between the two deletes can never strand an orphaned insight or a
// half-deleted entry.
func (r *reflectionRepository) DeleteWithInsights(id, userID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("entry_id = ? AND user_id = ?", id, userID).
			Delete(&ReflectionInsight{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(&JournalEntry{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrEntryNotFound
		}

		var remaining int64
		if err := tx.Model(&JournalEntry{}).
			Where("id = ?", id).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining != 0 {
			return fmt.Errorf("entry %s still present after delete", id)
		}

		if err := tx.Model(&ReflectionInsight{}).
			Where("entry_id = ?", id).
			Count(&remaining).Error; err != nil {
			return err
		}
		if remaining != 0 {
			return fmt.Errorf("insights for entry %s still present after delete", id)
		}

		return nil
	})
}
