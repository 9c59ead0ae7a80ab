package reflection

import (
	"time"

	"github.com/google/uuid"
	"github.com/kndri/selah-journaling/internal/insight"
	"gorm.io/datatypes"
)

// JournalEntry is one persisted reflection. The current schema folds the
// single AI insight into the entry row; Insights carries the legacy
// multi-insight rows so both schema generations stay queryable.
//
// Transcript is stored encrypted; Color and Shape are always re-derived
// from (Theme, SubTheme) at write time, never taken from the client.
// Entries are immutable after creation: there is no update path.
type JournalEntry struct {
	ID                 uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title              string         `gorm:"type:text;not null" json:"title"`
	Transcript         string         `gorm:"type:text;not null" json:"-"`
	TranscriptSummary  string         `gorm:"type:text" json:"transcript_summary"`
	Highlight          string         `gorm:"type:text" json:"highlight"`
	Challenge          string         `gorm:"type:text" json:"challenge"`
	Goal               insight.Goal   `gorm:"type:jsonb" json:"goal"`
	ScriptureVerse     string         `gorm:"type:text" json:"scripture_verse"`
	ScriptureReference string         `gorm:"type:text" json:"scripture_reference"`
	Theme              string         `gorm:"type:text" json:"theme"`
	SubTheme           string         `gorm:"type:text" json:"sub_theme"`
	Color              string         `gorm:"type:text" json:"color"`
	Shape              string         `gorm:"type:text" json:"shape"`
	RawInsight         datatypes.JSON `gorm:"type:jsonb" json:"-"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`

	Insights []ReflectionInsight `gorm:"foreignKey:EntryID;constraint:OnDelete:CASCADE" json:"reflection_insights,omitempty"`
}

func (JournalEntry) TableName() string {
	return "journal_entries"
}

// ReflectionInsight is the legacy child row: older clients attached zero
// or more insights per entry, each with its own scripture and theme.
type ReflectionInsight struct {
	ID                 uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	EntryID            uuid.UUID `gorm:"type:uuid;not null;index" json:"entry_id"`
	UserID             uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Insight            string    `gorm:"type:text;not null" json:"insight"`
	ScriptureVerse     string    `gorm:"type:text" json:"scripture_verse"`
	ScriptureReference string    `gorm:"type:text" json:"scripture_reference"`
	Explanation        string    `gorm:"type:text" json:"explanation"`
	Theme              *string   `gorm:"type:text" json:"theme,omitempty"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ReflectionInsight) TableName() string {
	return "reflection_insights"
}
