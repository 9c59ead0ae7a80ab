package reflection

import (
	"time"

	"github.com/google/uuid"
	"github.com/kndri/selah-journaling/internal/insight"
)

type CreateEntryDTO struct {
	Title              string             `json:"title"`
	Transcript         string             `json:"transcript"`
	TranscriptSummary  string             `json:"transcript_summary"`
	Highlight          string             `json:"highlight"`
	Challenge          string             `json:"challenge"`
	Goal               insight.Goal       `json:"goal"`
	ScriptureVerse     string             `json:"scripture_verse"`
	ScriptureReference string             `json:"scripture_reference"`
	Theme              string             `json:"theme"`
	SubTheme           string             `json:"sub_theme"`
	Insights           []LegacyInsightDTO `json:"insights,omitempty"`
}

type LegacyInsightDTO struct {
	Insight            string  `json:"insight"`
	ScriptureVerse     string  `json:"scripture_verse"`
	ScriptureReference string  `json:"scripture_reference"`
	Explanation        string  `json:"explanation"`
	Theme              *string `json:"theme,omitempty"`
}

type EntryResponse struct {
	ID                 uuid.UUID           `json:"id"`
	UserID             uuid.UUID           `json:"user_id"`
	Title              string              `json:"title"`
	Transcript         string              `json:"transcript"`
	TranscriptSummary  string              `json:"transcript_summary"`
	Highlight          string              `json:"highlight"`
	Challenge          string              `json:"challenge"`
	Goal               insight.Goal        `json:"goal"`
	ScriptureVerse     string              `json:"scripture_verse"`
	ScriptureReference string              `json:"scripture_reference"`
	Theme              string              `json:"theme"`
	SubTheme           string              `json:"sub_theme"`
	Color              string              `json:"color"`
	Shape              string              `json:"shape"`
	CreatedAt          time.Time           `json:"created_at"`
	Insights           []ReflectionInsight `json:"reflection_insights,omitempty"`
}
