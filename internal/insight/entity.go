package insight

type Scripture struct {
	Verse     string `json:"verse"`
	Reference string `json:"reference"`
}

// ReflectionSummary is the structured enrichment derived from one
// reflection's text. Color and Shape are never model- or user-supplied;
// they are derived from (Theme, SubTheme) by MapCategory.
type ReflectionSummary struct {
	Title             string    `json:"title"`
	Highlight         string    `json:"highlight"`
	Challenge         string    `json:"challenge"`
	Goal              Goal      `json:"goal"`
	Scripture         Scripture `json:"scripture"`
	TranscriptSummary string    `json:"transcript_summary"`
	Theme             string    `json:"theme"`
	SubTheme          string    `json:"sub_theme"`
	Color             string    `json:"color"`
	Shape             string    `json:"shape"`
}

type GenerateRequest struct {
	Text string `json:"text"`
}
