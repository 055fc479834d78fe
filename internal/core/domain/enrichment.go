package domain

// UpdateFrequency buckets a record by age since capture.
type UpdateFrequency string

const (
	// FrequencyHigh marks records captured less than an hour ago.
	FrequencyHigh UpdateFrequency = "high"
	// FrequencyMedium marks records captured less than a day ago.
	FrequencyMedium UpdateFrequency = "medium"
	// FrequencyLow marks everything older.
	FrequencyLow UpdateFrequency = "low"
)

// Enrichment is the derived metadata computed for a record after
// classification. Unlike ContentRecord.Metadata, its key vocabulary is
// fixed and typed so downstream contracts stay checkable; Extra is the
// escape hatch for source-specific additions.
type Enrichment struct {
	// ContentLength is the character count of the record's text.
	ContentLength int `json:"content_length"`

	// WordCount is the whitespace-split token count of the text.
	// Empty text counts zero words.
	WordCount int `json:"word_count"`

	// Language is the coarse language guess ("english" or "unknown").
	Language string `json:"language"`

	// QualityScore is the heuristic quality in [0.5, 1.0].
	QualityScore float64 `json:"quality_score"`

	// UpdateFrequency buckets the record by age since capture.
	UpdateFrequency UpdateFrequency `json:"update_frequency"`

	// Extra holds free-form enrichment extensions.
	Extra map[string]string `json:"extra,omitempty"`
}
