package services

import (
	"strings"
	"time"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// commonEnglishWords is the fixed vocabulary for the language guess.
var commonEnglishWords = []string{
	"the", "and", "for", "are", "with", "this", "that", "from",
}

// englishThreshold is the matched-fraction above which text is guessed
// to be English.
const englishThreshold = 0.3

// Enricher computes derived metadata for a record.
type Enricher struct {
	// now is swappable for tests.
	now func() time.Time
}

// NewEnricher creates an enricher using the wall clock.
func NewEnricher() *Enricher {
	return &Enricher{now: time.Now}
}

// Enrich computes the typed enrichment for a record.
func (e *Enricher) Enrich(record *domain.ContentRecord) domain.Enrichment {
	return domain.Enrichment{
		ContentLength:   len(record.Text),
		WordCount:       len(strings.Fields(record.Text)),
		Language:        guessLanguage(record.Text),
		QualityScore:    qualityScore(record),
		UpdateFrequency: e.updateFrequency(record.Timestamp),
	}
}

// guessLanguage divides the number of distinct common-English words
// found in the text by the vocabulary size, not by the words scanned.
// The ratio deliberately measures vocabulary coverage: it stays stable
// for long texts where a per-occurrence ratio would collapse to zero.
func guessLanguage(text string) string {
	lowered := strings.ToLower(text)
	matched := 0
	for _, word := range commonEnglishWords {
		if strings.Contains(lowered, word) {
			matched++
		}
	}
	ratio := float64(matched) / float64(len(commonEnglishWords))
	if ratio > englishThreshold {
		return "english"
	}
	return "unknown"
}

// qualityScore starts at 0.5 and rewards a usable title, description
// and body, capped at 1.0.
func qualityScore(record *domain.ContentRecord) float64 {
	score := 0.5
	if len(record.Title) > 5 {
		score += 0.2
	}
	if len(record.Description) > 10 {
		score += 0.2
	}
	if len(record.Text) > 20 {
		score += 0.1
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// updateFrequency buckets the record by age since capture.
func (e *Enricher) updateFrequency(captured time.Time) domain.UpdateFrequency {
	age := e.now().Sub(captured)
	switch {
	case age < time.Hour:
		return domain.FrequencyHigh
	case age < 24*time.Hour:
		return domain.FrequencyMedium
	default:
		return domain.FrequencyLow
	}
}
