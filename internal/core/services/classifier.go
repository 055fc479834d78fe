package services

import (
	"strings"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// classificationRule is one heuristic category rule.
type classificationRule struct {
	category   domain.Category
	priority   domain.Priority
	confidence float64
	// keywords trigger the rule by containment in the combined text.
	keywords []string
}

// classificationRules are evaluated in order against every record.
// Each rule fires independently and overwrites the result of any
// earlier rule that also fired: last match wins. The order below is
// contractual, not a priority ranking.
var classificationRules = []classificationRule{
	{domain.CategoryDashboard, domain.PriorityHigh, 0.9, []string{"dashboard"}},
	{domain.CategoryService, domain.PriorityHigh, 0.8, []string{"service"}},
	{domain.CategoryMetric, domain.PriorityMedium, 0.8, []string{"metric", "performance"}},
	{domain.CategoryUser, domain.PriorityMedium, 0.7, []string{"user", "profile"}},
	{domain.CategorySystem, domain.PriorityHigh, 0.8, []string{"system", "config"}},
}

// tagVocabulary is the fixed set of tag keywords. Tag assignment is
// substring containment, independent of the category rules.
var tagVocabulary = []string{
	"dashboard", "service", "metric", "user", "system",
	"error", "status", "health", "performance",
}

// Classifier assigns category, priority, tags and confidence from
// heuristic text and type signals.
type Classifier struct{}

// NewClassifier creates a classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify scores the lowercase concatenation of the record's text and
// title against the ordered rule list.
func (c *Classifier) Classify(record *domain.ContentRecord) domain.Classification {
	combined := strings.ToLower(record.Text + " " + record.Title)

	result := domain.Classification{
		Category:   domain.CategoryUnknown,
		Priority:   domain.PriorityLow,
		Confidence: 0.5,
	}
	for _, rule := range classificationRules {
		if rule.matches(combined, record.Type) {
			result.Category = rule.category
			result.Priority = rule.priority
			result.Confidence = rule.confidence
		}
	}

	for _, keyword := range tagVocabulary {
		if strings.Contains(combined, keyword) {
			result.Tags = append(result.Tags, keyword)
		}
	}
	return result
}

// matches reports whether the rule fires: any keyword contained in the
// combined text, or the record's own type naming the category.
func (r *classificationRule) matches(combined string, contentType domain.ContentType) bool {
	for _, keyword := range r.keywords {
		if strings.Contains(combined, keyword) {
			return true
		}
	}
	return string(contentType) == string(r.category)
}
