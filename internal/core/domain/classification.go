package domain

// Category is the heuristic content category assigned by the classifier.
type Category string

const (
	CategoryDashboard Category = "dashboard"
	CategoryService   Category = "service"
	CategoryMetric    Category = "metric"
	CategoryUser      Category = "user"
	CategorySystem    Category = "system"
	CategoryUnknown   Category = "unknown"
)

// Priority is the indexing priority assigned by the classifier.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Classification is the heuristic assignment attached to a record.
type Classification struct {
	// Category is the assigned content category.
	Category Category `json:"category"`

	// Priority is the assigned indexing priority.
	Priority Priority `json:"priority"`

	// Tags are vocabulary keywords found in the record's combined text.
	// Tag assignment is independent of the category rules.
	Tags []string `json:"tags,omitempty"`

	// Confidence is the rule confidence in [0, 1].
	Confidence float64 `json:"confidence"`
}

// HasTag returns true if the classification carries the given tag.
func (c *Classification) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
