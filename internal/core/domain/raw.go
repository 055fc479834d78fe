package domain

// RawElement represents a structural unit handed over by a page observer.
// It mirrors the element-like shape observers capture: tag, identifying
// attributes, text, and structural context. The engine never walks a live
// page; it only ever sees these snapshots.
type RawElement struct {
	// Tag is the element tag name (e.g. "div", "section").
	Tag string

	// ID is the element's identifier attribute. May be empty.
	ID string

	// Class is the element's class or style attribute. May be empty.
	Class string

	// Title is a title-like attribute or heading text. May be empty.
	Title string

	// Text is the element's visible text content.
	Text string

	// Attributes holds the remaining element attributes.
	Attributes map[string]string

	// Parent is the structural container, carried for fingerprinting only.
	Parent *RawElement

	// Children are directly contained structural units.
	Children []RawElement

	// Links are href-like references found inside the element.
	Links []string
}

// RawEvent is one opaque capture from a source observer, before
// normalisation. Exactly one of the per-source field groups is populated,
// matching the event's Source.
type RawEvent struct {
	// Element is set for dom captures.
	Element *RawElement

	// URL and Payload are set for ajax captures.
	URL     string
	Payload string

	// Key, Value and StoreKind are set for storage captures.
	Key       string
	Value     string
	StoreKind string
}
