package normalisers

import (
	"regexp"
	"strings"

	"github.com/probe-labs/scout-cli/internal/core/domain"
)

// textPrefixLen caps how much element text participates in the identity.
const textPrefixLen = 50

var unsafeToken = regexp.MustCompile(`[^a-z0-9]+`)

// Fingerprint derives the deterministic identity of a structural unit.
// It is a pure function of the element's tag, identifier attribute,
// class attribute, and a fixed-length prefix of its text content.
// Re-processing an unchanged element always yields the same identity;
// deduplication and idempotent re-indexing depend on that.
func Fingerprint(el *domain.RawElement) string {
	text := []rune(el.Text)
	if len(text) > textPrefixLen {
		text = text[:textPrefixLen]
	}
	joined := strings.Join([]string{el.Tag, el.ID, el.Class, string(text)}, "-")
	return sanitise(joined)
}

// NamespaceFingerprint derives the identity for non-structural captures
// from a fixed namespace prefix plus the resource key or URL.
func NamespaceFingerprint(namespace, key string) string {
	return namespace + "-" + sanitise(key)
}

// sanitise maps arbitrary input onto the safe-token alphabet [a-z0-9-].
func sanitise(s string) string {
	s = strings.ToLower(s)
	s = unsafeToken.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
