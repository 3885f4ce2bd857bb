// Package sanitize cleans user-provided journal text before storage.
// Uses bluemonday to strip all HTML (script tags, event handlers,
// javascript: URLs, but also plain markup) so that entry content is
// stored and served as inert text.
package sanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// policy is the singleton bluemonday policy for journal content.
// Initialized once via sync.Once for thread-safe lazy initialization.
var (
	policy     *bluemonday.Policy
	policyOnce sync.Once
)

// getPolicy returns the shared sanitization policy, initializing it on first
// call. Journal entries are free-form text, not rich documents, so the
// strict policy (no elements at all) is used -- anything tag-shaped is
// removed rather than escaped.
func getPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.StrictPolicy()
	})
	return policy
}

// Text sanitizes user-provided journal content. All HTML is stripped and
// surrounding whitespace trimmed. MUST be called on entry content before
// it is stored.
func Text(input string) string {
	return strings.TrimSpace(getPolicy().Sanitize(input))
}
