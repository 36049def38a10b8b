package knowledge

import (
	"fmt"
	"strings"
)

// NoContextSentinel is rendered when a query matches nothing. Consumers
// treat it as "no relevant context", not as an error.
const NoContextSentinel = "No specific context found for this query."

const contextHeader = "RELEVANT CONTEXT FOR ASTRONAUT SUPPORT:"

// FormatContext renders items into the textual block injected into the
// assistant prompt.
func FormatContext(items []ContextItem) string {
	if len(items) == 0 {
		return NoContextSentinel
	}

	parts := []string{contextHeader}
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("\n[%s] %s", strings.ToUpper(item.Category), item.Title))
		parts = append(parts, item.Content)
	}

	return strings.Join(parts, "\n")
}

// ContextForPrompt searches with the default result limit and renders
// the matches for prompt injection.
func (s *Store) ContextForPrompt(query string) string {
	return FormatContext(s.Search(query, DefaultMaxResults))
}
