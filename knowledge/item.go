package knowledge

import (
	"errors"
	"fmt"
)

// ErrInvalidItem is returned when an item fails validation on append.
var ErrInvalidItem = errors.New("invalid context item")

// DefaultPriority is applied when a caller does not specify a priority.
const DefaultPriority = 3

// ContextItem is a single retrievable knowledge snippet. Items are
// immutable once created; the store only ever appends new ones.
type ContextItem struct {
	Category    string   `json:"category"`
	Subcategory string   `json:"subcategory"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Keywords    []string `json:"keywords"`
	Priority    int      `json:"priority"`
}

// ScoredItem is a ContextItem together with its relevance score.
type ScoredItem struct {
	ContextItem
	Score float64 `json:"score"`
}

func validatePriority(priority int) error {
	if priority < 1 || priority > 5 {
		return fmt.Errorf("%w: priority %d out of range [1,5]", ErrInvalidItem, priority)
	}
	return nil
}
