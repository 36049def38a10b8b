package knowledge

import "sync"

// Store holds the in-memory collection of context items. It is
// append-only: items are never updated or removed once added.
type Store struct {
	mu    sync.RWMutex
	items []ContextItem
}

// NewStore creates a store populated with the given seed items. The seed
// slice is copied, so the caller keeps no handle on the stored sequence.
func NewStore(seed []ContextItem) *Store {
	items := make([]ContextItem, len(seed))
	copy(items, seed)
	return &Store{items: items}
}

// AddItem appends a new context item to the end of the store. Priority
// must be in [1,5]; any category string is accepted.
func (s *Store) AddItem(category, subcategory, title, content string, keywords []string, priority int) error {
	if err := validatePriority(priority); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, ContextItem{
		Category:    category,
		Subcategory: subcategory,
		Title:       title,
		Content:     content,
		Keywords:    keywords,
		Priority:    priority,
	})
	return nil
}

// Items returns a snapshot of all items in insertion order.
func (s *Store) Items() []ContextItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]ContextItem, len(s.items))
	copy(items, s.items)
	return items
}

// Count returns the number of items in the store.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
