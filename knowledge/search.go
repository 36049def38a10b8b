package knowledge

import (
	"sort"
	"strings"
)

// DefaultMaxResults is the result limit used when a caller does not
// specify one.
const DefaultMaxResults = 3

const (
	keywordWeight = 2.0
	titleWeight   = 3.0
	contentWeight = 1.0
	priorityScale = 0.5
)

// SearchScored scores every item against the query and returns the
// highest-scoring matches with their scores.
//
// Matching is plain case-insensitive substring containment: every keyword
// found inside the query adds to the score, as do the item's title and
// content if the query happens to contain them verbatim. Matching items
// get a priority bonus on top; items with no match at all are dropped, so
// priority alone never surfaces an item. Ties keep store insertion order.
func (s *Store) SearchScored(query string, maxResults int) []ScoredItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if maxResults <= 0 {
		return []ScoredItem{}
	}

	queryLower := strings.ToLower(query)
	scored := make([]ScoredItem, 0)

	for _, item := range s.items {
		score := float64(0)
		hasMatch := false

		for _, keyword := range item.Keywords {
			if strings.Contains(queryLower, strings.ToLower(keyword)) {
				score += keywordWeight
				hasMatch = true
			}
		}

		if strings.Contains(queryLower, strings.ToLower(item.Title)) {
			score += titleWeight
			hasMatch = true
		}
		if strings.Contains(queryLower, strings.ToLower(item.Content)) {
			score += contentWeight
			hasMatch = true
		}

		if hasMatch {
			score += float64(item.Priority) * priorityScale
			scored = append(scored, ScoredItem{ContextItem: item, Score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > maxResults {
		scored = scored[:maxResults]
	}

	return scored
}

// Search returns the highest-scoring matches for the query, without
// scores.
func (s *Store) Search(query string, maxResults int) []ContextItem {
	scored := s.SearchScored(query, maxResults)
	items := make([]ContextItem, 0, len(scored))
	for _, r := range scored {
		items = append(items, r.ContextItem)
	}
	return items
}
