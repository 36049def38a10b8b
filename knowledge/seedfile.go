package knowledge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type seedFileItem struct {
	Category    string   `yaml:"category"`
	Subcategory string   `yaml:"subcategory"`
	Title       string   `yaml:"title"`
	Content     string   `yaml:"content"`
	Keywords    []string `yaml:"keywords"`
	Priority    int      `yaml:"priority"`
}

// LoadSeedFile reads a YAML list of context items used to extend the
// built-in seed at startup. Items are validated like AddItem.
func LoadSeedFile(path string) ([]ContextItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read knowledge file: %w", err)
	}

	var fileItems []seedFileItem
	if err := yaml.Unmarshal(data, &fileItems); err != nil {
		return nil, fmt.Errorf("failed to parse knowledge file: %w", err)
	}

	items := make([]ContextItem, 0, len(fileItems))
	for i, fi := range fileItems {
		if err := validatePriority(fi.Priority); err != nil {
			return nil, fmt.Errorf("knowledge file item %d (%q): %w", i, fi.Title, err)
		}
		if len(fi.Keywords) == 0 {
			return nil, fmt.Errorf("knowledge file item %d (%q): %w: no keywords", i, fi.Title, ErrInvalidItem)
		}
		items = append(items, ContextItem{
			Category:    fi.Category,
			Subcategory: fi.Subcategory,
			Title:       fi.Title,
			Content:     fi.Content,
			Keywords:    fi.Keywords,
			Priority:    fi.Priority,
		})
	}

	return items, nil
}
