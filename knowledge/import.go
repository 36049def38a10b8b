package knowledge

import (
	"fmt"

	"github.com/crewmind/crewrecall/pkg/chunk"
)

// DefaultMaxChunkSize bounds the content length of imported items.
const DefaultMaxChunkSize = 1000

// ImportMeta carries the caller-supplied metadata applied to every item
// produced by an import.
type ImportMeta struct {
	Category    string
	Subcategory string
	Title       string
	Keywords    []string
	Priority    int
}

// ImportContent splits content into word-safe chunks and appends one item
// per chunk. Multi-chunk imports get a "(part n/N)" title suffix so the
// pieces stay distinguishable. Returns the number of items added.
func ImportContent(store *Store, content string, meta ImportMeta, maxChunkSize int) (int, error) {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}

	chunks := chunk.SplitParagraphIntoChunks(content, maxChunkSize)
	if len(chunks) == 0 {
		return 0, fmt.Errorf("%w: no content to import", ErrInvalidItem)
	}

	for i, c := range chunks {
		title := meta.Title
		if len(chunks) > 1 {
			title = fmt.Sprintf("%s (part %d/%d)", meta.Title, i+1, len(chunks))
		}
		if err := store.AddItem(meta.Category, meta.Subcategory, title, c, meta.Keywords, meta.Priority); err != nil {
			return i, err
		}
	}

	return len(chunks), nil
}
