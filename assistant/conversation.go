package assistant

import (
	"sync"
	"time"

	"github.com/crewmind/crewrecall/knowledge"
)

// Turn is one completed exchange: the astronaut's input, the assistant's
// reply, and the context that was injected to produce it.
type Turn struct {
	ID          string                 `json:"id"`
	CreatedAt   time.Time              `json:"created_at"`
	Input       string                 `json:"input"`
	Reply       string                 `json:"reply"`
	ContextUsed []knowledge.ScoredItem `json:"context_used"`
	Sentiment   *Sentiment             `json:"sentiment,omitempty"`
}

// Conversation is the append-only in-memory transcript. It is not
// persisted across restarts.
type Conversation struct {
	mu    sync.RWMutex
	turns []Turn
}

// NewConversation creates an empty transcript.
func NewConversation() *Conversation {
	return &Conversation{}
}

// Append records a completed turn.
func (c *Conversation) Append(turn Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.turns = append(c.turns, turn)
}

// Turns returns a snapshot of all recorded turns in order.
func (c *Conversation) Turns() []Turn {
	c.mu.RLock()
	defer c.mu.RUnlock()

	turns := make([]Turn, len(c.turns))
	copy(turns, c.turns)
	return turns
}

// Len returns the number of recorded turns.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.turns)
}
