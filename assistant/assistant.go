package assistant

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/crewmind/crewrecall/knowledge"
	"github.com/oklog/ulid/v2"
	"github.com/sashabaranov/go-openai"
)

// Assistant retrieves context for an input, calls the chat completion
// API, and records the exchange in the conversation transcript.
type Assistant struct {
	client       *openai.Client
	model        string
	store        *knowledge.Store
	conversation *Conversation

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// New creates an assistant backed by the given OpenAI-compatible client.
func New(client *openai.Client, model string, store *knowledge.Store) *Assistant {
	return &Assistant{
		client:       client,
		model:        model,
		store:        store,
		conversation: NewConversation(),
		entropy:      ulid.Monotonic(rand.Reader, 0),
	}
}

// Conversation returns the transcript of all turns so far.
func (a *Assistant) Conversation() *Conversation {
	return a.conversation
}

func (a *Assistant) newID(now time.Time) string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), a.entropy).String()
}

// Reply answers an astronaut input. Context is retrieved from the store,
// injected alongside the optional sentiment block, and the completed turn
// is appended to the conversation.
func (a *Assistant) Reply(ctx context.Context, input string, sentiment *Sentiment) (*Turn, error) {
	contextUsed := a.store.SearchScored(input, knowledge.DefaultMaxResults)
	userPrompt := BuildUserPrompt(a.store, input, sentiment)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	now := time.Now()
	turn := Turn{
		ID:          a.newID(now),
		CreatedAt:   now,
		Input:       input,
		Reply:       resp.Choices[0].Message.Content,
		ContextUsed: contextUsed,
		Sentiment:   sentiment,
	}
	a.conversation.Append(turn)

	return &turn, nil
}
