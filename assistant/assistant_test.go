package assistant_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/crewmind/crewrecall/assistant"
	"github.com/crewmind/crewrecall/knowledge"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sashabaranov/go-openai"
)

func completionClient(server *httptest.Server) *openai.Client {
	config := openai.DefaultConfig("test-key")
	config.BaseURL = server.URL + "/v1"
	return openai.NewClientWithConfig(config)
}

var _ = Describe("Assistant", func() {
	var store *knowledge.Store

	BeforeEach(func() {
		store = knowledge.NewStore(knowledge.SeedItems())
	})

	It("should record a turn with the reply and the retrieved context", func() {
		var captured openai.ChatCompletionRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(json.NewDecoder(r.Body).Decode(&captured)).To(Succeed())
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "Take a slow breath."}},
				},
			})
		}))
		defer server.Close()

		maitri := New(completionClient(server), "test-model", store)

		turn, err := maitri.Reply(context.Background(), "I'm feeling stressed about the mission", nil)
		Expect(err).ToNot(HaveOccurred())
		Expect(turn.ID).ToNot(BeEmpty())
		Expect(turn.Reply).To(Equal("Take a slow breath."))
		Expect(turn.Input).To(Equal("I'm feeling stressed about the mission"))
		Expect(turn.ContextUsed).ToNot(BeEmpty())
		Expect(turn.ContextUsed[0].Title).To(Equal("Stress Recognition in Space"))

		Expect(captured.Model).To(Equal("test-model"))
		Expect(captured.Messages).To(HaveLen(2))
		Expect(captured.Messages[0].Content).To(Equal(SystemPrompt))
		Expect(captured.Messages[1].Content).To(ContainSubstring("ASTRONAUT INPUT: I'm feeling stressed about the mission"))

		Expect(maitri.Conversation().Len()).To(Equal(1))
		Expect(maitri.Conversation().Turns()[0].ID).To(Equal(turn.ID))
	})

	It("should carry the sentiment block into the prompt and the turn", func() {
		var captured openai.ChatCompletionRequest

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Expect(json.NewDecoder(r.Body).Decode(&captured)).To(Succeed())
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "ok"}},
				},
			})
		}))
		defer server.Close()

		maitri := New(completionClient(server), "test-model", store)
		sentiment := &Sentiment{FacialEmotion: "anxious", Confidence: 0.85}

		turn, err := maitri.Reply(context.Background(), "I can't sleep properly", sentiment)
		Expect(err).ToNot(HaveOccurred())
		Expect(turn.Sentiment).To(Equal(sentiment))
		Expect(captured.Messages[1].Content).To(ContainSubstring("CURRENT SENTIMENT ANALYSIS:\nFacial Emotion: anxious\nConfidence: 0.85"))
	})

	It("should error when the completion has no choices and record nothing", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(openai.ChatCompletionResponse{})
		}))
		defer server.Close()

		maitri := New(completionClient(server), "test-model", store)

		_, err := maitri.Reply(context.Background(), "hello crew", nil)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("no choices"))
		Expect(maitri.Conversation().Len()).To(Equal(0))
	})

	It("should wrap transport failures and record nothing", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error": {"message": "boom"}}`, http.StatusInternalServerError)
		}))
		defer server.Close()

		maitri := New(completionClient(server), "test-model", store)

		_, err := maitri.Reply(context.Background(), "hello crew", nil)
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("chat completion failed"))
		Expect(maitri.Conversation().Len()).To(Equal(0))
	})

	It("should mint a distinct ID per turn", func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: "ok"}},
				},
			})
		}))
		defer server.Close()

		maitri := New(completionClient(server), "test-model", store)

		first, err := maitri.Reply(context.Background(), "stress", nil)
		Expect(err).ToNot(HaveOccurred())
		second, err := maitri.Reply(context.Background(), "stress", nil)
		Expect(err).ToNot(HaveOccurred())

		Expect(first.ID).ToNot(Equal(second.ID))
		Expect(maitri.Conversation().Len()).To(Equal(2))
	})
})
