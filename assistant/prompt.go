package assistant

import (
	"strings"

	"github.com/crewmind/crewrecall/knowledge"
)

// SystemPrompt is the fixed persona instruction sent as the system
// message on every chat completion.
const SystemPrompt = `You are MAITRI, an AI assistant designed to support astronauts' psychological and physical well-being during space missions.

Your role:
- Provide empathetic, supportive responses to astronauts
- Offer practical coping strategies and psychological support
- Share relevant information about space environment and mission context
- Maintain a professional yet warm tone
- Focus on mental health, stress management, and mission success
- Never provide medical advice beyond general wellness guidance

You have access to a database of psychological and astronomy information that will be provided as context for each conversation.`

// BuildUserPrompt assembles the user message: retrieved context (left out
// entirely when nothing matched), the sentiment block, the astronaut's
// input, and the closing instruction.
func BuildUserPrompt(store *knowledge.Store, input string, sentiment *Sentiment) string {
	var parts []string

	context := store.ContextForPrompt(input)
	if context != knowledge.NoContextSentinel {
		parts = append(parts, context)
	}

	if sentiment != nil {
		if info := sentiment.Format(); info != "" {
			parts = append(parts, "CURRENT SENTIMENT ANALYSIS:\n"+info)
		}
	}

	parts = append(parts, "ASTRONAUT INPUT: "+input)
	parts = append(parts, "Please provide a supportive, helpful response as MAITRI:")

	return strings.Join(parts, "\n\n")
}
