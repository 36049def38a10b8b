package assistant

import (
	"fmt"
	"strings"
)

// Sentiment carries the emotion labels produced by the external
// face/voice analysis collaborator. All fields are optional; zero-valued
// fields are left out of the prompt.
type Sentiment struct {
	FacialEmotion string  `json:"facial_emotion,omitempty"`
	VoiceEmotion  string  `json:"voice_emotion,omitempty"`
	Confidence    float64 `json:"confidence,omitempty"`
	Timestamp     string  `json:"timestamp,omitempty"`
}

// Format renders the sentiment lines included in the prompt.
func (s *Sentiment) Format() string {
	var lines []string

	if s.FacialEmotion != "" {
		lines = append(lines, "Facial Emotion: "+s.FacialEmotion)
	}
	if s.VoiceEmotion != "" {
		lines = append(lines, "Voice Emotion: "+s.VoiceEmotion)
	}
	if s.Confidence != 0 {
		lines = append(lines, fmt.Sprintf("Confidence: %.2f", s.Confidence))
	}
	if s.Timestamp != "" {
		lines = append(lines, "Timestamp: "+s.Timestamp)
	}

	return strings.Join(lines, "\n")
}
