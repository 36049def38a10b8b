package cli

import (
	"fmt"
	"strings"

	"github.com/crewmind/crewrecall/assistant"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat [input]",
		Short: "Send an input to the assistant",
		Args:  cobra.MinimumNArgs(1),
		Run:   runChat,
	}

	cmd.Flags().String("facial-emotion", "", "Facial emotion label from sentiment analysis")
	cmd.Flags().String("voice-emotion", "", "Voice emotion label from sentiment analysis")
	cmd.Flags().Float64("confidence", 0, "Sentiment confidence score")

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	facial, _ := cmd.Flags().GetString("facial-emotion")
	voice, _ := cmd.Flags().GetString("voice-emotion")
	confidence, _ := cmd.Flags().GetFloat64("confidence")

	var sentiment *assistant.Sentiment
	if facial != "" || voice != "" || confidence != 0 {
		sentiment = &assistant.Sentiment{
			FacialEmotion: facial,
			VoiceEmotion:  voice,
			Confidence:    confidence,
		}
	}

	turn, err := apiClient().Chat(strings.Join(args, " "), sentiment)
	if err != nil {
		exitErr("chat", err)
	}

	if formatFlag == "json" {
		printJSON(turn)
		return
	}

	fmt.Println(turn.Reply)
}
