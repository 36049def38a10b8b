package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the conversation transcript",
		Run:   runHistory,
	}

	RootCmd.AddCommand(cmd)
}

func runHistory(cmd *cobra.Command, args []string) {
	turns, err := apiClient().Conversation()
	if err != nil {
		exitErr("history", err)
	}

	if formatFlag == "json" {
		printJSON(turns)
		return
	}

	for _, turn := range turns {
		fmt.Printf("[%s] > %s\n", turn.CreatedAt.Format("15:04:05"), turn.Input)
		fmt.Printf("%s\n\n", turn.Reply)
	}
}
