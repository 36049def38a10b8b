package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "context [query]",
		Short: "Print the prompt context block for a query",
		Args:  cobra.MinimumNArgs(1),
		Run:   runContext,
	}

	RootCmd.AddCommand(cmd)
}

func runContext(cmd *cobra.Command, args []string) {
	query := strings.Join(args, " ")

	context, err := apiClient().Context(query)
	if err != nil {
		exitErr("context", err)
	}

	if formatFlag == "json" {
		printJSON(map[string]string{"context": context})
		return
	}

	fmt.Println(context)
}
