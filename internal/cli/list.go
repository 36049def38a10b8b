package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all knowledge items",
		Run:   runList,
	}

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	items, err := apiClient().Knowledge()
	if err != nil {
		exitErr("list", err)
	}

	if formatFlag == "json" {
		printJSON(items)
		return
	}

	for i, item := range items {
		fmt.Printf("%3d  [%s/%s] p%d  %s\n", i, item.Category, item.Subcategory, item.Priority, item.Title)
	}
}
