package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the knowledge base",
		Long:  "Score every knowledge item against the query and print the best matches.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runSearch,
	}

	cmd.Flags().IntP("limit", "l", 3, "Max results")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	query := strings.Join(args, " ")

	results, err := apiClient().Search(query, limit)
	if err != nil {
		exitErr("search", err)
	}

	if formatFlag == "json" {
		printJSON(results)
		return
	}

	if len(results) == 0 {
		fmt.Println("no matches")
		return
	}

	for _, r := range results {
		fmt.Printf("%.1f  [%s/%s] %s\n", r.Score, r.Category, r.Subcategory, r.Title)
	}
}
