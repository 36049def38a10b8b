package cli

import (
	"fmt"
	"strings"

	"github.com/crewmind/crewrecall/knowledge"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [content]",
		Short: "Add a knowledge item",
		Long:  "Append a new context item. Content is taken from the arguments, metadata from flags.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringP("category", "c", "psychological", "Item category")
	cmd.Flags().String("subcategory", "", "Item subcategory")
	cmd.Flags().StringP("title", "t", "", "Item title")
	cmd.Flags().StringSliceP("keywords", "k", nil, "Match keywords (comma-separated)")
	cmd.Flags().IntP("priority", "p", 3, "Item priority [1,5]")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	subcategory, _ := cmd.Flags().GetString("subcategory")
	title, _ := cmd.Flags().GetString("title")
	keywords, _ := cmd.Flags().GetStringSlice("keywords")
	priority, _ := cmd.Flags().GetInt("priority")

	item := knowledge.ContextItem{
		Category:    category,
		Subcategory: subcategory,
		Title:       title,
		Content:     strings.Join(args, " "),
		Keywords:    keywords,
		Priority:    priority,
	}

	if err := apiClient().AddItem(item); err != nil {
		exitErr("add", err)
	}

	if formatFlag == "json" {
		printJSON(item)
		return
	}

	fmt.Println("added")
}
