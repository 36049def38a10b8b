package cli

import (
	"fmt"

	"github.com/crewmind/crewrecall/knowledge"
	"github.com/spf13/cobra"
)

func importMetaFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("category", "c", "reference", "Category applied to imported items")
	cmd.Flags().String("subcategory", "imported", "Subcategory applied to imported items")
	cmd.Flags().StringP("title", "t", "", "Title applied to imported items")
	cmd.Flags().StringSliceP("keywords", "k", nil, "Match keywords applied to imported items")
	cmd.Flags().IntP("priority", "p", 3, "Priority applied to imported items [1,5]")
}

func importMetaFromFlags(cmd *cobra.Command) knowledge.ImportMeta {
	category, _ := cmd.Flags().GetString("category")
	subcategory, _ := cmd.Flags().GetString("subcategory")
	title, _ := cmd.Flags().GetString("title")
	keywords, _ := cmd.Flags().GetStringSlice("keywords")
	priority, _ := cmd.Flags().GetInt("priority")

	return knowledge.ImportMeta{
		Category:    category,
		Subcategory: subcategory,
		Title:       title,
		Keywords:    keywords,
		Priority:    priority,
	}
}

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a document (.txt, .md, .pdf) into the knowledge base",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	importMetaFlags(cmd)

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	added, err := apiClient().ImportFile(args[0], importMetaFromFlags(cmd))
	if err != nil {
		exitErr("import", err)
	}

	if formatFlag == "json" {
		printJSON(map[string]int{"added": added})
		return
	}

	fmt.Printf("added %d items\n", added)
}
