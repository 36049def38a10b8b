package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "source [url]",
		Short: "Import an external source (web page, sitemap.xml or .git URL)",
		Args:  cobra.ExactArgs(1),
		Run:   runSource,
	}

	importMetaFlags(cmd)
	cmd.Flags().String("private-key", "", "Base64-encoded SSH private key for git URLs")

	RootCmd.AddCommand(cmd)
}

func runSource(cmd *cobra.Command, args []string) {
	privateKey, _ := cmd.Flags().GetString("private-key")

	added, err := apiClient().ImportSource(args[0], importMetaFromFlags(cmd), privateKey)
	if err != nil {
		exitErr("source", err)
	}

	if formatFlag == "json" {
		printJSON(map[string]int{"added": added})
		return
	}

	fmt.Printf("added %d items\n", added)
}
