// Package cli implements the crewctl CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/crewmind/crewrecall/pkg/client"
	"github.com/spf13/cobra"
)

var (
	serverURL  string
	formatFlag string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "crewctl",
	Short: "CLI for the CrewRecall knowledge service",
	Long:  "Query, extend and chat against a running CrewRecall instance.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "Server base URL (default: $CREWRECALL_SERVER or http://localhost:8080)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: json or text")
}

func getServerURL() string {
	if serverURL != "" {
		return serverURL
	}
	if env := os.Getenv("CREWRECALL_SERVER"); env != "" {
		return env
	}
	return "http://localhost:8080"
}

func apiClient() *client.Client {
	return client.NewClient(getServerURL())
}

func printJSON(v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
