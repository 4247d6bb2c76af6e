package main

import (
	"os"

	"github.com/spf13/cobra"

	"complaintdesk/internal/interfaces/cli/server"
	"complaintdesk/internal/interfaces/cli/stats"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "complaintdesk",
		Short: "Complaintdesk - insurance complaint tracking",
		Long:  `Complaintdesk tracks customer complaints from submission through assignment to resolution, with an HTTP API and reporting commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		stats.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
