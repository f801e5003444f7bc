package main

import (
	"os"

	"github.com/spf13/cobra"

	"flowdesk/internal/interfaces/cli/migrate"
	"flowdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "flowdesk",
		Short: "Flowdesk - CRM and project tracking API",
		Long:  `Flowdesk is a REST API for CRM and project tracking with built-in server and migration tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
