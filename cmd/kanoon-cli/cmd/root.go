package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kanoon-cli",
	Short: "KanoonAI web CLI tool",
	Long: `kanoon-cli inspects a kanoon-web build without starting the server.

Available commands:
  routes    List the public and dashboard routes
  config    Show the configuration the server would start with
  services  List the shared services in the module registry
  version   Print the version

Use "kanoon-cli [command] --help" for more information about a specific command.`,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
