package cli

import (
	"github.com/andy/invoicegenius/internal/app"
	"github.com/spf13/cobra"
)

var appInstance *app.App

var rootCmd = &cobra.Command{
	Use:   "invoicegenius",
	Short: "A local-first invoice generator",
	Long: `Invoicegenius builds professional invoices from a single locally
persisted working state: your company profile, the invoice being edited,
and its visual design.

By default, running invoicegenius without arguments launches the
interactive TUI. Use subcommands for CLI operations.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch TUI
		return launchTUI(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetApp sets the app instance for commands to use
func SetApp(a *app.App) {
	appInstance = a
}

func init() {
	// Add all subcommands
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
}
