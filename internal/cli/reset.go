package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the saved invoice state",
	Long: `Delete the persisted invoice state. The next launch starts from the
built-in sample invoice and default design.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete your company profile, invoice, and design settings. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.States.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("failed to reset state: %w", err)
		}

		fmt.Println("Saved state deleted. The next launch starts from defaults.")
		return nil
	},
}

func confirmPrompt(message string) bool {
	fmt.Printf("%s [y/N] ", message)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
