package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/invoicegenius/internal/pdf"
	"github.com/andy/invoicegenius/internal/render"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current invoice as a PDF",
	Long: `Render the invoice currently being edited with its design settings
and write it out as an A4 PDF.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := appInstance.Editor.State()

		doc := render.Render(state.Invoice, state.Company, state.Design, appInstance.Formatter())

		data, err := pdf.Exporter{}.Export(doc)
		if err != nil {
			return fmt.Errorf("failed to export PDF: %w", err)
		}

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			name := strings.ReplaceAll(state.Invoice.Number, string(os.PathSeparator), "-")
			if name == "" {
				name = "invoice"
			}
			out = filepath.Join(appInstance.Config.Export.OutputDir, name+".pdf")
		}

		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}

		fmt.Printf("✓ Exported %s to %s\n", state.Invoice.Number, out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file path (defaults to the configured export directory)")
}
