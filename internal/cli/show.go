package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andy/invoicegenius/internal/money"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current invoice",
	Long:  `Print a plain-text summary of the invoice currently being edited.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		state := appInstance.Editor.State()
		f := appInstance.Formatter()
		totals := money.CalculateTotals(state.Invoice.Items, state.Invoice.TaxRate)

		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("Invoice: %s\n", state.Invoice.Number)
		fmt.Println(strings.Repeat("=", 80))
		fmt.Printf("From:   %s\n", state.Company.Name)
		fmt.Printf("To:     %s\n", state.Invoice.Client.Name)
		fmt.Printf("Date:   %s    Due: %s\n", state.Invoice.Date, state.Invoice.DueDate)
		fmt.Printf("Design: %s / %s / %s\n",
			state.Design.Template, state.Design.ColorTheme, state.Design.Font)
		fmt.Println()

		if len(state.Invoice.Items) > 0 {
			fmt.Println("Items:")
			fmt.Println(strings.Repeat("-", 80))
			fmt.Printf("%-40s %10s %12s %12s\n", "Description", "Qty", "Price", "Total")
			fmt.Println(strings.Repeat("-", 80))

			for _, item := range state.Invoice.Items {
				fmt.Printf("%-40s %10.2f %12s %12s\n",
					truncate(item.Description, 40),
					item.Quantity,
					f.FormatFloat(item.Price),
					f.Format(money.LineTotal(item)),
				)
			}
			fmt.Println(strings.Repeat("-", 80))
		}

		fmt.Printf("\n")
		fmt.Printf("Subtotal: %s\n", f.Format(totals.Subtotal))
		fmt.Printf("Tax (%.1f%%): %s\n", state.Invoice.TaxRate, f.Format(totals.TaxAmount))
		fmt.Printf("Total: %s\n", f.Format(totals.Total))
		fmt.Println(strings.Repeat("=", 80))

		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
