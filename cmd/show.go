package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"facture/internal/billing"
	"facture/internal/config"
	"facture/internal/logger"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Compute and print invoice totals without rendering a PDF",
	Long: `Build an invoice for a named client and item set and print the
computed values as JSON: pre-tax and taxed totals, the tax breakdown grouped
by rate and the rounding difference. Amounts are emitted as exact decimal
strings.`,
	Example: `  # Totals for the "acme" set, to stdout
  facture show --name acme

  # Save to a file, with rounding applied
  facture show --name acme --round -o totals.json`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

// invoiceSummary is the JSON output structure for the show command.
// Monetary values are exact decimal strings, never floats.
type invoiceSummary struct {
	Kind         string         `json:"kind"`
	Mode         int            `json:"mode"`
	Provider     string         `json:"provider"`
	Client       string         `json:"client"`
	Subject      string         `json:"subject,omitempty"`
	Currency     string         `json:"currency"`
	Items        int            `json:"items"`
	Price        string         `json:"price"`
	PriceWithTax string         `json:"price_with_tax"`
	Rounding     *roundingInfo  `json:"rounding,omitempty"`
	TaxBreakdown []breakdownRow `json:"tax_breakdown"`
}

type roundingInfo struct {
	Strategy   string `json:"strategy"`
	Difference string `json:"difference"`
}

type breakdownRow struct {
	Rate         string `json:"rate"`
	Total        string `json:"total"`
	Tax          string `json:"tax"`
	TotalWithTax string `json:"total_with_tax"`
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("name", "n", "", "Address book key of the client and item set (required)")
	showCmd.Flags().StringP("kind", "k", string(billing.KindInvoice), "Document kind: invoice | quote")
	showCmd.Flags().IntP("mode", "m", int(billing.ModeUnits), "Item columns: 1 = units and unit price, 2 = royalties and sale price")
	showCmd.Flags().StringP("output", "o", "", "Output file path (default: stdout)")
	showCmd.Flags().Bool("round", false, "Round totals to whole currency units")
	showCmd.Flags().String("strategy", string(billing.RoundHalfEven), "Rounding strategy: half-up | half-down | half-even | ceiling | floor | truncate")
	_ = showCmd.MarkFlagRequired("name")
}

func runShow(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("show")

	name, _ := cmd.Flags().GetString("name")
	kind, _ := cmd.Flags().GetString("kind")
	mode, _ := cmd.Flags().GetInt("mode")
	outputPath, _ := cmd.Flags().GetString("output")
	round, _ := cmd.Flags().GetBool("round")
	strategy, _ := cmd.Flags().GetString("strategy")

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	invoice, err := buildInvoice(cfg, name, kind, mode)
	if err != nil {
		return err
	}
	invoice.RoundingEnabled = round
	invoice.SetRoundingStrategy(billing.RoundingStrategy(strategy))

	summary := summarize(invoice)

	jsonData, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to create JSON output: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		log.Info().
			Str("output_file", outputPath).
			Int("bytes", len(jsonData)).
			Msg("Invoice summary written to file")
		return nil
	}

	if _, err := os.Stdout.Write(jsonData); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Println()
	return nil
}

func summarize(invoice *billing.Invoice) invoiceSummary {
	summary := invoiceSummary{
		Kind:         string(invoice.Kind()),
		Mode:         int(invoice.Mode()),
		Provider:     invoice.Provider().Summary,
		Client:       invoice.Client().Summary,
		Subject:      invoice.Subject,
		Currency:     invoice.Currency,
		Items:        len(invoice.Items()),
		Price:        invoice.Price().String(),
		PriceWithTax: invoice.PriceWithTax().String(),
		TaxBreakdown: []breakdownRow{},
	}

	if invoice.RoundingEnabled {
		summary.Rounding = &roundingInfo{
			Strategy:   string(invoice.RoundingStrategy()),
			Difference: invoice.DifferenceInRounding().String(),
		}
	}

	for _, row := range invoice.TaxBreakdown() {
		summary.TaxBreakdown = append(summary.TaxBreakdown, breakdownRow{
			Rate:         row.Rate.String(),
			Total:        row.Total.String(),
			Tax:          row.Tax.String(),
			TotalWithTax: row.TotalWithTax.String(),
		})
	}

	return summary
}
