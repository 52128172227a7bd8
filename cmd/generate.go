package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"facture/internal/billing"
	"facture/internal/config"
	"facture/internal/logger"
	"facture/internal/render"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a PDF invoice or quote from the YAML address book",
	Long: `Build an invoice for a named client and item set and render it as an
A4 PDF. The provider, clients and items files are configured through the
environment (FACTURE_PROVIDER_FILE, FACTURE_CLIENTS_FILE, FACTURE_ITEMS_FILE)
and default to provider.yaml, clients.yaml and items.yaml in the working
directory.

Documents are filed per year under the output directory; the filename
carries the kind initial, a sequence number and the issue date.`,
	Example: `  # Invoice for the client and item set stored under "acme"
  facture generate --name acme

  # Quote instead of invoice, royalty-mode columns
  facture generate --name acme --kind quote --mode 2

  # Round the taxed total to whole currency units, half-up
  facture generate --name acme --round --strategy half-up`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("name", "n", "", "Address book key of the client and item set (required)")
	generateCmd.Flags().StringP("kind", "k", string(billing.KindInvoice), "Document kind: invoice | quote")
	generateCmd.Flags().IntP("mode", "m", int(billing.ModeUnits), "Item columns: 1 = units and unit price, 2 = royalties and sale price")
	generateCmd.Flags().StringP("output", "o", "", "Output directory (default: FACTURE_OUTPUT_DIR)")
	generateCmd.Flags().Bool("round", false, "Round totals to whole currency units")
	generateCmd.Flags().String("strategy", string(billing.RoundHalfEven), "Rounding strategy: half-up | half-down | half-even | ceiling | floor | truncate")
	_ = generateCmd.MarkFlagRequired("name")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("generate")

	name, _ := cmd.Flags().GetString("name")
	kind, _ := cmd.Flags().GetString("kind")
	mode, _ := cmd.Flags().GetInt("mode")
	outputDir, _ := cmd.Flags().GetString("output")
	round, _ := cmd.Flags().GetBool("round")
	strategy, _ := cmd.Flags().GetString("strategy")

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	log.Info().
		Str("name", name).
		Str("kind", kind).
		Int("mode", mode).
		Str("output", outputDir).
		Msg("Building invoice")

	invoice, err := buildInvoice(cfg, name, kind, mode)
	if err != nil {
		return err
	}
	invoice.RoundingEnabled = round
	invoice.SetRoundingStrategy(billing.RoundingStrategy(strategy))

	path, err := render.NewPDF(invoice).Generate(outputDir)
	if err != nil {
		return fmt.Errorf("failed to render invoice: %w", err)
	}

	fmt.Printf("Generated %s\n", path)
	return nil
}
