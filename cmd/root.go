package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"facture/internal/logger"
)

var version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "facture",
	Short: "Facture CLI - generate invoices and quotes from YAML data files",
	Long: `Facture CLI builds business invoices and quotes from a YAML address
book (a provider file, a clients file and an items file), computes totals,
tax breakdowns and rounding, and renders the result as a printable A4 PDF.

All monetary math is exact decimal arithmetic; amounts never pass through
binary floating point.`,
	Version: version,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Use --help to see available commands and options.")
	},
}

func Execute() {
	log := logger.WithComponent("cmd")

	if err := rootCmd.Execute(); err != nil {
		log.Error().
			Err(err).
			Msg("Command execution failed")
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")
}
