package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HardMax71/ResuMariner-sub001/internal/observability"
)

var filtersJSON bool

var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "Fetch and display the filter catalog",
	Long:  "Fetch the available facet values (skills, roles, companies, countries, education levels, languages) with their resume counts.",
	RunE:  runFilters,
}

func init() {
	filtersCmd.Flags().BoolVar(&filtersJSON, "json", false, "Print the raw catalog JSON")
	rootCmd.AddCommand(filtersCmd)
}

func runFilters(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	backend := newBackend(cfg)
	opts, err := backend.FilterOptions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to fetch filter catalog: %w", err)
	}

	if filtersJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(opts)
	}

	observability.NewPrinter(os.Stdout).PrintCatalog(opts)
	return nil
}
