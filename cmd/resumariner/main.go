// Package main provides the entry point for the ResuMariner candidate search
// CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagConfig    string
	flagBackend   string
	flagSessionDB string
	flagSessionID string
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "resumariner",
	Short: "Candidate search over parsed resumes",
	Long:  "ResuMariner search composes faceted filters into semantic, structured or hybrid queries against the resume search backend and renders ranked results with evidence snippets.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "Search backend base URL")
	rootCmd.PersistentFlags().StringVar(&flagSessionDB, "session-db", "", "Path to the local session database")
	rootCmd.PersistentFlags().StringVar(&flagSessionID, "session", "", "Session ID to operate on")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
