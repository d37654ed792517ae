package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HardMax71/ResuMariner-sub001/internal/observability"
	"github.com/HardMax71/ResuMariner-sub001/internal/session"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Inspect or reset the persisted search session",
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the persisted session state",
	RunE:  runSessionShow,
}

var sessionShowJSON bool

var sessionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the persisted session state",
	RunE:  runSessionClear,
}

func init() {
	sessionShowCmd.Flags().BoolVar(&sessionShowJSON, "json", false, "Print the raw session JSON")
	sessionCmd.AddCommand(sessionShowCmd)
	sessionCmd.AddCommand(sessionClearCmd)
	rootCmd.AddCommand(sessionCmd)
}

func runSessionShow(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := session.OpenStore(cfg.SessionDB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	state, found, err := store.Load(cmd.Context(), cfg.SessionID)
	if err != nil {
		return err
	}
	if !found {
		fmt.Printf("No persisted session %q\n", cfg.SessionID)
		return nil
	}

	if sessionShowJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}

	fmt.Printf("Session %s (mode %s, updated %s)\n",
		state.ID, state.Mode, state.UpdatedAt.Format("2006-01-02 15:04:05"))
	if state.Params.Query != "" {
		fmt.Printf("Query: %q\n", state.Params.Query)
	}
	observability.NewPrinter(os.Stdout).PrintCriteria(state.Criteria)
	if len(state.SelectedCandidates) > 0 {
		fmt.Printf("Selected candidates: %d\n", len(state.SelectedCandidates))
	}
	return nil
}

func runSessionClear(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	store, err := session.OpenStore(cfg.SessionDB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Delete(cmd.Context(), cfg.SessionID); err != nil {
		return err
	}
	fmt.Printf("Session %q cleared\n", cfg.SessionID)
	return nil
}
