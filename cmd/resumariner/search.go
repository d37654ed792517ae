package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HardMax71/ResuMariner-sub001/internal/catalog"
	"github.com/HardMax71/ResuMariner-sub001/internal/observability"
	"github.com/HardMax71/ResuMariner-sub001/internal/query"
	"github.com/HardMax71/ResuMariner-sub001/internal/session"
)

var (
	searchMode       string
	searchQuery      string
	searchLimit      int
	searchMinScore   float64
	searchMaxMatches int
	searchVectorW    float64
	searchGraphW     float64
	searchSkills     []string
	searchRole       string
	searchCompany    string
	searchMinYears   int
	searchLocations  []string
	searchEducation  []string
	searchLanguages  []string
	searchClear      bool
	searchExpand     bool
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search candidate profiles",
	Long: `Search candidate profiles in one of three modes.

Facet flags toggle against the persisted session filters: repeating an
identical selection clears it. Location and education flags take
"Key:Sub1,Sub2" values; a bare key means "any" within that facet.`,
	Example: `  resumariner search --query "golang engineer" --min-score 0.5
  resumariner search --mode hybrid --query "ml platform" --vector-weight 0.7
  resumariner search --mode structured --location Germany:Berlin --language English:B2 --skill Go`,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchMode, "mode", "semantic", "Search mode: semantic, structured or hybrid")
	searchCmd.Flags().StringVarP(&searchQuery, "query", "q", "", "Free-text query")
	searchCmd.Flags().IntVar(&searchLimit, "limit", 0, "Maximum results (1-50)")
	searchCmd.Flags().Float64Var(&searchMinScore, "min-score", -1, "Semantic score threshold (0-1)")
	searchCmd.Flags().IntVar(&searchMaxMatches, "max-matches", 0, "Evidence matches per result (1-20)")
	searchCmd.Flags().Float64Var(&searchVectorW, "vector-weight", -1, "Hybrid vector weight; graph weight follows as 1-w")
	searchCmd.Flags().Float64Var(&searchGraphW, "graph-weight", -1, "Hybrid graph weight (set directly, vector weight untouched)")
	searchCmd.Flags().StringArrayVar(&searchSkills, "skill", nil, "Toggle a skill filter (repeatable)")
	searchCmd.Flags().StringVar(&searchRole, "role", "", "Role filter; empty leaves unchanged")
	searchCmd.Flags().StringVar(&searchCompany, "company", "", "Company filter; empty leaves unchanged")
	searchCmd.Flags().IntVar(&searchMinYears, "min-years", -1, "Minimum years of experience")
	searchCmd.Flags().StringArrayVar(&searchLocations, "location", nil, `Toggle a location filter, "Country:City1,City2" (repeatable)`)
	searchCmd.Flags().StringArrayVar(&searchEducation, "education", nil, `Toggle an education filter, "Level:Status1,Status2" (repeatable)`)
	searchCmd.Flags().StringArrayVar(&searchLanguages, "language", nil, `Toggle a language filter, "Language:B2" (repeatable)`)
	searchCmd.Flags().BoolVar(&searchClear, "clear", false, "Clear all session filters before applying flags")
	searchCmd.Flags().BoolVar(&searchExpand, "expand", false, "Show all matches and skills instead of the collapsed view")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Print the raw response JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	mode, err := query.ParseMode(searchMode)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	backend := newBackend(cfg)

	store, err := session.OpenStore(cfg.SessionDB)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	boot, err := session.Bootstrap(ctx, store, backend, cfg.SessionID)
	if err != nil {
		return err
	}
	if boot.CatalogErr != nil && cfg.Verbose {
		fmt.Fprintf(os.Stderr, "Warning: filter catalog unavailable: %v\n", boot.CatalogErr)
	}
	sess := boot.Session

	if err := applySearchFlags(cmd, sess); err != nil {
		return err
	}
	if err := sess.SetMode(ctx, mode); err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintCriteria(sess.Criteria())
	}

	if !sess.CanSubmit() {
		return fmt.Errorf("%s search requires a non-empty query", mode)
	}

	resp, err := sess.Search(ctx, backend)
	if err != nil {
		return err
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	printer.PrintResults(resp, searchExpand)
	return nil
}

// applySearchFlags folds the flag values into the session state. Toggles go
// through the session so every change persists.
func applySearchFlags(cmd *cobra.Command, sess *session.Session) error {
	ctx := cmd.Context()

	if searchClear {
		if err := sess.ClearCriteria(ctx); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("query") {
		if err := sess.SetQuery(ctx, searchQuery); err != nil {
			return err
		}
	}
	if searchLimit != 0 {
		if err := sess.SetLimit(ctx, searchLimit); err != nil {
			return err
		}
	}
	if searchMinScore >= 0 {
		if err := sess.SetMinScore(ctx, searchMinScore); err != nil {
			return err
		}
	}
	if searchMaxMatches != 0 {
		if err := sess.SetMaxMatches(ctx, searchMaxMatches); err != nil {
			return err
		}
	}
	if searchVectorW >= 0 {
		if err := sess.SetVectorWeight(ctx, searchVectorW); err != nil {
			return err
		}
	}
	if searchGraphW >= 0 {
		if err := sess.SetGraphWeight(ctx, searchGraphW); err != nil {
			return err
		}
	}

	for _, skill := range searchSkills {
		if err := sess.ToggleSkill(ctx, skill); err != nil {
			return err
		}
	}
	if searchRole != "" {
		if err := sess.SetRole(ctx, searchRole); err != nil {
			return err
		}
	}
	if searchCompany != "" {
		if err := sess.SetCompany(ctx, searchCompany); err != nil {
			return err
		}
	}
	if searchMinYears >= 0 {
		years := searchMinYears
		if err := sess.SetYearsExperienceFloor(ctx, &years); err != nil {
			return err
		}
	}

	for _, raw := range searchLocations {
		country, cities, err := parseFacetFlag(raw)
		if err != nil {
			return err
		}
		if err := sess.ToggleLocation(ctx, country, cities); err != nil {
			return err
		}
	}
	for _, raw := range searchEducation {
		level, statuses, err := parseFacetFlag(raw)
		if err != nil {
			return err
		}
		if err := sess.ToggleEducation(ctx, level, statuses); err != nil {
			return err
		}
	}
	for _, raw := range searchLanguages {
		language, levels, err := parseFacetFlag(raw)
		if err != nil {
			return err
		}
		if len(levels) != 1 {
			return fmt.Errorf("language flag %q needs exactly one proficiency, e.g. English:B2", raw)
		}
		if !catalog.ValidProficiency(levels[0]) {
			return fmt.Errorf("unknown proficiency %q, want one of %v", levels[0], catalog.Proficiencies())
		}
		if err := sess.ToggleLanguage(ctx, language, levels[0]); err != nil {
			return err
		}
	}

	return nil
}
