// Package observability provides formatted terminal output for the search
// CLI: the facet catalog, active filters and ranked results.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/HardMax71/ResuMariner-sub001/internal/catalog"
	"github.com/HardMax71/ResuMariner-sub001/internal/client"
	"github.com/HardMax71/ResuMariner-sub001/internal/criteria"
	"github.com/HardMax71/ResuMariner-sub001/internal/present"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxOptionsToShow is how many catalog values a facet section lists
	maxOptionsToShow = 10
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCatalog outputs the facet catalog with resume counts.
func (p *Printer) PrintCatalog(opts catalog.FilterOptions) {
	if opts.IsEmpty() {
		p.printBox("Filter options", "No filter options available")
		return
	}

	var sb strings.Builder

	writeOptions := func(title string, values []catalog.FilterOption) {
		if len(values) == 0 {
			return
		}
		sb.WriteString(title + ":\n")
		count := min(len(values), maxOptionsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", values[i].Value, values[i].Count))
		}
		if len(values) > maxOptionsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(values)-maxOptionsToShow))
		}
		sb.WriteString("\n")
	}

	writeOptions("Skills", opts.Skills)
	writeOptions("Roles", opts.Roles)
	writeOptions("Companies", opts.Companies)

	if len(opts.Countries) > 0 {
		sb.WriteString("Countries:\n")
		count := min(len(opts.Countries), maxOptionsToShow)
		for i := 0; i < count; i++ {
			c := opts.Countries[i]
			sb.WriteString(fmt.Sprintf("  • %s (%d resumes, %d cities)\n",
				c.Country, c.ResumeCount, len(c.Cities)))
		}
		sb.WriteString("\n")
	}

	if len(opts.EducationLevels) > 0 {
		sb.WriteString("Education levels:\n")
		for _, l := range opts.EducationLevels {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n", l.Level, l.ResumeCount))
		}
		sb.WriteString("\n")
	}

	if len(opts.Languages) > 0 {
		sb.WriteString("Languages:\n")
		count := min(len(opts.Languages), maxOptionsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s (%d)\n",
				opts.Languages[i].Language, opts.Languages[i].ResumeCount))
		}
	}

	p.printBox("Filter options", strings.TrimRight(sb.String(), "\n"))
}

// PrintCriteria outputs the active filter chips.
func (p *Printer) PrintCriteria(c criteria.Criteria) {
	count := criteria.ActiveFilterCount(c)
	if count == 0 {
		p.printBox("Active filters", "None")
		return
	}

	var sb strings.Builder
	for _, chip := range criteria.Chips(c) {
		sb.WriteString("  • " + chip + "\n")
	}
	p.printBox(fmt.Sprintf("Active filters (%d)", count), strings.TrimRight(sb.String(), "\n"))
}

// PrintResults outputs ranked results with tiers and truncated evidence.
// Expanded shows every match and skill; collapsed applies the card limits.
func (p *Printer) PrintResults(resp *client.SearchResponse, expanded bool) {
	if resp == nil || len(resp.Results) == 0 {
		fmt.Fprintln(p.out, "No results.")
		return
	}

	fmt.Fprintf(p.out, "%d result(s) for %q (%s search)\n\n",
		len(resp.Results), resp.Query, resp.SearchType)

	for i, r := range resp.Results {
		fmt.Fprintf(p.out, "%d. %s  [%.2f %s]\n", i+1, r.Name, r.Score, present.TierFor(r.Score))
		if r.CurrentRole != "" || r.Company != "" {
			fmt.Fprintf(p.out, "   %s", r.CurrentRole)
			if r.Company != "" {
				fmt.Fprintf(p.out, " @ %s", r.Company)
			}
			fmt.Fprintln(p.out)
		}
		if r.Location != "" {
			fmt.Fprintf(p.out, "   %s\n", r.Location)
		}

		skills := present.CollapseSkills(r.Skills, expanded)
		if len(skills.Shown) > 0 {
			fmt.Fprintf(p.out, "   Skills: %s", strings.Join(skills.Shown, ", "))
			if indicator := skills.Indicator(); indicator != "" {
				fmt.Fprintf(p.out, " %s", indicator)
			}
			fmt.Fprintln(p.out)
		}

		visible := present.VisibleMatches(r.Matches, present.CardMatchLimit, expanded)
		for _, m := range visible {
			fmt.Fprintf(p.out, "   - [%s] %s (%.2f %s)\n",
				present.SourceBucket(m.Source), present.CleanSnippet(m.Text),
				m.Score, present.TierFor(m.Score))
		}
		if hidden := present.HiddenMatchCount(r.Matches, present.CardMatchLimit, expanded); hidden > 0 {
			fmt.Fprintf(p.out, "   ... and %d more match(es)\n", hidden)
		}
		fmt.Fprintln(p.out)
	}
}
