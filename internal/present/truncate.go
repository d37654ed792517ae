package present

import (
	"fmt"

	"github.com/HardMax71/ResuMariner-sub001/internal/client"
)

// Collapsed-view limits.
const (
	// CompactMatchLimit is how many matches a compact list row shows.
	CompactMatchLimit = 2
	// CardMatchLimit is how many matches a full candidate card shows.
	CardMatchLimit = 3
	// SkillLimit is how many skills a collapsed card shows before "+K more".
	SkillLimit = 8
)

// CardState is the per-card expansion flag. It lives outside the result
// entities and outside the query state; toggling twice restores the view.
type CardState struct {
	Expanded bool
}

// Toggle flips the expansion state.
func (s *CardState) Toggle() {
	s.Expanded = !s.Expanded
}

// VisibleMatches returns the matches to render: the first limit entries when
// collapsed, everything when expanded. Order is preserved as ranked.
func VisibleMatches(matches []client.Match, limit int, expanded bool) []client.Match {
	if expanded || len(matches) <= limit {
		return matches
	}
	return matches[:limit]
}

// HiddenMatchCount returns how many matches the collapsed view hides.
func HiddenMatchCount(matches []client.Match, limit int, expanded bool) int {
	if expanded || len(matches) <= limit {
		return 0
	}
	return len(matches) - limit
}

// SkillView is the truncated skill list plus its overflow indicator.
type SkillView struct {
	Shown []string
	// More is the hidden count K; zero means the indicator is omitted.
	More int
}

// Indicator renders the "+K more" marker, empty when nothing is hidden.
func (v SkillView) Indicator() string {
	if v.More == 0 {
		return ""
	}
	return fmt.Sprintf("+%d more", v.More)
}

// CollapseSkills truncates a skill list to the first SkillLimit entries when
// collapsed. Expanded views show everything and no indicator.
func CollapseSkills(skills []string, expanded bool) SkillView {
	if expanded || len(skills) <= SkillLimit {
		return SkillView{Shown: skills}
	}
	return SkillView{Shown: skills[:SkillLimit], More: len(skills) - SkillLimit}
}
