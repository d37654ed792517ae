package catalog

// proficiencyLadder is the fixed CEFR ordering used for language thresholds.
// It is independent of catalog data.
var proficiencyLadder = []string{"A1", "A2", "B1", "B2", "C1", "C2"}

// Proficiencies returns the ordered CEFR levels, weakest first.
func Proficiencies() []string {
	out := make([]string, len(proficiencyLadder))
	copy(out, proficiencyLadder)
	return out
}

// ProficiencyRank returns the position of a level on the ladder, or -1 for
// anything that is not a CEFR level.
func ProficiencyRank(level string) int {
	for i, p := range proficiencyLadder {
		if p == level {
			return i
		}
	}
	return -1
}

// ValidProficiency reports whether level is one of the six CEFR levels.
func ValidProficiency(level string) bool {
	return ProficiencyRank(level) >= 0
}
