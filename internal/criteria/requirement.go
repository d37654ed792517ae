// Package criteria implements the faceted filter model for candidate search:
// per-facet requirement values, the criteria aggregate owned by a search
// session, and pure toggle operations over it.
package criteria

// LocationRequirement constrains results to one country, optionally narrowed
// to specific cities. Nil Cities means "any city in this country"; an empty
// slice is never stored.
type LocationRequirement struct {
	Country string   `json:"country"`
	Cities  []string `json:"cities"`
}

// EducationRequirement constrains results to one education level, optionally
// narrowed to completion statuses. Nil Statuses means "any status".
type EducationRequirement struct {
	Level    string   `json:"level"`
	Statuses []string `json:"statuses"`
}

// LanguageRequirement constrains results to candidates speaking a language at
// or above a CEFR threshold. Single-valued: one threshold per language.
type LanguageRequirement struct {
	Language       string `json:"language"`
	MinProficiency string `json:"min_proficiency"`
}

// normalizeSubset dedupes a sub-value selection preserving order and maps an
// empty selection to nil, the canonical wildcard form.
func normalizeSubset(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// subsetEqual compares two sub-value sets unordered and case-sensitively.
// Nil and empty compare equal: both are the wildcard.
func subsetEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]struct{}, len(a))
	for _, v := range a {
		set[v] = struct{}{}
	}
	for _, v := range b {
		if _, ok := set[v]; !ok {
			return false
		}
	}
	return true
}

// toggleKeyed is the one toggle operation shared by the location and
// education facets. Given the entries keyed uniquely by keyOf, it computes
// the next state for a selection of subset under key:
//
//   - no entry for key: append a new one (empty subset stored as wildcard)
//   - entry exists and subset is set-equal to its current one: remove it
//     (re-clicking the identical selection clears the requirement)
//   - otherwise: replace the entry's subset in place
//
// The input slice is never mutated; a fresh slice is returned.
func toggleKeyed[T any](
	items []T,
	key string,
	subset []string,
	keyOf func(T) string,
	subsetOf func(T) []string,
	build func(key string, subset []string) T,
) []T {
	subset = normalizeSubset(subset)

	for i, item := range items {
		if keyOf(item) != key {
			continue
		}
		if subsetEqual(subsetOf(item), subset) {
			out := make([]T, 0, len(items)-1)
			out = append(out, items[:i]...)
			out = append(out, items[i+1:]...)
			if len(out) == 0 {
				return nil
			}
			return out
		}
		out := make([]T, len(items))
		copy(out, items)
		out[i] = build(key, subset)
		return out
	}

	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, build(key, subset))
}

// removeKeyed drops the entry with the given key, no-op when absent.
func removeKeyed[T any](items []T, key string, keyOf func(T) string) []T {
	for i, item := range items {
		if keyOf(item) != key {
			continue
		}
		out := make([]T, 0, len(items)-1)
		out = append(out, items[:i]...)
		out = append(out, items[i+1:]...)
		if len(out) == 0 {
			return nil
		}
		return out
	}
	return items
}
