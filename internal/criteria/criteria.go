package criteria

import (
	"fmt"
	"sort"
	"strings"

	"github.com/HardMax71/ResuMariner-sub001/internal/catalog"
)

// Criteria is the aggregate of every selected facet constraint for one search
// session. The zero value means "no constraints". All operations are pure:
// they leave the receiver untouched and return the next state, so the owning
// session is the only writer and snapshots stay valid.
//
// Locations, Education and Languages are unique by country, level and
// language respectively; the toggle operations maintain that invariant.
type Criteria struct {
	Skills               []string               `json:"skills,omitempty"`
	Role                 string                 `json:"role,omitempty"`
	Company              string                 `json:"company,omitempty"`
	Locations            []LocationRequirement  `json:"locations,omitempty"`
	YearsExperienceFloor *int                   `json:"years_experience_floor,omitempty"`
	Education            []EducationRequirement `json:"education,omitempty"`
	Languages            []LanguageRequirement  `json:"languages,omitempty"`
}

// ToggleSkill adds the skill if absent and removes it if present.
func ToggleSkill(c Criteria, skill string) Criteria {
	for i, s := range c.Skills {
		if s != skill {
			continue
		}
		next := make([]string, 0, len(c.Skills)-1)
		next = append(next, c.Skills[:i]...)
		next = append(next, c.Skills[i+1:]...)
		if len(next) == 0 {
			next = nil
		}
		c.Skills = next
		return c
	}
	next := make([]string, 0, len(c.Skills)+1)
	next = append(next, c.Skills...)
	c.Skills = append(next, skill)
	return c
}

// ToggleLocation applies the keyed-toggle semantics for a country and a city
// selection. An empty city selection stores the wildcard ("any city"), which
// is still an active requirement for that country.
func ToggleLocation(c Criteria, country string, cities []string) Criteria {
	c.Locations = toggleKeyed(c.Locations, country, cities,
		func(r LocationRequirement) string { return r.Country },
		func(r LocationRequirement) []string { return r.Cities },
		func(key string, subset []string) LocationRequirement {
			return LocationRequirement{Country: key, Cities: subset}
		})
	return c
}

// ToggleEducation applies the keyed-toggle semantics for an education level
// and a status selection, with the same wildcard rule as locations.
func ToggleEducation(c Criteria, level string, statuses []string) Criteria {
	c.Education = toggleKeyed(c.Education, level, statuses,
		func(r EducationRequirement) string { return r.Level },
		func(r EducationRequirement) []string { return r.Statuses },
		func(key string, subset []string) EducationRequirement {
			return EducationRequirement{Level: key, Statuses: subset}
		})
	return c
}

// ToggleLanguage applies single-valued toggle semantics: selecting the active
// threshold again removes the requirement, a different threshold overwrites
// it, a fresh language adds one. Panics on a threshold outside the CEFR
// ladder; callers validate user input before reaching here.
func ToggleLanguage(c Criteria, language, minProficiency string) Criteria {
	if !catalog.ValidProficiency(minProficiency) {
		panic(fmt.Sprintf("criteria: invalid proficiency %q", minProficiency))
	}
	for i, r := range c.Languages {
		if r.Language != language {
			continue
		}
		if r.MinProficiency == minProficiency {
			next := make([]LanguageRequirement, 0, len(c.Languages)-1)
			next = append(next, c.Languages[:i]...)
			next = append(next, c.Languages[i+1:]...)
			if len(next) == 0 {
				next = nil
			}
			c.Languages = next
			return c
		}
		next := make([]LanguageRequirement, len(c.Languages))
		copy(next, c.Languages)
		next[i] = LanguageRequirement{Language: language, MinProficiency: minProficiency}
		c.Languages = next
		return c
	}
	next := make([]LanguageRequirement, 0, len(c.Languages)+1)
	next = append(next, c.Languages...)
	c.Languages = append(next, LanguageRequirement{Language: language, MinProficiency: minProficiency})
	return c
}

// SetRole replaces the role constraint; empty string clears it.
func SetRole(c Criteria, role string) Criteria {
	c.Role = role
	return c
}

// SetCompany replaces the company constraint; empty string clears it.
func SetCompany(c Criteria, company string) Criteria {
	c.Company = company
	return c
}

// SetYearsExperienceFloor replaces the minimum-experience constraint; nil
// clears it. Panics on a negative floor, which no UI path can produce.
func SetYearsExperienceFloor(c Criteria, years *int) Criteria {
	if years != nil && *years < 0 {
		panic(fmt.Sprintf("criteria: negative experience floor %d", *years))
	}
	if years == nil {
		c.YearsExperienceFloor = nil
		return c
	}
	v := *years
	c.YearsExperienceFloor = &v
	return c
}

// RemoveLocation drops the requirement for a country, no-op when absent.
func RemoveLocation(c Criteria, country string) Criteria {
	c.Locations = removeKeyed(c.Locations, country,
		func(r LocationRequirement) string { return r.Country })
	return c
}

// RemoveEducation drops the requirement for a level, no-op when absent.
func RemoveEducation(c Criteria, level string) Criteria {
	c.Education = removeKeyed(c.Education, level,
		func(r EducationRequirement) string { return r.Level })
	return c
}

// RemoveLanguage drops the requirement for a language, no-op when absent.
func RemoveLanguage(c Criteria, language string) Criteria {
	c.Languages = removeKeyed(c.Languages, language,
		func(r LanguageRequirement) string { return r.Language })
	return c
}

// ActiveFilterCount counts the populated facets: one each for role, company
// and the experience floor, plus one per location, education, language and
// skill entry. Gates the "clear filters" affordances.
func ActiveFilterCount(c Criteria) int {
	count := len(c.Locations) + len(c.Education) + len(c.Languages) + len(c.Skills)
	if c.Role != "" {
		count++
	}
	if c.Company != "" {
		count++
	}
	if c.YearsExperienceFloor != nil {
		count++
	}
	return count
}

// Equal reports whether two aggregates carry the same constraints. Keyed
// entries compare order-insensitively; sub-value sets compare as sets.
func Equal(a, b Criteria) bool {
	if a.Role != b.Role || a.Company != b.Company {
		return false
	}
	if (a.YearsExperienceFloor == nil) != (b.YearsExperienceFloor == nil) {
		return false
	}
	if a.YearsExperienceFloor != nil && *a.YearsExperienceFloor != *b.YearsExperienceFloor {
		return false
	}
	if !subsetEqual(a.Skills, b.Skills) {
		return false
	}
	if len(a.Locations) != len(b.Locations) || len(a.Education) != len(b.Education) ||
		len(a.Languages) != len(b.Languages) {
		return false
	}
	for _, la := range a.Locations {
		found := false
		for _, lb := range b.Locations {
			if la.Country == lb.Country && subsetEqual(la.Cities, lb.Cities) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, ea := range a.Education {
		found := false
		for _, eb := range b.Education {
			if ea.Level == eb.Level && subsetEqual(ea.Statuses, eb.Statuses) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, la := range a.Languages {
		found := false
		for _, lb := range b.Languages {
			if la == lb {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Chips renders the active constraints as short display strings, one per
// filter chip, in a stable order: role, company, experience floor, then
// locations, education, languages and skills as selected.
func Chips(c Criteria) []string {
	var chips []string
	if c.Role != "" {
		chips = append(chips, "Role: "+c.Role)
	}
	if c.Company != "" {
		chips = append(chips, "Company: "+c.Company)
	}
	if c.YearsExperienceFloor != nil {
		chips = append(chips, fmt.Sprintf("Experience: %d+ years", *c.YearsExperienceFloor))
	}
	for _, l := range c.Locations {
		if l.Cities == nil {
			chips = append(chips, l.Country+" (any city)")
		} else {
			chips = append(chips, fmt.Sprintf("%s (%s)", l.Country, strings.Join(l.Cities, ", ")))
		}
	}
	for _, e := range c.Education {
		if e.Statuses == nil {
			chips = append(chips, e.Level)
		} else {
			chips = append(chips, fmt.Sprintf("%s (%s)", e.Level, strings.Join(e.Statuses, ", ")))
		}
	}
	for _, l := range c.Languages {
		chips = append(chips, fmt.Sprintf("%s ≥ %s", l.Language, l.MinProficiency))
	}
	skills := make([]string, len(c.Skills))
	copy(skills, c.Skills)
	sort.Strings(skills)
	chips = append(chips, skills...)
	return chips
}
