// Package catalog holds the read-only filter-option reference data fetched
// from the search backend once per session.
package catalog

// FilterOption is a single facet value with the number of resumes carrying it.
type FilterOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// CountryOption describes a country facet value and the cities seen under it.
type CountryOption struct {
	Country     string   `json:"country"`
	Cities      []string `json:"cities"`
	ResumeCount int      `json:"resume_count"`
}

// EducationLevelOption describes an education level and its completion statuses.
type EducationLevelOption struct {
	Level       string   `json:"level"`
	Statuses    []string `json:"statuses"`
	ResumeCount int      `json:"resume_count"`
}

// LanguageOption describes a language facet value.
type LanguageOption struct {
	Language    string `json:"language"`
	ResumeCount int    `json:"resume_count"`
}

// FilterOptions is the full catalog returned by the backend's filters
// endpoint. It is never mutated after decoding; a refresh replaces the whole
// value.
type FilterOptions struct {
	Skills          []FilterOption         `json:"skills"`
	Roles           []FilterOption         `json:"roles"`
	Companies       []FilterOption         `json:"companies"`
	Countries       []CountryOption        `json:"countries"`
	EducationLevels []EducationLevelOption `json:"education_levels"`
	Languages       []LanguageOption       `json:"languages"`
}

// Empty returns the degraded catalog used when the filters fetch fails. The
// composer still works against it; there is just nothing to suggest.
func Empty() FilterOptions {
	return FilterOptions{}
}

// IsEmpty reports whether the catalog carries no options at all.
func (f FilterOptions) IsEmpty() bool {
	return len(f.Skills) == 0 && len(f.Roles) == 0 && len(f.Companies) == 0 &&
		len(f.Countries) == 0 && len(f.EducationLevels) == 0 && len(f.Languages) == 0
}

// CountryByName returns the catalog entry for a country, if present.
func (f FilterOptions) CountryByName(country string) (CountryOption, bool) {
	for _, c := range f.Countries {
		if c.Country == country {
			return c, true
		}
	}
	return CountryOption{}, false
}

// LevelByName returns the catalog entry for an education level, if present.
func (f FilterOptions) LevelByName(level string) (EducationLevelOption, bool) {
	for _, l := range f.EducationLevels {
		if l.Level == level {
			return l, true
		}
	}
	return EducationLevelOption{}, false
}
