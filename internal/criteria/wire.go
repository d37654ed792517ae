package criteria

// Filters is the wire form of the criteria aggregate, embedded in every
// search request body. Wildcard sub-selections serialize as absent, never as
// empty arrays: the backend distinguishes "no constraint within this facet"
// from "constraint with zero allowed values", and only the former exists.
type Filters struct {
	Skills          []string          `json:"skills,omitempty"`
	Role            string            `json:"role,omitempty"`
	Company         string            `json:"company,omitempty"`
	Locations       []LocationFilter  `json:"locations,omitempty"`
	YearsExperience *int              `json:"years_experience,omitempty"`
	Education       []EducationFilter `json:"education,omitempty"`
	Languages       []LanguageFilter  `json:"languages,omitempty"`
}

// LocationFilter is the wire form of a location requirement.
type LocationFilter struct {
	Country string   `json:"country"`
	Cities  []string `json:"cities,omitempty"`
}

// EducationFilter is the wire form of an education requirement.
type EducationFilter struct {
	Level    string   `json:"level"`
	Statuses []string `json:"statuses,omitempty"`
}

// LanguageFilter is the wire form of a language requirement.
type LanguageFilter struct {
	Language       string `json:"language"`
	MinProficiency string `json:"min_proficiency"`
}

// Wire converts the aggregate to its request form. An empty aggregate
// serializes as {}.
func (c Criteria) Wire() Filters {
	f := Filters{
		Role:    c.Role,
		Company: c.Company,
	}
	if len(c.Skills) > 0 {
		f.Skills = make([]string, len(c.Skills))
		copy(f.Skills, c.Skills)
	}
	if c.YearsExperienceFloor != nil {
		v := *c.YearsExperienceFloor
		f.YearsExperience = &v
	}
	for _, l := range c.Locations {
		lf := LocationFilter{Country: l.Country}
		if l.Cities != nil {
			lf.Cities = make([]string, len(l.Cities))
			copy(lf.Cities, l.Cities)
		}
		f.Locations = append(f.Locations, lf)
	}
	for _, e := range c.Education {
		ef := EducationFilter{Level: e.Level}
		if e.Statuses != nil {
			ef.Statuses = make([]string, len(e.Statuses))
			copy(ef.Statuses, e.Statuses)
		}
		f.Education = append(f.Education, ef)
	}
	for _, l := range c.Languages {
		f.Languages = append(f.Languages, LanguageFilter{
			Language:       l.Language,
			MinProficiency: l.MinProficiency,
		})
	}
	return f
}
