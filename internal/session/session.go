// Package session owns the per-session search state: the criteria aggregate,
// query knobs, cross-page candidate selections and the latest response.
// There is exactly one writer per session; persistence happens as a
// side-effect after every mutation, and hydration happens once at start.
package session

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/HardMax71/ResuMariner-sub001/internal/client"
	"github.com/HardMax71/ResuMariner-sub001/internal/criteria"
	"github.com/HardMax71/ResuMariner-sub001/internal/query"
)

// DefaultID names the session a plain CLI invocation operates on.
const DefaultID = "default"

// State is the persisted portion of a session.
type State struct {
	ID                 string            `json:"id"`
	Mode               query.Mode        `json:"mode"`
	Params             query.Params      `json:"params"`
	Criteria           criteria.Criteria `json:"criteria"`
	SelectedCandidates []string          `json:"selected_candidates,omitempty"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// NewState returns a fresh session state with default knobs.
func NewState(id string) State {
	if id == "" {
		id = uuid.NewString()
	}
	return State{
		ID:     id,
		Mode:   query.ModeSemantic,
		Params: query.DefaultParams(),
	}
}

// Session is the live container. Not safe for concurrent use; the session
// model is single-threaded by design.
type Session struct {
	state State
	store Store

	// lastResponse always holds the most recent response to arrive.
	// A slow earlier response can overwrite a newer one; RequestID is
	// kept so a caller could detect that, but latest-wins is the
	// accepted behavior.
	lastResponse *client.SearchResponse
}

// New wraps a state and its store into a live session.
func New(state State, store Store) *Session {
	return &Session{state: state, store: store}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.state.ID }

// Mode returns the active search mode.
func (s *Session) Mode() query.Mode { return s.state.Mode }

// Params returns the current knob positions.
func (s *Session) Params() query.Params { return s.state.Params }

// Criteria returns the current aggregate snapshot.
func (s *Session) Criteria() criteria.Criteria { return s.state.Criteria }

// ActiveFilterCount counts the populated facets of the live aggregate.
func (s *Session) ActiveFilterCount() int {
	return criteria.ActiveFilterCount(s.state.Criteria)
}

// CanSubmit reports whether a submission is currently allowed.
func (s *Session) CanSubmit() bool {
	return query.CanSubmit(s.state.Mode, s.state.Params)
}

func (s *Session) persist(ctx context.Context) error {
	s.state.UpdatedAt = time.Now().UTC()
	if s.store == nil {
		return nil
	}
	return s.store.Save(ctx, s.state)
}

// SetMode switches the search mode.
func (s *Session) SetMode(ctx context.Context, m query.Mode) error {
	s.state.Mode = m
	return s.persist(ctx)
}

// SetQuery replaces the free-text query.
func (s *Session) SetQuery(ctx context.Context, q string) error {
	s.state.Params.Query = q
	return s.persist(ctx)
}

// SetLimit replaces the result limit.
func (s *Session) SetLimit(ctx context.Context, limit int) error {
	s.state.Params.Limit = limit
	return s.persist(ctx)
}

// SetMinScore replaces the semantic score threshold.
func (s *Session) SetMinScore(ctx context.Context, min float64) error {
	s.state.Params.MinScore = min
	return s.persist(ctx)
}

// SetMaxMatches replaces the per-result match cap.
func (s *Session) SetMaxMatches(ctx context.Context, n int) error {
	s.state.Params.MaxMatchesPerResult = n
	return s.persist(ctx)
}

// SetVectorWeight moves the hybrid blend; the graph weight follows so the
// pair keeps summing to 1.
func (s *Session) SetVectorWeight(ctx context.Context, w float64) error {
	s.state.Params.Weights = s.state.Params.Weights.SetVector(w)
	return s.persist(ctx)
}

// SetGraphWeight moves only the graph side of the blend.
func (s *Session) SetGraphWeight(ctx context.Context, w float64) error {
	s.state.Params.Weights = s.state.Params.Weights.SetGraph(w)
	return s.persist(ctx)
}

// ToggleSkill toggles a skill constraint.
func (s *Session) ToggleSkill(ctx context.Context, skill string) error {
	s.state.Criteria = criteria.ToggleSkill(s.state.Criteria, skill)
	return s.persist(ctx)
}

// ToggleLocation toggles a country/cities constraint.
func (s *Session) ToggleLocation(ctx context.Context, country string, cities []string) error {
	s.state.Criteria = criteria.ToggleLocation(s.state.Criteria, country, cities)
	return s.persist(ctx)
}

// ToggleEducation toggles a level/statuses constraint.
func (s *Session) ToggleEducation(ctx context.Context, level string, statuses []string) error {
	s.state.Criteria = criteria.ToggleEducation(s.state.Criteria, level, statuses)
	return s.persist(ctx)
}

// ToggleLanguage toggles a language threshold constraint.
func (s *Session) ToggleLanguage(ctx context.Context, language, minProficiency string) error {
	s.state.Criteria = criteria.ToggleLanguage(s.state.Criteria, language, minProficiency)
	return s.persist(ctx)
}

// SetRole replaces the role constraint; empty clears.
func (s *Session) SetRole(ctx context.Context, role string) error {
	s.state.Criteria = criteria.SetRole(s.state.Criteria, role)
	return s.persist(ctx)
}

// SetCompany replaces the company constraint; empty clears.
func (s *Session) SetCompany(ctx context.Context, company string) error {
	s.state.Criteria = criteria.SetCompany(s.state.Criteria, company)
	return s.persist(ctx)
}

// SetYearsExperienceFloor replaces the experience floor; nil clears.
func (s *Session) SetYearsExperienceFloor(ctx context.Context, years *int) error {
	s.state.Criteria = criteria.SetYearsExperienceFloor(s.state.Criteria, years)
	return s.persist(ctx)
}

// RemoveLocation drops one location constraint by country.
func (s *Session) RemoveLocation(ctx context.Context, country string) error {
	s.state.Criteria = criteria.RemoveLocation(s.state.Criteria, country)
	return s.persist(ctx)
}

// RemoveEducation drops one education constraint by level.
func (s *Session) RemoveEducation(ctx context.Context, level string) error {
	s.state.Criteria = criteria.RemoveEducation(s.state.Criteria, level)
	return s.persist(ctx)
}

// RemoveLanguage drops one language constraint by language.
func (s *Session) RemoveLanguage(ctx context.Context, language string) error {
	s.state.Criteria = criteria.RemoveLanguage(s.state.Criteria, language)
	return s.persist(ctx)
}

// ClearCriteria resets every facet.
func (s *Session) ClearCriteria(ctx context.Context) error {
	s.state.Criteria = criteria.Criteria{}
	return s.persist(ctx)
}

// ToggleCandidate adds or removes a candidate ID from the cross-page
// selection set.
func (s *Session) ToggleCandidate(ctx context.Context, id string) error {
	for i, sel := range s.state.SelectedCandidates {
		if sel != id {
			continue
		}
		s.state.SelectedCandidates = append(
			s.state.SelectedCandidates[:i:i],
			s.state.SelectedCandidates[i+1:]...)
		if len(s.state.SelectedCandidates) == 0 {
			s.state.SelectedCandidates = nil
		}
		return s.persist(ctx)
	}
	s.state.SelectedCandidates = append(s.state.SelectedCandidates, id)
	return s.persist(ctx)
}

// SelectedCandidates returns the selection sorted for stable display.
func (s *Session) SelectedCandidates() []string {
	out := make([]string, len(s.state.SelectedCandidates))
	copy(out, s.state.SelectedCandidates)
	sort.Strings(out)
	return out
}

// Searcher is the backend surface the session needs to submit a query.
type Searcher interface {
	Search(ctx context.Context, req query.Request) (*client.SearchResponse, error)
}

// Search builds a request from the live state and submits it. Validation
// errors surface without a network call; the latest response to return
// overwrites the stored one.
func (s *Session) Search(ctx context.Context, backend Searcher) (*client.SearchResponse, error) {
	req, err := query.Build(s.state.Mode, s.state.Params, s.state.Criteria)
	if err != nil {
		return nil, err
	}
	resp, err := backend.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	s.lastResponse = resp
	return resp, nil
}

// LastResponse returns the most recent response, nil before any search.
func (s *Session) LastResponse() *client.SearchResponse {
	return s.lastResponse
}

// Snapshot returns a copy of the persisted state for inspection.
func (s *Session) Snapshot() State {
	return s.state
}
