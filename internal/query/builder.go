// Package query assembles backend search requests from a criteria snapshot,
// a free-text query and a search-mode selection, enforcing the per-mode
// validation rules before anything touches the network.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/HardMax71/ResuMariner-sub001/internal/criteria"
)

// Mode selects which backend search endpoint a submission targets.
type Mode string

const (
	ModeSemantic   Mode = "semantic"
	ModeStructured Mode = "structured"
	ModeHybrid     Mode = "hybrid"
)

// ParseMode converts user input to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSemantic:
		return ModeSemantic, nil
	case ModeStructured:
		return ModeStructured, nil
	case ModeHybrid:
		return ModeHybrid, nil
	}
	return "", fmt.Errorf("unknown search mode %q (want semantic, structured or hybrid)", s)
}

// Params are the user-adjustable knobs merged with the criteria snapshot at
// submit time.
type Params struct {
	Query               string     `validate:"-"`
	Limit               int        `validate:"min=1,max=50"`
	MinScore            float64    `validate:"min=0,max=1"`
	MaxMatchesPerResult int        `validate:"min=1,max=20"`
	Weights             WeightPair `validate:"-"`
}

// DefaultParams returns the initial knob positions for a fresh session.
func DefaultParams() Params {
	return Params{
		Limit:               10,
		MinScore:            0.3,
		MaxMatchesPerResult: 5,
		Weights:             DefaultWeights(),
	}
}

// SemanticRequest is the body for POST search/semantic.
type SemanticRequest struct {
	Query               string           `json:"query"`
	Limit               int              `json:"limit"`
	MinScore            float64          `json:"min_score"`
	MaxMatchesPerResult int              `json:"max_matches_per_result"`
	Filters             criteria.Filters `json:"filters"`
}

// StructuredRequest is the body for POST search/structured. The free-text
// query is optional here; the filters carry the constraints.
type StructuredRequest struct {
	Query   string           `json:"query,omitempty"`
	Filters criteria.Filters `json:"filters"`
	Limit   int              `json:"limit"`
}

// HybridRequest is the body for POST search/hybrid.
type HybridRequest struct {
	Query               string           `json:"query"`
	Filters             criteria.Filters `json:"filters"`
	VectorWeight        float64          `json:"vector_weight"`
	GraphWeight         float64          `json:"graph_weight"`
	Limit               int              `json:"limit"`
	MaxMatchesPerResult int              `json:"max_matches_per_result"`
}

// Request is one of the three request shapes.
type Request interface {
	isSearchRequest()
}

func (SemanticRequest) isSearchRequest()   {}
func (StructuredRequest) isSearchRequest() {}
func (HybridRequest) isSearchRequest()     {}

var validate = validator.New()

// CanSubmit reports whether the active mode's free-text condition is met.
// The UI disables submission on false; this is an affordance, not an error.
func CanSubmit(mode Mode, p Params) bool {
	if mode == ModeStructured {
		return true
	}
	return strings.TrimSpace(p.Query) != ""
}

// Build validates the inputs and assembles exactly one request shape for the
// selected mode. A *ValidationError means nothing was constructed and the
// backend must not be called.
func Build(mode Mode, p Params, c criteria.Criteria) (Request, error) {
	if err := validate.Struct(p); err != nil {
		var errs validator.ValidationErrors
		field, msg := "params", err.Error()
		if errors.As(err, &errs) && len(errs) > 0 {
			field = errs[0].Field()
			msg = fmt.Sprintf("failed %q constraint", errs[0].Tag())
		}
		return nil, &ValidationError{Field: field, Message: msg}
	}

	q := strings.TrimSpace(p.Query)
	switch mode {
	case ModeSemantic:
		if q == "" {
			return nil, &ValidationError{Field: "query", Message: "semantic search requires a query"}
		}
		return SemanticRequest{
			Query:               q,
			Limit:               p.Limit,
			MinScore:            p.MinScore,
			MaxMatchesPerResult: p.MaxMatchesPerResult,
			Filters:             c.Wire(),
		}, nil
	case ModeStructured:
		return StructuredRequest{
			Query:   q,
			Filters: c.Wire(),
			Limit:   p.Limit,
		}, nil
	case ModeHybrid:
		if q == "" {
			return nil, &ValidationError{Field: "query", Message: "hybrid search requires a query"}
		}
		if !p.Weights.Normalized() {
			return nil, &ValidationError{
				Field:   "weights",
				Message: fmt.Sprintf("vector and graph weights sum to %.2f, want 1.00", p.Weights.Vector+p.Weights.Graph),
			}
		}
		return HybridRequest{
			Query:               q,
			Filters:             c.Wire(),
			VectorWeight:        p.Weights.Vector,
			GraphWeight:         p.Weights.Graph,
			Limit:               p.Limit,
			MaxMatchesPerResult: p.MaxMatchesPerResult,
		}, nil
	}
	return nil, &ValidationError{Field: "mode", Message: fmt.Sprintf("unknown mode %q", mode)}
}
