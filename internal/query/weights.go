package query

import "math"

// WeightPair is the hybrid-mode blend between the vector and graph scoring
// signals. The pair is kept summing to 1 by SetVector; SetGraph does not
// recompute the vector side, and Build rejects a denormalized pair.
type WeightPair struct {
	Vector float64 `json:"vector_weight"`
	Graph  float64 `json:"graph_weight"`
}

// DefaultWeights is the initial hybrid blend.
func DefaultWeights() WeightPair {
	return WeightPair{Vector: 0.7, Graph: 0.3}
}

// SetVector updates the vector weight and recomputes the graph weight as
// round(1-w, 2) so the pair always sums to 1 within rounding tolerance.
func (p WeightPair) SetVector(w float64) WeightPair {
	p.Vector = round2(w)
	p.Graph = round2(1 - w)
	return p
}

// SetGraph updates only the graph weight. Unlike SetVector it does not touch
// the other side; an edit here can leave the pair denormalized until the
// vector weight is moved again.
func (p WeightPair) SetGraph(w float64) WeightPair {
	p.Graph = round2(w)
	return p
}

// Normalized reports whether the pair sums to 1 within a 0.01 tolerance.
func (p WeightPair) Normalized() bool {
	return math.Abs(p.Vector+p.Graph-1) <= 0.01
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
