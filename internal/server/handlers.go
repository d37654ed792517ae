package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/HardMax71/ResuMariner-sub001/internal/criteria"
	"github.com/HardMax71/ResuMariner-sub001/internal/query"
)

// SearchRequest is the body for POST /search. It carries the mode, the knob
// positions and a criteria snapshot; the server builds the backend request
// from them the same way the CLI does.
type SearchRequest struct {
	Mode         string            `json:"mode"`
	Query        string            `json:"query,omitempty"`
	Limit        int               `json:"limit,omitempty"`
	MinScore     *float64          `json:"min_score,omitempty"`
	MaxMatches   int               `json:"max_matches_per_result,omitempty"`
	VectorWeight *float64          `json:"vector_weight,omitempty"`
	GraphWeight  *float64          `json:"graph_weight,omitempty"`
	Criteria     criteria.Criteria `json:"criteria"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleFilters proxies the facet catalog. A backend failure degrades to the
// empty catalog with the error detail, so the frontend can show a banner
// instead of breaking.
func (s *Server) handleFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := s.backend.FilterOptions(r.Context())
	if err != nil {
		log.Printf("Catalog fetch failed: %v", err)
		s.jsonResponse(w, HTTPStatus(err), map[string]any{
			"error":   err.Error(),
			"filters": opts,
		})
		return
	}
	s.jsonResponse(w, http.StatusOK, opts)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	mode, err := query.ParseMode(req.Mode)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	params := query.DefaultParams()
	params.Query = req.Query
	if req.Limit != 0 {
		params.Limit = req.Limit
	}
	if req.MinScore != nil {
		params.MinScore = *req.MinScore
	}
	if req.MaxMatches != 0 {
		params.MaxMatchesPerResult = req.MaxMatches
	}
	if req.VectorWeight != nil {
		params.Weights = params.Weights.SetVector(*req.VectorWeight)
	}
	if req.GraphWeight != nil {
		params.Weights = params.Weights.SetGraph(*req.GraphWeight)
	}

	built, err := query.Build(mode, params, req.Criteria)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp, err := s.backend.Search(r.Context(), built)
	if err != nil {
		log.Printf("Search failed: %v", err)
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
