package client

// Match is one evidence snippet explaining why a result surfaced. Source and
// Context are optional backend annotations; both are presentation hints and
// never affect ordering.
type Match struct {
	Text    string  `json:"text"`
	Score   float64 `json:"score"`
	Source  string  `json:"source,omitempty"`
	Context string  `json:"context,omitempty"`
}

// SearchResult is one ranked candidate profile. Decoded once per response
// and immutable afterwards; presentation state (expanded cards, selections)
// lives outside this type.
type SearchResult struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email,omitempty"`
	CurrentRole     string   `json:"current_role,omitempty"`
	Company         string   `json:"company,omitempty"`
	Location        string   `json:"location,omitempty"`
	YearsExperience int      `json:"years_experience,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	Score           float64  `json:"score"`
	Matches         []Match  `json:"matches"`
}

// SearchResponse is the backend's ranked answer. Ordering is the backend's;
// nothing downstream re-ranks it. RequestID is filled client-side from the
// X-Request-ID header sent with the request, so a caller can tell which
// submission a response belongs to.
type SearchResponse struct {
	Results    []SearchResult `json:"results"`
	Query      string         `json:"query"`
	SearchType string         `json:"search_type"`
	RequestID  string         `json:"-"`
}

// backendErrorBody covers the error payload shapes the backend emits.
type backendErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}
