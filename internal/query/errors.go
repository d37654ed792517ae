package query

import "fmt"

// ValidationError is a locally rejected submission: no request body is
// constructed and the backend is never called.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid search input: %s: %s", e.Field, e.Message)
}
