package client

import "fmt"

// NetworkError is a transport-level failure: timeout, connection refused,
// DNS. Retry is a manual user action, never automatic.
type NetworkError struct {
	URL   string
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("search backend unreachable at %s: %v", e.URL, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// BackendError is a non-2xx response from the search backend. Message is the
// backend-provided detail verbatim when the payload carried one, a generic
// fallback otherwise.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("search backend returned %d: %s", e.Status, e.Message)
}
