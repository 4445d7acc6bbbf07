package llm

import "fmt"

// RemoteAnalysisError reports a non-success response from the model
// endpoint. The body is kept for diagnostics.
type RemoteAnalysisError struct {
	StatusCode int
	Body       string
}

func (e *RemoteAnalysisError) Error() string {
	return fmt.Sprintf("model api error: status %d: %s", e.StatusCode, e.Body)
}
