package mono

import "fmt"

// AuthError reports rejected credentials (401/403). Retrying cannot help,
// so the request fails on the first attempt.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("monobank: unauthorized (%d), check MONO_TOKEN", e.Status)
}

// RateLimitError reports a 429 that survived the whole retry schedule.
type RateLimitError struct {
	Attempts int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("monobank: rate limit exceeded after %d attempts", e.Attempts)
}

// ServerError reports an upstream 5xx after retries were exhausted.
type ServerError struct {
	Status   int
	Attempts int
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("monobank: server error (%d) after %d attempts", e.Status, e.Attempts)
}

// APIError reports any other non-success response. Not classified as
// transient, so never retried.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("monobank: unexpected status %d: %s", e.Status, e.Body)
}
