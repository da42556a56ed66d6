package httpclient

import "fmt"

// StatusError is returned for any non-2xx response. The transport does not
// interpret status codes; callers (and the retry layer) treat it the same
// as a network failure.
type StatusError struct {
	Code   int
	Status string
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("http %d: %s", e.Code, e.Body)
}
