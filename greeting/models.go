package greeting

import "net/http"

// Request represents an incoming invocation.
type Request struct {
	Path   string
	Method string
	// Query holds the first value of each query parameter. Keys are
	// case-sensitive.
	Query  map[string]string
	Header http.Header
	Body   []byte
}

// Response represents the outgoing invocation result.
type Response struct {
	StatusCode int
	Body       []byte
	Header     http.Header
}

// Text returns the response body as a string.
func (r Response) Text() string {
	return string(r.Body)
}
