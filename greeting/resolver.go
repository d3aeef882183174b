package greeting

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"unicode/utf8"

	"github.com/lambda-feedback/greeter/greeting/schema"
	"github.com/lambda-feedback/greeter/util"
)

const (
	// nameKey is the query parameter and body field holding the name.
	nameKey = "name"

	greetingFormat = "Hello, %s! This HTTP triggered function executed successfully."

	// FallbackText is returned when no usable name was supplied.
	FallbackText = "Hello World! This HTTP triggered function executed successfully. " +
		"Pass a name in the query string or in the request body for a personalized response."
)

var defaultResolver = util.Must(NewResolver())

// Resolve maps a request to its greeting response using the default
// resolver.
func Resolve(req Request) Response {
	return defaultResolver.Resolve(req)
}

// Resolver resolves the name to greet from a request. It holds no
// per-request state and is safe for concurrent use.
type Resolver struct {
	schema *schema.Schema
}

// NewResolver creates a resolver with the embedded request body schema.
func NewResolver() (*Resolver, error) {
	s, err := schema.NewRequestSchema()
	if err != nil {
		return nil, err
	}

	return &Resolver{schema: s}, nil
}

// Resolve produces the greeting for req. The query parameter takes
// precedence over the body. Unusable bodies fall back to the generic
// greeting and never produce an error.
func (r *Resolver) Resolve(req Request) Response {
	name, ok := r.Name(req)
	if !ok || !truthy(name) {
		return newTextResponse(http.StatusOK, FallbackText)
	}

	return newTextResponse(http.StatusOK, fmt.Sprintf(greetingFormat, formatName(name)))
}

// Name returns the raw name value for req and whether one was found.
func (r *Resolver) Name(req Request) (any, bool) {
	if name := req.Query[nameKey]; name != "" {
		return name, true
	}

	payload, ok := r.parseBody(req.Body)
	if !ok {
		return nil, false
	}

	return payload.get(nameKey)
}

// utf8BOM is tolerated in front of a JSON body.
var utf8BOM = []byte("\xef\xbb\xbf")

// parseBody decodes body into a JSON object. It reports false for empty,
// malformed or non-object payloads.
func (r *Resolver) parseBody(body []byte) (*jsonObject, bool) {
	body = bytes.TrimPrefix(body, utf8BOM)
	if len(bytes.TrimSpace(body)) == 0 || !utf8.Valid(body) {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	payload, err := decodeValue(dec)
	if err != nil {
		return nil, false
	}

	// reject trailing data after the document
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, false
	}

	res, err := r.schema.Validate(payload)
	if err != nil || !res.Valid() {
		return nil, false
	}

	obj, ok := payload.(*jsonObject)
	return obj, ok
}

func newTextResponse(status int, text string) Response {
	header := make(http.Header)
	header.Set("Content-Type", "text/plain; charset=utf-8")

	return Response{
		StatusCode: status,
		Body:       []byte(text),
		Header:     header,
	}
}
