package greeting

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// RequestIDHeader carries a caller supplied invocation id.
const RequestIDHeader = "X-Request-Id"

var (
	ErrInvalidMethod = errors.New("invalid method")
)

var wellKnownErrors = map[error]int{
	ErrInvalidMethod: http.StatusMethodNotAllowed,
}

// HandlerParams defines the dependencies for the greeting handler.
type HandlerParams struct {
	fx.In

	Resolver *Resolver

	Log *zap.Logger
}

// Handler is the interface for handling greeting requests.
type Handler interface {
	Handle(ctx context.Context, request Request) Response
}

// GreetingHandler logs each invocation and delegates to a resolver.
type GreetingHandler struct {
	resolver *Resolver

	log *zap.Logger
}

var _ Handler = (*GreetingHandler)(nil)

// NewGreetingHandler creates a new greeting handler.
func NewGreetingHandler(params HandlerParams) Handler {
	return &GreetingHandler{
		resolver: params.Resolver,
		log:      params.Log,
	}
}

// Handle handles a greeting request.
func (h *GreetingHandler) Handle(ctx context.Context, req Request) Response {
	log := h.log.With(
		zap.String("path", req.Path),
		zap.String("method", req.Method),
		zap.String("invocation_id", invocationID(req)),
	)

	log.Info("processed a request")

	if req.Method != http.MethodGet && req.Method != http.MethodPost {
		log.Debug("invalid method")
		return newErrorResponse(ErrInvalidMethod)
	}

	return h.resolver.Resolve(req)
}

func invocationID(req Request) string {
	if id := req.Header.Get(RequestIDHeader); id != "" {
		return id
	}

	return uuid.NewString()
}

// getErrorStatusCode returns the status code for the given error.
func getErrorStatusCode(err error) int {
	if status, ok := wellKnownErrors[err]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// newErrorResponse creates a new JSON error response.
func newErrorResponse(err error) Response {
	type responseError struct {
		Message string `json:"message"`
	}

	body, merr := json.Marshal(struct {
		Error responseError `json:"error"`
	}{
		Error: responseError{Message: err.Error()},
	})
	if merr != nil {
		return Response{StatusCode: http.StatusInternalServerError}
	}

	header := make(http.Header)
	header.Set("Content-Type", "application/json")

	return Response{
		StatusCode: getErrorStatusCode(err),
		Body:       body,
		Header:     header,
	}
}
