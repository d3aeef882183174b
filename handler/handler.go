package handler

import (
	"io"
	"net/http"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/greeter/greeting"
)

type GreetingHandlerParams struct {
	fx.In

	Handler greeting.Handler
	Log     *zap.Logger
}

func NewGreetingHandler(params GreetingHandlerParams) *GreetingHandler {
	return &GreetingHandler{
		handler: params.Handler,
		log:     params.Log,
	}
}

// GreetingHandler adapts a greeting.Handler to net/http.
type GreetingHandler struct {
	handler greeting.Handler
	log     *zap.Logger
}

func (h *GreetingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(
		zap.String("path", r.URL.Path),
		zap.String("method", r.Method),
	)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Debug("failed to read body", zap.Error(err))
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	request := greeting.Request{
		Path:   r.URL.Path,
		Method: strings.ToUpper(r.Method),
		Query:  firstValues(r.URL.Query()),
		Header: r.Header,
		Body:   body,
	}

	// Handle the request
	response := h.handler.Handle(r.Context(), request)

	// Map response headers
	for k, v := range response.Header {
		for _, vv := range v {
			w.Header().Add(k, vv)
		}
	}

	// Write response headers and status code
	w.WriteHeader(response.StatusCode)

	// Write response body
	if _, err := w.Write(response.Body); err != nil {
		log.Debug("failed to write response", zap.Error(err))
	}
}

// HealthHandler reports that the function host is up.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

func firstValues(values map[string][]string) map[string]string {
	query := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			query[k] = v[0]
		}
	}
	return query
}
