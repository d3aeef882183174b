package server

import (
	"net/http"

	"go.uber.org/fx"
)

// HttpHandler is a handler mounted on the server mux under Pattern.
type HttpHandler struct {
	Pattern string
	Handler http.Handler
}

type HttpHandlerResult struct {
	fx.Out

	Handler *HttpHandler `group:"handlers"`
}

type HttpHandlersResult struct {
	fx.Out

	Handlers []*HttpHandler `group:"handlers,flatten"`
}

func AsHttpHandler(
	pattern string,
	handler http.Handler,
) HttpHandlerResult {
	return HttpHandlerResult{
		Handler: &HttpHandler{
			Pattern: pattern,
			Handler: handler,
		},
	}
}

// AsHttpHandlers mounts the same handler under each pattern.
func AsHttpHandlers(
	handler http.Handler,
	patterns ...string,
) HttpHandlersResult {
	handlers := make([]*HttpHandler, 0, len(patterns))
	for _, pattern := range patterns {
		handlers = append(handlers, &HttpHandler{
			Pattern: pattern,
			Handler: handler,
		})
	}

	return HttpHandlersResult{Handlers: handlers}
}

// NewServeMux registers all handlers on a new mux.
func NewServeMux(handlers []*HttpHandler) *http.ServeMux {
	mux := http.NewServeMux()

	for _, handler := range handlers {
		mux.Handle(handler.Pattern, handler.Handler)
	}

	return mux
}
