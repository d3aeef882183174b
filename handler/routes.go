package handler

import (
	"net/http"
	"path"
	"strings"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/internal/server"
)

const greetingRoute = "/hello"

type GreetingRouteParams struct {
	fx.In

	Handler *GreetingHandler
	Config  config.Config
	Log     *zap.Logger
}

func NewGreetingRoutes(params GreetingRouteParams) server.HttpHandlersResult {
	gate := RequireFunctionKey(params.Config.Auth.Key, params.Log)

	return server.AsHttpHandlers(
		withSentry(gate(params.Handler)),
		GreetingPatterns(params.Config.RoutePrefix)...,
	)
}

func NewHealthRoute() server.HttpHandlerResult {
	return server.AsHttpHandler("/health", withSentry(http.HandlerFunc(HealthHandler)))
}

// GreetingPatterns returns the mux patterns serving the greeting, with
// and without the route prefix.
func GreetingPatterns(prefix string) []string {
	patterns := []string{greetingRoute}

	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		patterns = append(patterns, path.Join("/", prefix, greetingRoute))
	}

	return patterns
}

func withSentry(handler http.Handler) http.Handler {
	return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle(handler)
}
