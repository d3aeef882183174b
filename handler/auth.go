package handler

import (
	"crypto/subtle"
	"net/http"

	"go.uber.org/zap"
)

const (
	// FunctionKeyHeader carries the function key.
	FunctionKeyHeader = "x-functions-key"

	// FunctionKeyParam is the query parameter fallback for the function key.
	FunctionKeyParam = "code"
)

// RequireFunctionKey returns a middleware that rejects requests not
// presenting key. An empty key disables the check.
func RequireFunctionKey(key string, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(FunctionKeyHeader)
			if token == "" {
				token = r.URL.Query().Get(FunctionKeyParam)
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(key)) != 1 {
				log.Debug("unauthorized request",
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				)
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
