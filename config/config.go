package config

import "github.com/lambda-feedback/greeter/util/conf"

// DefaultConfig holds the lowest precedence configuration values.
var DefaultConfig = conf.MergeDefaults("",
	conf.DefaultConfig{
		"log_level":    "info",
		"log_format":   "production",
		"route_prefix": "api",
	},
	conf.MergeDefaults("auth", conf.DefaultConfig{
		"key": "",
	}),
)

// AuthConfig configures the function key gate.
type AuthConfig struct {
	// Key is the function key callers have to present. An empty key
	// disables the gate.
	Key string `conf:"key"`
}

type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application
	LogFormat string `conf:"log_format"`

	// RoutePrefix additionally serves the greeting below this prefix,
	// e.g. `api` serves both /hello and /api/hello
	RoutePrefix string `conf:"route_prefix"`

	// Auth is the function key configuration
	Auth AuthConfig `conf:"auth"`
}
