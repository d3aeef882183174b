package standalone

import (
	"github.com/lambda-feedback/greeter/internal/server"
	"github.com/lambda-feedback/greeter/util/conf"
)

// DefaultConfig is the standalone config used when nothing else is set.
var DefaultConfig = conf.DefaultConfig{
	"host":                "localhost",
	"port":                8080,
	"read_header_timeout": "10s",
}

type Config struct {
	// HttpConfig represents the configuration for the HTTP server.
	HttpConfig server.HttpConfig `conf:",squash"`
}
