package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambda-feedback/greeter/internal/shell"
)

func TestRun_Version(t *testing.T) {
	rootApp.Version = "test"
	t.Cleanup(func() { rootApp.Version = "" })

	assert.Equal(t, 0, run(context.Background(), []string{appName, "--version"}))
}

func TestRun_InvalidConfigFile(t *testing.T) {
	code := run(context.Background(), []string{appName, "--config", "config.toml", "serve"})
	assert.Equal(t, 1, code)
}

func TestIsAWSLambda(t *testing.T) {
	t.Setenv(awsLambdaRuntimeEnv, "")
	assert.False(t, isAWSLambda())

	t.Setenv(awsLambdaRuntimeEnv, "127.0.0.1:9001")
	assert.True(t, isAWSLambda())
}

func TestAzureCustomHandlerPort(t *testing.T) {
	t.Setenv(azureCustomHandlerPortEnv, "")
	_, ok := azureCustomHandlerPort()
	assert.False(t, ok)

	t.Setenv(azureCustomHandlerPortEnv, "7071")
	port, ok := azureCustomHandlerPort()
	assert.True(t, ok)
	assert.Equal(t, "7071", port)
}

func TestExitCode(t *testing.T) {
	var out bytes.Buffer

	assert.Equal(t, 0, exitCode(&out, nil))
	assert.Empty(t, out.String())

	assert.Equal(t, 3, exitCode(&out, shell.NewExitError(3)))
	assert.Empty(t, out.String())

	assert.Equal(t, 1, exitCode(&out, errors.New("unsupported config file type: config.toml")))
	assert.Equal(t, "exit error: unsupported config file type: config.toml\n", out.String())
}
