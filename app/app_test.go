package app_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/lambda-feedback/greeter/app/lambda"
	"github.com/lambda-feedback/greeter/app/standalone"
	"github.com/lambda-feedback/greeter/config"
	"github.com/lambda-feedback/greeter/internal/server"
)

func sharedOptions() fx.Option {
	return fx.Options(
		fx.Supply(fx.Annotate(context.Background(), fx.As(new(context.Context)))),
		fx.Supply(zap.NewNop()),
		fx.Supply(config.Config{RoutePrefix: "api"}),
		fx.NopLogger,
	)
}

func TestStandaloneModule_Validate(t *testing.T) {
	err := fx.ValidateApp(
		sharedOptions(),
		standalone.Module(standalone.Config{
			HttpConfig: server.HttpConfig{Host: "localhost", Port: 8080},
		}),
	)

	assert.NoError(t, err)
}

func TestLambdaModule_Validate(t *testing.T) {
	err := fx.ValidateApp(
		sharedOptions(),
		lambda.Module(lambda.Config{ProxySource: lambda.ProxySourceApiGatewayV2}),
	)

	assert.NoError(t, err)
}
