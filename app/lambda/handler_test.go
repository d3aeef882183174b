package lambda

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/lambda-feedback/greeter/greeting"
	"github.com/lambda-feedback/greeter/handler"
	"github.com/lambda-feedback/greeter/internal/server"
)

func newTestHandler(t *testing.T, source ProxySource) *LambdaHandler {
	resolver, err := greeting.NewResolver()
	require.NoError(t, err)

	greetingHandler := handler.NewGreetingHandler(handler.GreetingHandlerParams{
		Handler: greeting.NewGreetingHandler(greeting.HandlerParams{
			Resolver: resolver,
			Log:      zap.NewNop(),
		}),
		Log: zap.NewNop(),
	})

	routes := server.AsHttpHandlers(greetingHandler, handler.GreetingPatterns("api")...)

	return NewLambdaHandler(LambdaHandlerParams{
		Config:   Config{ProxySource: source},
		Handlers: routes.Handlers,
		Context:  context.Background(),
		Logger:   zaptest.NewLogger(t),
	})
}

func TestLambdaHandler_InvalidProxySource(t *testing.T) {
	h := newTestHandler(t, ProxySource("SQS"))

	_, err := h.getProxyFunction()
	assert.EqualError(t, err, "invalid proxy source: SQS")

	assert.Error(t, h.Start())
}

func TestLambdaHandler_ProxySources(t *testing.T) {
	for _, source := range []ProxySource{ProxySourceApiGatewayV1, ProxySourceApiGatewayV2, ProxySourceAlb} {
		t.Run(source.String(), func(t *testing.T) {
			fn, err := newTestHandler(t, source).getProxyFunction()
			require.NoError(t, err)
			assert.NotNil(t, fn)
		})
	}
}

func TestLambdaHandler_ApiGatewayV1(t *testing.T) {
	fn, err := newTestHandler(t, ProxySourceApiGatewayV1).getProxyFunction()
	require.NoError(t, err)

	proxy, ok := fn.(func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error))
	require.True(t, ok)

	tests := []struct {
		name     string
		event    events.APIGatewayProxyRequest
		expected string
	}{
		{
			name: "query",
			event: events.APIGatewayProxyRequest{
				HTTPMethod:            http.MethodGet,
				Path:                  "/api/hello",
				QueryStringParameters: map[string]string{"name": "TestUser"},
			},
			expected: "Hello, TestUser! This HTTP triggered function executed successfully.",
		},
		{
			name: "body",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodPost,
				Path:       "/hello",
				Body:       `{"name": "BodyUser"}`,
			},
			expected: "Hello, BodyUser! This HTTP triggered function executed successfully.",
		},
		{
			name: "fallback",
			event: events.APIGatewayProxyRequest{
				HTTPMethod: http.MethodPost,
				Path:       "/api/hello",
				Body:       "not-json",
			},
			expected: greeting.FallbackText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := proxy(context.Background(), tt.event)
			require.NoError(t, err)

			assert.Equal(t, http.StatusOK, res.StatusCode)
			assert.Equal(t, tt.expected, res.Body)
		})
	}
}
