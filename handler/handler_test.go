package handler

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/lambda-feedback/greeter/greeting"
)

// --- Mock handler ---
type MockHandler struct {
	mock.Mock
}

func (m *MockHandler) Handle(ctx context.Context, req greeting.Request) greeting.Response {
	args := m.Called(ctx, req)
	return args.Get(0).(greeting.Response)
}

func TestServeHTTP_Success(t *testing.T) {
	mockHandler := new(MockHandler)

	reqBody := []byte(`{"name": "B"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/hello?name=Q&name=R", bytes.NewReader(reqBody))

	w := httptest.NewRecorder()

	expectedResponse := greeting.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/plain; charset=utf-8"}},
		Body:       []byte("Hello, Q!"),
	}

	mockHandler.On("Handle", mock.Anything, mock.MatchedBy(func(r greeting.Request) bool {
		return r.Path == "/api/hello" &&
			r.Method == http.MethodPost &&
			r.Query["name"] == "Q" &&
			bytes.Equal(r.Body, reqBody)
	})).Return(expectedResponse)

	handler := &GreetingHandler{
		handler: mockHandler,
		log:     zap.NewNop(),
	}

	handler.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	body, _ := io.ReadAll(res.Body)

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", res.Header.Get("Content-Type"))
	assert.Equal(t, "Hello, Q!", string(body))
	mockHandler.AssertExpectations(t)
}

func TestServeHTTP_Resolver(t *testing.T) {
	resolver, err := greeting.NewResolver()
	assert.NoError(t, err)

	handler := NewGreetingHandler(GreetingHandlerParams{
		Handler: greeting.NewGreetingHandler(greeting.HandlerParams{
			Resolver: resolver,
			Log:      zap.NewNop(),
		}),
		Log: zap.NewNop(),
	})

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		expected string
	}{
		{"query", http.MethodGet, "/api/hello?name=TestUser", "", "Hello, TestUser! This HTTP triggered function executed successfully."},
		{"no name", http.MethodGet, "/api/hello", "", greeting.FallbackText},
		{"body", http.MethodPost, "/api/hello", `{"name": "BodyUser"}`, "Hello, BodyUser! This HTTP triggered function executed successfully."},
		{"invalid body", http.MethodPost, "/api/hello", "not-json", greeting.FallbackText},
		{"precedence", http.MethodGet, "/api/hello?name=Q", `{"name": "B"}`, "Hello, Q! This HTTP triggered function executed successfully."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body)))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expected, w.Body.String())
		})
	}
}

func TestHealthHandler(t *testing.T) {
	w := httptest.NewRecorder()
	HealthHandler(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
