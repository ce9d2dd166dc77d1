package process

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIComplete(t *testing.T) {
	var (
		req  openai.ChatCompletionRequest
		auth string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"the summary"},"finish_reason":"stop"}]}`)
	}))
	defer srv.Close()

	o := NewOpenAI(OpenAIInfo{ApiKey: "secret", BaseURL: srv.URL + "/v1"})
	reply, err := o.Complete(context.Background(), "the prompt")
	require.NoError(t, err)

	assert.Equal(t, "the summary", NormalizeReply(reply))
	assert.Equal(t, "Bearer secret", auth)
	assert.Equal(t, DefaultModel, req.Model)
	assert.InDelta(t, DefaultTemperature, req.Temperature, 0.0001)
	assert.Equal(t, DefaultMaxTokens, req.MaxTokens)
	require.Len(t, req.Messages, 1)
	assert.Equal(t, "the prompt", req.Messages[0].Content)
}

func TestOpenAICompleteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"error":{"message":"invalid api key","type":"invalid_request_error"}}`)
	}))
	defer srv.Close()

	_, err := NewOpenAI(OpenAIInfo{ApiKey: "wrong", BaseURL: srv.URL}).Complete(context.Background(), "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid api key")
}

func TestOpenAITemperature(t *testing.T) {
	zero, low := float32(0), float32(0.2)
	for _, tc := range []struct {
		name        string
		temperature *float32
		exp         float32
	}{
		{name: "default", exp: DefaultTemperature},
		{name: "explicit zero", temperature: &zero, exp: 0},
		{name: "explicit value", temperature: &low, exp: 0.2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var raw map[string]any
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				io.WriteString(w, `{"choices":[{"message":{"content":"ok"}}]}`)
			}))
			defer srv.Close()

			_, err := NewOpenAI(OpenAIInfo{ApiKey: "k", BaseURL: srv.URL, Temperature: tc.temperature}).Complete(context.Background(), "p")
			require.NoError(t, err)

			temp, ok := raw["temperature"].(float64)
			require.True(t, ok, "temperature must be present in the request")
			assert.InDelta(t, tc.exp, temp, 0.0001)
		})
	}
}
