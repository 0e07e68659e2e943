package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pneuma-faq-bot/pkg/gemini"
)

func TestOpenAIAdapter_GenerateContent(t *testing.T) {
	var got struct {
		Model     string `json:"model"`
		MaxTokens int    `json:"max_tokens"`
		Messages  []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "gpt-3.5-turbo",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "Our best deal today is 25% off dining."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 12, "completion_tokens": 9, "total_tokens": 21}
		}`)
	}))
	defer srv.Close()

	adapter := NewOpenAIAdapter(ProviderOpenAI, "sk-test", srv.URL+"/v1", "gpt-3.5-turbo", 0)
	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Role: "system", Parts: []Part{{Text: "You are Pneuma's deals specialist."}}},
		Messages:          []Message{NewTextMessage("user", "any deals?")},
		MaxTokens:         200,
		Temperature:       0.7,
	})
	require.NoError(t, err)

	assert.Equal(t, "Our best deal today is 25% off dining.", resp.Content.Text())
	assert.Equal(t, ProviderOpenAI, resp.ProviderName)
	assert.Equal(t, 21, resp.Usage.TotalTokens)

	assert.Equal(t, "gpt-3.5-turbo", got.Model)
	assert.Equal(t, 200, got.MaxTokens)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.Equal(t, "any deals?", got.Messages[1].Content)
}

func TestOpenAIAdapter_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"error": {"message": "slow down", "type": "rate_limit_exceeded"}}`)
	}))
	defer srv.Close()

	adapter := NewOpenAIAdapter(ProviderDeepSeek, "sk-test", srv.URL, "deepseek-chat", 0)
	_, err := adapter.GenerateContent(context.Background(), &Request{
		Messages: []Message{NewTextMessage("user", "hi")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProviderRateLimited))
	assert.Contains(t, err.Error(), ProviderDeepSeek)
}

func TestOpenAIAdapter_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, `{"error": {"message": "upstream down", "type": "server_error"}}`)
	}))
	defer srv.Close()

	_, err := NewOpenAIAdapter(ProviderOpenAI, "sk-test", srv.URL, "gpt-3.5-turbo", 0).GenerateContent(context.Background(), &Request{
		Messages: []Message{NewTextMessage("user", "hi")},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
}

func TestOpenAIAdapter_BadRequestIsNotRetryable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error": {"message": "model not found", "type": "invalid_request_error"}}`)
	}))
	defer srv.Close()

	_, err := NewOpenAIAdapter(ProviderOpenAI, "sk-test", srv.URL, "gpt-0", 0).GenerateContent(context.Background(), &Request{
		Messages: []Message{NewTextMessage("user", "hi")},
	})
	require.Error(t, err)
	assert.False(t, retryable(err))
}

func TestOpenAIAdapter_HTTPTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	adapter := NewOpenAIAdapter(ProviderDeepSeek, "sk-test", srv.URL, "deepseek-chat", 50*time.Millisecond)

	start := time.Now()
	_, err := adapter.GenerateContent(context.Background(), &Request{
		Messages: []Message{NewTextMessage("user", "hi")},
	})
	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
}

type stubGemini struct {
	req  *gemini.Request
	resp *gemini.Response
	err  error
}

func (s *stubGemini) GenerateContent(_ context.Context, req *gemini.Request) (*gemini.Response, error) {
	s.req = req
	return s.resp, s.err
}

func (s *stubGemini) Model() string { return gemini.DefaultModel }

func TestGeminiAdapter_GenerateContent(t *testing.T) {
	stub := &stubGemini{resp: &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "Transfers take 24-48 hours."}}},
		Usage:   &gemini.Usage{InputTokens: 4, OutputTokens: 6, TotalTokens: 10},
	}}

	adapter := NewGeminiAdapter(stub)
	resp, err := adapter.GenerateContent(context.Background(), &Request{
		SystemInstruction: &Message{Role: "system", Parts: []Part{{Text: "You are a rewards expert."}}},
		Messages:          []Message{NewTextMessage("user", "how long do transfers take")},
	})
	require.NoError(t, err)

	assert.Equal(t, "Transfers take 24-48 hours.", resp.Content.Text())
	assert.Equal(t, "assistant", resp.Content.Role)
	assert.Equal(t, ProviderGemini, resp.ProviderName)
	assert.Equal(t, 10, resp.Usage.TotalTokens)
	require.NotNil(t, stub.req.SystemInstruction)
	assert.Equal(t, "You are a rewards expert.", stub.req.SystemInstruction.Parts[0].Text)
}

func TestGeminiAdapter_RateLimited(t *testing.T) {
	stub := &stubGemini{err: &gemini.APIError{StatusCode: http.StatusTooManyRequests, Body: "quota"}}

	_, err := NewGeminiAdapter(stub).GenerateContent(context.Background(), &Request{
		Messages: []Message{NewTextMessage("user", "hi")},
	})
	assert.True(t, errors.Is(err, ErrProviderRateLimited))
}

func TestGeminiAdapter_ServerError(t *testing.T) {
	stub := &stubGemini{err: &gemini.APIError{StatusCode: http.StatusServiceUnavailable, Body: "overloaded"}}

	_, err := NewGeminiAdapter(stub).GenerateContent(context.Background(), &Request{
		Messages: []Message{NewTextMessage("user", "hi")},
	})
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
}
