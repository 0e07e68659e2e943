package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pneuma-faq-bot/internal/deal"
	dealMemory "pneuma-faq-bot/internal/deal/repository/memory"
	dealUC "pneuma-faq-bot/internal/deal/usecase"
	"pneuma-faq-bot/internal/dispatcher"
	"pneuma-faq-bot/internal/model"
	"pneuma-faq-bot/internal/policy"
	"pneuma-faq-bot/pkg/datemath"
	"pneuma-faq-bot/pkg/log"
)

type stubDispatcher struct{}

func (stubDispatcher) Handle(_ context.Context, msg model.InboundMessage) dispatcher.Reply {
	return dispatcher.Reply{Text: "echo: " + msg.Text, IntentID: "deals_and_offers", Action: policy.ActionUseBest, Score: 1}
}

func newTestServer(t *testing.T, cfg Config) *HTTPServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg.Logger = log.NewNop()
	cfg.Mode = gin.TestMode
	cfg.Port = 8080
	if cfg.Dispatcher == nil {
		cfg.Dispatcher = stubDispatcher{}
	}

	srv, err := New(cfg.Logger, cfg)
	require.NoError(t, err)
	return srv
}

func TestNew_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{name: "missing mode", cfg: Config{Port: 8080, Dispatcher: stubDispatcher{}}},
		{name: "missing port", cfg: Config{Mode: gin.TestMode, Dispatcher: stubDispatcher{}}},
		{name: "missing dispatcher", cfg: Config{Mode: gin.TestMode, Port: 8080}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(log.NewNop(), tt.cfg)
			assert.Error(t, err)
		})
	}

	_, err := New(nil, Config{Mode: gin.TestMode, Port: 8080, Dispatcher: stubDispatcher{}})
	assert.Error(t, err)
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})

	for _, path := range []string{"/health", "/live", "/ready", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestReadyCheck_Failing(t *testing.T) {
	srv := newTestServer(t, Config{
		Readiness: map[string]ReadinessCheck{
			"redis":    func(context.Context) error { return errors.New("connection refused") },
			"postgres": func(context.Context) error { return nil },
		},
	})

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var body struct {
		Data struct {
			Checks map[string]string `json:"checks"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "connection refused", body.Data.Checks["redis"])
	assert.Equal(t, "ok", body.Data.Checks["postgres"])
}

func TestChatRoutes(t *testing.T) {
	srv := newTestServer(t, Config{})

	t.Run("api chat", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"any deals?"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "echo: any deals?")
	})

	t.Run("webhook", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhook", strings.NewReader(`{"message":"hello","from":"+100"}`))
		req.Header.Set("Content-Type", "application/json")
		srv.Handler().ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "echo: hello")
	})
}

func TestDealRoutes(t *testing.T) {
	t.Run("absent without usecase", func(t *testing.T) {
		srv := newTestServer(t, Config{})

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/deals", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("registered with usecase", func(t *testing.T) {
		parser, err := datemath.NewParser("UTC")
		require.NoError(t, err)
		var uc deal.UseCase = dealUC.New(dealMemory.New(log.NewNop(), deal.DefaultSeed()), parser, log.NewNop())

		srv := newTestServer(t, Config{Deals: uc})

		w := httptest.NewRecorder()
		srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/deals?day=today", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "25% off dining")
	})
}
