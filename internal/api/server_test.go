package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/mahmoudomarus/RAGI/internal/agent"
	"github.com/mahmoudomarus/RAGI/internal/collector"
	"github.com/mahmoudomarus/RAGI/internal/embedding"
	"github.com/mahmoudomarus/RAGI/internal/indicator"
	"github.com/mahmoudomarus/RAGI/internal/recorder"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pipe, err := indicator.NewPipeline(indicator.DefaultConfig())
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	ag, err := agent.New(pipe, embedding.NewHashProvider(128), agent.DefaultConfig())
	if err != nil {
		t.Fatalf("agent: %v", err)
	}
	col := collector.NewCollector(&collector.MockFetcher{Price: 50000}, nil, "BTC-USD")
	return NewServer(ag, col, recorder.NewNoopRecorder(), "1y")
}

func doRequest(s *Server, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["symbol"] != "BTC-USD" {
		t.Errorf("symbol: %v", out["symbol"])
	}
}

func TestGetSignal(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/api/v1/signal", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d, body: %s", w.Code, w.Body.String())
	}
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	trend, _ := out["trend"].(string)
	if trend != "uptrend" && trend != "downtrend" && trend != "sideways" {
		t.Errorf("unexpected trend %q", trend)
	}
}

func TestGetIndicators(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/api/v1/indicators?range=6mo", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d, body: %s", w.Code, w.Body.String())
	}
	var out struct {
		Symbol     string                     `json:"symbol"`
		Bars       int                        `json:"bars"`
		Indicators map[string]json.RawMessage `json:"indicators"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Bars != 300 {
		t.Errorf("bars: %d", out.Bars)
	}
	if _, ok := out.Indicators["SMA_20"]; !ok {
		t.Error("SMA_20 missing from indicator payload")
	}
}

func TestGetSummary(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/api/v1/summary", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d, body: %s", w.Code, w.Body.String())
	}
	var out struct {
		Symbol       string  `json:"symbol"`
		CurrentPrice float64 `json:"current_price"`
		Trend        string  `json:"trend"`
		MaxDrawdown  float64 `json:"max_drawdown"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Symbol != "BTC-USD" {
		t.Errorf("symbol: %q", out.Symbol)
	}
	if out.CurrentPrice <= 0 {
		t.Errorf("current price: %.2f", out.CurrentPrice)
	}
	if out.Trend != "bullish" && out.Trend != "bearish" {
		t.Errorf("unexpected trend %q", out.Trend)
	}
}

func TestKnowledgeAndQuery(t *testing.T) {
	s := newTestServer(t)

	w := doRequest(s, http.MethodPost, "/api/v1/knowledge", `{"texts":["Bitcoin is decentralized."]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("add status: %d, body: %s", w.Code, w.Body.String())
	}

	w = doRequest(s, http.MethodGet, "/api/v1/query?q=What+is+Bitcoin%3F&k=1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("query status: %d, body: %s", w.Code, w.Body.String())
	}
	var out struct {
		Results []struct {
			Document struct {
				Text string `json:"text"`
			} `json:"document"`
			Score float64 `json:"score"`
		} `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out.Results))
	}
	if out.Results[0].Document.Text != "Bitcoin is decentralized." || out.Results[0].Score <= 0 {
		t.Errorf("unexpected result: %+v", out.Results[0])
	}
}

func TestQuery_BadArguments(t *testing.T) {
	s := newTestServer(t)
	if w := doRequest(s, http.MethodGet, "/api/v1/query", ""); w.Code != http.StatusBadRequest {
		t.Errorf("missing q: status %d", w.Code)
	}
	if w := doRequest(s, http.MethodGet, "/api/v1/query?q=x&k=-2", ""); w.Code != http.StatusBadRequest {
		t.Errorf("negative k: status %d", w.Code)
	}
	if w := doRequest(s, http.MethodGet, "/api/v1/query?q=x&k=abc", ""); w.Code != http.StatusBadRequest {
		t.Errorf("non-integer k: status %d", w.Code)
	}
}

func TestQuery_EmptyCorpus(t *testing.T) {
	s := newTestServer(t)
	w := doRequest(s, http.MethodGet, "/api/v1/query?q=anything&k=3", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	var out struct {
		Results []any `json:"results"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out.Results) != 0 {
		t.Errorf("empty corpus should return no results, got %d", len(out.Results))
	}
}
