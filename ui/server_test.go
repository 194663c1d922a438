package ui

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drawcast/adapters/stats/engine"
	"drawcast/app"
	"drawcast/internal/testkit"
	"drawcast/models"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kit := testkit.NewTestKit()
	predictor, err := engine.NewEngine(engine.DefaultConfig())
	require.NoError(t, err)

	service := app.NewPredictionService(
		kit.DrawRepository(),
		kit.PredictionRepository(),
		predictor,
		kit.RNGAdapter(),
		42,
	)
	return NewServer(Config{GinMode: gin.TestMode}, service)
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestAddDrawEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s.Router(), http.MethodPost, "/draws", gin.H{
		"date":    "2024-01-01",
		"numbers": "1,2,3,4,5",
		"stars":   "1,2",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Invalid value set is a client error
	w = doJSON(t, s.Router(), http.MethodPost, "/draws", gin.H{
		"date":    "2024-01-08",
		"numbers": "1,2,3,4,99",
		"stars":   "1,2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Missing fields fail binding
	w = doJSON(t, s.Router(), http.MethodPost, "/draws", gin.H{"date": "2024-01-08"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s.Router(), http.MethodPost, "/predict", gin.H{"date": "2024-01-12"})
	require.Equal(t, http.StatusCreated, w.Code)

	var p models.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	assert.NotEmpty(t, p.PredictedNumbers)
	assert.NotEmpty(t, p.PredictedStars)

	w = doJSON(t, s.Router(), http.MethodPost, "/predict", gin.H{"date": "12/01/2024"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPredictBatchEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s.Router(), http.MethodPost, "/predict", gin.H{
		"dates": []string{"2024-01-12", "2024-01-19"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Predictions []models.Prediction `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Predictions, 2)
}

func TestRecordResultEndpoint(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s.Router(), http.MethodPost, "/predict", gin.H{"date": "2024-01-12"})
	require.Equal(t, http.StatusCreated, w.Code)
	var p models.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))

	w = doJSON(t, s.Router(), http.MethodPost, "/results", gin.H{
		"date":    "2024-01-12",
		"numbers": p.PredictedNumbers,
		"stars":   p.PredictedStars,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var scored models.Prediction
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &scored))
	require.NotNil(t, scored.Score)
	assert.Equal(t, "5 numbers, 2 stars", *scored.Score)

	// No prediction stored for that date
	w = doJSON(t, s.Router(), http.MethodPost, "/results", gin.H{
		"date":    "2030-01-01",
		"numbers": "1,2,3,4,5",
		"stars":   "1,2",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestIndexAndStatsEndpoints(t *testing.T) {
	s := newTestServer(t)

	doJSON(t, s.Router(), http.MethodPost, "/draws", gin.H{
		"date":    "2024-01-01",
		"numbers": "1,2,3,4,5",
		"stars":   "1,2",
	})

	w := doJSON(t, s.Router(), http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s.Router(), http.MethodGet, "/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats struct {
		Numbers  engine.FrequencySummary `json:"numbers"`
		Stars    engine.FrequencySummary `json:"stars"`
		TopPairs []engine.PairCount      `json:"top_pairs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 10.0, stats.Numbers.Total)
	assert.Len(t, stats.TopPairs, 10)
}

func TestOpsReportEndpoint(t *testing.T) {
	s := newTestServer(t)
	ops := NewOpsServer(s.service)

	doJSON(t, s.Router(), http.MethodPost, "/draws", gin.H{
		"date":    "2024-01-01",
		"numbers": "1,2,3,4,5",
		"stars":   "1,2",
	})

	w := doJSON(t, ops.Router(), http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, ops.Router(), http.MethodGet, "/report", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.True(t, strings.Contains(w.Body.String(), "Draw history report"))
}
